// Package findnew parses find-new-images arguments and runs the duplicate
// finder over two image trees.
package findnew

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	entrypoint "github.com/pokesprite/pokesprite/internal/platform/cmd"
	"github.com/pokesprite/pokesprite/internal/platform/config"
	"github.com/pokesprite/pokesprite/internal/services/findnew"
	"github.com/pokesprite/pokesprite/internal/services/findnew/storage/sqlite"
)

// Config holds find-new-images command configuration.
type Config struct {
	OldDir     string
	NewDir     string
	DiffBinary string        `env:"PUZZLE_DIFF"            envDefault:"puzzle-diff"`
	Threshold  float64       `env:"FIND_NEW_THRESHOLD"     envDefault:"0.066"`
	Timeout    time.Duration `env:"FIND_NEW_TIMEOUT"       envDefault:"30s"`
	CachePath  string        `env:"FIND_NEW_CACHE"`
	Verbose    bool          `env:"FIND_NEW_VERBOSE"`
	NoColor    bool          `env:"NO_COLOR"`
}

// ErrReported marks errors Find has already written to its output.
var ErrReported = errors.New("error already reported")

type usageError string

func (e usageError) Error() string { return string(e) }

func (e usageError) Is(target error) bool { return target == findnew.ErrUsage }

const (
	errTooFewArgs = usageError("too few arguments")
	errNotDirs    = usageError("old_dir or new_dir aren't directories")
)

// Usage prints the command synopsis and exit statuses.
func Usage(w io.Writer) {
	fmt.Fprintf(w, "usage: %s [flags] old_dir new_dir\n", entrypoint.ToolFindNew)
	fmt.Fprintf(w, "exit status: 0 on success, %d on failure, %d on usage errors (usage goes to stderr)\n", config.ExitFatal, config.ExitUsage)
}

// ParseConfig parses environment, flags and the two directory arguments.
// Missing or non-directory arguments and a negative threshold yield an error
// matching findnew.ErrUsage.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.Float64Var(&cfg.Threshold, "threshold", cfg.Threshold, "distance under which two images are duplicates")
	fs.StringVar(&cfg.DiffBinary, "diff-bin", cfg.DiffBinary, "perceptual diff executable")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "timeout per comparison")
	fs.StringVar(&cfg.CachePath, "cache", cfg.CachePath, "SQLite file caching distances between runs")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "print every comparison")
	fs.BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "disable coloured output")
	fs.Usage = func() {
		Usage(fs.Output())
		fs.PrintDefaults()
	}
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if err := findnew.ValidateThreshold(cfg.Threshold); err != nil {
		return Config{}, usageError(err.Error())
	}

	if fs.NArg() < 2 {
		return Config{}, errTooFewArgs
	}
	cfg.OldDir, cfg.NewDir = fs.Arg(0), fs.Arg(1)
	if !isDir(cfg.OldDir) || !isDir(cfg.NewDir) {
		return Config{}, errNotDirs
	}
	return cfg, nil
}

// Run compares the new directory against the old one and prints the report
// to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ToolFindNew, func(ctx context.Context) error {
		_, err := Find(ctx, cfg, out)
		return err
	})
}

// Find runs the comparison and returns its result.
func Find(ctx context.Context, cfg Config, out io.Writer) (findnew.Result, error) {
	var differ findnew.Differ = findnew.PuzzleDiff{Binary: cfg.DiffBinary, Timeout: cfg.Timeout}
	if cfg.CachePath != "" {
		store, err := sqlite.Open(cfg.CachePath)
		if err != nil {
			return findnew.Result{}, fmt.Errorf("open distance cache: %w", err)
		}
		defer store.Close()
		differ = findnew.CachedDiffer{Differ: differ, Store: store, Tool: cfg.DiffBinary}
	}

	finder := &findnew.Finder{
		Differ:    differ,
		Threshold: cfg.Threshold,
		Reporter:  &findnew.TextReporter{Out: out, Verbose: cfg.Verbose, NoColor: cfg.NoColor},
	}
	result, err := finder.Run(ctx, cfg.OldDir, cfg.NewDir)
	if errors.Is(err, findnew.ErrDiffFailed) {
		fmt.Fprintf(out, "\n%s: error: %v\n", entrypoint.ToolFindNew, err)
		return result, fmt.Errorf("%w: %w", ErrReported, err)
	}
	return result, err
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
