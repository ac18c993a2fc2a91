package findnew

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"github.com/pokesprite/pokesprite/internal/platform/timeouts"
	"github.com/pokesprite/pokesprite/internal/services/findnew/storage"
)

// DefaultDiffBinary is the perceptual-difference executable from libpuzzle.
const DefaultDiffBinary = "puzzle-diff"

// Differ measures the perceptual distance between two images. Smaller is more
// similar.
type Differ interface {
	Diff(ctx context.Context, newPath, oldPath string) (float64, error)
}

// PuzzleDiff runs an external tool that prints one float distance on stdout.
type PuzzleDiff struct {
	// Binary defaults to DefaultDiffBinary.
	Binary string
	// Timeout bounds each invocation; zero uses timeouts.PerceptualDiff.
	Timeout time.Duration
}

// Diff runs the tool as `<binary> newPath oldPath`.
func (p PuzzleDiff) Diff(ctx context.Context, newPath, oldPath string) (float64, error) {
	binary := strings.TrimSpace(p.Binary)
	if binary == "" {
		binary = DefaultDiffBinary
	}
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = timeouts.PerceptualDiff
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, newPath, oldPath)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return 0, fmt.Errorf("%w: couldn't run `%s': %v", ErrDiffFailed, binary, ctx.Err())
		}
		return 0, fmt.Errorf("%w: couldn't run `%s': %v: %s", ErrDiffFailed, binary, err, strings.TrimSpace(stderr.String()))
	}

	raw := strings.TrimSpace(stdout.String())
	distance, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: `%s' printed %q", ErrDiffFailed, binary, raw)
	}
	return distance, nil
}

// CachedDiffer memoises distances in a DistanceStore keyed by Tool and by
// both files' path, size and modification time.
type CachedDiffer struct {
	Differ Differ
	Store  storage.DistanceStore
	// Tool names the executable behind Differ.
	Tool string
}

// Diff returns the stored distance when both files are unchanged and otherwise
// asks the wrapped Differ and records its answer. Store failures only cost the
// cache; they never fail the comparison.
func (c CachedDiffer) Diff(ctx context.Context, newPath, oldPath string) (float64, error) {
	key, err := pairKey(c.Tool, newPath, oldPath)
	if err != nil {
		return c.Differ.Diff(ctx, newPath, oldPath)
	}

	distance, err := c.Store.GetDistance(ctx, key)
	if err == nil {
		return distance, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("distance cache lookup: %v", err)
	}

	distance, err = c.Differ.Diff(ctx, newPath, oldPath)
	if err != nil {
		return 0, err
	}
	if err := c.Store.PutDistance(ctx, key, distance); err != nil {
		log.Printf("distance cache store: %v", err)
	}
	return distance, nil
}

func pairKey(tool, newPath, oldPath string) (storage.PairKey, error) {
	newStamp, err := stamp(newPath)
	if err != nil {
		return storage.PairKey{}, err
	}
	oldStamp, err := stamp(oldPath)
	if err != nil {
		return storage.PairKey{}, err
	}
	return storage.PairKey{Tool: tool, New: newStamp, Old: oldStamp}, nil
}

func stamp(path string) (storage.FileStamp, error) {
	info, err := os.Stat(path)
	if err != nil {
		return storage.FileStamp{}, err
	}
	return storage.FileStamp{Path: path, Size: info.Size(), ModTime: info.ModTime()}, nil
}
