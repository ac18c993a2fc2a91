package findnew

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/pokesprite/pokesprite/internal/services/findnew"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("find-new-images", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	oldDir, newDir := t.TempDir(), t.TempDir()

	cfg, err := ParseConfig(newFlagSet(), []string{oldDir, newDir})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Threshold != findnew.DefaultThreshold {
		t.Fatalf("threshold = %v, want %v", cfg.Threshold, findnew.DefaultThreshold)
	}
	if cfg.DiffBinary != findnew.DefaultDiffBinary {
		t.Fatalf("diff binary = %q", cfg.DiffBinary)
	}
	if cfg.Timeout != 30*time.Second {
		t.Fatalf("timeout = %v", cfg.Timeout)
	}
	if cfg.OldDir != oldDir || cfg.NewDir != newDir {
		t.Fatalf("dirs = %q, %q", cfg.OldDir, cfg.NewDir)
	}
}

func TestParseConfigFlags(t *testing.T) {
	t.Setenv("POKESPRITE_PUZZLE_DIFF", "/opt/bin/puzzle-diff")
	oldDir, newDir := t.TempDir(), t.TempDir()

	cfg, err := ParseConfig(newFlagSet(), []string{"-threshold", "0.1", "-verbose", "-cache", "d.db", oldDir, newDir})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Threshold != 0.1 || !cfg.Verbose || cfg.CachePath != "d.db" {
		t.Fatalf("cfg = %+v", cfg)
	}
	if cfg.DiffBinary != "/opt/bin/puzzle-diff" {
		t.Fatalf("diff binary = %q, want env value", cfg.DiffBinary)
	}
}

func TestParseConfigUsageErrors(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "a.png")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no args", args: nil, want: "too few arguments"},
		{name: "one arg", args: []string{dir}, want: "too few arguments"},
		{name: "file", args: []string{dir, file}, want: "old_dir or new_dir aren't directories"},
		{name: "missing", args: []string{filepath.Join(dir, "nope"), dir}, want: "old_dir or new_dir aren't directories"},
		{name: "negative threshold", args: []string{"-threshold", "-0.1", dir, dir}, want: "invalid threshold: -0.1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseConfig(newFlagSet(), tc.args)
			if !errors.Is(err, findnew.ErrUsage) {
				t.Fatalf("err = %v, want ErrUsage", err)
			}
			if err.Error() != tc.want {
				t.Fatalf("err = %q, want %q", err.Error(), tc.want)
			}
		})
	}
}

func TestParseConfigKeepsZeroThreshold(t *testing.T) {
	dir := t.TempDir()
	cfg, err := ParseConfig(newFlagSet(), []string{"-threshold", "0", dir, dir})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Threshold != 0 {
		t.Fatalf("threshold = %v, want 0", cfg.Threshold)
	}
}

func TestUsage(t *testing.T) {
	var out bytes.Buffer
	Usage(&out)
	want := "usage: find-new-images [flags] old_dir new_dir\n" +
		"exit status: 0 on success, 1 on failure, 2 on usage errors (usage goes to stderr)\n"
	if out.String() != want {
		t.Fatalf("usage = %q", out.String())
	}
}

func TestFindWithScriptedDiffAndCache(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	root := t.TempDir()
	oldDir := filepath.Join(root, "old")
	newDir := filepath.Join(root, "new")
	writeImage(t, oldDir, "a.png", "sprite-a")
	writeImage(t, newDir, "same.png", "sprite-a")
	writeImage(t, newDir, "fresh.png", "sprite-z")

	// Identical contents are distance 0, anything else is far apart.
	calls := filepath.Join(root, "calls")
	bin := filepath.Join(root, "fake-diff")
	script := "#!/bin/sh\necho x >> " + calls + "\nif [ \"$(cat \"$1\")\" = \"$(cat \"$2\")\" ]; then echo 0; else echo 0.9; fi\n"
	if err := os.WriteFile(bin, []byte(script), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}

	cfg := Config{
		OldDir:     oldDir,
		NewDir:     newDir,
		DiffBinary: bin,
		Threshold:  findnew.DefaultThreshold,
		Timeout:    5 * time.Second,
		CachePath:  filepath.Join(root, "distances.db"),
		NoColor:    true,
	}
	for run := 0; run < 2; run++ {
		var out bytes.Buffer
		result, err := Find(context.Background(), cfg, &out)
		if err != nil {
			t.Fatalf("find run %d: %v", run, err)
		}
		fresh := filepath.Join(newDir, "fresh.png")
		if len(result.Unique) != 1 || result.Unique[0] != fresh {
			t.Fatalf("unique = %v, want [%s]", result.Unique, fresh)
		}
		if !strings.Contains(out.String(), "Amount of unique images found in `new' directory: 1") {
			t.Fatalf("unexpected output:\n%s", out.String())
		}
	}

	data, err := os.ReadFile(calls)
	if err != nil {
		t.Fatalf("read calls: %v", err)
	}
	if n := strings.Count(string(data), "x"); n != 2 {
		t.Fatalf("diff calls = %d, want 2 (second run served from cache)", n)
	}
}

func TestFindReportsDiffFailure(t *testing.T) {
	root := t.TempDir()
	writeImage(t, filepath.Join(root, "old"), "a.png", "a")
	writeImage(t, filepath.Join(root, "new"), "b.png", "b")

	var out bytes.Buffer
	cfg := Config{
		OldDir:     filepath.Join(root, "old"),
		NewDir:     filepath.Join(root, "new"),
		DiffBinary: filepath.Join(root, "missing-diff"),
		NoColor:    true,
	}
	_, err := Find(context.Background(), cfg, &out)
	if !errors.Is(err, findnew.ErrDiffFailed) {
		t.Fatalf("err = %v, want ErrDiffFailed", err)
	}
	if !errors.Is(err, ErrReported) {
		t.Fatalf("err = %v, want it marked as reported", err)
	}
	if got := strings.Count(out.String(), "find-new-images: error: "); got != 1 {
		t.Fatalf("error lines = %d, want 1:\n%s", got, out.String())
	}
}

func writeImage(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
