package findnew

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ImageExtensions lists the file extensions considered images, lowercase and
// without the dot.
var ImageExtensions = []string{"jpg", "png", "jpeg", "gif"}

// FileSet holds the image paths found under one directory.
type FileSet map[string]bool

// Paths returns the set's paths in sorted order.
func (s FileSet) Paths() []string {
	paths := make([]string, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	return paths
}

// IsImage reports whether name carries an allowed image extension. The check
// is case-insensitive.
func IsImage(name string) bool {
	ext := strings.TrimPrefix(filepath.Ext(name), ".")
	if ext == "" {
		return false
	}
	return slices.Contains(ImageExtensions, strings.ToLower(strings.TrimSpace(ext)))
}

// Crawl walks dir depth-first and collects every image file. Symlinked
// directories are followed, each real directory at most once. Any directory
// that cannot be read aborts the walk with ErrUnreadableDir.
func Crawl(dir string) (FileSet, error) {
	c := crawler{set: FileSet{}, seen: map[string]bool{}}
	if err := c.walk(dir); err != nil {
		return nil, err
	}
	return c.set, nil
}

type crawler struct {
	set  FileSet
	seen map[string]bool
}

func (c *crawler) walk(dir string) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnreadableDir, dir, err)
	}
	if c.seen[resolved] {
		return nil
	}
	c.seen[resolved] = true

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrUnreadableDir, dir, err)
	}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			// A broken link is treated as a plain file.
			if info, err := os.Stat(path); err == nil {
				isDir = info.IsDir()
			}
		}
		if isDir {
			if err := c.walk(path); err != nil {
				return err
			}
			continue
		}
		if IsImage(entry.Name()) {
			c.set[path] = true
		}
	}
	return nil
}
