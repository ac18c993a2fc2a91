package overview

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnsupportedFormat is returned for formats a page cannot be rendered in.
var ErrUnsupportedFormat = errors.New("unsupported overview format")

// Format selects the markup an overview is rendered in.
type Format int

const (
	FormatHTML Format = iota
	FormatMarkdown
)

// Formats lists every known format.
func Formats() []Format {
	return []Format{FormatHTML, FormatMarkdown}
}

// ParseFormat maps "html" and "markdown" (or "md") onto a Format.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "html":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, raw)
}

func (f Format) String() string {
	switch f {
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "markdown"
	}
	return "format(" + strconv.Itoa(int(f)) + ")"
}

// Cache memoises rendered output, one slot per format.
type Cache struct {
	entries map[Format]string
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: map[Format]string{}}
}

// Get returns the cached output for f.
func (c *Cache) Get(f Format) (string, bool) {
	out, ok := c.entries[f]
	return out, ok
}

// Set stores output for f.
func (c *Cache) Set(f Format, out string) {
	c.entries[f] = out
}

// Invalidate drops the entry for f.
func (c *Cache) Invalidate(f Format) {
	delete(c.entries, f)
}

// Clear drops every entry.
func (c *Cache) Clear() {
	clear(c.entries)
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
