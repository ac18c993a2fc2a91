// Package templates substitutes named placeholders into page templates.
//
// Placeholders use text/template syntax ({{.icons}}). Values are inserted
// verbatim: callers escape anything that is not already markup.
package templates

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"strings"
	"text/template"
)

// ErrTemplateRequired is returned when decorating a nil template.
var ErrTemplateRequired = errors.New("template is required")

// Vars maps placeholder names to substitution strings.
type Vars map[string]string

// Template is a parsed page template.
type Template struct {
	name string
	tpl  *template.Template
}

// Parse parses template text. Every placeholder it references must be
// supplied at decoration time.
func Parse(name, text string) (*Template, error) {
	tpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}
	return &Template{name: name, tpl: tpl}, nil
}

// ParseFS reads and parses one template file from fsys.
func ParseFS(fsys fs.FS, path string) (*Template, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	return Parse(path, string(data))
}

// Name returns the name the template was parsed with.
func (t *Template) Name() string {
	if t == nil {
		return ""
	}
	return t.name
}

// Decorate renders t with vars.
func Decorate(t *Template, vars Vars) (string, error) {
	if t == nil || t.tpl == nil {
		return "", ErrTemplateRequired
	}
	if vars == nil {
		vars = Vars{}
	}
	var buf bytes.Buffer
	if err := t.tpl.Execute(&buf, map[string]string(vars)); err != nil {
		return "", fmt.Errorf("render template %s: %w", t.name, err)
	}
	return buf.String(), nil
}

// Decorator carries site-wide placeholder defaults.
type Decorator struct {
	defaults Vars
}

// NewDecorator returns a Decorator with a private copy of defaults.
func NewDecorator(defaults Vars) Decorator {
	return Decorator{defaults: maps.Clone(defaults)}
}

// Defaults returns a copy of the site-wide placeholders.
func (d Decorator) Defaults() Vars {
	if d.defaults == nil {
		return Vars{}
	}
	return maps.Clone(d.defaults)
}

// DecorateWithDefaults renders t with the defaults merged under vars; vars
// win on conflicts.
func (d Decorator) DecorateWithDefaults(t *Template, vars Vars) (string, error) {
	merged := d.Defaults()
	maps.Copy(merged, vars)
	return Decorate(t, merged)
}

// IndentLines prefixes every non-blank line of text with n spaces.
func IndentLines(text string, n int) string {
	if n <= 0 {
		return text
	}
	indent := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

// ProcessOutput normalises rendered markup: trailing whitespace is stripped
// from every line, runs of blank lines collapse to one, and the result ends
// in exactly one newline.
func ProcessOutput(markup string) string {
	lines := strings.Split(markup, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			if blank || len(out) == 0 {
				continue
			}
			blank = true
		} else {
			blank = false
		}
		out = append(out, line)
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return ""
	}
	return strings.Join(out, "\n") + "\n"
}
