// Package main reports how complete each label locale is against the base
// locale.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	i18ncatalog "github.com/pokesprite/pokesprite/internal/platform/i18n/catalog"
	"github.com/pokesprite/pokesprite/internal/platform/mdtable"
	"gopkg.in/yaml.v3"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	var baseLocale string
	var markdownOut string
	var yamlOut string
	flags := flag.NewFlagSet("i18nstatus", flag.ContinueOnError)
	flags.StringVar(&baseLocale, "base-locale", i18ncatalog.BaseLocale, "locale the others are measured against")
	flags.StringVar(&markdownOut, "out", "docs/i18n-status.md", "markdown output path")
	flags.StringVar(&yamlOut, "yaml-out", "docs/i18n-status.yaml", "yaml output path")
	flags.SetOutput(stderr)
	if err := flags.Parse(args); err != nil {
		return err
	}

	bundle, err := i18ncatalog.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load i18n catalogs: %w", err)
	}
	if !bundle.HasLocale(baseLocale) {
		return fmt.Errorf("base locale %q is missing from catalogs", baseLocale)
	}

	rep := buildReport(bundle, baseLocale)
	data, err := yaml.Marshal(rep)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := writeOutput(yamlOut, string(data)); err != nil {
		return err
	}
	if err := writeOutput(markdownOut, renderMarkdown(rep)); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s and %s\n", markdownOut, yamlOut)
	return nil
}

func renderMarkdown(rep report) string {
	var b strings.Builder
	b.WriteString("# Label translation status\n\n")
	fmt.Fprintf(&b, "Base locale: `%s`.\n\n", rep.BaseLocale)

	locales, base, translated, missing, extra, completion := []string{}, []string{}, []string{}, []string{}, []string{}, []string{}
	for _, l := range rep.Locales {
		locales = append(locales, "`"+l.Locale+"`")
		base = append(base, fmt.Sprint(l.BaseKeys))
		translated = append(translated, fmt.Sprint(l.Translated))
		missing = append(missing, fmt.Sprint(l.Missing))
		extra = append(extra, fmt.Sprint(l.Extra))
		completion = append(completion, fmt.Sprintf("%.1f%%", l.Completion))
	}
	b.WriteString(mdtable.RenderTable(
		mdtable.RenderColumn("Locale", locales, mdtable.AlignLeft),
		mdtable.RenderColumn("Base keys", base, mdtable.AlignRight),
		mdtable.RenderColumn("Translated", translated, mdtable.AlignRight),
		mdtable.RenderColumn("Missing", missing, mdtable.AlignRight),
		mdtable.RenderColumn("Extra", extra, mdtable.AlignRight),
		mdtable.RenderColumn("Completion", completion, mdtable.AlignRight),
	))

	for _, l := range rep.Locales {
		if len(l.MissingKeys) == 0 && len(l.ExtraKeys) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n## `%s`\n", l.Locale)
		writeKeyList(&b, "Missing", l.MissingKeys)
		writeKeyList(&b, "Extra", l.ExtraKeys)
	}
	return b.String()
}

func writeKeyList(b *strings.Builder, title string, keys []string) {
	if len(keys) == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s:\n\n", title)
	for _, key := range keys {
		fmt.Fprintf(b, "- `%s`\n", key)
	}
}

func writeOutput(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
