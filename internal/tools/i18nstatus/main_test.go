package main

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"testing/fstest"

	i18ncatalog "github.com/pokesprite/pokesprite/internal/platform/i18n/catalog"
	"gopkg.in/yaml.v3"
)

func testBundle(t *testing.T) *i18ncatalog.Bundle {
	t.Helper()
	bundle, err := i18ncatalog.LoadFromFS(fstest.MapFS{
		"locales/en-US/overview.yaml": {Data: []byte("locale: en-US\nnamespace: overview\nmessages:\n  overview_dex: Dex\n  overview_name: Name\n")},
		"locales/en-US/build.yaml":    {Data: []byte("locale: en-US\nnamespace: build\nmessages:\n  build_title: Build overview\n")},
		"locales/fr-FR/overview.yaml": {Data: []byte("locale: fr-FR\nnamespace: overview\nmessages:\n  overview_dex: Pokédex\n  overview_form: Forme\n")},
	})
	if err != nil {
		t.Fatalf("load bundle: %v", err)
	}
	return bundle
}

func TestBuildReportCountsMissingAndExtraKeys(t *testing.T) {
	rep := buildReport(testBundle(t), "en-US")
	if len(rep.Locales) != 2 {
		t.Fatalf("locales = %d, want 2", len(rep.Locales))
	}
	fr := rep.Locales[1]
	if fr.Locale != "fr-FR" || fr.BaseKeys != 3 || fr.Translated != 1 {
		t.Fatalf("fr status = %+v", fr)
	}
	if !slices.Equal(fr.MissingKeys, []string{"build_title", "overview_name"}) {
		t.Fatalf("missing = %v", fr.MissingKeys)
	}
	if !slices.Equal(fr.ExtraKeys, []string{"overview_form"}) {
		t.Fatalf("extra = %v", fr.ExtraKeys)
	}
	if fr.Completion != 33.3 {
		t.Fatalf("completion = %v, want 33.3", fr.Completion)
	}
	if len(fr.Namespaces) != 2 || fr.Namespaces[0].Namespace != "build" || fr.Namespaces[0].Translated != 0 {
		t.Fatalf("namespaces = %+v", fr.Namespaces)
	}
	if en := rep.Locales[0]; en.Completion != 100 || en.Missing != 0 {
		t.Fatalf("base status = %+v", en)
	}
}

func TestRenderMarkdownAlignsSummary(t *testing.T) {
	out := renderMarkdown(buildReport(testBundle(t), "en-US"))
	if !strings.Contains(out, "| `fr-FR` |         3 |          1 |       2 |     1 |      33.3% |") {
		t.Fatalf("unexpected summary:\n%s", out)
	}
	if !strings.Contains(out, "Missing:\n\n- `build_title`\n- `overview_name`\n") {
		t.Fatalf("missing key list absent:\n%s", out)
	}
	if strings.Contains(out, "## `en-US`") {
		t.Fatal("complete locales need no detail section")
	}
}

func TestRunWritesReports(t *testing.T) {
	dir := t.TempDir()
	mdPath := filepath.Join(dir, "docs", "status.md")
	yamlPath := filepath.Join(dir, "docs", "status.yaml")
	var stdout, stderr bytes.Buffer

	if err := run([]string{"-out", mdPath, "-yaml-out", yamlPath}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if stderr.Len() != 0 {
		t.Fatalf("unexpected stderr: %q", stderr.String())
	}

	data, err := os.ReadFile(yamlPath)
	if err != nil {
		t.Fatalf("read yaml: %v", err)
	}
	var rep report
	if err := yaml.Unmarshal(data, &rep); err != nil {
		t.Fatalf("decode yaml: %v", err)
	}
	if rep.BaseLocale != i18ncatalog.BaseLocale || len(rep.Locales) == 0 {
		t.Fatalf("report = %+v", rep)
	}
	if _, err := os.Stat(mdPath); err != nil {
		t.Fatalf("markdown report missing: %v", err)
	}
}

func TestRunRejectsUnknownBaseLocale(t *testing.T) {
	var stdout, stderr bytes.Buffer
	dir := t.TempDir()
	err := run([]string{"-base-locale", "xx-XX", "-out", filepath.Join(dir, "a.md"), "-yaml-out", filepath.Join(dir, "a.yaml")}, &stdout, &stderr)
	if err == nil {
		t.Fatal("expected unknown base locale error")
	}
}
