// Package overview parses overview command flags and writes the overview
// pages for an icon list.
package overview

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	entrypoint "github.com/pokesprite/pokesprite/internal/platform/cmd"
	"github.com/pokesprite/pokesprite/internal/platform/config"
	"github.com/pokesprite/pokesprite/internal/platform/i18n/catalog"
	"github.com/pokesprite/pokesprite/internal/platform/icons"
	"github.com/pokesprite/pokesprite/internal/platform/templates"
	"github.com/pokesprite/pokesprite/internal/services/overview"
)

// Output file names written into the output directory.
const (
	FileOverviewHTML     = "overview.html"
	FileOverviewMarkdown = "overview.md"
	FileBuildHTML        = "index.html"
)

// FormatAll selects every page.
const FormatAll = "all"

// Config holds overview command configuration.
type Config struct {
	IconsPath         string `env:"OVERVIEW_ICONS"`
	SettingsPath      string `env:"OVERVIEW_SETTINGS"`
	OutDir            string `env:"OVERVIEW_OUT"            envDefault:"."`
	Format            string `env:"OVERVIEW_FORMAT"         envDefault:"all"`
	TemplatePath      string `env:"OVERVIEW_TEMPLATE"`
	BuildTemplatePath string `env:"OVERVIEW_BUILD_TEMPLATE"`
	Locale            string `env:"OVERVIEW_LOCALE"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.IconsPath, "icons", cfg.IconsPath, "icon list file (YAML or JSON)")
	fs.StringVar(&cfg.SettingsPath, "settings", cfg.SettingsPath, "build settings file (YAML)")
	fs.StringVar(&cfg.OutDir, "out", cfg.OutDir, "output directory")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "pages to write: html, markdown or all")
	fs.StringVar(&cfg.TemplatePath, "template", cfg.TemplatePath, "overview page template (defaults to the embedded one)")
	fs.StringVar(&cfg.BuildTemplatePath, "build-template", cfg.BuildTemplatePath, "build summary template (defaults to the embedded one)")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "label locale, overrides the settings file")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run renders the selected pages and writes them into cfg.OutDir.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ToolOverview, func(ctx context.Context) error {
		written, err := Write(ctx, cfg)
		for _, path := range written {
			log.Printf("wrote %s", path)
		}
		return err
	})
}

// Write renders the selected pages and returns the paths written.
func Write(ctx context.Context, cfg Config) ([]string, error) {
	if strings.TrimSpace(cfg.IconsPath) == "" {
		return nil, errors.New("icon list path is required")
	}
	formats, err := selectFormats(cfg.Format)
	if err != nil {
		return nil, err
	}

	settings, err := LoadSettings(cfg.SettingsPath, time.Now())
	if err != nil {
		return nil, err
	}
	if locale := strings.TrimSpace(cfg.Locale); locale != "" {
		settings.Locale = locale
	}

	list, err := icons.LoadList(cfg.IconsPath)
	if err != nil {
		return nil, err
	}
	if err := icons.ValidateGrouping(list); err != nil {
		return nil, err
	}

	opts := overview.Options{
		Settings:  settings,
		Localizer: catalog.Default().Localizer(settings.Locale),
	}
	if opts.OverviewTemplate, err = loadTemplate(cfg.TemplatePath); err != nil {
		return nil, err
	}
	if opts.BuildTemplate, err = loadTemplate(cfg.BuildTemplatePath); err != nil {
		return nil, err
	}
	builder, err := overview.New(opts)
	if err != nil {
		return nil, err
	}
	builder.SetIcons(list)

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	write := func(name, content string) error {
		path := filepath.Join(cfg.OutDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		written = append(written, path)
		return nil
	}
	for _, format := range formats {
		page, err := builder.Overview(ctx, format)
		if err != nil {
			return written, err
		}
		name := FileOverviewHTML
		if format == overview.FormatMarkdown {
			name = FileOverviewMarkdown
		}
		if err := write(name, page); err != nil {
			return written, err
		}
		if format != overview.FormatHTML {
			continue
		}
		summary, err := builder.BuildOverview(ctx, format)
		if err != nil {
			return written, err
		}
		if err := write(FileBuildHTML, summary); err != nil {
			return written, err
		}
	}
	return written, nil
}

// LoadSettings resolves build settings from defaults, the optional settings
// file, and the environment. An unset script date becomes now's date.
func LoadSettings(path string, now time.Time) (overview.Settings, error) {
	settings := overview.DefaultSettings()
	if err := config.Load(path, &settings); err != nil {
		return overview.Settings{}, err
	}
	if strings.TrimSpace(settings.ScriptDate) == "" {
		settings.ScriptDate = now.Format(time.DateOnly)
	}
	return settings, nil
}

func selectFormats(raw string) ([]overview.Format, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, FormatAll) {
		return overview.Formats(), nil
	}
	format, err := overview.ParseFormat(raw)
	if err != nil {
		return nil, err
	}
	return []overview.Format{format}, nil
}

func loadTemplate(path string) (*templates.Template, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	return templates.ParseFS(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}
