package overview

import (
	"strings"

	"github.com/a-h/templ"
	"github.com/pokesprite/pokesprite/internal/platform/i18n/catalog"
	"github.com/pokesprite/pokesprite/internal/platform/icons"
	"github.com/pokesprite/pokesprite/internal/platform/templates"
)

// Settings is the build configuration consumed by the overview pages. It is
// resolved once (defaults, settings file, environment) before a Builder is
// constructed and never re-read while rendering.
type Settings struct {
	GitHubBaseDir       string `yaml:"github_base_dir" env:"GITHUB_BASE_DIR"`
	CSSBaseSelector     string `yaml:"css_base_selector" env:"CSS_BASE_SELECTOR"`
	HTMLNoSlugs         bool   `yaml:"html_no_slugs" env:"HTML_NO_SLUGS"`
	IncludePkmnNonshiny bool   `yaml:"include_pkmn_nonshiny" env:"INCLUDE_PKMN_NONSHINY"`
	IncludePkmnShiny    bool   `yaml:"include_pkmn_shiny" env:"INCLUDE_PKMN_SHINY"`
	ResourcesDir        string `yaml:"resources_dir" env:"RESOURCES_DIR"`
	JSOutput            string `yaml:"js_output" env:"JS_OUTPUT"`
	HTMLRelHome         string `yaml:"html_rel_home" env:"HTML_REL_HOME"`
	ScriptDate          string `yaml:"script_date" env:"SCRIPT_DATE"`
	SCSSOutput          string `yaml:"scss_output" env:"SCSS_OUTPUT"`
	TitleStr            string `yaml:"title_str" env:"TITLE_STR"`
	Website             string `yaml:"website" env:"WEBSITE"`
	IconURLImgBase      string `yaml:"icon_url_img_base" env:"ICON_URL_IMG_BASE"`
	Locale              string `yaml:"locale" env:"LOCALE"`
	EmptyCell           string `yaml:"empty_cell" env:"EMPTY_CELL"`
}

// DefaultSettings returns the settings used when nothing overrides them.
func DefaultSettings() Settings {
	return Settings{
		CSSBaseSelector:     "pkspr",
		IncludePkmnNonshiny: true,
		IncludePkmnShiny:    true,
		ResourcesDir:        "resources/",
		JSOutput:            "pokesprite.js",
		HTMLRelHome:         "../",
		SCSSOutput:          "pokesprite.scss",
		TitleStr:            "PokéSprite",
		Locale:              catalog.BaseLocale,
		EmptyCell:           icons.DefaultEmptyCell,
	}
}

// OnlyShiny reports whether the build ships shiny icons exclusively.
func (s Settings) OnlyShiny() bool {
	return icons.OnlyShinyMode(s.IncludePkmnNonshiny, s.IncludePkmnShiny)
}

// Classifier resolves the icon classifier for these settings.
func (s Settings) Classifier(dexPrefix string) icons.Classifier {
	return icons.Classifier{
		BaseSelector:  s.CSSBaseSelector,
		UseIdxClasses: s.HTMLNoSlugs,
		OnlyShiny:     s.OnlyShiny(),
		DexPrefix:     dexPrefix,
		EmptyCell:     s.EmptyCell,
	}
}

// JSOutputMin is the minified script filename.
func (s Settings) JSOutputMin() string {
	return strings.Replace(s.JSOutput, ".js", ".min.js", 1)
}

// CSSOutput is the compiled stylesheet filename.
func (s Settings) CSSOutput() string {
	return strings.Replace(s.SCSSOutput, ".scss", ".css", 1)
}

// CSSOutputMin is the minified stylesheet filename.
func (s Settings) CSSOutputMin() string {
	return strings.Replace(s.SCSSOutput, ".scss", ".min.css", 1)
}

// SiteDefaults are the placeholders every page template may use.
func SiteDefaults(s Settings) templates.Vars {
	return templates.Vars{
		"lang":             templ.EscapeString(s.Locale),
		"title_str_html":   templ.EscapeString(s.TitleStr),
		"website_html":     templ.EscapeString(s.Website),
		"script_date_html": templ.EscapeString(s.ScriptDate),
	}
}

// pageVars are the asset and build placeholders shared by both pages.
func pageVars(s Settings, iconsAmount int) templates.Vars {
	return templates.Vars{
		"resources_dir":    templ.EscapeString(s.ResourcesDir),
		"js_output":        templ.EscapeString(s.JSOutput),
		"js_output_min":    templ.EscapeString(s.JSOutputMin()),
		"html_rel_home":    templ.EscapeString(s.HTMLRelHome),
		"script_date":      templ.EscapeString(s.ScriptDate),
		"css_output":       templ.EscapeString(s.CSSOutput()),
		"css_output_min":   templ.EscapeString(s.CSSOutputMin()),
		"title_str_html":   templ.EscapeString(s.TitleStr),
		"script_date_html": templ.EscapeString(s.ScriptDate),
		"website_html":     templ.EscapeString(s.Website),
		"icons_amount":     templ.EscapeString(itoa(iconsAmount)),
	}
}
