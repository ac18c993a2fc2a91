// Package overview renders the icon overview pages of a sprite build.
//
// A Builder turns an ordered icon list into an HTML table (with row-span
// grouping per icon id), a Markdown table, and an HTML build summary. Output
// is memoised per format until the icon list changes or the caches are
// invalidated explicitly.
package overview

import (
	"context"
	"errors"
	"slices"

	"github.com/pokesprite/pokesprite/internal/platform/icons"
	"github.com/pokesprite/pokesprite/internal/platform/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/pokesprite/pokesprite/internal/services/overview"

// Label keys looked up through the Localizer.
const (
	LabelID        = "overview_id"
	LabelDex       = "overview_dex"
	LabelName      = "overview_name"
	LabelIcon      = "overview_icon"
	LabelHTML      = "overview_html"
	LabelClass     = "overview_class"
	LabelDexPrefix = "dex_prefix"
)

// Localizer resolves label keys for the build's locale.
type Localizer interface {
	Locale() string
	L(key string) string
	Count(n int) string
}

// Options configures a Builder.
type Options struct {
	Settings  Settings
	Localizer Localizer
	// OverviewTemplate and BuildTemplate default to the embedded pages.
	OverviewTemplate *templates.Template
	BuildTemplate    *templates.Template
	// Decorator defaults to one carrying SiteDefaults(Settings).
	Decorator *templates.Decorator
}

// Builder renders the overview pages for one icon list.
type Builder struct {
	settings    Settings
	loc         Localizer
	classifier  icons.Classifier
	overviewTpl *templates.Template
	buildTpl    *templates.Template
	decorator   templates.Decorator
	tracer      trace.Tracer

	icons     []icons.Record
	overviews *Cache
	builds    *Cache
}

// New validates opts and returns a Builder with an empty icon list.
func New(opts Options) (*Builder, error) {
	if opts.Localizer == nil {
		return nil, errors.New("localizer is required")
	}
	overviewTpl := opts.OverviewTemplate
	if overviewTpl == nil {
		tpl, err := DefaultOverviewTemplate()
		if err != nil {
			return nil, err
		}
		overviewTpl = tpl
	}
	buildTpl := opts.BuildTemplate
	if buildTpl == nil {
		tpl, err := DefaultBuildTemplate()
		if err != nil {
			return nil, err
		}
		buildTpl = tpl
	}
	decorator := templates.NewDecorator(SiteDefaults(opts.Settings))
	if opts.Decorator != nil {
		decorator = *opts.Decorator
	}

	return &Builder{
		settings:    opts.Settings,
		loc:         opts.Localizer,
		classifier:  opts.Settings.Classifier(opts.Localizer.L(LabelDexPrefix)),
		overviewTpl: overviewTpl,
		buildTpl:    buildTpl,
		decorator:   decorator,
		tracer:      otel.Tracer(tracerName),
		overviews:   NewCache(),
		builds:      NewCache(),
	}, nil
}

// SetIcons replaces the icon list and invalidates every cached page. Records
// sharing an id must be contiguous.
func (b *Builder) SetIcons(list []icons.Record) {
	b.icons = slices.Clone(list)
	b.Invalidate()
}

// Icons returns a copy of the current icon list.
func (b *Builder) Icons() []icons.Record {
	return slices.Clone(b.icons)
}

// Invalidate drops every cached page.
func (b *Builder) Invalidate() {
	b.overviews.Clear()
	b.builds.Clear()
}

// Overview returns the overview in format, rendering it on first use.
func (b *Builder) Overview(ctx context.Context, format Format) (string, error) {
	if out, ok := b.overviews.Get(format); ok {
		return out, nil
	}

	ctx, span := b.tracer.Start(ctx, "overview.render", trace.WithAttributes(
		attribute.String("overview.format", format.String()),
		attribute.Int("overview.icons", len(b.icons)),
	))
	defer span.End()

	var (
		out string
		err error
	)
	switch format {
	case FormatHTML:
		out, err = b.renderHTML(ctx)
	case FormatMarkdown:
		out = b.renderMarkdown()
	default:
		err = ErrUnsupportedFormat
	}
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	b.overviews.Set(format, out)
	return out, nil
}

// BuildOverview returns the build summary page. Only FormatHTML exists.
func (b *Builder) BuildOverview(ctx context.Context, format Format) (string, error) {
	if out, ok := b.builds.Get(format); ok {
		return out, nil
	}
	if format != FormatHTML {
		return "", ErrUnsupportedFormat
	}

	_, span := b.tracer.Start(ctx, "overview.render_build", trace.WithAttributes(
		attribute.Int("overview.icons", len(b.icons)),
	))
	defer span.End()

	out, err := b.renderBuild()
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	b.builds.Set(format, out)
	return out, nil
}
