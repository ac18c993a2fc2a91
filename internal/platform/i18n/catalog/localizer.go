package catalog

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer resolves message keys for one locale.
type Localizer struct {
	locale  string
	printer *message.Printer
}

// Localizer returns a printer bound to locale. Unknown locales fall back to
// BaseLocale for both messages and number formatting.
func (b *Bundle) Localizer(locale string) Localizer {
	locale = strings.TrimSpace(locale)
	if !b.HasLocale(locale) {
		locale = BaseLocale
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(BaseLocale)
	}
	var opts []message.Option
	if b != nil && b.catalog != nil {
		opts = append(opts, message.Catalog(b.catalog))
	}
	return Localizer{locale: locale, printer: message.NewPrinter(tag, opts...)}
}

// Locale reports the resolved locale.
func (l Localizer) Locale() string {
	return l.locale
}

// L returns the localized string for key. Unknown keys print as themselves.
func (l Localizer) L(key string) string {
	if l.printer == nil {
		return key
	}
	return l.printer.Sprintf(key)
}

// Count formats n with the locale's digit grouping.
func (l Localizer) Count(n int) string {
	if l.printer == nil {
		return message.NewPrinter(language.MustParse(BaseLocale)).Sprintf("%d", n)
	}
	return l.printer.Sprintf("%d", n)
}
