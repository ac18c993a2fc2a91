package main

import (
	"math"
	"slices"

	i18ncatalog "github.com/pokesprite/pokesprite/internal/platform/i18n/catalog"
)

type report struct {
	BaseLocale string         `yaml:"base_locale"`
	Locales    []localeStatus `yaml:"locales"`
}

type localeStatus struct {
	Locale      string            `yaml:"locale"`
	BaseKeys    int               `yaml:"base_keys"`
	Translated  int               `yaml:"translated"`
	Missing     int               `yaml:"missing"`
	Extra       int               `yaml:"extra"`
	Completion  float64           `yaml:"completion"`
	Namespaces  []namespaceStatus `yaml:"namespaces"`
	MissingKeys []string          `yaml:"missing_keys,omitempty"`
	ExtraKeys   []string          `yaml:"extra_keys,omitempty"`
}

type namespaceStatus struct {
	Namespace  string  `yaml:"namespace"`
	BaseKeys   int     `yaml:"base_keys"`
	Translated int     `yaml:"translated"`
	Completion float64 `yaml:"completion"`
}

func buildReport(bundle *i18ncatalog.Bundle, baseLocale string) report {
	baseMessages := bundle.LocaleMessages(baseLocale)
	rep := report{BaseLocale: baseLocale}

	for _, locale := range bundle.Locales() {
		messages := bundle.LocaleMessages(locale)
		missing := diffKeys(baseMessages, messages)
		extra := diffKeys(messages, baseMessages)
		translated := len(baseMessages) - len(missing)

		namespaces := []namespaceStatus{}
		for _, namespace := range bundle.Namespaces(baseLocale) {
			baseNS := bundle.NamespaceMessages(baseLocale, namespace)
			nsTranslated := len(baseNS) - len(diffKeys(baseNS, bundle.NamespaceMessages(locale, namespace)))
			namespaces = append(namespaces, namespaceStatus{
				Namespace:  namespace,
				BaseKeys:   len(baseNS),
				Translated: nsTranslated,
				Completion: percent(nsTranslated, len(baseNS)),
			})
		}

		rep.Locales = append(rep.Locales, localeStatus{
			Locale:      locale,
			BaseKeys:    len(baseMessages),
			Translated:  translated,
			Missing:     len(missing),
			Extra:       len(extra),
			Completion:  percent(translated, len(baseMessages)),
			Namespaces:  namespaces,
			MissingKeys: missing,
			ExtraKeys:   extra,
		})
	}
	return rep
}

// diffKeys returns the sorted keys of from that to lacks.
func diffKeys(from, to map[string]string) []string {
	var out []string
	for key := range from {
		if _, ok := to[key]; !ok {
			out = append(out, key)
		}
	}
	slices.Sort(out)
	return out
}

func percent(numerator, denominator int) float64 {
	if denominator <= 0 {
		return 100
	}
	value := float64(numerator) * 100 / float64(denominator)
	return math.Round(value*10) / 10
}
