// Package catalog loads the embedded locale bundles used for overview labels.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
	textcatalog "golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v3"
)

// BaseLocale is the locale every other locale falls back to.
const BaseLocale = "en-US"

const catalogGlob = "locales/*/*.yaml"

// catalogFile is one locales/<locale>/<namespace>.yaml document.
type catalogFile struct {
	Locale    string            `yaml:"locale"`
	Namespace string            `yaml:"namespace"`
	Messages  map[string]string `yaml:"messages"`
}

// localeMessages holds one locale's messages, flat and per namespace.
type localeMessages struct {
	all        map[string]string
	namespaces map[string]map[string]string
}

// Bundle is a set of locale catalogs plus the x/text catalog built from them.
type Bundle struct {
	locales map[string]*localeMessages
	catalog *textcatalog.Builder
}

//go:embed locales/*/*.yaml
var embeddedFS embed.FS

var defaultBundle = mustLoadEmbedded()

// Default returns the process-wide embedded bundle.
func Default() *Bundle {
	return defaultBundle
}

// LoadEmbedded loads the catalogs compiled into the binary.
func LoadEmbedded() (*Bundle, error) {
	return LoadFromFS(embeddedFS)
}

// LoadFromFS loads every locales/<locale>/<namespace>.yaml under fsys.
func LoadFromFS(fsys fs.FS) (*Bundle, error) {
	paths, err := fs.Glob(fsys, catalogGlob)
	if err != nil {
		return nil, fmt.Errorf("glob locale catalogs: %w", err)
	}
	if len(paths) == 0 {
		return nil, errors.New("no catalog files found")
	}
	slices.Sort(paths)

	b := &Bundle{locales: map[string]*localeMessages{}}
	for _, p := range paths {
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", p, err)
		}
		file, err := parseCatalogFile(data)
		if err != nil {
			return nil, fmt.Errorf("parse catalog %s: %w", p, err)
		}
		if err := b.add(p, file); err != nil {
			return nil, fmt.Errorf("catalog %s: %w", p, err)
		}
	}
	if !b.HasLocale(BaseLocale) {
		return nil, fmt.Errorf("base locale %s is not defined in catalogs", BaseLocale)
	}
	if err := b.buildCatalog(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Bundle) add(p string, file catalogFile) error {
	locale := strings.TrimSpace(file.Locale)
	if dir := path.Base(path.Dir(p)); locale != dir {
		return fmt.Errorf("locale %q must match path locale %q", locale, dir)
	}
	namespace := strings.TrimSpace(file.Namespace)
	if name := strings.TrimSuffix(path.Base(p), path.Ext(p)); namespace != name {
		return fmt.Errorf("namespace %q must match filename namespace %q", namespace, name)
	}

	lm := b.locales[locale]
	if lm == nil {
		lm = &localeMessages{all: map[string]string{}, namespaces: map[string]map[string]string{}}
		b.locales[locale] = lm
	}
	if _, dup := lm.namespaces[namespace]; dup {
		return fmt.Errorf("namespace %q already defined for locale %q", namespace, locale)
	}

	ns := make(map[string]string, len(file.Messages))
	for key, value := range file.Messages {
		key = strings.TrimSpace(key)
		if key == "" {
			return errors.New("message key cannot be blank")
		}
		if _, dup := lm.all[key]; dup {
			return fmt.Errorf("duplicate key %q in locale %q", key, locale)
		}
		lm.all[key] = value
		ns[key] = value
	}
	lm.namespaces[namespace] = ns
	return nil
}

// buildCatalog compiles the bundle into an x/text catalog. Keys a locale
// lacks are filled from BaseLocale so printers never need a second lookup.
func (b *Bundle) buildCatalog() error {
	base := b.locales[BaseLocale].all
	cat := textcatalog.NewBuilder()
	for _, locale := range b.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return fmt.Errorf("parse locale tag %q: %w", locale, err)
		}
		messages := maps.Clone(base)
		maps.Copy(messages, b.locales[locale].all)
		for _, key := range slices.Sorted(maps.Keys(messages)) {
			if err := cat.SetString(tag, key, messages[key]); err != nil {
				return fmt.Errorf("register %s/%s: %w", locale, key, err)
			}
		}
	}
	b.catalog = cat
	return nil
}

// HasLocale reports whether the bundle defines locale.
func (b *Bundle) HasLocale(locale string) bool {
	return b.lookup(locale) != nil
}

// Locales returns the defined locales in sorted order.
func (b *Bundle) Locales() []string {
	if b == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(b.locales))
}

// Namespaces returns the namespaces defined for locale in sorted order.
func (b *Bundle) Namespaces(locale string) []string {
	lm := b.lookup(locale)
	if lm == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(lm.namespaces))
}

// LocaleMessages returns a copy of every message locale defines itself.
func (b *Bundle) LocaleMessages(locale string) map[string]string {
	lm := b.lookup(locale)
	if lm == nil {
		return map[string]string{}
	}
	return maps.Clone(lm.all)
}

// NamespaceMessages returns a copy of one namespace of locale.
func (b *Bundle) NamespaceMessages(locale, namespace string) map[string]string {
	lm := b.lookup(locale)
	if lm == nil {
		return map[string]string{}
	}
	ns, ok := lm.namespaces[strings.TrimSpace(namespace)]
	if !ok {
		return map[string]string{}
	}
	return maps.Clone(ns)
}

// Message returns the raw catalog value for key, falling back to BaseLocale.
func (b *Bundle) Message(locale, key string) (string, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false
	}
	for _, candidate := range []string{locale, BaseLocale} {
		if lm := b.lookup(candidate); lm != nil {
			if value, ok := lm.all[key]; ok {
				return value, true
			}
		}
	}
	return "", false
}

func (b *Bundle) lookup(locale string) *localeMessages {
	if b == nil {
		return nil
	}
	return b.locales[strings.TrimSpace(locale)]
}

func mustLoadEmbedded() *Bundle {
	b, err := LoadEmbedded()
	if err != nil {
		panic(err)
	}
	return b
}

func parseCatalogFile(data []byte) (catalogFile, error) {
	var out catalogFile
	if err := yaml.Unmarshal(data, &out); err != nil {
		return catalogFile{}, err
	}
	switch {
	case strings.TrimSpace(out.Locale) == "":
		return catalogFile{}, errors.New("missing locale")
	case strings.TrimSpace(out.Namespace) == "":
		return catalogFile{}, errors.New("missing namespace")
	case len(out.Messages) == 0:
		return catalogFile{}, errors.New("missing messages")
	}
	return out, nil
}
