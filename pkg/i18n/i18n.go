// Package i18n provides the page-chrome translations for the VITTIN site.
package i18n

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator resolves keys for one locale with a fallback locale.
type Translator struct {
	locale       string
	fallback     string
	translations map[string]map[string]string // locale -> key -> value
	mu           sync.RWMutex
}

// NewTranslator creates a new translator.
func NewTranslator(locale, fallback string) *Translator {
	return &Translator{
		locale:       locale,
		fallback:     fallback,
		translations: make(map[string]map[string]string),
	}
}

// Locale returns the current locale.
func (t *Translator) Locale() string {
	return t.locale
}

// Load loads translations for a locale.
func (t *Translator) Load(locale string, translations map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.translations[locale] == nil {
		t.translations[locale] = make(map[string]string, len(translations))
	}

	for key, value := range translations {
		t.translations[locale][key] = value
	}
}

// T translates a key to the current locale. Positional placeholders %1, %2 ...
// are replaced by args. Unknown keys are returned unchanged.
func (t *Translator) T(key string, args ...any) string {
	if value := t.get(t.locale, key); value != "" {
		return interpolate(value, args...)
	}

	if t.locale != t.fallback {
		if value := t.get(t.fallback, key); value != "" {
			return interpolate(value, args...)
		}
	}

	return key
}

func (t *Translator) get(locale, key string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if translations, ok := t.translations[locale]; ok {
		return translations[key]
	}
	return ""
}

func interpolate(template string, args ...any) string {
	if len(args) == 0 {
		return template
	}

	result := template
	for i := len(args) - 1; i >= 0; i-- {
		placeholder := fmt.Sprintf("%%%d", i+1)
		result = strings.ReplaceAll(result, placeholder, fmt.Sprint(args[i]))
	}
	return result
}

type i18nContextKey struct{}

// WithTranslator adds a translator to context.
func WithTranslator(ctx context.Context, t *Translator) context.Context {
	return context.WithValue(ctx, i18nContextKey{}, t)
}

// TranslatorFromContext retrieves a translator from context.
func TranslatorFromContext(ctx context.Context) *Translator {
	t, _ := ctx.Value(i18nContextKey{}).(*Translator)
	return t
}

// T translates using the translator from context.
func T(ctx context.Context, key string, args ...any) string {
	t := TranslatorFromContext(ctx)
	if t == nil {
		return key
	}
	return t.T(key, args...)
}

// Bundle holds the catalogs of every supported locale and picks one per request.
type Bundle struct {
	defaultLoc string
	catalogs   map[string]map[string]string
	tags       []language.Tag
	matcher    language.Matcher
	mu         sync.RWMutex
}

// NewBundle creates a bundle whose default (and fallback) locale is defaultLocale.
func NewBundle(defaultLocale string) *Bundle {
	return &Bundle{
		defaultLoc: defaultLocale,
		catalogs:   make(map[string]map[string]string),
	}
}

// AddTranslations adds translations for a locale.
func (b *Bundle) AddTranslations(locale string, translations map[string]string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.catalogs[locale] == nil {
		b.catalogs[locale] = make(map[string]string, len(translations))
	}
	for k, v := range translations {
		b.catalogs[locale][k] = v
	}
	b.rebuildMatcher()
}

// rebuildMatcher keeps the default locale first so the matcher falls back to it.
func (b *Bundle) rebuildMatcher() {
	locales := make([]string, 0, len(b.catalogs))
	for loc := range b.catalogs {
		if loc != b.defaultLoc {
			locales = append(locales, loc)
		}
	}
	sort.Strings(locales)
	locales = append([]string{b.defaultLoc}, locales...)

	b.tags = make([]language.Tag, 0, len(locales))
	for _, loc := range locales {
		b.tags = append(b.tags, language.Make(loc))
	}
	b.matcher = language.NewMatcher(b.tags)
}

// Translator returns a translator for a locale, falling back to the default locale.
func (b *Bundle) Translator(locale string) *Translator {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if _, ok := b.catalogs[locale]; !ok {
		locale = b.defaultLoc
	}

	t := NewTranslator(locale, b.defaultLoc)
	for loc, catalog := range b.catalogs {
		t.Load(loc, catalog)
	}
	return t
}

// Negotiate picks a supported locale from an explicit choice (e.g. ?lang=) or
// an Accept-Language header. The explicit choice wins when it parses.
func (b *Bundle) Negotiate(explicit, acceptLanguage string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.matcher == nil {
		return b.defaultLoc
	}

	var prefs []language.Tag
	if explicit != "" {
		if tag, err := language.Parse(explicit); err == nil {
			prefs = append(prefs, tag)
		}
	}
	if len(prefs) == 0 && acceptLanguage != "" {
		tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
		if err == nil {
			prefs = tags
		}
	}
	if len(prefs) == 0 {
		return b.defaultLoc
	}

	_, idx, conf := b.matcher.Match(prefs...)
	if conf == language.No {
		return b.defaultLoc
	}
	return b.tags[idx].String()
}

// Locales returns all available locales, default first.
func (b *Bundle) Locales() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	locales := make([]string, 0, len(b.tags))
	for _, tag := range b.tags {
		locales = append(locales, tag.String())
	}
	return locales
}
