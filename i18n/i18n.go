// Package i18n is the flat en/es string table for the page, addressed by dotted keys.
package i18n

import (
	_ "embed"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"gopkg.in/yaml.v3"
)

// Language is a supported locale code
type Language string

const (
	English Language = "en"
	Spanish Language = "es"
)

// ParseLanguage accepts "en" or "es"
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case English, Spanish:
		return Language(s), nil
	}
	return "", fmt.Errorf("unsupported language %q", s)
}

//go:embed translations.yaml
var defaultTable []byte

// Catalog maps each language to its flattened dotted-key table
type Catalog map[Language]map[string]string

// LoadCatalog parses a YAML document whose top-level keys are languages
func LoadCatalog(data []byte) (Catalog, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse translations: %w", err)
	}

	cat := make(Catalog, len(raw))
	for lang, tree := range raw {
		flat := make(map[string]string)
		flatten("", tree, flat)
		cat[Language(lang)] = flat
	}
	return cat, nil
}

// DefaultCatalog returns the embedded table
func DefaultCatalog() Catalog {
	cat, err := LoadCatalog(defaultTable)
	if err != nil {
		panic(err)
	}
	return cat
}

func flatten(prefix string, node any, out map[string]string) {
	switch v := node.(type) {
	case map[string]any:
		for k, child := range v {
			flatten(join(prefix, k), child, out)
		}
	case []any:
		for i, child := range v {
			flatten(join(prefix, strconv.Itoa(i)), child, out)
		}
	case nil:
	default:
		out[prefix] = fmt.Sprint(v)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// Keys returns the sorted keys for a language
func (c Catalog) Keys(lang Language) []string {
	keys := make([]string, 0, len(c[lang]))
	for k := range c[lang] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Translator looks up strings in the active language
type Translator struct {
	mu      sync.RWMutex
	catalog Catalog
	lang    Language
}

// NewTranslator starts in lang
func NewTranslator(catalog Catalog, lang Language) *Translator {
	return &Translator{catalog: catalog, lang: lang}
}

// T returns the string for key; a missing key returns the key itself
func (t *Translator) T(key string) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if s, ok := t.catalog[t.lang][key]; ok {
		return s
	}
	return key
}

// Language returns the active language
func (t *Translator) Language() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// Set switches the active language
func (t *Translator) Set(lang Language) {
	t.mu.Lock()
	t.lang = lang
	t.mu.Unlock()
}

// Toggle flips between English and Spanish and returns the new language
func (t *Translator) Toggle() Language {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.lang == English {
		t.lang = Spanish
	} else {
		t.lang = English
	}
	return t.lang
}
