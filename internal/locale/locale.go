// Package locale resolves a BCP-47-ish locale tag, or a Windows numeric
// locale code, to the punctuation, month/weekday names and boolean literals
// a number-format pattern's "[$-xxx]" locale override selects.
package locale

import (
	_ "embed"
	"encoding/json"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
)

//go:embed locales.json
var localesData []byte

//go:embed code_to_locale.json
var codeToLocaleData []byte

// Locale holds every locale-dependent literal a pattern's rendering can
// reference: separators, day/month names, AM/PM markers and boolean text.
type Locale struct {
	Group      string
	Decimal    string
	Positive   string
	Negative   string
	Percent    string
	Exponent   string
	NaN        string
	Infinity   string
	Ampm       []string
	Mmmm6      []string
	Mmm6       []string
	Mmmm       []string
	Mmm        []string
	Dddd       []string
	Ddd        []string
	BoolValues []string
	PreferMDY  bool
}

// BoolTrue returns the locale's literal for a TRUE boolean value.
func (l *Locale) BoolTrue() string {
	if len(l.BoolValues) > 0 {
		return l.BoolValues[0]
	}
	return "TRUE"
}

// BoolFalse returns the locale's literal for a FALSE boolean value.
func (l *Locale) BoolFalse() string {
	if len(l.BoolValues) > 1 {
		return l.BoolValues[1]
	}
	return "FALSE"
}

type localeRaw struct {
	Group     string   `json:"group"`
	Decimal   string   `json:"decimal"`
	Positive  string   `json:"positive"`
	Negative  string   `json:"negative"`
	Percent   string   `json:"percent"`
	Exponent  string   `json:"exponent"`
	NaN       string   `json:"nan"`
	Infinity  string   `json:"infinity"`
	Ampm      []string `json:"ampm"`
	Mmmm6     []string `json:"mmmm6"`
	Mmm6      []string `json:"mmm6"`
	Mmmm      []string `json:"mmmm"`
	Mmm       []string `json:"mmm"`
	Dddd      []string `json:"dddd"`
	Ddd       []string `json:"ddd"`
	Bool      []string `json:"bool"`
	PreferMDY bool     `json:"preferMDY"`
}

type localeFile struct {
	Default localeRaw            `json:"default"`
	Locales map[string]localeRaw `json:"locales"`
}

type registry struct {
	defaultLocale Locale
	locales       map[string]Locale
}

var (
	registryOnce sync.Once
	registryVal  *registry

	codeMapOnce sync.Once
	codeMapVal  map[int]string
)

func loadRegistry() *registry {
	registryOnce.Do(func() {
		var raw localeFile
		if err := json.Unmarshal(localesData, &raw); err != nil {
			panic(errors.Wrap(err, "invalid locale data"))
		}
		locales := make(map[string]Locale, len(raw.Locales))
		for key, value := range raw.Locales {
			locales[canonicalizeKey(key)] = fromRaw(value)
		}
		registryVal = &registry{
			defaultLocale: fromRaw(raw.Default),
			locales:       locales,
		}
	})
	return registryVal
}

func loadCodeMap() map[int]string {
	codeMapOnce.Do(func() {
		var raw map[string]string
		if err := json.Unmarshal(codeToLocaleData, &raw); err != nil {
			panic(errors.Wrap(err, "invalid code-to-locale data"))
		}
		codeMapVal = make(map[int]string, len(raw))
		for key, value := range raw {
			if num, err := strconv.Atoi(key); err == nil {
				codeMapVal[num] = value
			}
		}
	})
	return codeMapVal
}

func fromRaw(raw localeRaw) Locale {
	return Locale{
		Group:      orDefault(raw.Group, " "),
		Decimal:    orDefault(raw.Decimal, "."),
		Positive:   orDefault(raw.Positive, "+"),
		Negative:   orDefault(raw.Negative, "-"),
		Percent:    orDefault(raw.Percent, "%"),
		Exponent:   orDefault(raw.Exponent, "E"),
		NaN:        orDefault(raw.NaN, "NaN"),
		Infinity:   orDefault(raw.Infinity, "∞"),
		Ampm:       ensurePair(raw.Ampm, "AM", "PM"),
		Mmmm6:      raw.Mmmm6,
		Mmm6:       raw.Mmm6,
		Mmmm:       raw.Mmmm,
		Mmm:        raw.Mmm,
		Dddd:       raw.Dddd,
		Ddd:        raw.Ddd,
		BoolValues: ensurePair(raw.Bool, "TRUE", "FALSE"),
		PreferMDY:  raw.PreferMDY,
	}
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func ensurePair(values []string, fallback0, fallback1 string) []string {
	switch len(values) {
	case 0:
		return []string{fallback0, fallback1}
	case 1:
		return []string{values[0], fallback1}
	default:
		return values
	}
}

// DefaultLocale returns the registry's root locale, used when no override
// tag is given or no override resolves.
func DefaultLocale() *Locale {
	r := loadRegistry()
	return &r.defaultLocale
}

// GetLocale resolves tag (a BCP-47-ish tag or a Windows numeric locale
// code) to a registered locale, or nil if it resolves to nothing known.
func GetLocale(tag string) *Locale {
	r := loadRegistry()
	if strings.TrimSpace(tag) == "" {
		return nil
	}
	if code, ok := resolveCode(tag); ok {
		if loc, ok := r.locales[code]; ok {
			return &loc
		}
		if id, ok := parseLocaleTag(code); ok {
			if loc, ok := r.locales[id.language]; ok {
				return &loc
			}
		}
	}
	if id, ok := parseLocaleTag(tag); ok {
		if loc, ok := r.locales[id.lang]; ok {
			return &loc
		}
		if loc, ok := r.locales[id.language]; ok {
			return &loc
		}
	}
	return nil
}

// GetLocaleOrDefault resolves tag like GetLocale, falling back to
// DefaultLocale when nothing resolves.
func GetLocaleOrDefault(tag string) *Locale {
	if loc := GetLocale(tag); loc != nil {
		return loc
	}
	return DefaultLocale()
}

// ResolveCode maps a hexadecimal Windows locale code (with an optional
// leading currency/dash marker) to a registered locale key.
func ResolveCode(tag string) (string, bool) {
	return resolveCode(tag)
}

func resolveCode(tag string) (string, bool) {
	trimmed := strings.TrimSpace(tag)
	if trimmed == "" {
		return "", false
	}
	cleaned := strings.TrimLeft(trimmed, "$-")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", false
	}
	if !isAllHex(cleaned) {
		return "", false
	}
	value, err := strconv.ParseUint(cleaned, 16, 32)
	if err != nil {
		return "", false
	}
	code := int(value & 0xffff)
	if loc, ok := loadCodeMap()[code]; ok {
		return loc, true
	}
	return "", false
}

func isAllHex(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

type localeID struct {
	lang     string
	language string
}

// parseLocaleTag splits a locale tag into its canonical "lang_REGION" key
// and its bare language key, using golang.org/x/text/language to validate
// and normalize the language subtag rather than hand-rolled case folding.
func parseLocaleTag(input string) (localeID, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return localeID{}, false
	}
	head := trimmed
	if idx := strings.IndexByte(head, '@'); idx >= 0 {
		head = head[:idx]
	}
	if idx := strings.IndexByte(head, '.'); idx >= 0 {
		head = head[:idx]
	}

	parts := strings.FieldsFunc(head, func(r rune) bool { return r == '-' || r == '_' })
	parts = nonEmpty(parts)
	if len(parts) == 0 {
		return localeID{}, false
	}

	tag, err := language.Parse(strings.Join(parts, "-"))
	var langCode string
	if err == nil {
		base, _ := tag.Base()
		langCode = strings.ToLower(base.String())
	} else {
		langCode = strings.ToLower(parts[0])
		if !isAlnum(langCode) {
			return localeID{}, false
		}
	}

	var region string
	if len(parts) >= 2 {
		region = strings.ToUpper(parts[1])
	}
	if len(parts) > 2 {
		return localeID{}, false
	}

	lang := langCode
	if region != "" {
		lang = langCode + "_" + region
	}
	return localeID{lang: lang, language: langCode}, true
}

func nonEmpty(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func isAlnum(s string) bool {
	for _, c := range s {
		if !(c >= 'a' && c <= 'z' || c >= '0' && c <= '9') {
			return false
		}
	}
	return true
}

func canonicalizeKey(key string) string {
	if id, ok := parseLocaleTag(key); ok {
		return id.lang
	}
	return strings.ToLower(key)
}

// ResolveLocale resolves tag to a registry key via ResolveCode first, then
// falls back to plain tag parsing. Used to normalize a "[$-xxx]" locale
// override before a lookup.
func ResolveLocale(tag string) (string, bool) {
	if code, ok := resolveCode(tag); ok {
		return code, true
	}
	if id, ok := parseLocaleTag(tag); ok {
		return id.lang, true
	}
	return "", false
}
