package locale

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Locale identifies one input language, optionally qualified by region.
type Locale struct {
	// Language is the two-letter ISO 639 language code.
	Language string

	// Country is the two-letter ISO 3166 region code, or empty.
	Country string
}

// Default is the synthetic locale reported when none are configured.
var Default = Locale{Language: "en"}

// Parse builds a Locale from a persisted identifier such as "en" or
// "en_US". Malformed input degrades to a language-only locale; it is
// never an error.
func Parse(s string) Locale {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Locale{Language: s}
	}
	loc := Locale{Language: strings.ToLower(s[:2])}
	if len(s) >= 5 && (s[2] == '_' || s[2] == '-') {
		loc.Country = strings.ToUpper(s[3:5])
	}
	return loc
}

// String returns the persisted form of the locale ("en" or "en_US").
func (l Locale) String() string {
	if l.Country == "" {
		return l.Language
	}
	return l.Language + "_" + l.Country
}

// DisplayName returns a title-cased label for indicator UI.
func (l Locale) DisplayName() string {
	return ToTitleCase(l.Language)
}

// ToTitleCase upper-cases the first rune of s and leaves the remainder
// untouched. The eszett has no simple uppercase mapping in Unicode, so
// unicode.ToUpper leaves it alone; it is cased to the capital sharp s
// here explicitly.
func ToTitleCase(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	upper := unicode.ToUpper(r)
	if r == 'ß' {
		upper = 'ẞ'
	}
	if upper == r {
		return s
	}
	return string(upper) + s[size:]
}
