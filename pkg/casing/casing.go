package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Camel joins words into lower camel case.
func Camel(words ...string) string {
	parts := split(words)
	if len(parts) == 0 {
		return ""
	}

	// cases.Caser keeps state between calls and must not be shared.
	title := cases.Title(language.Und)
	lower := cases.Lower(language.Und)

	var b strings.Builder
	for i, p := range parts {
		if i == 0 {
			b.WriteString(lower.String(p))
			continue
		}
		b.WriteString(title.String(p))
	}
	return b.String()
}

// Pascal joins words into upper camel case.
func Pascal(words ...string) string {
	parts := split(words)
	title := cases.Title(language.Und)

	var b strings.Builder
	for _, p := range parts {
		b.WriteString(title.String(p))
	}
	return b.String()
}

// Words splits s on separators and case boundaries.
// An acronym followed by a capitalized word is split before the last capital,
// so "HTTPPort" yields "HTTP" and "Port".
func Words(s string) []string {
	runes := []rune(s)
	var words []string
	start := -1

	flush := func(end int) {
		if start >= 0 && end > start {
			words = append(words, string(runes[start:end]))
		}
		start = -1
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}

		prev := runes[i-1]
		switch {
		case unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)):
			flush(i)
			start = i
		case unicode.IsUpper(r) && unicode.IsUpper(prev) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return words
}

func split(words []string) []string {
	parts := make([]string, 0, len(words)*2)
	for _, w := range words {
		parts = append(parts, Words(w)...)
	}
	return parts
}
