package schemafile

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

var (
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
)

func stringTransform(fn func(string) string) validator.TransformFunc {
	return func(v any) any {
		if s, ok := v.(string); ok {
			return fn(s)
		}
		return v
	}
}

// toNumber parses numeric strings so max and min compare them as numbers
// even when they carry surrounding whitespace.
func toNumber(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return v
	}
	return f
}

func squish(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

func keepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

func stripHTML(s string) string {
	return htmlTagRegex.ReplaceAllString(s, "")
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// defaultTransforms are the names usable as `before:` without WithTransform.
func defaultTransforms() map[string]validator.TransformFunc {
	return map[string]validator.TransformFunc{
		"trim":       stringTransform(strings.TrimSpace),
		"lower":      stringTransform(strings.ToLower),
		"upper":      stringTransform(strings.ToUpper),
		"squish":     stringTransform(squish),
		"digits":     stringTransform(keepDigits),
		"strip-html": stringTransform(stripHTML),
		"email":      stringTransform(normalizeEmail),
		"number":     toNumber,
	}
}
