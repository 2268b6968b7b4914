package predicate

import (
	"regexp"
	"strings"
)

var (
	intRegex         = regexp.MustCompile(`^[-+]?(0|[1-9][0-9]*)$`)
	floatRegex       = regexp.MustCompile(`^[-+]?([0-9]+)?(\.[0-9]*)?([eE][-+]?[0-9]+)?$`)
	decimalRegex     = regexp.MustCompile(`^[-+]?([0-9]+)?(\.[0-9]+)?$`)
	numericRegex     = regexp.MustCompile(`^[-+]?([0-9]*\.)?[0-9]+$`)
	hexadecimalRegex = regexp.MustCompile(`(?i)^(0x|0h)?[0-9a-f]+$`)
	hexColorRegex    = regexp.MustCompile(`(?i)^#?([0-9a-f]{3}|[0-9a-f]{4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	currencyRegex    = regexp.MustCompile(`^[-+]?\$?([0-9]{1,3}(,[0-9]{3})+|[0-9]+)(\.[0-9]{2})?$`)
	digitsRegex      = regexp.MustCompile(`^[0-9]+$`)
)

// IsInt reports whether value is a base 10 integer without leading zeros.
func IsInt(value string) bool {
	return intRegex.MatchString(value)
}

// IsFloat reports whether value is a decimal floating point number,
// optionally with an exponent.
func IsFloat(value string) bool {
	switch value {
	case "", ".", "-", "+", "-.", "+.":
		return false
	}
	if strings.HasPrefix(strings.TrimLeft(value, "+-"), "e") || strings.HasPrefix(strings.TrimLeft(value, "+-"), "E") {
		return false
	}
	return floatRegex.MatchString(value)
}

// IsDecimal reports whether value is a plain decimal number.
func IsDecimal(value string) bool {
	switch value {
	case "", ".", "-", "+":
		return false
	}
	return decimalRegex.MatchString(value)
}

// IsNumeric reports whether value is a signed number with an optional fraction.
func IsNumeric(value string) bool {
	return numericRegex.MatchString(value)
}

// IsHexadecimal reports whether value is a hexadecimal number, optionally prefixed by 0x or 0h.
func IsHexadecimal(value string) bool {
	return hexadecimalRegex.MatchString(value)
}

// IsHexColor reports whether value is a 3, 4, 6 or 8 digit hex color with an optional '#'.
func IsHexColor(value string) bool {
	return hexColorRegex.MatchString(value)
}

// IsBoolean reports whether value is one of "true", "false", "1" or "0".
func IsBoolean(value string) bool {
	switch value {
	case "true", "false", "1", "0":
		return true
	}
	return false
}

// IsCurrency reports whether value is a dollar style amount such as "$1,234.56" or "-10".
func IsCurrency(value string) bool {
	return currencyRegex.MatchString(value)
}

// IsCreditCard reports whether value is a 13 to 19 digit card number passing the Luhn checksum.
// Spaces and dashes between digit groups are ignored.
func IsCreditCard(value string) bool {
	cleaned := strings.ReplaceAll(strings.ReplaceAll(value, " ", ""), "-", "")
	if !digitsRegex.MatchString(cleaned) {
		return false
	}
	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}

	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}
	return sum%10 == 0
}
