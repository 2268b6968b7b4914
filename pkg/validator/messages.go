package validator

import (
	"fmt"
	"maps"
)

// MessageFunc renders the message for a violated constraint.
type MessageFunc func(field string, param any) string

var defaultTemplates = map[Kind]MessageFunc{
	KindLengths: func(field string, param any) string {
		lo, hi, _ := pair(param)
		return fmt.Sprintf("%s.length must be in [%s,%s]", field, formatNumber(lo), formatNumber(hi))
	},
	KindMax: func(field string, param any) string {
		return fmt.Sprintf("%s max value is %v", field, param)
	},
	KindMin: func(field string, param any) string {
		return fmt.Sprintf("%s min value is %v", field, param)
	},
	KindPattern: func(field string, param any) string {
		return fmt.Sprintf("%s must match %v", field, param)
	},
	KindRequired: func(field string, _ any) string {
		return fmt.Sprintf("%s is required", field)
	},
	KindType: func(field string, param any) string {
		return fmt.Sprintf("%s is typeof %v", field, param)
	},
}

// DefaultTemplates returns a copy of the built-in message table.
func DefaultTemplates() map[Kind]MessageFunc {
	return maps.Clone(defaultTemplates)
}

func fallbackMessage(field string) string {
	return field + " has error"
}
