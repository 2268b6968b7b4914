package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// indirect follows pointers and interfaces down to a concrete value.
// A nil pointer yields nil.
func indirect(v any) any {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

// isEmpty reports nil and empty strings, the values the required constraint rejects.
func isEmpty(v any) bool {
	v = indirect(v)
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.String && rv.Len() == 0
}

// isFalsy reports nil, false, zero numbers, NaN, empty strings and nil
// references. Non-nil empty slices and maps are not falsy.
func isFalsy(v any) bool {
	if v == nil {
		return true
	}
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return err != nil || f == 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == 0 || math.IsNaN(f)
	case reflect.String:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// toFloat converts numbers and numeric strings to float64.
func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.String:
		s := strings.TrimSpace(rv.String())
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		return f, err == nil
	}
	return 0, false
}

// compare orders value against limit. Numbers (and numeric strings) compare
// numerically, times chronologically and other strings lexicographically.
// ok is false when the two cannot be ordered.
func compare(value, limit any) (int, bool) {
	value, limit = indirect(value), indirect(limit)
	if value == nil || limit == nil {
		return 0, false
	}

	if vt, ok := value.(time.Time); ok {
		lt, ok := limit.(time.Time)
		if !ok {
			return 0, false
		}
		return vt.Compare(lt), true
	}

	if a, ok := toFloat(value); ok {
		if b, ok := toFloat(limit); ok {
			switch {
			case a > b:
				return 1, true
			case a < b:
				return -1, true
			}
			return 0, true
		}
	}

	va, vb := reflect.ValueOf(value), reflect.ValueOf(limit)
	if va.Kind() == reflect.String && vb.Kind() == reflect.String {
		return strings.Compare(va.String(), vb.String()), true
	}
	return 0, false
}

// length returns the rune count of strings and the element count of
// slices, arrays and maps.
func length(v any) (int, bool) {
	v = indirect(v)
	// Numbers decoded with json.Decoder.UseNumber are strings underneath.
	if _, ok := v.(json.Number); ok {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(rv.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len(), true
	}
	return 0, false
}

// pair extracts the bounds of a lengths parameter. Only two-element slices or
// arrays of numbers qualify.
func pair(param any) (lo, hi float64, ok bool) {
	rv := reflect.ValueOf(param)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return 0, 0, false
	}
	if rv.Len() != 2 {
		return 0, 0, false
	}
	lo, okLo := toFloat(indirect(rv.Index(0).Interface()))
	hi, okHi := toFloat(indirect(rv.Index(1).Interface()))
	return lo, hi, okLo && okHi
}

func stringify(v any) string {
	switch v := indirect(v).(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		return v.Format(time.RFC3339)
	default:
		if rv := reflect.ValueOf(v); rv.Kind() == reflect.String {
			return rv.String()
		}
		return fmt.Sprint(v)
	}
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
