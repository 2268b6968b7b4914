package validator

import (
	"reflect"
	"strings"
	"sync"
)

type fieldKey struct {
	typ  reflect.Type
	name string
}

// fieldIndex caches resolved struct field paths; nil means "no such field".
var fieldIndex sync.Map

// fieldValue reads field from obj. Pointers to structs, structs and maps with
// string keys are supported. A missing field yields nil.
func fieldValue(obj any, field string) any {
	rv := reflect.ValueOf(obj)
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil
		}
		v := rv.MapIndex(reflect.ValueOf(field).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return nil
		}
		return v.Interface()

	case reflect.Struct:
		idx := structFieldIndex(rv.Type(), field)
		if idx == nil {
			return nil
		}
		f, err := rv.FieldByIndexErr(idx)
		if err != nil || !f.CanInterface() {
			// Nil embedded pointer on the path.
			return nil
		}
		return f.Interface()
	}
	return nil
}

// structFieldIndex resolves field on t by exact Go name, then by json tag,
// then case-insensitively. Only exported fields qualify.
func structFieldIndex(t reflect.Type, field string) []int {
	key := fieldKey{typ: t, name: field}
	if cached, ok := fieldIndex.Load(key); ok {
		return cached.([]int)
	}

	var found []int
	visible := reflect.VisibleFields(t)

	if sf, ok := t.FieldByName(field); ok && sf.IsExported() {
		found = sf.Index
	}
	if found == nil {
		for _, sf := range visible {
			if !sf.IsExported() {
				continue
			}
			name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
			if name == field {
				found = sf.Index
				break
			}
		}
	}
	if found == nil {
		for _, sf := range visible {
			if sf.IsExported() && !sf.Anonymous && strings.EqualFold(sf.Name, field) {
				found = sf.Index
				break
			}
		}
	}

	fieldIndex.Store(key, found)
	return found
}

// identity returns a comparable handle for obj when it is a non-nil pointer
// or map; values passed by copy have no identity.
func identity(obj any) (reflect.Type, uintptr, bool) {
	rv := reflect.ValueOf(obj)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map:
		if rv.IsNil() {
			return nil, 0, false
		}
		return rv.Type(), rv.Pointer(), true
	}
	return nil, 0, false
}

// snapshot copies v one level deep so later in-place writes to slices, maps
// or the pointed-to struct are seen as changes.
func snapshot(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return nil
		}
		return snapshot(rv.Elem().Interface())
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		reflect.Copy(cp, rv)
		return cp.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}
		cp := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			cp.SetMapIndex(iter.Key(), iter.Value())
		}
		return cp.Interface()
	}
	return v
}
