// Package reflects holds the small reflection helpers the sequence operations build on.
package reflects

import "reflect"

// IsNil reports whether the dynamic value of v is nil.
// It covers untyped nil along with nil pointers, interfaces, maps, slices, channels and functions.
// Values of any other kind are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
