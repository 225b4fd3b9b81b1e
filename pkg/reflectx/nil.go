package reflectx

import "reflect"

// IsNil reports whether v is nil, including typed nils: a nil pointer, map,
// slice, func, chan or interface stored in an any.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	val := reflect.ValueOf(v)
	switch val.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return val.IsNil()
	}
	return false
}

// IsPointer reports whether the dynamic type of v is a pointer.
func IsPointer(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Ptr
}
