package reflectx

import "reflect"

// Comparable reports whether v can be compared with == without panicking,
// which makes it usable as a map key. Nil is comparable.
func Comparable(v any) bool {
	return v == nil || reflect.ValueOf(v).Comparable()
}

// SameIdentity compares a and b by identity. Pointers match only when they
// point to the same value. Values whose dynamic type is not comparable, funcs
// for example, never match, and neither does nil.
func SameIdentity(a, b any) bool {
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() {
		return false
	}
	return a == b
}
