package reflectx

import (
	"reflect"
	"strings"
)

// TypeName returns the bare name of the dynamic type of v: no package path,
// no pointer and no type arguments. It returns "<nil>" for nil.
func TypeName(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return "<nil>"
	}

	name := t.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}
