// Package value provides checks on values of any type.
package value

import (
	"reflect"
	"strings"
	"unicode"
)

// IsBlank checks whether a string is empty or only contains white spaces (as defined by Unicode).
func IsBlank(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) }) < 0
}

// IsEmpty checks whether a value is empty i.e. "", nil, 0, [], {}, false, etc.
// For Strings, a string is considered empty if it is "" or if it only contains whitespaces
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return IsBlank(v)
	case *string:
		return v == nil || IsBlank(*v)
	case bool:
		return !v
	}
	objValue := reflect.ValueOf(value)
	switch objValue.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice:
		return objValue.Len() == 0
	case reflect.Ptr:
		if objValue.IsNil() {
			return true
		}
		return IsEmpty(objValue.Elem().Interface())
	default:
		return objValue.IsZero()
	}
}
