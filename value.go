package parameterx

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"
)

// render converts a stored value to text using the value's own string
// conversion. The boolean is false when the value has none.
//
// Checked in order: string, fmt.Stringer, error, encoding.TextMarshaler, then
// the underlying kind for booleans, integers and floats. Floats use the
// shortest decimal form without an exponent.
func render(v any) (string, bool) {
	if v == nil {
		return "", false
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		// Methods on a nil receiver are not safe to call.
		return "", false
	}

	switch val := v.(type) {
	case string:
		return val, true
	case fmt.Stringer:
		return val.String(), true
	case error:
		return val.Error(), true
	case encoding.TextMarshaler:
		b, err := val.MarshalText()
		if err != nil {
			return "", false
		}
		return string(b), true
	}

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}

// typeName returns the Go type name of a stored value.
func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

// typeNameOf returns the Go type name of T, including interface types.
func typeNameOf[T any]() string {
	return reflect.TypeFor[T]().String()
}
