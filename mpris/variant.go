package mpris

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// castValue coerces a variant to T. It succeeds only if the variant's
// runtime type matches exactly; on failure the error carries the variant's
// debug rendering and the target type name.
func castValue[T any](v dbus.Variant) (T, error) {
	val, ok := v.Value().(T)
	if !ok {
		var zero T
		return zero, &TypeCastError{Value: v.String(), Target: fmt.Sprintf("%T", zero)}
	}
	return val, nil
}

// castString coerces a variant to a string. Plain strings and object paths
// are both accepted, since either can carry a textual enum tag or identifier.
func castString(v dbus.Variant) (string, error) {
	switch val := v.Value().(type) {
	case string:
		return val, nil
	case dbus.ObjectPath:
		return string(val), nil
	}
	return "", &TypeCastError{Value: v.String(), Target: "string"}
}
