package dbus

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

// TimeoutError is returned when a D-Bus call exceeds its deadline.
type TimeoutError struct {
	Method string
}

func (e *TimeoutError) Error() string { return fmt.Sprintf("dbus: call %s timed out", e.Method) }

// IsError reports whether err is a D-Bus error with the given name.
// Classification relies on the structured dbus.Error.Name, never on the
// human-readable message.
func IsError(err error, name string) bool {
	var derr dbus.Error
	if errors.As(err, &derr) {
		return derr.Name == name
	}
	return false
}

// IsServiceUnknown reports whether err means the destination bus name has
// no current owner.
func IsServiceUnknown(err error) bool {
	return IsError(err, ERR_SERVICE_UNKNOWN) || IsError(err, ERR_NAME_HAS_NO_OWNER)
}

// IsPropertyNotFound reports whether err means the addressed property does
// not exist on the destination. Some players answer UnknownProperty, others
// InvalidArgs; both carry the same meaning for a property access.
func IsPropertyNotFound(err error) bool {
	return IsError(err, ERR_UNKNOWN_PROPERTY) || IsError(err, ERR_INVALID_ARGS)
}
