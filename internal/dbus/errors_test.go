package dbus

import (
	"errors"
	"fmt"
	"testing"

	"github.com/godbus/dbus/v5"
)

func busError(name string) error {
	return dbus.Error{Name: name, Body: []interface{}{"details"}}
}

func TestIsError(t *testing.T) {
	err := busError(ERR_SERVICE_UNKNOWN)

	if !IsError(err, ERR_SERVICE_UNKNOWN) {
		t.Error("IsError should match on the structured error name")
	}
	if IsError(err, ERR_INVALID_ARGS) {
		t.Error("IsError should not match a different name")
	}
	if IsError(errors.New("ServiceUnknown mentioned in text"), ERR_SERVICE_UNKNOWN) {
		t.Error("plain errors should never classify, whatever their message says")
	}
	if IsError(nil, ERR_SERVICE_UNKNOWN) {
		t.Error("nil should never classify")
	}
}

func TestIsErrorWrapped(t *testing.T) {
	err := fmt.Errorf("calling Get: %w", busError(ERR_UNKNOWN_PROPERTY))
	if !IsError(err, ERR_UNKNOWN_PROPERTY) {
		t.Error("IsError should see through error wrapping")
	}
}

func TestIsServiceUnknown(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"service unknown", busError(ERR_SERVICE_UNKNOWN), true},
		{"name has no owner", busError(ERR_NAME_HAS_NO_OWNER), true},
		{"unknown property", busError(ERR_UNKNOWN_PROPERTY), false},
		{"timeout", &TimeoutError{Method: PROP_GET}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsServiceUnknown(tt.err); got != tt.expected {
				t.Errorf("IsServiceUnknown = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestIsPropertyNotFound(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"unknown property", busError(ERR_UNKNOWN_PROPERTY), true},
		{"invalid args", busError(ERR_INVALID_ARGS), true},
		{"service unknown", busError(ERR_SERVICE_UNKNOWN), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPropertyNotFound(tt.err); got != tt.expected {
				t.Errorf("IsPropertyNotFound = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestTimeoutErrorMessage(t *testing.T) {
	err := &TimeoutError{Method: PROP_GET}
	if err.Error() == "" {
		t.Error("timeout error should carry a message")
	}
	var timeout *TimeoutError
	if !errors.As(fmt.Errorf("wrapped: %w", err), &timeout) {
		t.Error("TimeoutError should survive wrapping")
	}
}
