package dbus

import (
	"time"

	"github.com/godbus/dbus/v5"
)

// NoTimeout disables the deadline on a call entirely: any negative
// timeout makes the call block until the bus answers.
const NoTimeout = -1 * time.Millisecond

// Call executes a D-Bus method call and waits for the reply for at most
// timeout. A negative timeout waits forever.
func Call(obj dbus.BusObject, timeout time.Duration, method string, args ...interface{}) (*dbus.Call, error) {
	if timeout < 0 {
		call := obj.Call(method, 0, args...)
		if call.Err != nil {
			return nil, call.Err
		}
		return call, nil
	}

	ch := make(chan *dbus.Call, 1)
	obj.Go(method, 0, ch, args...)
	select {
	case call := <-ch:
		if call.Err != nil {
			return nil, call.Err
		}
		return call, nil
	case <-time.After(timeout):
		return nil, &TimeoutError{Method: method}
	}
}

// CallNoReply calls a method, discarding any reply payload but still
// waiting for the acknowledgement.
func CallNoReply(obj dbus.BusObject, timeout time.Duration, method string, args ...interface{}) error {
	_, err := Call(obj, timeout, method, args...)
	return err
}

// GetProperty retrieves a single property from a D-Bus object.
func GetProperty(obj dbus.BusObject, timeout time.Duration, iface, prop string) (dbus.Variant, error) {
	var v dbus.Variant
	call, err := Call(obj, timeout, PROP_GET, iface, prop)
	if err != nil {
		return dbus.Variant{}, err
	}
	if err := call.Store(&v); err != nil {
		return dbus.Variant{}, err
	}
	return v, nil
}

// SetProperty sets a single property on a D-Bus object.
func SetProperty(obj dbus.BusObject, timeout time.Duration, iface, prop string, value interface{}) error {
	return CallNoReply(obj, timeout, PROP_SET, iface, prop, dbus.MakeVariant(value))
}

// GetAllProperties retrieves all properties of a D-Bus interface in a single call.
func GetAllProperties(obj dbus.BusObject, timeout time.Duration, iface string) (map[string]dbus.Variant, error) {
	var props map[string]dbus.Variant
	call, err := Call(obj, timeout, PROP_GET_ALL, iface)
	if err != nil {
		return nil, err
	}
	return props, call.Store(&props)
}

// GetObject returns a D-Bus object for the given service and object path.
func GetObject(conn *dbus.Conn, service, path string) dbus.BusObject {
	return conn.Object(service, dbus.ObjectPath(path))
}

// AddMatchRule subscribes to a D-Bus signal via a match rule.
func AddMatchRule(conn *dbus.Conn, timeout time.Duration, rule string) error {
	return CallNoReply(conn.BusObject(), timeout, BUS_ADD_MATCH, rule)
}

// RemoveMatchRule unsubscribes from a D-Bus signal match rule.
func RemoveMatchRule(conn *dbus.Conn, timeout time.Duration, rule string) error {
	return CallNoReply(conn.BusObject(), timeout, BUS_REMOVE_MATCH, rule)
}

// GetNameOwner resolves a well-known bus name to the unique name of its
// current owner.
func GetNameOwner(conn *dbus.Conn, timeout time.Duration, name string) (string, error) {
	var owner string
	call, err := Call(conn.BusObject(), timeout, BUS_GET_NAME_OWNER, name)
	if err != nil {
		return "", err
	}
	if err := call.Store(&owner); err != nil {
		return "", err
	}
	return owner, nil
}

// ListNames retrieves the list of all bus names currently active on the bus.
func ListNames(conn *dbus.Conn, timeout time.Duration) ([]string, error) {
	var names []string
	call, err := Call(conn.BusObject(), timeout, BUS_LIST_NAMES)
	if err != nil {
		return nil, err
	}
	if err := call.Store(&names); err != nil {
		return nil, err
	}
	return names, nil
}
