package mpris

import (
	"time"

	"github.com/godbus/dbus/v5"

	idbus "github.com/b0bbywan/go-mpris-remote/internal/dbus"
	"github.com/b0bbywan/go-mpris-remote/logger"
)

// NoTimeout disables blocking deadlines entirely; calls wait until the bus
// answers.
const NoTimeout = idbus.NoTimeout

// Session owns a private connection to the session bus, scoped to one media
// player. It resolves the player's well-known name to its unique owner at
// open time and registers every match rule the client needs, so no signal
// traffic is missed between opening and the first Signals pull. All match
// registration happens here; a Session is never reconfigured afterwards.
type Session struct {
	conn       *dbus.Conn
	busName    string
	uniqueName string
	timeout    time.Duration
	rules      []string
}

// Open connects to the session bus and binds the connection to
// org.mpris.MediaPlayer2.<playerName>. A player name with no current bus
// owner fails with ServiceUnknownError. timeout bounds every call made
// through the Session; NoTimeout disables the bound.
func Open(playerName string, timeout time.Duration) (*Session, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}

	s := &Session{
		conn:    conn,
		busName: MPRIS_PREFIX + "." + playerName,
		timeout: timeout,
	}

	// Services may emit signals under their unique name rather than the
	// well-known one, so resolve the owner now for sender filtering.
	owner, err := idbus.GetNameOwner(conn, timeout, s.busName)
	if err != nil {
		conn.Close()
		if idbus.IsServiceUnknown(err) {
			return nil, &ServiceUnknownError{BusName: s.busName}
		}
		return nil, err
	}
	s.uniqueName = owner

	if err := s.addMatchRules(); err != nil {
		conn.Close()
		return nil, err
	}

	logger.Debug("[mpris] session open for %s (owner %s)", s.busName, owner)
	return s, nil
}

// addMatchRules subscribes to the property-change notifications and the
// three MPRIS interface namespaces, scoped to this player.
func (s *Session) addMatchRules() error {
	rules := []string{
		"type='signal',sender='" + s.busName + "',path='" + MPRIS_PATH + "',interface='" + DBUS_PROP_IFACE + "',member='PropertiesChanged'",
		"type='signal',sender='" + s.busName + "',interface='" + MPRIS_INTERFACE + "'",
		"type='signal',sender='" + s.busName + "',interface='" + MPRIS_PLAYER_IFACE + "'",
		"type='signal',sender='" + s.busName + "',interface='" + MPRIS_TRACKLIST_IFACE + "'",
	}
	for _, rule := range rules {
		if err := idbus.AddMatchRule(s.conn, s.timeout, rule); err != nil {
			return err
		}
		s.rules = append(s.rules, rule)
	}
	return nil
}

// BusName returns the player's well-known bus name.
func (s *Session) BusName() string { return s.busName }

// UniqueName returns the unique bus address resolved at open time.
func (s *Session) UniqueName() string { return s.uniqueName }

func (s *Session) obj(path string) dbus.BusObject {
	return idbus.GetObject(s.conn, s.busName, path)
}

// translateCallErr maps a transport-level "service unknown" onto the same
// condition reported at open time, so callers can detect a disappearing
// player uniformly.
func (s *Session) translateCallErr(err error) error {
	if err != nil && idbus.IsServiceUnknown(err) {
		return &ServiceUnknownError{BusName: s.busName}
	}
	return err
}

// CallNoReply sends a method call and blocks for the acknowledgement.
// method is the fully qualified interface.Member name.
func (s *Session) CallNoReply(path, method string, args ...interface{}) error {
	return s.translateCallErr(idbus.CallNoReply(s.obj(path), s.timeout, method, args...))
}

// GetProperty reads a property.
func (s *Session) GetProperty(path, iface, member string) (dbus.Variant, error) {
	v, err := idbus.GetProperty(s.obj(path), s.timeout, iface, member)
	return v, s.translateCallErr(err)
}

// GetAllProperties reads every property of one interface in a single bus
// round trip.
func (s *Session) GetAllProperties(path, iface string) (map[string]dbus.Variant, error) {
	props, err := idbus.GetAllProperties(s.obj(path), s.timeout, iface)
	return props, s.translateCallErr(err)
}

// optionalProperty maps a "property not found" answer onto an absent result
// rather than an error.
func optionalProperty(v dbus.Variant, err error) (dbus.Variant, bool, error) {
	if err != nil {
		if idbus.IsPropertyNotFound(err) {
			return dbus.Variant{}, false, nil
		}
		return dbus.Variant{}, false, err
	}
	return v, true, nil
}

// GetOptionalProperty reads a property that players are not required to
// implement. A "property not found" answer reads as absent rather than an
// error.
func (s *Session) GetOptionalProperty(path, iface, member string) (dbus.Variant, bool, error) {
	v, present, err := optionalProperty(idbus.GetProperty(s.obj(path), s.timeout, iface, member))
	return v, present, s.translateCallErr(err)
}

// translateSetErr maps a "property not found" answer on a write onto
// AbsentOptionalPropertyError, so callers can tell an unsupported optional
// feature from a genuinely failed call.
func (s *Session) translateSetErr(path, member string, err error) error {
	if err != nil && idbus.IsPropertyNotFound(err) {
		return &AbsentOptionalPropertyError{Path: path, Member: member}
	}
	return s.translateCallErr(err)
}

// SetProperty writes a property.
func (s *Session) SetProperty(path, iface, member string, value interface{}) error {
	return s.translateSetErr(path, member,
		idbus.SetProperty(s.obj(path), s.timeout, iface, member, value))
}

// matchesSender reports whether a signal sender is this session's player,
// under either its well-known or its resolved unique identity.
func (s *Session) matchesSender(sender string) bool {
	return sender == s.busName || (s.uniqueName != "" && sender == s.uniqueName)
}

// Close drops the session's match rules and tears down the private bus
// connection. Rule removal is best effort; a dead connection makes it moot.
func (s *Session) Close() error {
	for _, rule := range s.rules {
		if err := idbus.RemoveMatchRule(s.conn, s.timeout, rule); err != nil {
			logger.Debug("[mpris] failed to drop match rule: %v", err)
		}
	}
	return s.conn.Close()
}
