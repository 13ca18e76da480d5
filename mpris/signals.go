package mpris

import (
	"time"

	"github.com/godbus/dbus/v5"

	"github.com/b0bbywan/go-mpris-remote/logger"
)

// Signal is one decoded MPRIS event. The set is closed: traffic that does
// not match a known (path, interface, member) triple is discarded by the
// stream, never surfaced as an "unknown" variant.
type Signal interface {
	mprisSignal()
}

// Seeked reports that the playback position changed in a way that is not
// linear playback. Position is in microseconds.
type Seeked struct {
	Position int64
}

// PropertiesChanged carries a decoded property-change notification.
// Changed holds only the entries that decoded cleanly; Invalidated lists
// property names whose cached values must be discarded.
type PropertiesChanged struct {
	Interface   string
	Changed     []ChangedProperty
	Invalidated []string
}

func (Seeked) mprisSignal()            {}
func (PropertiesChanged) mprisSignal() {}

// Signals is a blocking, pull-based sequence of MPRIS events for one
// session. Pulls are independent: a pull that times out yields nothing for
// that round, and the next pull starts fresh. Messages not consumed before
// the next pull are lost; bus delivery is at-most-once per reader.
type Signals struct {
	sess    *Session
	ch      chan *dbus.Signal
	timeout time.Duration
}

// Signals derives an event stream from the session. pullTimeout bounds each
// individual Next call; NoTimeout makes pulls block until a message arrives.
// The underlying connection is shared with the session, read-only.
func (s *Session) Signals(pullTimeout time.Duration) *Signals {
	ch := make(chan *dbus.Signal, 32)
	s.conn.Signal(ch)
	return &Signals{sess: s, ch: ch, timeout: pullTimeout}
}

// Next blocks for up to the stream's pull timeout and returns the next
// decoded event. ok is false when nothing decodable arrived this round;
// the stream is not exhausted, callers simply pull again.
func (s *Signals) Next() (Signal, bool) {
	var deadline <-chan time.Time
	if s.timeout >= 0 {
		timer := time.NewTimer(s.timeout)
		defer timer.Stop()
		deadline = timer.C
	}

	for {
		select {
		case sig, open := <-s.ch:
			if !open {
				return nil, false
			}
			if decoded, ok := s.decode(sig); ok {
				return decoded, true
			}
			// Discarded message; keep draining until the deadline.
		case <-deadline:
			return nil, false
		}
	}
}

// decode filters and decodes one inbound message. The transport only
// delivers messages of the signal kind on this channel; everything else is
// filtered here: cross-talk from other senders on a shared bus, foreign
// object paths, and (interface, member) pairs the client does not model.
func (s *Signals) decode(sig *dbus.Signal) (Signal, bool) {
	if sig == nil {
		return nil, false
	}
	if !s.sess.matchesSender(sig.Sender) {
		return nil, false
	}
	if sig.Path != dbus.ObjectPath(MPRIS_PATH) {
		return nil, false
	}

	switch sig.Name {
	case MPRIS_SEEKED_SIGNAL:
		if len(sig.Body) < 1 {
			return nil, false
		}
		pos, ok := sig.Body[0].(int64)
		if !ok {
			return nil, false
		}
		return Seeked{Position: pos}, true

	case DBUS_PROP_CHANGED_SIGNAL:
		return decodePropertiesChanged(sig)
	}

	return nil, false
}

// decodePropertiesChanged reads the three positional payload fields of a
// PropertiesChanged signal. A single entry that fails to decode is dropped,
// not fatal to the whole notification.
func decodePropertiesChanged(sig *dbus.Signal) (Signal, bool) {
	if len(sig.Body) < 3 {
		return nil, false
	}
	iface, ok := sig.Body[0].(string)
	if !ok {
		return nil, false
	}
	changedRaw, ok := sig.Body[1].(map[string]dbus.Variant)
	if !ok {
		return nil, false
	}
	invalidated, ok := sig.Body[2].([]string)
	if !ok {
		return nil, false
	}

	return PropertiesChanged{
		Interface:   iface,
		Changed:     decodeProperties(changedRaw),
		Invalidated: invalidated,
	}, true
}

// decodeProperties decodes every (name, value) entry of a property map. An
// entry that fails to decode is dropped, not fatal to the rest.
func decodeProperties(raw map[string]dbus.Variant) []ChangedProperty {
	changed := make([]ChangedProperty, 0, len(raw))
	for name, value := range raw {
		prop, err := DecodeProperty(name, value)
		if err != nil {
			logger.Debug("[mpris] dropping property %s: %v", name, err)
			continue
		}
		changed = append(changed, prop)
	}
	return changed
}

// Close detaches the stream from the connection's signal delivery. The
// session itself stays usable.
func (s *Signals) Close() {
	s.sess.conn.RemoveSignal(s.ch)
}
