package mpris

import (
	"github.com/godbus/dbus/v5"
)

// ChangedProperty is one decoded entry of a PropertiesChanged notification.
// It is a closed set: one variant per property name the client understands,
// plus OtherChanged for names it does not model yet.
type ChangedProperty interface {
	// PropertyName returns the wire name of the property.
	PropertyName() string
	changedProperty()
}

// Root interface properties

type CanQuitChanged bool
type FullscreenChanged bool
type CanSetFullscreenChanged bool
type CanRaiseChanged bool
type HasTrackListChanged bool
type IdentityChanged string
type DesktopEntryChanged string
type SupportedUriSchemesChanged []string
type SupportedMimeTypesChanged []string

// Player interface properties

type PlaybackStatusChanged PlaybackStatus
type LoopStatusChanged LoopStatus
type RateChanged float64
type ShuffleChanged bool
type MetadataChanged struct{ Metadata MetadataMap }
type VolumeChanged float64
type MinimumRateChanged float64
type MaximumRateChanged float64
type CanGoNextChanged bool
type CanGoPreviousChanged bool
type CanPlayChanged bool
type CanPauseChanged bool
type CanSeekChanged bool
type CanControlChanged bool

// TrackList interface properties

type TracksChanged struct{}
type CanEditTracksChanged bool

// OtherChanged is the forward-compatibility fallback for property names the
// client does not model. Raw is a debug rendering of the value.
type OtherChanged struct {
	Name string
	Raw  string
}

func (CanQuitChanged) PropertyName() string             { return "CanQuit" }
func (FullscreenChanged) PropertyName() string          { return "Fullscreen" }
func (CanSetFullscreenChanged) PropertyName() string    { return "CanSetFullscreen" }
func (CanRaiseChanged) PropertyName() string            { return "CanRaise" }
func (HasTrackListChanged) PropertyName() string        { return "HasTrackList" }
func (IdentityChanged) PropertyName() string            { return "Identity" }
func (DesktopEntryChanged) PropertyName() string        { return "DesktopEntry" }
func (SupportedUriSchemesChanged) PropertyName() string { return "SupportedUriSchemes" }
func (SupportedMimeTypesChanged) PropertyName() string  { return "SupportedMimeTypes" }
func (PlaybackStatusChanged) PropertyName() string      { return "PlaybackStatus" }
func (LoopStatusChanged) PropertyName() string          { return "LoopStatus" }
func (RateChanged) PropertyName() string                { return "Rate" }
func (ShuffleChanged) PropertyName() string             { return "Shuffle" }
func (MetadataChanged) PropertyName() string            { return "Metadata" }
func (VolumeChanged) PropertyName() string              { return "Volume" }
func (MinimumRateChanged) PropertyName() string         { return "MinimumRate" }
func (MaximumRateChanged) PropertyName() string         { return "MaximumRate" }
func (CanGoNextChanged) PropertyName() string           { return "CanGoNext" }
func (CanGoPreviousChanged) PropertyName() string       { return "CanGoPrevious" }
func (CanPlayChanged) PropertyName() string             { return "CanPlay" }
func (CanPauseChanged) PropertyName() string            { return "CanPause" }
func (CanSeekChanged) PropertyName() string             { return "CanSeek" }
func (CanControlChanged) PropertyName() string          { return "CanControl" }
func (TracksChanged) PropertyName() string              { return "Tracks" }
func (CanEditTracksChanged) PropertyName() string       { return "CanEditTracks" }
func (o OtherChanged) PropertyName() string             { return o.Name }

func (CanQuitChanged) changedProperty()             {}
func (FullscreenChanged) changedProperty()          {}
func (CanSetFullscreenChanged) changedProperty()    {}
func (CanRaiseChanged) changedProperty()            {}
func (HasTrackListChanged) changedProperty()        {}
func (IdentityChanged) changedProperty()            {}
func (DesktopEntryChanged) changedProperty()        {}
func (SupportedUriSchemesChanged) changedProperty() {}
func (SupportedMimeTypesChanged) changedProperty()  {}
func (PlaybackStatusChanged) changedProperty()      {}
func (LoopStatusChanged) changedProperty()          {}
func (RateChanged) changedProperty()                {}
func (ShuffleChanged) changedProperty()             {}
func (MetadataChanged) changedProperty()            {}
func (VolumeChanged) changedProperty()              {}
func (MinimumRateChanged) changedProperty()         {}
func (MaximumRateChanged) changedProperty()         {}
func (CanGoNextChanged) changedProperty()           {}
func (CanGoPreviousChanged) changedProperty()       {}
func (CanPlayChanged) changedProperty()             {}
func (CanPauseChanged) changedProperty()            {}
func (CanSeekChanged) changedProperty()             {}
func (CanControlChanged) changedProperty()          {}
func (TracksChanged) changedProperty()              {}
func (CanEditTracksChanged) changedProperty()       {}
func (OtherChanged) changedProperty()               {}

// Dispatch tables, keyed by property name. One entry per known property of
// the root, Player and TrackList interfaces.

var boolProperties = map[string]func(bool) ChangedProperty{
	"CanQuit":          func(b bool) ChangedProperty { return CanQuitChanged(b) },
	"Fullscreen":       func(b bool) ChangedProperty { return FullscreenChanged(b) },
	"CanSetFullscreen": func(b bool) ChangedProperty { return CanSetFullscreenChanged(b) },
	"CanRaise":         func(b bool) ChangedProperty { return CanRaiseChanged(b) },
	"HasTrackList":     func(b bool) ChangedProperty { return HasTrackListChanged(b) },
	"Shuffle":          func(b bool) ChangedProperty { return ShuffleChanged(b) },
	"CanGoNext":        func(b bool) ChangedProperty { return CanGoNextChanged(b) },
	"CanGoPrevious":    func(b bool) ChangedProperty { return CanGoPreviousChanged(b) },
	"CanPlay":          func(b bool) ChangedProperty { return CanPlayChanged(b) },
	"CanPause":         func(b bool) ChangedProperty { return CanPauseChanged(b) },
	"CanSeek":          func(b bool) ChangedProperty { return CanSeekChanged(b) },
	"CanControl":       func(b bool) ChangedProperty { return CanControlChanged(b) },
	"CanEditTracks":    func(b bool) ChangedProperty { return CanEditTracksChanged(b) },
}

var stringProperties = map[string]func(string) ChangedProperty{
	"Identity":     func(s string) ChangedProperty { return IdentityChanged(s) },
	"DesktopEntry": func(s string) ChangedProperty { return DesktopEntryChanged(s) },
}

var floatProperties = map[string]func(float64) ChangedProperty{
	"Rate":        func(f float64) ChangedProperty { return RateChanged(f) },
	"Volume":      func(f float64) ChangedProperty { return VolumeChanged(f) },
	"MinimumRate": func(f float64) ChangedProperty { return MinimumRateChanged(f) },
	"MaximumRate": func(f float64) ChangedProperty { return MaximumRateChanged(f) },
}

var stringListProperties = map[string]func([]string) ChangedProperty{
	"SupportedUriSchemes": func(s []string) ChangedProperty { return SupportedUriSchemesChanged(s) },
	"SupportedMimeTypes":  func(s []string) ChangedProperty { return SupportedMimeTypesChanged(s) },
}

// DecodeProperty maps one (name, value) pair from a PropertiesChanged
// notification into its ChangedProperty variant. Unknown names decode to
// OtherChanged and never fail; known names fail when the value does not
// cast to the variant's declared type.
func DecodeProperty(name string, value dbus.Variant) (ChangedProperty, error) {
	if wrap, ok := boolProperties[name]; ok {
		b, err := castValue[bool](value)
		if err != nil {
			return nil, err
		}
		return wrap(b), nil
	}
	if wrap, ok := stringProperties[name]; ok {
		s, err := castString(value)
		if err != nil {
			return nil, err
		}
		return wrap(s), nil
	}
	if wrap, ok := floatProperties[name]; ok {
		f, err := castValue[float64](value)
		if err != nil {
			return nil, err
		}
		return wrap(f), nil
	}
	if wrap, ok := stringListProperties[name]; ok {
		s, err := castValue[[]string](value)
		if err != nil {
			return nil, err
		}
		return wrap(s), nil
	}

	switch name {
	case "PlaybackStatus":
		s, err := castString(value)
		if err != nil {
			return nil, err
		}
		status, err := ParsePlaybackStatus(s)
		if err != nil {
			return nil, err
		}
		return PlaybackStatusChanged(status), nil

	case "LoopStatus":
		s, err := castString(value)
		if err != nil {
			return nil, err
		}
		status, err := ParseLoopStatus(s)
		if err != nil {
			return nil, err
		}
		return LoopStatusChanged(status), nil

	case "Metadata":
		// A trackless metadata update is not a sensible partial result, so
		// build errors propagate instead of degrading to OtherChanged.
		raw, err := castValue[map[string]dbus.Variant](value)
		if err != nil {
			return nil, err
		}
		meta, err := MetadataFromMap(raw)
		if err != nil {
			return nil, err
		}
		return MetadataChanged{Metadata: meta}, nil

	case "Tracks":
		return TracksChanged{}, nil
	}

	return OtherChanged{Name: name, Raw: value.String()}, nil
}
