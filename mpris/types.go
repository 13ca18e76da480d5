package mpris

import (
	"strings"

	"github.com/godbus/dbus/v5"
)

// PlaybackStatus represents the current playback state
type PlaybackStatus string

// ParsePlaybackStatus parses a playback status case-insensitively. The
// protocol's "forward-seek", "reverse-seek" and "error" hints are not
// playback states and fail like any other unknown value.
func ParsePlaybackStatus(s string) (PlaybackStatus, error) {
	switch strings.ToLower(s) {
	case "playing":
		return StatusPlaying, nil
	case "paused":
		return StatusPaused, nil
	case "stopped":
		return StatusStopped, nil
	}
	return "", &TypeBuildError{Target: "PlaybackStatus", Input: s}
}

// LoopStatus represents the current loop/repeat state
type LoopStatus string

// ParseLoopStatus parses a loop status case-insensitively.
func ParseLoopStatus(s string) (LoopStatus, error) {
	switch strings.ToLower(s) {
	case "none":
		return LoopNone, nil
	case "track":
		return LoopTrack, nil
	case "playlist":
		return LoopPlaylist, nil
	}
	return "", &TypeBuildError{Target: "LoopStatus", Input: s}
}

// TrackID is a unique track identifier: a syntactically valid D-Bus object
// path. Clients should not assume any object is actually exported at that
// path. Construct only via ParseTrackID.
type TrackID struct {
	path string
}

// ParseTrackID validates s as a D-Bus object path and wraps it.
func ParseTrackID(s string) (TrackID, error) {
	if !dbus.ObjectPath(s).IsValid() {
		return TrackID{}, &TypeBuildError{Target: "TrackID", Input: s}
	}
	return TrackID{path: s}, nil
}

// String returns the object path the TrackID was parsed from.
func (t TrackID) String() string { return t.path }

// IsNoTrack reports whether this is the reserved "no current track" value.
func (t TrackID) IsNoTrack() bool { return t.path == MPRIS_NO_TRACK }
