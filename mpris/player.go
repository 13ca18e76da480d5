package mpris

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

// Player exposes the org.mpris.MediaPlayer2.Player interface of a player.
// Every read goes to the bus; nothing is cached across calls.
type Player struct {
	sess *Session
}

// Play starts or resumes playback.
func (p *Player) Play() error { return p.sess.CallNoReply(MPRIS_PATH, MPRIS_METHOD_PLAY) }

// Pause pauses playback.
func (p *Player) Pause() error { return p.sess.CallNoReply(MPRIS_PATH, MPRIS_METHOD_PAUSE) }

// PlayPause toggles between playing and paused.
func (p *Player) PlayPause() error { return p.sess.CallNoReply(MPRIS_PATH, MPRIS_METHOD_PLAY_PAUSE) }

// Stop stops playback.
func (p *Player) Stop() error { return p.sess.CallNoReply(MPRIS_PATH, MPRIS_METHOD_STOP) }

// Next skips to the next track in the tracklist.
func (p *Player) Next() error { return p.sess.CallNoReply(MPRIS_PATH, MPRIS_METHOD_NEXT) }

// Previous skips to the previous track in the tracklist.
func (p *Player) Previous() error { return p.sess.CallNoReply(MPRIS_PATH, MPRIS_METHOD_PREVIOUS) }

// Seek moves the playback position by offset microseconds, relative to the
// current position.
func (p *Player) Seek(offset int64) error {
	return p.sess.CallNoReply(MPRIS_PATH, MPRIS_METHOD_SEEK, offset)
}

// SetPosition sets the playback position within track, in microseconds.
// Players ignore the call when track does not match the current track, so a
// stale track ID is harmless rather than an error.
func (p *Player) SetPosition(track TrackID, position int64) error {
	return p.sess.CallNoReply(MPRIS_PATH, MPRIS_METHOD_SET_POSITION,
		dbus.ObjectPath(track.String()), position)
}

// OpenUri opens the given URI in the player.
func (p *Player) OpenUri(uri string) error {
	return p.sess.CallNoReply(MPRIS_PATH, MPRIS_METHOD_OPEN_URI, uri)
}

func (p *Player) getBool(member string) (bool, error) {
	v, err := p.sess.GetProperty(MPRIS_PATH, MPRIS_PLAYER_IFACE, member)
	if err != nil {
		return false, err
	}
	return castValue[bool](v)
}

func (p *Player) getFloat(member string) (float64, error) {
	v, err := p.sess.GetProperty(MPRIS_PATH, MPRIS_PLAYER_IFACE, member)
	if err != nil {
		return 0, err
	}
	return castValue[float64](v)
}

// Properties reads every Player property in a single bus round trip and
// decodes each entry, with the same per-entry tolerance as change
// notifications.
func (p *Player) Properties() ([]ChangedProperty, error) {
	raw, err := p.sess.GetAllProperties(MPRIS_PATH, MPRIS_PLAYER_IFACE)
	if err != nil {
		return nil, err
	}
	return decodeProperties(raw), nil
}

// PlaybackStatus returns the current playback state.
func (p *Player) PlaybackStatus() (PlaybackStatus, error) {
	v, err := p.sess.GetProperty(MPRIS_PATH, MPRIS_PLAYER_IFACE, "PlaybackStatus")
	if err != nil {
		return "", err
	}
	s, err := castString(v)
	if err != nil {
		return "", err
	}
	return ParsePlaybackStatus(s)
}

// LoopStatus returns the current loop state. The property is optional; the
// second return is false when the player does not implement it.
func (p *Player) LoopStatus() (LoopStatus, bool, error) {
	v, present, err := p.sess.GetOptionalProperty(MPRIS_PATH, MPRIS_PLAYER_IFACE, "LoopStatus")
	if err != nil || !present {
		return "", false, err
	}
	s, err := castString(v)
	if err != nil {
		return "", false, err
	}
	status, err := ParseLoopStatus(s)
	if err != nil {
		return "", false, err
	}
	return status, true, nil
}

// SetLoopStatus sets the loop state.
func (p *Player) SetLoopStatus(status LoopStatus) error {
	switch status {
	case LoopNone, LoopTrack, LoopPlaylist:
	default:
		return &TypeBuildError{Target: "LoopStatus", Input: string(status)}
	}
	return p.sess.SetProperty(MPRIS_PATH, MPRIS_PLAYER_IFACE, "LoopStatus", string(status))
}

// Rate returns the current playback rate.
func (p *Player) Rate() (float64, error) { return p.getFloat("Rate") }

// SetRate sets the playback rate.
func (p *Player) SetRate(rate float64) error {
	return p.sess.SetProperty(MPRIS_PATH, MPRIS_PLAYER_IFACE, "Rate", rate)
}

// Shuffle reports whether playback order is shuffled. Optional property.
func (p *Player) Shuffle() (bool, bool, error) {
	v, present, err := p.sess.GetOptionalProperty(MPRIS_PATH, MPRIS_PLAYER_IFACE, "Shuffle")
	if err != nil || !present {
		return false, false, err
	}
	b, err := castValue[bool](v)
	if err != nil {
		return false, false, err
	}
	return b, true, nil
}

// SetShuffle enables or disables shuffled playback order.
func (p *Player) SetShuffle(shuffle bool) error {
	return p.sess.SetProperty(MPRIS_PATH, MPRIS_PLAYER_IFACE, "Shuffle", shuffle)
}

// Metadata returns the metadata of the current track. The read goes to the
// bus every time; the returned map is a snapshot.
func (p *Player) Metadata() (MetadataMap, error) {
	v, err := p.sess.GetProperty(MPRIS_PATH, MPRIS_PLAYER_IFACE, "Metadata")
	if err != nil {
		return MetadataMap{}, err
	}
	raw, err := castValue[map[string]dbus.Variant](v)
	if err != nil {
		return MetadataMap{}, err
	}
	return MetadataFromMap(raw)
}

// Volume returns the current volume, where 1.0 is full volume.
func (p *Player) Volume() (float64, error) { return p.getFloat("Volume") }

// SetVolume sets the volume. Negative values are rejected before hitting
// the bus.
func (p *Player) SetVolume(volume float64) error {
	if volume < 0 {
		return fmt.Errorf("volume must not be negative, got %.2f", volume)
	}
	return p.sess.SetProperty(MPRIS_PATH, MPRIS_PLAYER_IFACE, "Volume", volume)
}

// Position returns the playback position in microseconds.
func (p *Player) Position() (int64, error) {
	v, err := p.sess.GetProperty(MPRIS_PATH, MPRIS_PLAYER_IFACE, "Position")
	if err != nil {
		return 0, err
	}
	return castValue[int64](v)
}

// MinimumRate returns the lowest playback rate the player supports.
func (p *Player) MinimumRate() (float64, error) { return p.getFloat("MinimumRate") }

// MaximumRate returns the highest playback rate the player supports.
func (p *Player) MaximumRate() (float64, error) { return p.getFloat("MaximumRate") }

// CanGoNext reports whether Next can be expected to work.
func (p *Player) CanGoNext() (bool, error) { return p.getBool("CanGoNext") }

// CanGoPrevious reports whether Previous can be expected to work.
func (p *Player) CanGoPrevious() (bool, error) { return p.getBool("CanGoPrevious") }

// CanPlay reports whether Play can be expected to work.
func (p *Player) CanPlay() (bool, error) { return p.getBool("CanPlay") }

// CanPause reports whether Pause can be expected to work.
func (p *Player) CanPause() (bool, error) { return p.getBool("CanPause") }

// CanSeek reports whether Seek and SetPosition can be expected to work.
func (p *Player) CanSeek() (bool, error) { return p.getBool("CanSeek") }

// CanControl reports whether the player can be controlled at all. This
// property is not expected to change during a session.
func (p *Player) CanControl() (bool, error) { return p.getBool("CanControl") }
