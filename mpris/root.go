package mpris

// Root exposes the org.mpris.MediaPlayer2 root interface of a player.
type Root struct {
	sess *Session
}

// Raise brings the player's user interface to the front.
func (r *Root) Raise() error {
	return r.sess.CallNoReply(MPRIS_PATH, MPRIS_METHOD_RAISE)
}

// Quit causes the player to stop running. The player may refuse; see
// CanQuit.
func (r *Root) Quit() error {
	return r.sess.CallNoReply(MPRIS_PATH, MPRIS_METHOD_QUIT)
}

func (r *Root) getBool(member string) (bool, error) {
	v, err := r.sess.GetProperty(MPRIS_PATH, MPRIS_INTERFACE, member)
	if err != nil {
		return false, err
	}
	return castValue[bool](v)
}

func (r *Root) getOptionalBool(member string) (bool, bool, error) {
	v, present, err := r.sess.GetOptionalProperty(MPRIS_PATH, MPRIS_INTERFACE, member)
	if err != nil || !present {
		return false, false, err
	}
	b, err := castValue[bool](v)
	if err != nil {
		return false, false, err
	}
	return b, true, nil
}

// CanQuit reports whether Quit will have any effect.
func (r *Root) CanQuit() (bool, error) { return r.getBool("CanQuit") }

// CanRaise reports whether Raise will have any effect.
func (r *Root) CanRaise() (bool, error) { return r.getBool("CanRaise") }

// HasTrackList reports whether the player implements the TrackList
// interface.
func (r *Root) HasTrackList() (bool, error) { return r.getBool("HasTrackList") }

// Identity returns a friendly name to identify the player, e.g. "VLC media
// player".
func (r *Root) Identity() (string, error) {
	v, err := r.sess.GetProperty(MPRIS_PATH, MPRIS_INTERFACE, "Identity")
	if err != nil {
		return "", err
	}
	return castString(v)
}

// SupportedUriSchemes returns the URI schemes the player can open.
func (r *Root) SupportedUriSchemes() ([]string, error) {
	v, err := r.sess.GetProperty(MPRIS_PATH, MPRIS_INTERFACE, "SupportedUriSchemes")
	if err != nil {
		return nil, err
	}
	return castValue[[]string](v)
}

// SupportedMimeTypes returns the mime types the player can open.
func (r *Root) SupportedMimeTypes() ([]string, error) {
	v, err := r.sess.GetProperty(MPRIS_PATH, MPRIS_INTERFACE, "SupportedMimeTypes")
	if err != nil {
		return nil, err
	}
	return castValue[[]string](v)
}

// Fullscreen reports whether the player occupies the full screen. The
// property is optional; the second return is false when the player does not
// implement it.
func (r *Root) Fullscreen() (bool, bool, error) {
	return r.getOptionalBool("Fullscreen")
}

// CanSetFullscreen reports whether SetFullscreen may work. Optional, like
// Fullscreen.
func (r *Root) CanSetFullscreen() (bool, bool, error) {
	return r.getOptionalBool("CanSetFullscreen")
}

// SetFullscreen asks the player to enter or leave fullscreen mode. Players
// without the property answer with AbsentOptionalPropertyError.
func (r *Root) SetFullscreen(value bool) error {
	return r.sess.SetProperty(MPRIS_PATH, MPRIS_INTERFACE, "Fullscreen", value)
}
