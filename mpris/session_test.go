package mpris

import (
	"errors"
	"strings"
	"testing"

	"github.com/godbus/dbus/v5"

	idbus "github.com/b0bbywan/go-mpris-remote/internal/dbus"
)

func busError(name string) error {
	return dbus.Error{Name: name, Body: []interface{}{"details"}}
}

func TestTranslateCallErrServiceUnknown(t *testing.T) {
	sess := &Session{busName: "org.mpris.MediaPlayer2.vlc"}

	// Both bus answers mean the same thing: the player is gone.
	for _, name := range []string{idbus.ERR_SERVICE_UNKNOWN, idbus.ERR_NAME_HAS_NO_OWNER} {
		t.Run(name, func(t *testing.T) {
			err := sess.translateCallErr(busError(name))
			var unknown *ServiceUnknownError
			if !errors.As(err, &unknown) {
				t.Fatalf("error should be *ServiceUnknownError, got %T: %v", err, err)
			}
			if unknown.BusName != sess.busName {
				t.Errorf("BusName = %q, want %q", unknown.BusName, sess.busName)
			}
		})
	}
}

func TestTranslateCallErrPassThrough(t *testing.T) {
	sess := &Session{busName: "org.mpris.MediaPlayer2.vlc"}

	if err := sess.translateCallErr(nil); err != nil {
		t.Errorf("nil should stay nil, got %v", err)
	}

	// Anything that is not service-unknown propagates verbatim.
	err := sess.translateCallErr(busError(idbus.ERR_INVALID_ARGS))
	var derr dbus.Error
	if !errors.As(err, &derr) || derr.Name != idbus.ERR_INVALID_ARGS {
		t.Errorf("transport error should propagate verbatim, got %v", err)
	}

	timeout := &idbus.TimeoutError{Method: idbus.PROP_GET}
	if err := sess.translateCallErr(timeout); err != timeout {
		t.Errorf("timeout should propagate verbatim, got %v", err)
	}
}

func TestTranslateSetErrAbsentProperty(t *testing.T) {
	sess := &Session{busName: "org.mpris.MediaPlayer2.vlc"}

	// Players disagree on the error name for a missing property.
	for _, name := range []string{idbus.ERR_UNKNOWN_PROPERTY, idbus.ERR_INVALID_ARGS} {
		t.Run(name, func(t *testing.T) {
			err := sess.translateSetErr(MPRIS_PATH, "Fullscreen", busError(name))
			var absent *AbsentOptionalPropertyError
			if !errors.As(err, &absent) {
				t.Fatalf("error should be *AbsentOptionalPropertyError, got %T: %v", err, err)
			}
			if absent.Path != MPRIS_PATH || absent.Member != "Fullscreen" {
				t.Errorf("error carries (%q, %q), want (%q, %q)",
					absent.Path, absent.Member, MPRIS_PATH, "Fullscreen")
			}
		})
	}
}

func TestTranslateSetErrOtherFailures(t *testing.T) {
	sess := &Session{busName: "org.mpris.MediaPlayer2.vlc"}

	if err := sess.translateSetErr(MPRIS_PATH, "Volume", nil); err != nil {
		t.Errorf("nil should stay nil, got %v", err)
	}

	// A vanished player on a write reports the same condition as at open.
	err := sess.translateSetErr(MPRIS_PATH, "Volume", busError(idbus.ERR_SERVICE_UNKNOWN))
	var unknown *ServiceUnknownError
	if !errors.As(err, &unknown) {
		t.Errorf("error should be *ServiceUnknownError, got %T: %v", err, err)
	}

	denied := sess.translateSetErr(MPRIS_PATH, "Volume",
		busError("org.freedesktop.DBus.Error.AccessDenied"))
	var derr dbus.Error
	if !errors.As(denied, &derr) || derr.Name != "org.freedesktop.DBus.Error.AccessDenied" {
		t.Errorf("unclassified error should propagate verbatim, got %v", denied)
	}
}

func TestOptionalPropertyAbsence(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		present bool
		wantErr bool
	}{
		{"unknown property reads as absent", busError(idbus.ERR_UNKNOWN_PROPERTY), false, false},
		{"invalid args reads as absent", busError(idbus.ERR_INVALID_ARGS), false, false},
		{"service unknown stays an error", busError(idbus.ERR_SERVICE_UNKNOWN), false, true},
		{"timeout stays an error", &idbus.TimeoutError{Method: idbus.PROP_GET}, false, true},
		{"success is present", nil, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, present, err := optionalProperty(dbus.MakeVariant(true), tt.err)
			if present != tt.present {
				t.Errorf("present = %v, want %v", present, tt.present)
			}
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSessionErrorMessages(t *testing.T) {
	unknown := &ServiceUnknownError{BusName: "org.mpris.MediaPlayer2.vlc"}
	if msg := unknown.Error(); !strings.Contains(msg, "org.mpris.MediaPlayer2.vlc") {
		t.Errorf("ServiceUnknownError should name the bus name, got %q", msg)
	}

	absent := &AbsentOptionalPropertyError{Path: MPRIS_PATH, Member: "Fullscreen"}
	if msg := absent.Error(); !strings.Contains(msg, MPRIS_PATH) || !strings.Contains(msg, "Fullscreen") {
		t.Errorf("AbsentOptionalPropertyError should name path and member, got %q", msg)
	}
}
