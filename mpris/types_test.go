package mpris

import (
	"errors"
	"testing"
)

func TestParseTrackID(t *testing.T) {
	valid := []string{
		"/",
		"/foo/bar/baz",
		"/org/mpris/MediaPlayer2/Track/1",
		"/a_b/c123",
	}
	for _, path := range valid {
		t.Run(path, func(t *testing.T) {
			id, err := ParseTrackID(path)
			if err != nil {
				t.Fatalf("ParseTrackID(%q) failed: %v", path, err)
			}
			if id.String() != path {
				t.Errorf("String() = %q, want round-trip to %q", id.String(), path)
			}
		})
	}

	invalid := []string{
		"",
		"no/leading/slash",
		"/trailing/slash/",
		"/double//slash",
		"/bad-char",
		"spotify:track:xyz",
	}
	for _, path := range invalid {
		t.Run("invalid "+path, func(t *testing.T) {
			_, err := ParseTrackID(path)
			if err == nil {
				t.Fatalf("ParseTrackID(%q) should fail", path)
			}
			var buildErr *TypeBuildError
			if !errors.As(err, &buildErr) {
				t.Errorf("error should be *TypeBuildError, got %T", err)
			}
		})
	}
}

func TestTrackIDIsNoTrack(t *testing.T) {
	noTrack, err := ParseTrackID(MPRIS_NO_TRACK)
	if err != nil {
		t.Fatalf("ParseTrackID(%q) failed: %v", MPRIS_NO_TRACK, err)
	}
	if !noTrack.IsNoTrack() {
		t.Error("the reserved NoTrack path should report IsNoTrack")
	}

	track, err := ParseTrackID("/foo/bar/baz")
	if err != nil {
		t.Fatalf("ParseTrackID failed: %v", err)
	}
	if track.IsNoTrack() {
		t.Error("an ordinary track should not report IsNoTrack")
	}
}

func TestParsePlaybackStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected PlaybackStatus
		wantErr  bool
	}{
		{"Playing", StatusPlaying, false},
		{"playing", StatusPlaying, false},
		{"PLAYING", StatusPlaying, false},
		{"pLaYiNg", StatusPlaying, false},
		{"Paused", StatusPaused, false},
		{"paused", StatusPaused, false},
		{"Stopped", StatusStopped, false},
		{"STOPPED", StatusStopped, false},
		// Seek hints are not playback states
		{"forward-seek", "", true},
		{"reverse-seek", "", true},
		{"error", "", true},
		{"", "", true},
		{"Buffering", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := ParsePlaybackStatus(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParsePlaybackStatus(%q) should fail", tt.input)
				}
				var buildErr *TypeBuildError
				if !errors.As(err, &buildErr) {
					t.Errorf("error should be *TypeBuildError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePlaybackStatus(%q) failed: %v", tt.input, err)
			}
			if status != tt.expected {
				t.Errorf("ParsePlaybackStatus(%q) = %q, want %q", tt.input, status, tt.expected)
			}
		})
	}
}

func TestParseLoopStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected LoopStatus
		wantErr  bool
	}{
		{"None", LoopNone, false},
		{"none", LoopNone, false},
		{"NONE", LoopNone, false},
		{"Track", LoopTrack, false},
		{"track", LoopTrack, false},
		{"Playlist", LoopPlaylist, false},
		{"playlist", LoopPlaylist, false},
		{"Repeat", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := ParseLoopStatus(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLoopStatus(%q) should fail", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLoopStatus(%q) failed: %v", tt.input, err)
			}
			if status != tt.expected {
				t.Errorf("ParseLoopStatus(%q) = %q, want %q", tt.input, status, tt.expected)
			}
		})
	}
}
