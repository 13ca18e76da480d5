package mpris

import (
	"time"

	"github.com/godbus/dbus/v5"
)

// MetadataMap is a read-only snapshot of one track's metadata, as delivered
// in the Metadata property or a PropertiesChanged signal. The track ID is
// mandatory and validated at construction; every other field is optional and
// looked up lazily. A field that is absent or carries an unexpected wire
// type reads as absent.
type MetadataMap struct {
	trackID TrackID
	raw     map[string]dbus.Variant
}

// MetadataFromMap is the sole MetadataMap constructor. It fails if the
// mandatory mpris:trackid entry is missing, not string-shaped, or not a
// valid object path; no other field is validated here.
func MetadataFromMap(raw map[string]dbus.Variant) (MetadataMap, error) {
	v, ok := raw["mpris:trackid"]
	if !ok {
		return MetadataMap{}, &TypeBuildError{Target: "MetadataMap", Input: "missing mandatory mpris:trackid"}
	}
	s, err := castString(v)
	if err != nil {
		return MetadataMap{}, err
	}
	trackID, err := ParseTrackID(s)
	if err != nil {
		return MetadataMap{}, err
	}

	// Snapshot: the map must not change under the accessors.
	owned := make(map[string]dbus.Variant, len(raw))
	for k, val := range raw {
		owned[k] = val
	}

	return MetadataMap{trackID: trackID, raw: owned}, nil
}

// TrackID returns the unique identity of this track.
func (m MetadataMap) TrackID() TrackID { return m.trackID }

// Equal reports whether two MetadataMaps describe the same track. Only the
// track IDs are compared; attribute contents are not.
func (m MetadataMap) Equal(other MetadataMap) bool {
	return m.trackID == other.trackID
}

func (m MetadataMap) stringValue(key string) (string, bool) {
	v, ok := m.raw[key]
	if !ok {
		return "", false
	}
	s, err := castValue[string](v)
	return s, err == nil
}

func (m MetadataMap) stringsValue(key string) ([]string, bool) {
	v, ok := m.raw[key]
	if !ok {
		return nil, false
	}
	s, err := castValue[[]string](v)
	return s, err == nil
}

func (m MetadataMap) floatValue(key string) (float64, bool) {
	v, ok := m.raw[key]
	if !ok {
		return 0, false
	}
	f, err := castValue[float64](v)
	return f, err == nil
}

// intValue accepts every integer width the wire format defines, plus
// doubles, since players disagree on the numeric type of counter fields.
func (m MetadataMap) intValue(key string) (int64, bool) {
	v, ok := m.raw[key]
	if !ok {
		return 0, false
	}
	switch n := v.Value().(type) {
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint32:
		return int64(n), true
	case int16:
		return int64(n), true
	case uint16:
		return int64(n), true
	case byte:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}

// timeValue reads an RFC 3339 string field. Malformed dates read as absent.
func (m MetadataMap) timeValue(key string) (time.Time, bool) {
	s, ok := m.stringValue(key)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Length returns the duration of the track in microseconds.
func (m MetadataMap) Length() (int64, bool) { return m.intValue("mpris:length") }

// ArtURL returns the location of an image representing the track or album.
func (m MetadataMap) ArtURL() (string, bool) { return m.stringValue("mpris:artUrl") }

// Album returns the album name.
func (m MetadataMap) Album() (string, bool) { return m.stringValue("xesam:album") }

// AlbumArtist returns the album artist(s).
func (m MetadataMap) AlbumArtist() ([]string, bool) { return m.stringsValue("xesam:albumArtist") }

// Artist returns the track artist(s).
func (m MetadataMap) Artist() ([]string, bool) { return m.stringsValue("xesam:artist") }

// AsText returns the track lyrics.
func (m MetadataMap) AsText() (string, bool) { return m.stringValue("xesam:asText") }

// AudioBPM returns the speed of the music, in beats per minute.
func (m MetadataMap) AudioBPM() (int64, bool) { return m.intValue("xesam:audioBPM") }

// AutoRating returns an automatically-generated rating in the range 0.0 to 1.0.
func (m MetadataMap) AutoRating() (float64, bool) { return m.floatValue("xesam:autoRating") }

// Comment returns a (list of) freeform comment(s).
func (m MetadataMap) Comment() ([]string, bool) { return m.stringsValue("xesam:comment") }

// Composer returns the composer(s) of the track.
func (m MetadataMap) Composer() ([]string, bool) { return m.stringsValue("xesam:composer") }

// ContentCreated returns when the track was created. Usually only the year
// component is useful.
func (m MetadataMap) ContentCreated() (time.Time, bool) { return m.timeValue("xesam:contentCreated") }

// DiscNumber returns the disc number on the album that this track is from.
func (m MetadataMap) DiscNumber() (int64, bool) { return m.intValue("xesam:discNumber") }

// FirstUsed returns when the track was first played.
func (m MetadataMap) FirstUsed() (time.Time, bool) { return m.timeValue("xesam:firstUsed") }

// Genre returns the genre(s) of the track.
func (m MetadataMap) Genre() ([]string, bool) { return m.stringsValue("xesam:genre") }

// LastUsed returns when the track was last played.
func (m MetadataMap) LastUsed() (time.Time, bool) { return m.timeValue("xesam:lastUsed") }

// Lyricist returns the lyricist(s) of the track.
func (m MetadataMap) Lyricist() ([]string, bool) { return m.stringsValue("xesam:lyricist") }

// Title returns the track title.
func (m MetadataMap) Title() (string, bool) { return m.stringValue("xesam:title") }

// TrackNumber returns the track number on the album disc.
func (m MetadataMap) TrackNumber() (int64, bool) { return m.intValue("xesam:trackNumber") }

// URL returns the location of the media file.
func (m MetadataMap) URL() (string, bool) { return m.stringValue("xesam:url") }

// UserCount returns the number of times the track has been played.
func (m MetadataMap) UserCount() (int64, bool) { return m.intValue("xesam:userCount") }

// UserRating returns a user-specified rating in the range 0.0 to 1.0.
func (m MetadataMap) UserRating() (float64, bool) { return m.floatValue("xesam:userRating") }
