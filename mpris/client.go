// Package mpris is a client for the MPRIS D-Bus interface, the standard
// remote-control protocol for media players. It maps bus method calls and
// property access onto typed results and decodes change-notification
// signals into a typed domain model.
package mpris

import (
	"strings"
	"time"

	"github.com/godbus/dbus/v5"

	idbus "github.com/b0bbywan/go-mpris-remote/internal/dbus"
)

// Client is the top-level handle on one media player.
type Client struct {
	sess *Session

	Root   *Root
	Player *Player
}

// New opens a session bound to org.mpris.MediaPlayer2.<playerName>.
// timeout bounds every call made through the client; NoTimeout disables
// deadlines.
func New(playerName string, timeout time.Duration) (*Client, error) {
	sess, err := Open(playerName, timeout)
	if err != nil {
		return nil, err
	}
	return &Client{
		sess:   sess,
		Root:   &Root{sess: sess},
		Player: &Player{sess: sess},
	}, nil
}

// Session exposes the underlying session connection.
func (c *Client) Session() *Session { return c.sess }

// Signals derives an event stream for this player. pullTimeout bounds each
// individual pull.
func (c *Client) Signals(pullTimeout time.Duration) *Signals {
	return c.sess.Signals(pullTimeout)
}

// Close tears down the session.
func (c *Client) Close() error { return c.sess.Close() }

// ListPlayers returns the short names of all media players currently
// registered on the session bus, i.e. "vlc" for
// org.mpris.MediaPlayer2.vlc.
func ListPlayers(timeout time.Duration) ([]string, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	names, err := idbus.ListNames(conn, timeout)
	if err != nil {
		return nil, err
	}

	players := make([]string, 0, len(names))
	for _, name := range names {
		if strings.HasPrefix(name, MPRIS_PREFIX+".") {
			players = append(players, strings.TrimPrefix(name, MPRIS_PREFIX+"."))
		}
	}
	return players, nil
}
