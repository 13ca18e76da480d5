package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/b0bbywan/go-mpris-remote/config"
	"github.com/b0bbywan/go-mpris-remote/logger"
	"github.com/b0bbywan/go-mpris-remote/mpris"
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s <command> [player]

commands:
  list                     list running players
  status    [player]       show playback status and current track
  follow    [player]       print change notifications until interrupted
  raise     [player]       bring the player UI to the front
  quit      [player]       ask the player to exit
  play | pause | toggle | stop | next | previous  [player]

player is the short bus name, e.g. "vlc" for org.mpris.MediaPlayer2.vlc.
When omitted, the "player" config value is used.
`, config.AppName)
	os.Exit(2)
}

func main() {
	cfg, err := config.New()
	if err != nil {
		logger.Fatal("[cli] failed to load config: %v", err)
	}
	logger.SetLevel(cfg.LogLevel)
	logger.SetComponentLevels(cfg.ComponentLevels)

	if len(os.Args) < 2 {
		usage()
	}
	command := os.Args[1]

	if command == "list" {
		players, err := mpris.ListPlayers(cfg.Timeout)
		if err != nil {
			logger.Fatal("[cli] failed to list players: %v", err)
		}
		for _, p := range players {
			fmt.Println(p)
		}
		return
	}

	player := cfg.Player
	if len(os.Args) > 2 {
		player = os.Args[2]
	}
	if player == "" {
		logger.Fatal("[cli] no player named and no default configured")
	}

	client, err := mpris.New(player, cfg.Timeout)
	if err != nil {
		var unknown *mpris.ServiceUnknownError
		if errors.As(err, &unknown) {
			logger.Fatal("[cli] %s is not running", player)
		}
		logger.Fatal("[cli] failed to connect to %s: %v", player, err)
	}
	defer client.Close()

	switch command {
	case "status":
		runStatus(client)
	case "follow":
		config.Watch()
		runFollow(client, cfg.PullTimeout)
	case "raise":
		must(client.Root.Raise())
	case "quit":
		must(client.Root.Quit())
	case "play":
		must(client.Player.Play())
	case "pause":
		must(client.Player.Pause())
	case "toggle":
		must(client.Player.PlayPause())
	case "stop":
		must(client.Player.Stop())
	case "next":
		must(client.Player.Next())
	case "previous":
		must(client.Player.Previous())
	default:
		usage()
	}
}

func must(err error) {
	if err != nil {
		logger.Fatal("[cli] %v", err)
	}
}

func runStatus(client *mpris.Client) {
	identity, err := client.Root.Identity()
	if err != nil {
		logger.Warn("[cli] failed to read identity: %v", err)
		identity = client.Session().BusName()
	}
	fmt.Println(identity)

	// One GetAll round trip instead of a call per property.
	props, err := client.Player.Properties()
	must(err)

	var meta mpris.MetadataMap
	haveMeta := false
	for _, prop := range props {
		switch p := prop.(type) {
		case mpris.PlaybackStatusChanged:
			fmt.Printf("  %s\n", mpris.PlaybackStatus(p))
		case mpris.MetadataChanged:
			meta = p.Metadata
			haveMeta = true
		}
	}
	if !haveMeta {
		logger.Debug("[cli] no metadata")
		return
	}
	if title, ok := meta.Title(); ok {
		fmt.Printf("  %s\n", title)
	}
	if artist, ok := meta.Artist(); ok {
		fmt.Printf("  by %s\n", strings.Join(artist, ", "))
	}
	if album, ok := meta.Album(); ok {
		fmt.Printf("  on %s\n", album)
	}
	if length, ok := meta.Length(); ok {
		if pos, err := client.Player.Position(); err == nil {
			fmt.Printf("  %s / %s\n", formatUs(pos), formatUs(length))
		}
	}
}

func runFollow(client *mpris.Client, pullTimeout time.Duration) {
	signals := client.Signals(pullTimeout)
	defer signals.Close()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	logger.Info("[cli] following %s", client.Session().BusName())
	for {
		select {
		case <-stop:
			return
		default:
		}

		event, ok := signals.Next()
		if !ok {
			// Nothing this round; pull again.
			continue
		}

		switch e := event.(type) {
		case mpris.Seeked:
			fmt.Printf("seeked to %s\n", formatUs(e.Position))
		case mpris.PropertiesChanged:
			for _, prop := range e.Changed {
				printChanged(prop)
			}
			for _, name := range e.Invalidated {
				fmt.Printf("%s invalidated\n", name)
			}
		}
	}
}

func printChanged(prop mpris.ChangedProperty) {
	switch p := prop.(type) {
	case mpris.PlaybackStatusChanged:
		fmt.Printf("playback %s\n", mpris.PlaybackStatus(p))
	case mpris.LoopStatusChanged:
		fmt.Printf("loop %s\n", mpris.LoopStatus(p))
	case mpris.ShuffleChanged:
		fmt.Printf("shuffle %v\n", bool(p))
	case mpris.VolumeChanged:
		fmt.Printf("volume %.2f\n", float64(p))
	case mpris.MetadataChanged:
		title, _ := p.Metadata.Title()
		artist, _ := p.Metadata.Artist()
		fmt.Printf("track %s - %s\n", strings.Join(artist, ", "), title)
	case mpris.OtherChanged:
		logger.Debug("[cli] unmodeled property %s: %s", p.Name, p.Raw)
	default:
		fmt.Printf("%s changed\n", prop.PropertyName())
	}
}

func formatUs(us int64) string {
	return (time.Duration(us) * time.Microsecond).Round(time.Second).String()
}
