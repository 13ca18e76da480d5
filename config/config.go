package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/b0bbywan/go-mpris-remote/logger"
)

const (
	AppName    = "mpris-remote"
	AppVersion = "0.1.0"
)

type Config struct {
	// Player is the default player name used when the command line does
	// not name one, e.g. "vlc" for org.mpris.MediaPlayer2.vlc.
	Player string

	// Timeout bounds every D-Bus call. A negative value disables
	// deadlines entirely.
	Timeout time.Duration

	// PullTimeout bounds each signal pull in follow mode.
	PullTimeout time.Duration

	LogLevel        logger.Level
	ComponentLevels map[string]logger.Level
}

// parseLogLevel converts a string to a logger.Level
func parseLogLevel(levelStr string) logger.Level {
	switch strings.ToUpper(levelStr) {
	case "DEBUG":
		return logger.DEBUG
	case "INFO":
		return logger.INFO
	case "WARN":
		return logger.WARN
	case "ERROR":
		return logger.ERROR
	case "FATAL":
		return logger.FATAL
	default:
		return logger.WARN // default
	}
}

func New() (*Config, error) {
	viper.SetDefault("player", "")
	viper.SetDefault("timeout", "5s")
	viper.SetDefault("pulltimeout", "2s")
	viper.SetDefault("LogLevel", "WARN")

	// Load from configuration file and environment variables
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(filepath.Join("/etc", AppName))
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", AppName))
	}

	if err := viper.ReadInConfig(); err != nil {
		// Config file is optional, continue with defaults if not found
		if _, isNotFound := err.(viper.ConfigFileNotFoundError); !isNotFound {
			logger.Warn("failed to read config: %v", err)
		}
	}

	timeout := viper.GetDuration("timeout")
	if timeout == 0 {
		timeout = 5 * time.Second
	}

	pullTimeout := viper.GetDuration("pulltimeout")
	if pullTimeout == 0 {
		pullTimeout = 2 * time.Second
	}

	componentLevels := map[string]logger.Level{}
	for comp, lvl := range viper.GetStringMapString("loglevels") {
		componentLevels[comp] = parseLogLevel(lvl)
	}

	cfg := Config{
		Player:          viper.GetString("player"),
		Timeout:         timeout,
		PullTimeout:     pullTimeout,
		LogLevel:        parseLogLevel(viper.GetString("LogLevel")),
		ComponentLevels: componentLevels,
	}

	return &cfg, nil
}

// Watch re-applies log levels when the config file changes on disk. Only
// log settings reload live; connection settings stay fixed for the process
// lifetime.
func Watch() {
	viper.OnConfigChange(func(e fsnotify.Event) {
		logger.Debug("[config] reloaded %s", e.Name)
		logger.SetLevel(parseLogLevel(viper.GetString("LogLevel")))

		componentLevels := map[string]logger.Level{}
		for comp, lvl := range viper.GetStringMapString("loglevels") {
			componentLevels[comp] = parseLogLevel(lvl)
		}
		logger.SetComponentLevels(componentLevels)
	})
	viper.WatchConfig()
}
