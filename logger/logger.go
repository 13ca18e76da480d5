package logger

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
	FATAL
)

var levelNames = map[Level]string{
	DEBUG: "DEBUG",
	INFO:  "INFO ",
	WARN:  "WARN ",
	ERROR: "ERROR",
	FATAL: "FATAL",
}

var journalPriorities = map[Level]journal.Priority{
	DEBUG: journal.PriDebug,
	INFO:  journal.PriInfo,
	WARN:  journal.PriWarning,
	ERROR: journal.PriErr,
	FATAL: journal.PriCrit,
}

type Logger struct {
	level           Level
	componentLevels map[string]Level
	logger          *log.Logger

	// When running as a systemd unit, write straight to the journal so
	// entries keep their priority instead of arriving as flat stderr lines.
	journald bool
}

// Global logger instance
var defaultLogger *Logger

func init() {
	defaultLogger = New(INFO)
}

// New creates a new logger with the specified level
func New(level Level) *Logger {
	return &Logger{
		level:           level,
		componentLevels: map[string]Level{},
		logger:          log.New(os.Stderr, "", log.LstdFlags),
		journald:        journal.Enabled() && os.Getenv("INVOCATION_ID") != "",
	}
}

// SetLevel sets the global logger level
func SetLevel(level Level) {
	defaultLogger.level = level
}

// SetComponentLevels sets per-component level overrides.
// Keys match the [component] prefix used in log messages (e.g. "mpris", "cli").
func SetComponentLevels(levels map[string]Level) {
	defaultLogger.componentLevels = levels
}

// extractComponent returns the component name from a "[component] ..." message, or "".
func extractComponent(msg string) string {
	if len(msg) < 3 || msg[0] != '[' {
		return ""
	}
	end := strings.IndexByte(msg[1:], ']')
	if end < 0 {
		return ""
	}
	return msg[1 : end+1]
}

// shouldLog checks if a message at this level should be logged,
// applying a component-specific override when the message carries a
// [component] prefix.
func (l *Logger) shouldLog(level Level, msg string) bool {
	if comp := extractComponent(msg); comp != "" {
		if compLevel, ok := l.componentLevels[comp]; ok {
			return level >= compLevel
		}
	}
	return level >= l.level
}

// format creates a formatted message with level prefix
func (l *Logger) format(level Level, msg string) string {
	return fmt.Sprintf("[%s] %s", levelNames[level], msg)
}

func (l *Logger) output(level Level, msg string) {
	if l.journald {
		if err := journal.Send(msg, journalPriorities[level], nil); err == nil {
			return
		}
		// Journal went away; fall back to stderr.
	}
	l.logger.Println(l.format(level, msg))
}

func logAt(level Level, msg string, args ...interface{}) {
	if defaultLogger.shouldLog(level, msg) {
		defaultLogger.output(level, fmt.Sprintf(msg, args...))
	}
}

// Debug logs a debug message
func Debug(msg string, args ...interface{}) { logAt(DEBUG, msg, args...) }

// Info logs an info message
func Info(msg string, args ...interface{}) { logAt(INFO, msg, args...) }

// Warn logs a warning message
func Warn(msg string, args ...interface{}) { logAt(WARN, msg, args...) }

// Error logs an error message
func Error(msg string, args ...interface{}) { logAt(ERROR, msg, args...) }

// Fatal logs a fatal message and exits
func Fatal(msg string, args ...interface{}) {
	defaultLogger.output(FATAL, fmt.Sprintf(msg, args...))
	os.Exit(1)
}
