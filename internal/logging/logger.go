package logging

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/pkgerrors"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds logger configuration
type Config struct {
	Level   string
	LogFile string
	NoColor bool

	// Console defaults to os.Stderr. Status lines own stdout.
	Console io.Writer
}

// NewLogger creates a zerolog logger writing to the console and, when LogFile is set,
// to a rotating file. The file always records at debug level so that every executed
// command is kept even when the console is quiet.
func NewLogger(cfg Config) *zerolog.Logger {
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	level := parseLevel(cfg.Level)

	console := cfg.Console
	if console == nil {
		console = os.Stderr
	}

	noColor := cfg.NoColor || os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb"

	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}

	writers := []io.Writer{levelFilter{w: consoleWriter, min: level}}

	if cfg.LogFile != "" {
		dir := filepath.Dir(cfg.LogFile)
		if err := os.MkdirAll(dir, 0755); err == nil {
			writers = append(writers, &lumberjack.Logger{
				Filename:   cfg.LogFile,
				MaxSize:    5, // MB
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			})
		}
	}

	minLevel := level
	if cfg.LogFile != "" && minLevel > zerolog.DebugLevel {
		minLevel = zerolog.DebugLevel
	}

	logger := zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(minLevel).
		With().
		Timestamp().
		Logger()

	return &logger
}

// levelFilter drops events below min before they reach the wrapped writer
type levelFilter struct {
	w   io.Writer
	min zerolog.Level
}

func (f levelFilter) Write(p []byte) (int, error) {
	return f.w.Write(p)
}

func (f levelFilter) WriteLevel(l zerolog.Level, p []byte) (int, error) {
	if l < f.min {
		return len(p), nil
	}
	return f.w.Write(p)
}

// parseLevel converts string level to zerolog.Level
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.WarnLevel
	}
}

// NewTestLogger creates a logger for testing that writes to a buffer
func NewTestLogger(w io.Writer) *zerolog.Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	return &logger
}

// Nop returns a logger that discards everything
func Nop() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}
