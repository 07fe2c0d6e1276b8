// Package logger is the process-wide logger. Every line carries a tag naming
// the subsystem that wrote it ("API", "Cache", "Adjacency", ...).
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logger configuration options.
type Config struct {
	Level   string    // trace, debug, info, warn, error
	Format  string    // console or json
	Output  string    // stderr, stdout, discard, or a file path
	NoColor bool      // console format only
	Writer  io.Writer // overrides Output when set
}

// DefaultConfig returns a console logger at info level on stderr.
func DefaultConfig() Config {
	return Config{
		Level:   "info",
		Format:  "console",
		Output:  "stderr",
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

var (
	mu  sync.RWMutex
	log = newLogger(DefaultConfig())
)

// Configure replaces the process logger.
func Configure(cfg Config) {
	l := newLogger(cfg)
	mu.Lock()
	log = l
	mu.Unlock()
}

// L returns the current logger for callers that want structured fields.
func L() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := log
	return &l
}

func newLogger(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	w := cfg.Writer
	if w == nil {
		w = output(cfg.Output)
	}
	if cfg.Format != "json" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: cfg.NoColor, TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

func output(name string) io.Writer {
	switch strings.ToLower(name) {
	case "", "stderr":
		return os.Stderr
	case "stdout":
		return os.Stdout
	case "discard", "none":
		return io.Discard
	default:
		f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "logger: cannot open %s: %v, using stderr\n", name, err)
			return os.Stderr
		}
		return f
	}
}

// Debug logs a debug line under tag.
func Debug(tag, msg string) {
	L().Debug().Str("tag", tag).Msg(msg)
}

// Info logs an informational line under tag.
func Info(tag, msg string) {
	L().Info().Str("tag", tag).Msg(msg)
}

// Success logs a completed step under tag.
func Success(tag, msg string) {
	L().Info().Str("tag", tag).Bool("ok", true).Msg(msg)
}

// Warn logs a warning under tag.
func Warn(tag, msg string) {
	L().Warn().Str("tag", tag).Msg(msg)
}

// Error logs an error under tag.
func Error(tag, msg string) {
	L().Error().Str("tag", tag).Msg(msg)
}

// Banner logs the startup line.
func Banner(version string) {
	if version == "" {
		version = "dev"
	}
	L().Info().Str("tag", "RogueWar").Str("version", version).Msg("RogueWar client")
}

// Section logs a heading for a group of Stats lines.
func Section(title string) {
	L().Info().Str("tag", "Stats").Msg(title)
}

// Stats logs one key/value statistic.
func Stats(key string, value any) {
	L().Info().Str("tag", "Stats").Interface(key, value).Send()
}
