package configs

import (
	"io"
	"log/slog"
	"strings"
)

// Logger configures the process-wide slog logger. Request, repository and
// cache logs all go through the handler built here; trace correlation is
// left to the otel spans.
type Logger struct {
	// Level is one of debug, info, warn or error. Anything else means info.
	Level string `env:"LEVEL" envDefault:"info"`
	// Format is text or json.
	Format string `env:"FORMAT" envDefault:"text"`
	// Source adds the file and line of the log call to every record.
	Source bool `env:"SOURCE" envDefault:"false"`
}

func (c Logger) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// SlogFormat returns "json" or "text".
func (c Logger) SlogFormat() string {
	if strings.EqualFold(strings.TrimSpace(c.Format), "json") {
		return "json"
	}
	return "text"
}

// Handler builds the slog handler writing to w.
func (c Logger) Handler(w io.Writer) slog.Handler {
	opts := &slog.HandlerOptions{Level: c.SlogLevel(), AddSource: c.Source}
	if c.SlogFormat() == "json" {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}
