package main

import (
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/rugwirobaker/uptime/internal/config"
)

var logLevel = new(slog.LevelVar)

// configureLogger installs the default slog logger. Only warnings and
// errors are logged unless debug is on, so a healthy run prints nothing
// but the report. The returned func closes the log file, if any.
func configureLogger(c *config.Config, stderr io.Writer) (func() error, error) {
	if c.Log.Debug {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelWarn)
	}

	opts := slog.HandlerOptions{Level: logLevel}

	if !c.Log.Timestamp {
		opts.ReplaceAttr = removeTime
	}

	w := stderr
	closer := func() error { return nil }
	if c.Log.Path != nil && *c.Log.Path != "" {
		file := &lumberjack.Logger{
			Filename:   *c.Log.Path,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
		}
		w, closer = file, file.Close
	}

	var handler slog.Handler
	switch format := c.Log.Format; format {
	case "text":
		handler = slog.NewTextHandler(w, &opts)
	case "json":
		handler = slog.NewJSONHandler(w, &opts)
	default:
		return nil, fmt.Errorf("invalid log format: %q", format)
	}

	slog.SetDefault(slog.New(handler))
	return closer, nil
}

// removeTime removes the "time" field from slog.
func removeTime(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{}
	}
	return a
}
