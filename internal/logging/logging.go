// Package logging builds the slog logger used by the CLI and adapts it to
// the calculation engine's Logger interface.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/rpgo/calculator/pkg/calc"
)

// New creates a logger writing to w. Level is one of debug, info, warn or
// error; format is console or json.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	var slogLevel slog.Level
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	opts := &slog.HandlerOptions{
		Level: slogLevel,
	}

	var handler slog.Handler
	switch format {
	case "console":
		handler = slog.NewTextHandler(w, opts)
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}

	return slog.New(handler), nil
}

// Adapter routes engine log calls to a slog.Logger.
type Adapter struct {
	Logger *slog.Logger
}

var _ calc.Logger = Adapter{}

func (a Adapter) Debugf(format string, args ...any) { a.Logger.Debug(fmt.Sprintf(format, args...)) }
func (a Adapter) Infof(format string, args ...any)  { a.Logger.Info(fmt.Sprintf(format, args...)) }
func (a Adapter) Warnf(format string, args ...any)  { a.Logger.Warn(fmt.Sprintf(format, args...)) }
func (a Adapter) Errorf(format string, args ...any) { a.Logger.Error(fmt.Sprintf(format, args...)) }
