package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// newLogger creates the App's isolated slog.Logger; it never touches the
// process-global default. Level strings are slog's own names ("debug",
// "info", "warn", "error"). The CLI validates them before the App is
// built, so an unknown level here is a programmer error.
func newLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level // zero value is info
	if levelStr != "" {
		if err := level.UnmarshalText([]byte(levelStr)); err != nil {
			panic(fmt.Sprintf("invalid log level %q", levelStr))
		}
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(formatStr, "json") {
		return slog.New(slog.NewJSONHandler(outW, opts))
	}
	return slog.New(slog.NewTextHandler(outW, opts))
}
