package emulator

import (
	"io"
	"log/slog"

	slogmulti "github.com/samber/slog-multi"
)

// NewLogger creates the trace logger.
// Records go to terminal as text without timestamps and, if file is not
// nil, to file as JSON.
func NewLogger(terminal io.Writer, file io.Writer) *slog.Logger {
	var handlers []slog.Handler

	if terminal != nil {
		handlers = append(handlers, slog.NewTextHandler(
			terminal,
			&slog.HandlerOptions{
				ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey && len(groups) == 0 {
						return slog.Attr{}
					}
					return a
				},
			},
		))
	}

	if file != nil {
		handlers = append(handlers, slog.NewJSONHandler(file, nil))
	}

	return slog.New(slogmulti.Fanout(handlers...))
}
