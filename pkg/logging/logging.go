package logging

import (
	"log/slog"
	"os"

	"github.com/kkuglocal/campus-backend/pkg/env"
)

// Setup builds the process-wide logger: JSON to stderr in prod, text
// otherwise. The OTel log pipeline is attached separately through the
// otelslog loggers each package creates.
func Setup(mode env.Mode) *slog.Logger {
	opts := &slog.HandlerOptions{Level: mode.SlogLevel()}

	var handler slog.Handler
	if mode == env.Prod {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
