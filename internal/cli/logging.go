package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"paperboard/internal/store"
)

// setupLogging installs the default slog logger. The TUI owns the terminal, so logs go to
// the configured file or nowhere.
func setupLogging(cfg store.LogConfig) (func() error, error) {
	var w io.Writer = io.Discard
	closeFn := func() error { return nil }
	if path := strings.TrimSpace(cfg.File); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = f.Close
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return closeFn, nil
}
