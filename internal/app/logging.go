package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/five82/podium/internal/config"
)

// setupFileLogging points the global logger at the podium log file. The
// terminal belongs to the TUI, so nothing is written to stderr.
func setupFileLogging(cfg config.Config) (func(), error) {
	path := cfg.LogPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = zerolog.New(file).With().Timestamp().Logger()

	return func() { _ = file.Close() }, nil
}

// setupConsoleLogging sends human-readable logs to w.
func setupConsoleLogging(w io.Writer, level zerolog.Level) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(level)
}
