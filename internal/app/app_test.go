package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/five82/podium/internal/config"
	"github.com/five82/podium/internal/logtail"
)

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	path := writeConfig(t, "game = \"FromFile\"\npoll_seconds = 45\n")

	cfg, err := loadConfig(Options{ConfigPath: path, PollEvery: 5, Game: "  Tetris "})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Game != "Tetris" {
		t.Fatalf("Game = %q, want Tetris", cfg.Game)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("PollInterval = %v, want 5s", cfg.PollInterval)
	}

	cfg, err = loadConfig(Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Game != "FromFile" || cfg.PollInterval != 45*time.Second {
		t.Fatalf("file values not kept: %+v", cfg)
	}
}

func TestLoadConfig_WrapsErrors(t *testing.T) {
	path := writeConfig(t, "poll_seconds = -1\n")
	_, err := loadConfig(Options{ConfigPath: path})
	if err == nil || !strings.Contains(err.Error(), "load podium config") {
		t.Fatalf("err = %v, want wrapped config error", err)
	}
}

func TestLoadEnv_SetsBackendURL(t *testing.T) {
	t.Setenv(config.BackendURLEnv, "")
	os.Unsetenv(config.BackendURLEnv)

	envPath := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envPath, []byte(config.BackendURLEnv+"=http://scores.test:9000\n"), 0o644); err != nil {
		t.Fatalf("write env: %v", err)
	}
	if err := loadEnv(envPath); err != nil {
		t.Fatalf("loadEnv: %v", err)
	}

	cfg, err := loadConfig(Options{ConfigPath: writeConfig(t, "")})
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.BackendURL != "http://scores.test:9000" {
		t.Fatalf("BackendURL = %q", cfg.BackendURL)
	}
}

func TestLoadEnv_MissingFileIsFine(t *testing.T) {
	if err := loadEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Fatalf("loadEnv: %v", err)
	}
}

func TestSetupFileLogging_WritesJSONLines(t *testing.T) {
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})

	dir := filepath.Join(t.TempDir(), "state", "podium")
	closeLog, err := setupFileLogging(config.Config{LogDir: dir, LogLevel: zerolog.InfoLevel})
	if err != nil {
		t.Fatalf("setupFileLogging: %v", err)
	}
	log.Debug().Msg("hidden")
	log.Warn().Str("component", "leaderboard").Msg("global leaderboard fetch failed")
	closeLog()

	lines, err := logtail.Read(filepath.Join(dir, "podium.log"), 0)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("lines = %q, want only the warning", lines)
	}
	line, ok := logtail.Parse(lines[0])
	if !ok || line.Level != "WARN" || line.Component != "leaderboard" || line.Time.IsZero() {
		t.Fatalf("parsed = %+v ok=%v", line, ok)
	}
}
