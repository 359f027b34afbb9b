package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(BackendURLEnv, "")

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BackendURL != defaultBackendURL {
		t.Fatalf("BackendURL = %q, want %q", cfg.BackendURL, defaultBackendURL)
	}
	if cfg.Game != defaultGame {
		t.Fatalf("Game = %q, want %q", cfg.Game, defaultGame)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("PollInterval = %v, want 30s", cfg.PollInterval)
	}
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Fatalf("LogLevel = %v, want info", cfg.LogLevel)
	}

	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
	if cfg.LogPath() != filepath.Join(wantLogDir, "podium.log") {
		t.Fatalf("LogPath = %q", cfg.LogPath())
	}
}

func TestLoad_ParsesAndTrimsConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(BackendURLEnv, "")

	path := writeConfig(t, `
backend_url = "  http://scores.local:9000  "
game = " AdventureGame "
container = " sidebar "
poll_seconds = 5
log_dir = "  ~/.podium/logs  "
log_level = "DEBUG"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BackendURL != "http://scores.local:9000" {
		t.Fatalf("BackendURL = %q", cfg.BackendURL)
	}
	if cfg.Game != "AdventureGame" || cfg.Container != "sidebar" {
		t.Fatalf("Game/Container = %q/%q", cfg.Game, cfg.Container)
	}
	if cfg.PollInterval != 5*time.Second {
		t.Fatalf("PollInterval = %v, want 5s", cfg.PollInterval)
	}
	if cfg.LogLevel != zerolog.DebugLevel {
		t.Fatalf("LogLevel = %v, want debug", cfg.LogLevel)
	}
	if !strings.HasPrefix(cfg.LogDir, home) {
		t.Fatalf("LogDir = %q, want it under HOME %q", cfg.LogDir, home)
	}
}

func TestLoad_EnvironmentOverridesBackendURL(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(BackendURLEnv, "https://prod.example.com")

	path := writeConfig(t, `backend_url = "http://file.example.com"`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BackendURL != "https://prod.example.com" {
		t.Fatalf("BackendURL = %q, want env override", cfg.BackendURL)
	}

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BackendURL != "https://prod.example.com" {
		t.Fatalf("BackendURL without file = %q, want env override", cfg.BackendURL)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(BackendURLEnv, "")

	path := writeConfig(t, `
backend_url = "   "
game = ""
log_dir = ""
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.BackendURL != defaultBackendURL || cfg.Game != defaultGame {
		t.Fatalf("BackendURL/Game = %q/%q, want defaults", cfg.BackendURL, cfg.Game)
	}
	wantLogDir, err := expandPath(defaultLogDir)
	if err != nil {
		t.Fatalf("expandPath(defaultLogDir) returned error: %v", err)
	}
	if cfg.LogDir != wantLogDir {
		t.Fatalf("LogDir = %q, want %q", cfg.LogDir, wantLogDir)
	}
}

func TestLoad_RejectsBadValues(t *testing.T) {
	cases := map[string]struct {
		body string
		want string
	}{
		"invalid toml":  {body: `backend_url = [`, want: "parse config"},
		"negative poll": {body: `poll_seconds = -1`, want: "poll_seconds"},
		"unknown level": {body: `log_level = "chatty"`, want: "log_level"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			if err == nil {
				t.Fatalf("Load returned nil error, want error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("Load error = %q, want it to mention %q", err.Error(), tc.want)
			}
		})
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestLogPath_DefaultsWhenLogDirEmpty(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	var cfg Config
	got := cfg.LogPath()
	if !strings.HasPrefix(got, home) {
		t.Fatalf("LogPath = %q, want it under HOME %q", got, home)
	}
	if !strings.HasSuffix(got, filepath.FromSlash("/podium.log")) {
		t.Fatalf("LogPath = %q, want it to end with /podium.log", got)
	}
}
