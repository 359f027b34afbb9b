package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
)

// Config captures what podium needs to find the backend and mount the widget.
type Config struct {
	BackendURL   string
	Game         string
	Container    string
	PollInterval time.Duration
	LogDir       string
	LogLevel     zerolog.Level
}

const (
	// BackendURLEnv overrides backend_url from the config file.
	BackendURLEnv = "PODIUM_BACKEND_URL"

	defaultConfigPath  = "~/.config/podium/config.toml"
	defaultLogDir      = "~/.local/state/podium"
	defaultBackendURL  = "http://localhost:8585"
	defaultGame        = "Global"
	defaultPollSeconds = 30
)

// Load locates and parses the podium config, falling back to defaults when
// missing. The backend URL environment override is applied last.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := defaults()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyEnv(&cfg)
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		BackendURL  string `toml:"backend_url"`
		Game        string `toml:"game"`
		Container   string `toml:"container"`
		PollSeconds int    `toml:"poll_seconds"`
		LogDir      string `toml:"log_dir"`
		LogLevel    string `toml:"log_level"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.BackendURL); v != "" {
		cfg.BackendURL = v
	}
	if v := strings.TrimSpace(raw.Game); v != "" {
		cfg.Game = v
	}
	cfg.Container = strings.TrimSpace(raw.Container)
	if raw.PollSeconds < 0 {
		return Config{}, fmt.Errorf("poll_seconds must be positive, got %d", raw.PollSeconds)
	}
	if raw.PollSeconds > 0 {
		cfg.PollInterval = time.Duration(raw.PollSeconds) * time.Second
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		level, err := zerolog.ParseLevel(strings.ToLower(v))
		if err != nil {
			return Config{}, fmt.Errorf("parse log_level: %w", err)
		}
		cfg.LogLevel = level
	}

	applyEnv(&cfg)
	return cfg, nil
}

// LogPath returns the path to the podium log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return filepath.Join(mustExpand(defaultLogDir), "podium.log")
	}
	return filepath.Join(c.LogDir, "podium.log")
}

// DefaultPath returns the expanded default config location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func defaults() Config {
	return Config{
		BackendURL:   defaultBackendURL,
		Game:         defaultGame,
		PollInterval: defaultPollSeconds * time.Second,
		LogDir:       mustExpand(defaultLogDir),
		LogLevel:     zerolog.InfoLevel,
	}
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(BackendURLEnv)); v != "" {
		cfg.BackendURL = v
	}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
