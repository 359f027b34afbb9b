package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/five82/podium/internal/board"
	"github.com/five82/podium/internal/config"
	"github.com/five82/podium/internal/prefs"
	"github.com/five82/podium/internal/scores"
	"github.com/five82/podium/internal/ui"
)

// Options configure the podium application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/podium/prefs.toml
	EnvFile    string // empty uses .env in the working directory
	PollEvery  int    // seconds; zero uses the config value
	Game       string // overrides the configured game name
}

// Run boots the podium TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	envErr := loadEnv(opts.EnvFile)

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	closeLog, err := setupFileLogging(cfg)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closeLog()
	if envErr != nil {
		log.Warn().Err(envErr).Msg("could not load .env file")
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		log.Warn().Err(err).Msg("load preferences")
	}

	client, err := scores.NewClient(cfg.BackendURL)
	if err != nil {
		return fmt.Errorf("init leaderboard client: %w", err)
	}

	log.Info().
		Str("backend", client.BaseURL()).
		Str("game", cfg.Game).
		Str("container", cfg.Container).
		Dur("poll", cfg.PollInterval).
		Msg("podium starting")

	bridge := ui.NewBridge()
	widget := board.New(board.Options{
		Context:      ctx,
		Store:        client,
		GameName:     cfg.Game,
		PollInterval: cfg.PollInterval,
		ParentID:     cfg.Container,
		Prompter:     bridge,
		OnChange:     bridge.Changed,
	})

	return ui.Run(ui.Options{
		Context:    ctx,
		Widget:     widget,
		Bridge:     bridge,
		BackendURL: client.BaseURL(),
		LogPath:    cfg.LogPath(),
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
		Player:     userPrefs.Player,
	})
}

// loadEnv applies a .env file so PODIUM_BACKEND_URL can be set per checkout.
// A missing file is not an error.
func loadEnv(path string) error {
	if strings.TrimSpace(path) == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func loadConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load podium config: %w", err)
	}
	if opts.PollEvery > 0 {
		cfg.PollInterval = time.Duration(opts.PollEvery) * time.Second
	}
	if game := strings.TrimSpace(opts.Game); game != "" {
		cfg.Game = game
	}
	return cfg, nil
}
