package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/five82/podium/internal/board"
	"github.com/five82/podium/internal/markup"
	"github.com/five82/podium/internal/scores"
	"github.com/five82/podium/internal/state"
)

// ExportOptions configure a one-shot HTML render.
type ExportOptions struct {
	Options
	Mode      string        // selector, dynamic or elementary
	Retries   int           // fetch attempts before rendering the error state
	RetryBase time.Duration // first backoff; zero uses 2s
	LogOutput io.Writer     // nil uses stderr
	Clock     clockwork.Clock
}

// Export renders one expanded widget as an HTML fragment to w. The page it
// targets is assumed to declare the configured container.
func Export(ctx context.Context, opts ExportOptions, w io.Writer) error {
	envErr := loadEnv(opts.EnvFile)

	cfg, err := loadConfig(opts.Options)
	if err != nil {
		return err
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stderr
	}
	setupConsoleLogging(out, cfg.LogLevel)
	if envErr != nil {
		log.Warn().Err(envErr).Msg("could not load .env file")
	}

	mode, err := state.ParseMode(opts.Mode)
	if err != nil {
		return err
	}

	client, err := scores.NewClient(cfg.BackendURL)
	if err != nil {
		return fmt.Errorf("init leaderboard client: %w", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	doc := markup.NewDocument(cfg.Container)
	widget := board.New(board.Options{
		Context:      ctx,
		Store:        client,
		GameName:     cfg.Game,
		PollInterval: cfg.PollInterval,
		ParentID:     cfg.Container,
		Clock:        clock,
	})
	defer widget.Destroy()

	widget.Mount(doc)
	widget.ToggleOpen()

	if mode != state.ModeNone {
		if err := enterForExport(ctx, widget, mode, clock, opts); err != nil {
			log.Warn().Err(err).Str("mode", mode.String()).Msg("rendering leaderboard without data")
		}
	}

	if err := doc.Write(w, widget.Snapshot()); err != nil {
		return fmt.Errorf("write html: %w", err)
	}
	return nil
}

// enterForExport switches the widget into mode, retrying the board fetch
// with backoff while the backend is unreachable.
func enterForExport(ctx context.Context, widget *board.Widget, mode state.Mode, clock clockwork.Clock, opts ExportOptions) error {
	refresh := widget.FetchEntries
	if mode == state.ModeDynamic {
		refresh = widget.FetchGlobalBoard
	}

	entered := false
	return retryFetch(ctx, clock, opts.Retries, opts.RetryBase, func(ctx context.Context) error {
		if entered {
			return refresh(ctx)
		}
		entered = true
		if err := widget.SelectMode(ctx, mode); err != nil {
			return err
		}
		// Entering dynamic mode keeps the failure on the panel.
		if widget.Snapshot().Panel == state.PanelGlobalError {
			return errBoardUnavailable
		}
		return nil
	})
}

var errBoardUnavailable = errors.New("global leaderboard unavailable")
