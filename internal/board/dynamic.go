package board

import (
	"context"
	"errors"

	"github.com/five82/podium/internal/state"
)

const (
	loadingDynamicMessage = "Loading dynamic leaderboard…"
	dynamicErrorMessage   = "Failed to load leaderboard"
	dynamicEmptyMessage   = "No scores yet"
)

type poller struct {
	cancel context.CancelFunc
}

// EnterDynamicMode shows the loading placeholder, starts the refresh poller
// and performs an immediate fetch. Fetch failures are rendered, not returned.
func (w *Widget) EnterDynamicMode(ctx context.Context) error {
	entered := w.update(func() bool {
		if !w.activeLocked() {
			return false
		}
		w.beginSessionLocked(state.ModeDynamic)
		w.failures = 0
		w.panel = state.PanelLoading
		w.message = loadingDynamicMessage
		w.startPollerLocked()
		return true
	})
	if !entered {
		return ErrNotMounted
	}
	_ = w.FetchGlobalBoard(ctx)
	return nil
}

// FetchGlobalBoard refreshes the global ranking. It is a no-op outside the
// dynamic mode. A result that arrives after the mode changed, or after a
// newer fetch was applied, is dropped.
func (w *Widget) FetchGlobalBoard(ctx context.Context) error {
	w.mu.Lock()
	if !w.activeLocked() || w.mode != state.ModeDynamic {
		w.mu.Unlock()
		return nil
	}
	session := w.session
	w.globalIssued++
	generation := w.globalIssued
	w.mu.Unlock()

	entries, err := w.store.FetchGlobal(ctx)

	w.update(func() bool {
		if w.session != session || w.mode != state.ModeDynamic {
			w.log.Debug().Err(err).Msg("discarding global fetch from previous session")
			return false
		}
		if generation < w.globalApplied {
			w.log.Debug().
				Uint64("generation", generation).
				Uint64("applied", w.globalApplied).
				Msg("discarding out-of-order global fetch")
			return false
		}
		w.globalApplied = generation
		if err != nil {
			w.failures++
			w.panel = state.PanelGlobalError
			w.message = dynamicErrorMessage
			w.log.Warn().Err(err).Int("failures", w.failures).Msg("global leaderboard fetch failed")
			return true
		}
		w.failures = 0
		w.global = entries
		if len(entries) == 0 {
			w.panel = state.PanelGlobalEmpty
			w.message = dynamicEmptyMessage
			return true
		}
		w.panel = state.PanelGlobal
		w.message = ""
		w.preview = state.HighScoreLabel(entries[0].User, entries[0].Score)
		return true
	})
	return err
}

// startPollerLocked replaces any running poller; at most one is ever active.
func (w *Widget) startPollerLocked() {
	w.stopPollerLocked()

	ctx, cancel := context.WithCancel(w.ctx)
	ticker := w.clock.NewTicker(w.interval)
	w.poll = &poller{cancel: cancel}
	w.pollers.Add(1)

	go func() {
		defer w.pollers.Add(-1)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.Chan():
				if err := w.FetchGlobalBoard(ctx); err != nil && !errors.Is(err, context.Canceled) {
					w.log.Debug().Err(err).Msg("poll tick failed; retrying next tick")
				}
			}
		}
	}()
}

func (w *Widget) stopPollerLocked() {
	if w.poll == nil {
		return
	}
	w.poll.cancel()
	w.poll = nil
}

// PollActive reports whether the refresh poller is scheduled.
func (w *Widget) PollActive() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.poll != nil
}
