package board

import (
	"context"
	"fmt"

	"github.com/five82/podium/internal/scores"
	"github.com/five82/podium/internal/state"
)

const (
	loadingElementaryMessage = "Loading elementary leaderboard…"
	// DeletePrompt is the confirmation asked before deleting an entry.
	DeletePrompt = "Are you sure you want to delete this score?"
)

// EnterElementaryMode switches to the elementary board and fetches its
// entries. The renderer shows the table and form, or only the form when the
// board is empty.
func (w *Widget) EnterElementaryMode(ctx context.Context) error {
	entered := w.update(func() bool {
		if !w.activeLocked() {
			return false
		}
		w.beginSessionLocked(state.ModeElementary)
		w.panel = state.PanelLoading
		w.message = loadingElementaryMessage
		return true
	})
	if !entered {
		return ErrNotMounted
	}
	return w.FetchEntries(ctx)
}

// SubmitScore validates the form values and creates a new entry for the
// widget's game. On success the board is re-fetched; the created entry is
// never appended locally. Callers clear their inputs when nil is returned.
func (w *Widget) SubmitScore(ctx context.Context, name, score string) error {
	if !w.inMode(state.ModeElementary) {
		return ErrWrongMode
	}

	entry, err := ValidateSubmission(name, score, w.gameName)
	if err != nil {
		w.alert(err.Error())
		return err
	}

	created, err := w.store.CreateElementary(ctx, entry)
	if err != nil {
		w.log.Error().Err(err).Str("user", entry.User).Int64("score", entry.Score).Msg("saving score failed")
		w.alert(failureMessage("save score", err))
		return fmt.Errorf("create entry: %w", err)
	}
	w.log.Info().Str("id", created.ID.String()).Str("user", entry.User).Int64("score", entry.Score).Msg("score saved")

	if err := w.FetchEntries(ctx); err != nil {
		w.log.Warn().Err(err).Msg("refresh after save failed")
	}
	return nil
}

// RemoveScore deletes the entry with id after the user confirms. A declined
// confirmation sends nothing. Failures leave the current board untouched.
func (w *Widget) RemoveScore(ctx context.Context, id scores.EntryID) error {
	if !w.inMode(state.ModeElementary) {
		return ErrWrongMode
	}
	if id.IsZero() {
		return fmt.Errorf("entry id required")
	}
	if w.prompter == nil || !w.prompter.Confirm(ctx, DeletePrompt) {
		return nil
	}

	if err := w.store.DeleteElementary(ctx, id); err != nil {
		w.log.Error().Err(err).Str("id", id.String()).Msg("deleting score failed")
		w.alert(failureMessage("delete score", err))
		return fmt.Errorf("delete entry %s: %w", id, err)
	}
	w.log.Info().Str("id", id.String()).Msg("score deleted")

	if err := w.FetchEntries(ctx); err != nil {
		w.log.Warn().Err(err).Msg("refresh after delete failed")
	}
	return nil
}

// FetchEntries replaces the cached elementary entries with the backend's
// current list. A failed fetch empties the cache instead of keeping a stale
// view. Results from an older fetch than the last one applied, or from a
// previous mode session, are dropped.
func (w *Widget) FetchEntries(ctx context.Context) error {
	w.mu.Lock()
	if !w.activeLocked() || w.mode != state.ModeElementary {
		w.mu.Unlock()
		return ErrWrongMode
	}
	session := w.session
	w.fetchIssued++
	generation := w.fetchIssued
	w.mu.Unlock()

	entries, err := w.store.FetchElementary(ctx)

	w.update(func() bool {
		if w.session != session || w.mode != state.ModeElementary {
			w.log.Debug().Uint64("generation", generation).Msg("discarding elementary fetch from previous session")
			return false
		}
		if generation < w.fetchApplied {
			w.log.Debug().
				Uint64("generation", generation).
				Uint64("applied", w.fetchApplied).
				Msg("discarding out-of-order elementary fetch")
			return false
		}
		w.fetchApplied = generation
		if err != nil {
			w.log.Warn().Err(err).Msg("elementary leaderboard fetch failed; showing empty board")
			w.entries = nil
		} else {
			w.entries = entries
		}
		w.panel = state.PanelElementary
		w.message = ""
		if len(w.entries) > 0 {
			top := w.entries[0]
			w.preview = state.HighScoreLabel(top.User, top.Score)
		}
		return true
	})

	if err != nil {
		return fmt.Errorf("fetch elementary entries: %w", err)
	}
	return nil
}

func (w *Widget) inMode(mode state.Mode) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.activeLocked() && w.mode == mode
}
