package board

import (
	"context"
	"fmt"

	"github.com/five82/podium/internal/state"
)

// ShowTypeSelection renders the mode selector.
func (w *Widget) ShowTypeSelection() {
	w.update(func() bool {
		if !w.activeLocked() {
			return false
		}
		w.showTypeSelectionLocked()
		return true
	})
}

func (w *Widget) showTypeSelectionLocked() {
	w.selecting = true
	w.panel = state.PanelSelector
	w.message = ""
}

// SelectMode leaves the selector and hands off to the chosen mode.
func (w *Widget) SelectMode(ctx context.Context, mode state.Mode) error {
	switch mode {
	case state.ModeDynamic:
		return w.EnterDynamicMode(ctx)
	case state.ModeElementary:
		return w.EnterElementaryMode(ctx)
	default:
		return fmt.Errorf("cannot select mode %s", mode)
	}
}

// GoBack cancels the active mode and returns to the selector. Elementary
// entries fetched earlier stay cached but are never reused: entering the
// mode again always re-fetches.
func (w *Widget) GoBack() {
	w.update(func() bool {
		if !w.activeLocked() {
			return false
		}
		w.stopPollerLocked()
		w.session++
		w.mode = state.ModeNone
		w.preview = state.PreviewPlaceholder
		w.showTypeSelectionLocked()
		return true
	})
}
