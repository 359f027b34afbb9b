package board

import (
	"github.com/five82/podium/internal/state"
)

// StylesheetID is the well-known id of the shared widget stylesheet.
const StylesheetID = "leaderboard-styles"

// Mount attaches the widget to host. The widget embeds into the configured
// parent container when host has it and falls back to an overlay otherwise.
// Mounting twice, or after Destroy, is a no-op.
func (w *Widget) Mount(host Host) {
	w.update(func() bool {
		if w.mounted || w.destroyed {
			return false
		}
		if host != nil {
			host.EnsureStylesheet(StylesheetID)
		}
		w.placement = state.PlacementOverlay
		if w.parentID != "" && host != nil && host.HasContainer(w.parentID) {
			w.placement = state.PlacementEmbedded
		}
		w.mounted = true
		w.showTypeSelectionLocked()
		w.log.Info().
			Str("placement", w.placement.String()).
			Str("parent", w.parentID).
			Msg("leaderboard mounted")
		return true
	})
}

// ToggleOpen flips between the expanded board and the collapsed preview and
// returns the new state.
func (w *Widget) ToggleOpen() bool {
	var open bool
	w.update(func() bool {
		if !w.activeLocked() {
			open = w.open
			return false
		}
		w.open = !w.open
		open = w.open
		return true
	})
	return open
}

// ToggleVisibility hides or shows the whole widget without touching modes.
func (w *Widget) ToggleVisibility() bool {
	var visible bool
	w.update(func() bool {
		if !w.activeLocked() {
			visible = w.visible
			return false
		}
		w.visible = !w.visible
		visible = w.visible
		return true
	})
	return visible
}

// IsVisible reports whether the widget is mounted and shown.
func (w *Widget) IsVisible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.activeLocked() && w.visible
}

// Destroy stops the poller and unmounts the widget. It is safe to call more
// than once.
func (w *Widget) Destroy() {
	w.update(func() bool {
		if w.destroyed {
			return false
		}
		w.stopPollerLocked()
		w.session++
		w.destroyed = true
		w.mounted = false
		w.panel = state.PanelHidden
		w.cancel()
		w.log.Info().Msg("leaderboard destroyed")
		return true
	})
}
