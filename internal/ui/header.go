package ui

import (
	"fmt"
	"strings"

	"github.com/five82/podium/internal/state"
)

// renderHeader renders the status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newSurface(m.theme.Surface)
	snap := m.snapshot
	compact := m.width < 100

	parts := []string{bg.Paint("podium", styles.Logo)}

	if m.widget != nil {
		parts = append(parts,
			bg.Pair("Game:", styles.MutedText, sanitize(m.widget.GameName()), styles.Text))
	}

	mode := "choosing"
	if snap.Mode != state.ModeNone {
		mode = snap.Mode.String()
	}
	parts = append(parts, bg.Pair("Mode:", styles.MutedText, mode, styles.AccentText))

	switch {
	case snap.IsOffline():
		parts = append(parts, bg.Paint("● OFFLINE", styles.DangerText))
	case snap.PollActive:
		parts = append(parts, bg.Paint("● LIVE", styles.SuccessText))
	}

	if !snap.Visible && snap.Mounted {
		parts = append(parts, bg.Paint("hidden", styles.WarningText))
	}

	if !compact && m.backendURL != "" {
		parts = append(parts, bg.Paint(truncateMiddle(m.backendURL, 40), styles.FaintText))
	}

	if !snap.LastUpdated.IsZero() && !compact {
		parts = append(parts, bg.Paint(snap.LastUpdated.Format("15:04:05"), styles.MutedText))
	}

	if m.busy != "" {
		parts = append(parts, m.spinner.View()+bg.Gap(1)+bg.Paint(m.busy, styles.WarningText))
	}

	if m.statusMsg != "" {
		parts = append(parts,
			bg.Pair("!", styles.WarningText.Bold(true), truncateMiddle(m.statusMsg, 60), styles.WarningText))
	}

	return styles.Header.Width(m.width).MaxHeight(1).Render(bg.Join(parts, 2))
}

// renderCommandBar renders the key hints for the current context.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := newSurface(m.theme.Surface)

	var hints [][2]string
	snap := m.snapshot
	switch {
	case m.currentView == ViewLogs:
		hints = [][2]string{{"space", "follow"}, {"j/k", "scroll"}, {"r", "reload"}, {"esc", "back"}}
	case m.form.active:
		hints = [][2]string{{"tab", "field"}, {"enter", "save"}, {"esc", "cancel"}}
	case !snap.Visible:
		hints = [][2]string{{"v", "show"}}
	case !snap.Open:
		hints = [][2]string{{"o", "expand"}, {"v", "hide"}}
	case snap.Panel == state.PanelSelector:
		hints = [][2]string{{"1", "dynamic"}, {"2", "elementary"}, {"o", "collapse"}}
	case snap.Panel == state.PanelElementary:
		hints = [][2]string{{"a", "add"}, {"x", "delete"}, {"r", "refresh"}, {"b", "back"}}
	default:
		hints = [][2]string{{"r", "refresh"}, {"b", "back"}, {"o", "collapse"}}
	}
	hints = append(hints, [2]string{"L", "logs"}, [2]string{"?", "help"})

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, bg.Pair(h[0], styles.AccentText, h[1], styles.MutedText))
	}
	return styles.Footer.Width(m.width).MaxHeight(1).Render(bg.Join(parts, 2))
}

// renderPage renders the host page body: the game surface the widget sits on.
func (m Model) renderPage(width, height int) string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	gameName := "Global"
	if m.widget != nil {
		gameName = sanitize(m.widget.GameName())
	}

	lines := []string{
		styles.Text.Bold(true).Render(gameName),
		"",
		styles.MutedText.Render("Scores are recorded under this game."),
	}
	if m.backendURL != "" {
		lines = append(lines, styles.FaintText.Render("Backend "+m.backendURL))
	}
	if placement := m.placementNote(); placement != "" {
		lines = append(lines, "", styles.FaintText.Render(placement))
	}
	return m.renderPanel(gameName, strings.Join(lines, "\n"), width, height, false)
}

func (m Model) placementNote() string {
	snap := m.snapshot
	if !snap.Mounted {
		return ""
	}
	if snap.Placement == state.PlacementEmbedded {
		return fmt.Sprintf("Leaderboard embedded in %s", snap.HostID)
	}
	return "Leaderboard floating over the page"
}

// truncateMiddle shortens s to limit runes, keeping both ends.
func truncateMiddle(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit || limit < 5 {
		return s
	}
	head := (limit - 1) / 2
	tail := limit - 1 - head
	return string(runes[:head]) + "…" + string(runes[len(runes)-tail:])
}
