package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/podium/internal/state"
)

var modeChoices = []struct {
	mode  state.Mode
	label string
}{
	{state.ModeDynamic, "Dynamic Leaderboard"},
	{state.ModeElementary, "Elementary Leaderboard"},
}

// renderWidget renders the whole widget box from the current snapshot. The
// box is rebuilt from scratch on every frame. A hidden or unmounted widget
// renders as the empty string.
func (m Model) renderWidget(width, height int) string {
	snap := m.snapshot
	if !snap.Mounted || !snap.Visible || width < 12 {
		return ""
	}

	var lines []string
	if snap.Open {
		lines = m.renderListRegion(width-4, max(height-2, 1))
	}
	boxHeight := len(lines) + 2
	if snap.Placement == state.PlacementEmbedded && snap.HostID == ContainerSidebar && m.width >= LayoutCompactWidth {
		boxHeight = height
	}
	boxHeight = min(boxHeight, max(height, 2))

	return m.renderBox(m.widgetTitle(), strings.Join(lines, "\n"), width, boxHeight, m.form.active)
}

func (m Model) widgetTitle() string {
	snap := m.snapshot
	toggle := "+"
	if snap.Open {
		toggle = "−"
	}
	title := snap.HeaderLabel() + " [" + toggle + "]"
	if snap.BackVisible() {
		title = "← Back  " + title
	}
	return title
}

// renderListRegion returns the list region lines for the active panel.
func (m Model) renderListRegion(width, height int) []string {
	styles := m.theme.Styles().WithBackground(m.boxBg())
	snap := m.snapshot

	switch snap.Panel {
	case state.PanelSelector:
		return m.renderSelector(styles)
	case state.PanelLoading:
		return []string{m.spinner.View() + styles.MutedText.Render(" "+snap.Message)}
	case state.PanelGlobalError:
		lines := []string{styles.DangerText.Render(snap.Message)}
		if snap.IsOffline() {
			lines = append(lines, styles.FaintText.Render(
				fmt.Sprintf("%d failed refreshes, retrying", snap.ConsecutiveFailures)))
		}
		return lines
	case state.PanelGlobalEmpty:
		return []string{styles.MutedText.Render(snap.Message)}
	case state.PanelGlobal:
		return m.renderGlobalTable(styles, width, height)
	case state.PanelElementary:
		return m.renderElementary(styles, width, height)
	}
	return nil
}

func (m Model) renderSelector(styles Styles) []string {
	lines := []string{styles.Text.Bold(true).Render("Choose Leaderboard Type"), ""}
	for i, choice := range modeChoices {
		cursor := "  "
		style := styles.MutedText
		if i == m.modeCursor {
			cursor = "▸ "
			style = styles.AccentText.Bold(true)
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s%d  %s", cursor, i+1, choice.label)))
	}
	return lines
}

func (m Model) renderGlobalTable(styles Styles, width, height int) []string {
	rows := m.snapshot.Global
	scoreW, rankW := 9, 4
	nameW := max((width-rankW-scoreW-3)/2, 4)
	gameW := max(width-rankW-scoreW-nameW-3, 4)

	lines := []string{styles.FaintText.Render(
		pad("#", rankW) + " " + pad("Player", nameW) + " " + pad("Game", gameW) + " " + padLeft("Score", scoreW))}

	limit := max(height-1, 1)
	for i, e := range rows {
		if i >= limit {
			lines = append(lines, styles.FaintText.Render(fmt.Sprintf("… %d more", len(rows)-i)))
			break
		}
		rank := state.Rank(i)
		lines = append(lines,
			styles.RankStyle(rank).Render(pad(fmt.Sprintf("%d", rank), rankW))+" "+
				styles.Text.Render(pad(sanitize(e.User), nameW))+" "+
				styles.MutedText.Render(pad(sanitize(e.Game), gameW))+" "+
				styles.Text.Render(padLeft(state.FormatScore(e.Score), scoreW)))
	}
	return lines
}

func (m Model) renderElementary(styles Styles, width, height int) []string {
	entries := m.snapshot.Entries
	form := m.renderForm(styles, width)
	if len(entries) == 0 {
		return form
	}

	scoreW, rankW := 10, 4
	nameW := max(width-rankW-scoreW-2, 4)
	lines := []string{styles.FaintText.Render(
		pad("#", rankW) + " " + pad("Player", nameW) + " " + padLeft("Score", scoreW))}

	// Keep the selected row in view when the table is taller than the box.
	maxRows := max(height-len(form)-2, 1)
	start := 0
	if m.selectedRow >= maxRows {
		start = m.selectedRow - maxRows + 1
	}
	end := min(start+maxRows, len(entries))

	for i := start; i < end; i++ {
		e := entries[i]
		rank := state.Rank(i)
		row := styles.RankStyle(rank).Render(pad(fmt.Sprintf("%d", rank), rankW)) + " " +
			styles.Text.Render(pad(sanitize(e.User), nameW)) + " " +
			styles.Text.Render(padLeft(state.FormatScore(e.Score), scoreW))
		if i == m.selectedRow && !m.form.active {
			row = styles.Selected.Render(
				pad(fmt.Sprintf("%d", rank), rankW) + " " + pad(sanitize(e.User), nameW) + " " + padLeft(state.FormatScore(e.Score), scoreW))
		}
		lines = append(lines, row)
	}
	if end < len(entries) {
		lines = append(lines, styles.FaintText.Render(fmt.Sprintf("… %d more", len(entries)-end)))
	}
	lines = append(lines, "")
	return append(lines, form...)
}

func (m Model) renderForm(styles Styles, width int) []string {
	title := styles.MutedText.Render("Add Score")
	if m.form.active {
		title = styles.AccentText.Bold(true).Render("Add Score")
	}
	hint := styles.FaintText.Render("a to add")
	if m.form.active {
		hint = styles.FaintText.Render("tab switch · enter save · esc cancel")
	}
	return []string{
		title,
		ansi.Truncate(m.form.name.View(), width, ""),
		ansi.Truncate(m.form.score.View(), width, ""),
		hint,
	}
}

// renderBox renders the widget box.
func (m Model) renderBox(title, content string, width, height int, focused bool) string {
	border := m.theme.Border
	if focused {
		border = m.theme.BorderFocus
	}
	return m.drawBox(title, content, width, height, border, m.boxBg())
}

// renderPanel renders a page panel.
func (m Model) renderPanel(title, content string, width, height int, focused bool) string {
	border, bgColor := m.theme.BorderMuted, m.theme.Surface
	if focused {
		border, bgColor = m.theme.Border, m.theme.FocusBg
	}
	return m.drawBox(title, content, width, height, border, bgColor)
}

// drawBox renders content in a box with the title embedded in the top border:
// ┌─── Title ───┐
func (m Model) drawBox(title, content string, width, height int, borderColorStr, bgColorStr string) string {
	bg := newSurface(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = ansi.Truncate(title, max(innerWidth-4, 1), "…")
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Paint("┌", borderStyle) +
		bg.Paint(strings.Repeat("─", leftPad), borderStyle) +
		bg.Paint(" "+title+" ", titleStyle) +
		bg.Paint(strings.Repeat("─", rightPad), borderStyle) +
		bg.Paint("┐", borderStyle)

	bottomBorder := bg.Paint("└", borderStyle) +
		bg.Paint(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Paint("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr)).Padding(0, 1)

	var contentLines []string
	if content != "" {
		contentLines = strings.Split(content, "\n")
	}
	boxHeight := height - 2

	padded := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		padded = append(padded,
			bg.Paint("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Paint("│", borderStyle))
	}

	if len(padded) == 0 {
		return topBorder + "\n" + bottomBorder
	}
	return topBorder + "\n" + strings.Join(padded, "\n") + "\n" + bottomBorder
}

func (m Model) boxBg() string {
	if m.form.active {
		return m.theme.FocusBg
	}
	return m.theme.SurfaceAlt
}

// sanitize makes player-supplied text safe to print on a terminal: escape
// sequences are stripped and remaining control characters dropped.
func sanitize(s string) string {
	stripped := ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, stripped)
}

func pad(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

func padLeft(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s = strings.Repeat(" ", gap) + s
	}
	return s
}
