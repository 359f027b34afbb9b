package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// openLogs switches to the log view and starts the refresh loop if it is not
// already running.
func (m Model) openLogs() (tea.Model, tea.Cmd) {
	m.currentView = ViewLogs
	m.form.Blur()
	cmds := []tea.Cmd{readLogsCmd(m.logPath)}
	if !m.logTicking {
		m.logTicking = true
		cmds = append(cmds, logTickCmd())
	}
	return m, tea.Batch(cmds...)
}

// handleLogsKey processes keyboard input for the log view.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.currentView = ViewBoard
	case key.Matches(msg, m.keys.ToggleFollow):
		m.logFollow = !m.logFollow
		if m.logFollow {
			m.logViewport.GotoBottom()
		}
	case key.Matches(msg, m.keys.Up):
		m.logFollow = false
		m.logViewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.logViewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.logFollow = false
		m.logViewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.logFollow = true
		m.logViewport.GotoBottom()
	case key.Matches(msg, m.keys.Refresh):
		return m, readLogsCmd(m.logPath)
	}
	return m, nil
}

// updateLogViewport sizes the viewport and loads the current lines into it.
func (m *Model) updateLogViewport() {
	m.logViewport.Width = max(m.width-4, 1)
	m.logViewport.Height = max(m.height-4, 1)
	m.logViewport.SetContent(m.renderLogContent())
	if m.logFollow {
		m.logViewport.GotoBottom()
	}
}

// renderLogContent renders the colorized log lines.
func (m Model) renderLogContent() string {
	bg := newSurface(m.theme.FocusBg)
	styles := m.theme.Styles().WithBackground(m.theme.FocusBg)

	if len(m.logLines) == 0 {
		return bg.Paint("No log entries", styles.MutedText)
	}

	width := m.logViewport.Width
	var b strings.Builder
	for i, line := range m.logLines {
		content := bg.Paint(fmt.Sprintf("%4d │ ", i+1), styles.FaintText) +
			bg.Paint(line, logLineStyle(line, styles))
		b.WriteString(bg.Line(content, width))
		if i < len(m.logLines)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// logLineStyle picks a color from the level in a formatted line.
func logLineStyle(line string, styles Styles) lipgloss.Style {
	switch {
	case strings.HasPrefix(line, "    - "):
		return styles.FaintText
	case strings.Contains(line, " ERROR ") || strings.Contains(line, " FATAL "):
		return styles.DangerText
	case strings.Contains(line, " WARN "):
		return styles.WarningText
	case strings.Contains(line, " DEBUG ") || strings.Contains(line, " TRACE "):
		return styles.MutedText
	}
	return styles.Text
}

// renderLogs renders the log view into a box of the given size.
func (m Model) renderLogs(width, height int) string {
	vp := m.logViewport
	vp.Width = max(width-4, 1)
	vp.Height = max(height-2, 1)
	if m.logFollow {
		vp.GotoBottom()
	}

	follow := "off"
	if m.logFollow {
		follow = "on"
	}
	title := fmt.Sprintf("Log · %d lines · follow %s", len(m.logLines), follow)
	return m.renderPanel(title, vp.View(), width, height, true)
}
