package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is the interface for modal dialogs.
// The Update method returns the updated modal, a command, and a bool indicating if the modal should close.
type Modal interface {
	Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool)
	View(theme Theme, width, height int) string
}

// confirmModal asks a yes/no question on behalf of a blocked widget call.
type confirmModal struct {
	message string
	reply   chan<- bool
}

func newConfirmModal(message string, reply chan<- bool) *confirmModal {
	return &confirmModal{message: message, reply: reply}
}

func (c *confirmModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch {
	case key.Matches(keyMsg, keys.Yes):
		c.answer(true)
		return c, nil, true
	case key.Matches(keyMsg, keys.No):
		c.answer(false)
		return c, nil, true
	}
	return c, nil, false
}

// answer delivers the reply once; the channel is buffered so this never
// blocks the event loop.
func (c *confirmModal) answer(yes bool) {
	if c.reply == nil {
		return
	}
	select {
	case c.reply <- yes:
	default:
	}
	c.reply = nil
}

func (c *confirmModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	body := styles.Text.Render(c.message) + "\n\n" +
		styles.AccentText.Render("y") + styles.MutedText.Render(" yes   ") +
		styles.AccentText.Render("n") + styles.MutedText.Render(" no")
	return renderDialog(theme, "Confirm", body, theme.Warning, width, height)
}

// alertModal shows a message until dismissed.
type alertModal struct {
	message string
}

func (a *alertModal) Update(msg tea.Msg, keys keyMap) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil, false
	}
	if key.Matches(keyMsg, keys.Confirm, keys.Escape) || keyMsg.String() == " " {
		return a, nil, true
	}
	return a, nil, false
}

func (a *alertModal) View(theme Theme, width, height int) string {
	styles := theme.Styles()
	body := styles.Text.Render(a.message) + "\n\n" +
		styles.FaintText.Render("enter to dismiss")
	return renderDialog(theme, "Leaderboard", body, theme.Danger, width, height)
}

func renderDialog(theme Theme, title, body, border string, width, height int) string {
	styles := theme.Styles()
	dialogWidth := min(56, max(width-4, 20))

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(title))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", dialogWidth-6)))
	b.WriteString("\n\n")
	b.WriteString(body)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(border)).
		Padding(1, 2).
		Width(dialogWidth).
		Render(b.String())

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		box,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(theme.Background)),
	)
}
