package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldName = iota
	fieldScore
)

// entryForm is the two-field elementary submission form.
type entryForm struct {
	name   textinput.Model
	score  textinput.Model
	active bool
	focus  int
}

func newEntryForm(player string) entryForm {
	name := textinput.New()
	name.Prompt = "Name  "
	name.Placeholder = "Player name"
	name.CharLimit = 40
	name.SetValue(player)

	score := textinput.New()
	score.Prompt = "Score "
	score.Placeholder = "Score"
	score.CharLimit = 24

	return entryForm{name: name, score: score}
}

// Focus activates the form on the name field, or on the score field when a
// name is already filled in.
func (f *entryForm) Focus() tea.Cmd {
	f.active = true
	f.focus = fieldName
	if f.name.Value() != "" {
		f.focus = fieldScore
	}
	return f.applyFocus()
}

func (f *entryForm) Blur() {
	f.active = false
	f.name.Blur()
	f.score.Blur()
}

func (f *entryForm) Next() tea.Cmd {
	f.focus = (f.focus + 1) % 2
	return f.applyFocus()
}

func (f *entryForm) applyFocus() tea.Cmd {
	if f.focus == fieldName {
		f.score.Blur()
		return f.name.Focus()
	}
	f.name.Blur()
	return f.score.Focus()
}

// Values returns the raw field contents. Validation belongs to the widget.
func (f entryForm) Values() (name, score string) {
	return f.name.Value(), f.score.Value()
}

// Reset clears the score after a successful save. The name is kept so the
// same player can submit again.
func (f *entryForm) Reset() {
	f.score.SetValue("")
}

func (f *entryForm) SetWidth(width int) {
	f.name.Width = max(width-len(f.name.Prompt)-1, 4)
	f.score.Width = max(width-len(f.score.Prompt)-1, 4)
}

func (f entryForm) Update(msg tea.Msg) (entryForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == fieldName {
		f.name, cmd = f.name.Update(msg)
	} else {
		f.score, cmd = f.score.Update(msg)
	}
	return f, cmd
}
