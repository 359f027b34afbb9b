package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// surface paints text onto one background color. Spaces are painted as
// well, otherwise the terminal default shows through after each reset.
type surface struct {
	bg    lipgloss.Color
	blank lipgloss.Style
}

func newSurface(color string) surface {
	bg := lipgloss.Color(color)
	return surface{bg: bg, blank: lipgloss.NewStyle().Background(bg)}
}

// Paint renders text in style on the surface.
func (s surface) Paint(text string, style lipgloss.Style) string {
	if text == "" {
		return ""
	}
	styled := style.Background(s.bg)
	words := strings.Split(text, " ")
	for i, w := range words {
		if w != "" {
			words[i] = styled.Render(w)
		}
	}
	return strings.Join(words, s.Gap(1))
}

// Gap returns n painted spaces.
func (s surface) Gap(n int) string {
	if n <= 0 {
		return ""
	}
	return s.blank.Render(strings.Repeat(" ", n))
}

// Pair renders "label value" as used by the header fields and key hints.
func (s surface) Pair(label string, labelStyle lipgloss.Style, value string, valueStyle lipgloss.Style) string {
	return s.Paint(label, labelStyle) + s.Gap(1) + s.Paint(value, valueStyle)
}

// Join separates parts with n painted spaces.
func (s surface) Join(parts []string, n int) string {
	return strings.Join(parts, s.Gap(n))
}

// Line cuts rendered content at width and paints the remainder.
func (s surface) Line(content string, width int) string {
	return s.blank.Width(width).Render(ansi.Truncate(content, width, ""))
}
