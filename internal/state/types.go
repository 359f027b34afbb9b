package state

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Title is shown in the header while the widget is open.
const Title = "🏆 Leaderboard"

// PreviewPlaceholder is the collapsed header text before any board loaded.
const PreviewPlaceholder = "Collapse to choose a leaderboard"

// Mode is the active leaderboard mode.
type Mode int

const (
	ModeNone Mode = iota
	ModeDynamic
	ModeElementary
)

func (m Mode) String() string {
	switch m {
	case ModeDynamic:
		return "dynamic"
	case ModeElementary:
		return "elementary"
	default:
		return "none"
	}
}

// ParseMode maps a user-facing mode name to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "", "none", "selector":
		return ModeNone, nil
	case "dynamic", "global":
		return ModeDynamic, nil
	case "elementary":
		return ModeElementary, nil
	}
	return ModeNone, fmt.Errorf("unknown leaderboard mode %q", name)
}

// Placement says where the widget was mounted.
type Placement int

const (
	// PlacementOverlay floats above the host, anchored to the viewport.
	PlacementOverlay Placement = iota
	// PlacementEmbedded sits inside a named host container.
	PlacementEmbedded
)

func (p Placement) String() string {
	if p == PlacementEmbedded {
		return "embedded"
	}
	return "overlay"
}

// Panel identifies what the list region currently shows.
type Panel int

const (
	PanelHidden Panel = iota
	PanelSelector
	PanelLoading
	PanelGlobal
	PanelGlobalEmpty
	PanelGlobalError
	PanelElementary
)

// Rank returns the displayed rank of the entry at index i. Ranks are purely
// positional.
func Rank(i int) int {
	return i + 1
}

var scorePrinter = message.NewPrinter(language.English)

// FormatScore renders a score with locale digit grouping ("12,345").
func FormatScore(score int64) string {
	return scorePrinter.Sprintf("%d", score)
}

// HighScoreLabel is the collapsed-preview text for the top entry.
func HighScoreLabel(user string, score int64) string {
	return fmt.Sprintf("High Score: %s - %s", user, FormatScore(score))
}
