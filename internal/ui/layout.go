package ui

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/podium/internal/state"
)

// Layout regions a widget can embed into.
const (
	ContainerSidebar = "sidebar"
	ContainerBottom  = "bottom"
)

// Layout sizes.
const (
	// WidgetWidth is the width of the sidebar and overlay widget box.
	WidgetWidth = 46

	// LayoutCompactWidth is the threshold below which the sidebar collapses
	// into an overlay-sized box.
	LayoutCompactWidth = 90
)

// Timing constants.
const (
	// LogRefreshInterval is how often the log view re-reads the log file.
	LogRefreshInterval = 2 * time.Second

	// LogTailLines is how many lines the log view keeps.
	LogTailLines = 400
)

// layoutHost is the terminal page a widget mounts into. Its containers are
// the fixed layout regions and its stylesheets are tracked by id so shared
// styles are only installed once.
type layoutHost struct {
	mu          sync.Mutex
	installed   map[string]int
	installList []string
}

func newLayoutHost() *layoutHost {
	return &layoutHost{installed: make(map[string]int)}
}

func (h *layoutHost) HasContainer(id string) bool {
	switch id {
	case ContainerSidebar, ContainerBottom:
		return true
	}
	return false
}

func (h *layoutHost) EnsureStylesheet(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.installed[id] == 0 {
		h.installList = append(h.installList, id)
	}
	h.installed[id]++
}

// Stylesheets returns the installed stylesheet ids in install order.
func (h *layoutHost) Stylesheets() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.installList...)
}

// composeLayout places the widget box relative to the page body according
// to where it was mounted.
func composeLayout(snap state.Snapshot, body, widget string, width, height int) string {
	if widget == "" {
		return body
	}
	if snap.Placement == state.PlacementEmbedded {
		switch snap.HostID {
		case ContainerSidebar:
			if width >= LayoutCompactWidth {
				return lipgloss.JoinHorizontal(lipgloss.Top, body, widget)
			}
		case ContainerBottom:
			return lipgloss.JoinVertical(lipgloss.Left, body, widget)
		}
	}
	return overlay(body, widget, width)
}

// overlay draws box over the top-right corner of base.
func overlay(base, box string, width int) string {
	baseLines := strings.Split(base, "\n")
	boxLines := strings.Split(box, "\n")
	boxWidth := lipgloss.Width(box)
	left := max(width-boxWidth, 0)

	for i, boxLine := range boxLines {
		if i >= len(baseLines) {
			baseLines = append(baseLines, "")
		}
		kept := ansi.Truncate(baseLines[i], left, "")
		if pad := left - ansi.StringWidth(kept); pad > 0 {
			kept += strings.Repeat(" ", pad)
		}
		baseLines[i] = kept + boxLine
	}
	return strings.Join(baseLines, "\n")
}
