package markup

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/five82/podium/internal/scores"
	"github.com/five82/podium/internal/state"
)

// Document is an HTML page being assembled from leaderboard widgets. It
// implements board.Host: widgets embed into its declared containers and
// share a single stylesheet per id.
type Document struct {
	mu          sync.Mutex
	containers  map[string]bool
	stylesheets []string
}

// NewDocument declares the container ids widgets may embed into.
func NewDocument(containers ...string) *Document {
	d := &Document{containers: make(map[string]bool, len(containers))}
	for _, id := range containers {
		if id != "" {
			d.containers[id] = true
		}
	}
	return d
}

// HasContainer reports whether id was declared.
func (d *Document) HasContainer(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.containers[id]
}

// EnsureStylesheet records the stylesheet id once.
func (d *Document) EnsureStylesheet(id string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, existing := range d.stylesheets {
		if existing == id {
			return
		}
	}
	d.stylesheets = append(d.stylesheets, id)
}

// Write emits the installed stylesheets followed by one fragment per
// snapshot. Snapshots of hidden or unmounted widgets produce nothing.
func (d *Document) Write(w io.Writer, snaps ...state.Snapshot) error {
	d.mu.Lock()
	ids := append([]string(nil), d.stylesheets...)
	d.mu.Unlock()

	for _, id := range ids {
		if err := templates.ExecuteTemplate(w, "stylesheet", id); err != nil {
			return fmt.Errorf("render stylesheet %s: %w", id, err)
		}
	}
	for _, snap := range snaps {
		if err := RenderWidget(w, snap); err != nil {
			return err
		}
	}
	return nil
}

type view struct {
	PlacementClass string
	HostID         string
	Mode           string
	Open           bool
	BackVisible    bool
	Label          string
	Kind           string
	Message        string
	Global         []scores.GlobalEntry
	Entries        []scores.Entry
}

func newView(snap state.Snapshot) view {
	v := view{
		PlacementClass: "leaderboard-fixed",
		Mode:           snap.Mode.String(),
		Open:           snap.Open,
		BackVisible:    snap.BackVisible(),
		Label:          snap.HeaderLabel(),
		Message:        snap.Message,
		Global:         snap.Global,
		Entries:        snap.Entries,
	}
	if snap.Placement == state.PlacementEmbedded {
		v.PlacementClass = "leaderboard-embedded"
		v.HostID = snap.HostID
	}
	switch snap.Panel {
	case state.PanelSelector:
		v.Kind = "selector"
	case state.PanelLoading:
		v.Kind = "loading"
	case state.PanelGlobal:
		v.Kind = "global"
	case state.PanelGlobalEmpty:
		v.Kind = "empty"
	case state.PanelGlobalError:
		v.Kind = "error"
	case state.PanelElementary:
		v.Kind = "elementary"
	}
	return v
}

// RenderWidget writes the full fragment for one widget.
func RenderWidget(w io.Writer, snap state.Snapshot) error {
	if !snap.Mounted || !snap.Visible {
		return nil
	}
	if err := templates.ExecuteTemplate(w, "widget", newView(snap)); err != nil {
		return fmt.Errorf("render widget: %w", err)
	}
	return nil
}

// ListHTML renders only the list region. Errors are logged and yield an
// empty string so a broken partial never takes the page down.
func ListHTML(snap state.Snapshot) string {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "list", newView(snap)); err != nil {
		log.Error().Err(err).Str("mode", snap.Mode.String()).Msg("render leaderboard list failed")
		return ""
	}
	return buf.String()
}
