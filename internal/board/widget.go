package board

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/five82/podium/internal/scores"
	"github.com/five82/podium/internal/state"
)

const (
	// DefaultPollInterval is the dynamic board refresh cadence.
	DefaultPollInterval = 30 * time.Second
	// DefaultGameName is used when the host does not name its game.
	DefaultGameName = "Global"
)

// Host is the surface a widget mounts into.
type Host interface {
	// HasContainer reports whether a container with the given id exists.
	HasContainer(id string) bool
	// EnsureStylesheet installs the shared widget stylesheet under id. Hosts
	// must ignore repeated calls for the same id.
	EnsureStylesheet(id string)
}

// Prompter surfaces blocking user interaction.
type Prompter interface {
	// Confirm asks a yes/no question and blocks until answered. A cancelled
	// context counts as "no".
	Confirm(ctx context.Context, message string) bool
	// Alert shows a message the user must dismiss.
	Alert(message string)
}

// Options configure a Widget.
type Options struct {
	Context      context.Context // widget lifetime; cancelled by Destroy
	Store        scores.Store
	GameName     string
	PollInterval time.Duration
	ParentID     string // container to embed into; empty means overlay
	Prompter     Prompter
	OnChange     func()          // called after every published change
	Clock        clockwork.Clock // nil uses the real clock
	State        *state.Store    // nil allocates a private store
}

// Widget is one leaderboard instance. All state is owned by the instance;
// several widgets may run side by side.
type Widget struct {
	ctx      context.Context
	cancel   context.CancelFunc
	store    scores.Store
	gameName string
	interval time.Duration
	parentID string
	prompter Prompter
	onChange func()
	clock    clockwork.Clock
	pub      *state.Store
	log      zerolog.Logger

	mu        sync.Mutex
	mounted   bool
	destroyed bool
	placement state.Placement
	open      bool
	visible   bool
	mode      state.Mode
	selecting bool
	panel     state.Panel
	preview   string
	message   string
	global    []scores.GlobalEntry
	entries   []scores.Entry
	failures  int

	poll          *poller
	session       uint64 // bumped on every mode change and on destroy
	fetchIssued   uint64 // elementary fetch generations
	fetchApplied  uint64
	globalIssued  uint64 // global fetch generations
	globalApplied uint64

	pollers atomic.Int32 // live poller goroutines
}

// New creates an unmounted widget.
func New(opts Options) *Widget {
	base := opts.Context
	if base == nil {
		base = context.Background()
	}
	ctx, cancel := context.WithCancel(base)

	gameName := strings.TrimSpace(opts.GameName)
	if gameName == "" {
		gameName = DefaultGameName
	}
	interval := opts.PollInterval
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	clock := opts.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	pub := opts.State
	if pub == nil {
		pub = &state.Store{}
	}

	w := &Widget{
		ctx:      ctx,
		cancel:   cancel,
		store:    opts.Store,
		gameName: gameName,
		interval: interval,
		parentID: strings.TrimSpace(opts.ParentID),
		prompter: opts.Prompter,
		onChange: opts.OnChange,
		clock:    clock,
		pub:      pub,
		log:      log.With().Str("component", "leaderboard").Str("game", gameName).Logger(),
		visible:  true,
		preview:  state.PreviewPlaceholder,
	}
	w.mu.Lock()
	w.publishLocked()
	w.mu.Unlock()
	return w
}

// GameName returns the game submissions are recorded under.
func (w *Widget) GameName() string {
	return w.gameName
}

// Snapshot returns the latest published view of the widget.
func (w *Widget) Snapshot() state.Snapshot {
	return w.pub.Snapshot()
}

// State exposes the store renderers read from.
func (w *Widget) State() *state.Store {
	return w.pub
}

// update runs fn under the widget lock. When fn reports a change, the new
// snapshot is published before the lock is released and listeners are
// notified afterwards.
func (w *Widget) update(fn func() bool) bool {
	w.mu.Lock()
	changed := fn()
	if changed {
		w.publishLocked()
	}
	w.mu.Unlock()
	if changed && w.onChange != nil {
		w.onChange()
	}
	return changed
}

func (w *Widget) publishLocked() {
	w.pub.Publish(state.Snapshot{
		Mounted:             w.mounted,
		Destroyed:           w.destroyed,
		Placement:           w.placement,
		HostID:              w.parentID,
		Open:                w.open,
		Visible:             w.visible,
		Mode:                w.mode,
		Selecting:           w.selecting,
		Panel:               w.panel,
		Preview:             w.preview,
		Message:             w.message,
		Global:              w.global,
		Entries:             w.entries,
		PollActive:          w.poll != nil,
		ConsecutiveFailures: w.failures,
	})
}

func (w *Widget) alert(message string) {
	if w.prompter == nil {
		w.log.Warn().Str("alert", message).Msg("no prompter attached; alert dropped")
		return
	}
	w.prompter.Alert(message)
}

// beginSessionLocked switches to mode, cancelling whatever the previous mode
// left running. In-flight fetches from the old session are discarded when
// they complete.
func (w *Widget) beginSessionLocked(mode state.Mode) {
	w.stopPollerLocked()
	w.session++
	w.mode = mode
	w.selecting = false
	w.message = ""
}

func (w *Widget) activeLocked() bool {
	return w.mounted && !w.destroyed
}
