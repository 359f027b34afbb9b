package state

import (
	"sync"
	"time"

	"github.com/five82/podium/internal/scores"
)

// Snapshot is the published view of one leaderboard widget.
type Snapshot struct {
	Mounted   bool
	Destroyed bool
	Placement Placement
	HostID    string

	Open      bool
	Visible   bool
	Mode      Mode
	Selecting bool

	Panel   Panel
	Preview string
	Message string

	Global  []scores.GlobalEntry
	Entries []scores.Entry

	PollActive          bool
	LastUpdated         time.Time
	ConsecutiveFailures int // dynamic fetch failures since the last success
}

// HeaderLabel returns the header text: the title while open, the preview
// while collapsed. Exactly one of the two is ever shown.
func (s Snapshot) HeaderLabel() string {
	if s.Open {
		return Title
	}
	return s.Preview
}

// BackVisible reports whether the back affordance is shown.
func (s Snapshot) BackVisible() bool {
	return s.Mode != ModeNone
}

// IsOffline returns true when the dynamic board has failed repeatedly.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates publication of snapshots between the widget and its
// renderers.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	version  uint64
}

// Publish replaces the stored snapshot.
func (s *Store) Publish(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap.Global = cloneGlobal(snap.Global)
	snap.Entries = cloneEntries(snap.Entries)
	snap.LastUpdated = time.Now()
	s.snapshot = snap
	s.version++
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Global = cloneGlobal(s.snapshot.Global)
	snap.Entries = cloneEntries(s.snapshot.Entries)
	return snap
}

// Version increments on every Publish; renderers use it to skip redraws.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func cloneGlobal(items []scores.GlobalEntry) []scores.GlobalEntry {
	if len(items) == 0 {
		return nil
	}
	dup := make([]scores.GlobalEntry, len(items))
	copy(dup, items)
	return dup
}

func cloneEntries(items []scores.Entry) []scores.Entry {
	if len(items) == 0 {
		return nil
	}
	dup := make([]scores.Entry, len(items))
	copy(dup, items)
	return dup
}
