// Package state holds the published view of a leaderboard widget.
//
// # Overview
//
// The board package owns the widget's state machine. After every transition
// it publishes a Snapshot into a Store; renderers (the terminal UI and the
// HTML fragment writer) only ever read snapshots.
//
//	Producer (board.Widget):        Consumer (ui / markup):
//	┌────────────────────┐         ┌────────────────────┐
//	│ mode transitions   │         │                    │
//	│ fetch completions  │         │                    │
//	│        ↓           │         │                    │
//	│ store.Publish()    │────────→│ store.Snapshot()   │
//	│                    │ (mutex) │        ↓           │
//	│                    │         │ render             │
//	└────────────────────┘         └────────────────────┘
//
// # Immutability
//
// Publish and Snapshot both copy the entry slices. A rendered entry sequence
// is never mutated in place; a new fetch produces a new sequence.
//
// # Display Helpers
//
//   - HeaderLabel: the title while open, the high-score preview while collapsed
//   - Rank: 1-based position, never a value from the payload
//   - FormatScore: locale digit grouping via golang.org/x/text
package state
