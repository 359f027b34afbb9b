// Package ui provides the terminal host for a leaderboard widget.
//
// The UI is a Bubble Tea program. It plays the part of the page a widget is
// mounted on: the page offers two containers ("sidebar" and "bottom") and
// draws the widget box either inside one of them or floating over the
// top-right corner of the page when the widget's parent container is
// missing.
//
// # Data flow
//
// The widget owns all leaderboard state and publishes immutable snapshots
// to its state.Store. The model never mutates widget state directly; it
// calls widget operations and re-reads the snapshot when the Bridge
// delivers a change notification.
//
// Operations that touch the network, or that wait for the user (deleting a
// score asks for confirmation), run as commands off the event loop:
//
//	key press -> tea.Cmd -> widget op -> Bridge.Changed -> changedMsg -> View
//	                          |
//	                          +-> Bridge.Confirm -> confirmRequestMsg -> dialog -> reply
//
// # Views
//
//   - Board: the host page with the widget mounted on it
//   - Logs: the application log, tailed from disk every few seconds
//
// # Key Bindings
//
//   - o/Space: expand or collapse the widget
//   - v: show or hide the widget
//   - 1/2: pick the dynamic or elementary board
//   - b/Esc: back to the mode selector
//   - r: refresh the active board now
//   - a: add a score; Tab switches fields, Enter saves
//   - x: delete the selected score
//   - L: toggle the log view
//   - T: cycle theme
//   - ?: help
//   - Ctrl+C: quit
package ui
