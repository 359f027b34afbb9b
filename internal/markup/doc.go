// Package markup renders leaderboard widgets as HTML fragments for the
// games' host pages.
//
// Rendering is discard-and-rebuild: every call produces the complete markup
// for a widget from its snapshot, and the page swaps it in wholesale. Event
// handlers are attached by the page through data attributes (data-action,
// data-mode, data-id) rather than element ids, so several widgets can share
// a page.
//
// Player and game names go through html/template, which escapes them for
// their context.
package markup
