// Package board implements the leaderboard widget state machine.
//
// # Overview
//
// A Widget moves through three phases:
//
//	Mount ──→ selector ──┬──→ dynamic    (read-only, polled)
//	   ↑          ↑      └──→ elementary (create / delete / re-fetch)
//	   │          └── GoBack ──┘
//	Destroy (from anywhere, idempotent)
//
// Exactly one mode is active at a time. Entering a mode begins a new session;
// any fetch still in flight from an older session is dropped when it
// completes instead of being rendered into the wrong view.
//
// # Dynamic Mode
//
// EnterDynamicMode fetches the global ranking immediately and then on every
// tick of a clockwork ticker (30s by default). A failed fetch renders an
// inline error and the poller keeps running. The poller goroutine is bound to
// a context that GoBack, a mode change and Destroy all cancel, so at most one
// poller exists per widget.
//
// # Elementary Mode
//
// The cached entry list is only ever replaced wholesale by a fetch:
//
//   - success: entries = response
//   - failure: entries = empty
//
// SubmitScore and RemoveScore never touch the cache directly. After a
// successful mutation they re-fetch, and each fetch carries a generation
// number so a slow response can never overwrite a newer one.
//
// # Errors
//
// Validation failures (*ValidationError) and mutation failures are shown to
// the user through the Prompter. Dynamic fetch failures are rendered inline.
// Nothing is fatal to the host.
package board
