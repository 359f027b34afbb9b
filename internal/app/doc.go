// Package app is the composition root for podium.
//
// # Overview
//
// Run wires configuration, logging, preferences, the leaderboard client and
// one board.Widget into the terminal UI, then blocks until the user quits
// or the context is cancelled. Export builds the same widget against an
// HTML document instead and writes a single rendered fragment.
//
// # Startup
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> godotenv.Load()      .env may set PODIUM_BACKEND_URL
//	       ├─────> config.Load()        ~/.config/podium/config.toml
//	       ├─────> setupFileLogging()   JSON lines to <log_dir>/podium.log
//	       ├─────> prefs.Load()         theme and last player
//	       ├─────> scores.NewClient()   HTTP client for the backend
//	       ├─────> board.New()          widget with the UI bridge attached
//	       └─────> ui.Run()             TUI (blocks)
//
// The widget owns its poller; nothing in this package polls.
//
// # Errors
//
// Fatal errors (returned from Run or Export):
//   - invalid configuration
//   - unusable backend URL
//   - log file that cannot be opened
//
// Backend failures are never fatal. The widget renders them and keeps
// running; Export retries with exponential backoff (2s doubling, capped at
// 30s) before rendering the error state.
package app
