// Package config loads podium's TOML configuration.
//
// # Overview
//
// The config file tells podium where the leaderboard backend lives, which
// game submissions are recorded under and where the widget mounts. Every
// field is optional; a missing file yields the defaults.
//
// # Resolution Order
//
// The backend URL is resolved as:
//
//  1. PODIUM_BACKEND_URL from the environment (a .env file in the working
//     directory is loaded into the environment at startup)
//  2. backend_url from the config file
//  3. http://localhost:8585
//
// # Default Values
//
//   - Config file: ~/.config/podium/config.toml
//   - Game: Global
//   - Poll interval: 30s
//   - Log directory: ~/.local/state/podium
//   - Log file: <log_dir>/podium.log
//
// # TOML Format
//
//	backend_url = "http://localhost:8585"
//	game = "AdventureGame"
//	container = "sidebar"   # sidebar, bottom, or empty for overlay
//	poll_seconds = 30
//	log_dir = "~/.local/state/podium"
//	log_level = "info"
//
// # Error Handling
//
// Load returns errors for unreadable files, invalid TOML, a negative
// poll_seconds and an unknown log_level. A missing file is not an error.
package config
