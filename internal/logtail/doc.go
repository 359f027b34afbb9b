// Package logtail reads the tail of podium's log file and formats its
// records for the TUI log view.
//
// # Overview
//
// podium logs zerolog JSON lines to <log_dir>/podium.log while the terminal
// is owned by the UI. The log view reads the last few hundred lines with Read
// and turns each record into readable rows with Format.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines, so memory stays O(maxLines)
// whatever the file size. A missing file yields nil, nil. A non-positive
// maxLines returns the whole file.
//
//	lines, err := logtail.Read(cfg.LogPath(), 400)
//
// # Formatting
//
// Records are decoded with gjson, which tolerates the arbitrary extra fields
// zerolog events carry:
//
//	{"level":"warn","component":"leaderboard","failures":2,"message":"global leaderboard fetch failed"}
//
// becomes
//
//	WARN [leaderboard] – global leaderboard fetch failed
//	    - failures: 2
//
// Lines that are not JSON objects pass through unchanged. Coloring is left
// to the UI.
package logtail
