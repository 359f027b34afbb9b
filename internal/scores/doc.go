// Package scores provides an HTTP client for the games' leaderboard backend.
//
// # Overview
//
// Two boards live behind the same backend:
//
//   - the global ranking, read-only, served from /api/leaderboard
//   - the elementary board, a plain list of per-game entries that clients can
//     create and delete under /api/elementary-leaderboard
//
// # Client Usage
//
//	client, err := scores.NewClient("http://localhost:8585")
//	if err != nil {
//		return err
//	}
//
//	ranking, err := client.FetchGlobal(ctx)
//	created, err := client.CreateElementary(ctx, scores.NewEntry{
//		User:     "Ann",
//		Score:    42,
//		GameName: "AdventureGame",
//	})
//	err = client.DeleteElementary(ctx, created.ID)
//
// # Wire Format
//
// The global ranking has been produced by more than one backend revision, so
// player and game fields are read from either "user"/"username" and
// "gameName"/"game". Elementary identifiers may arrive as numbers or strings
// and are carried as an opaque EntryID.
//
// Create requests are encoded from NewEntry, which has no id field; the
// backend therefore can never interpret a submission as an update.
//
// # Error Handling
//
// Failures are classified so callers can word them for users:
//
//   - *TransportError: the request never got a response (backend down, DNS,
//     timeout). IsTransport reports this case.
//   - *RemoteError: the backend answered with a non-2xx status. The response
//     body is kept (truncated) for display and logged at warn level.
//   - decode errors: wrapped with "decode response".
//
// # Credentials
//
// The client has no cookie jar and sends no Authorization header. Each
// request carries an X-Request-ID for correlation with backend logs.
package scores
