package scores

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// EntryID is the backend-assigned identifier of an elementary entry. The
// backend may send it as a number or a string; it is kept opaque.
type EntryID string

// String returns the identifier as sent by the backend.
func (id EntryID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is absent.
func (id EntryID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// Entry mirrors an elementary leaderboard row returned by the backend.
type Entry struct {
	ID       EntryID `json:"id,omitempty"`
	User     string  `json:"user"`
	Score    int64   `json:"score"`
	GameName string  `json:"gameName,omitempty"`
}

// UnmarshalJSON decodes a row leniently: ids may be numbers or strings and
// scores may be integers, decimals or numeric strings.
func (e *Entry) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return errors.New("invalid json entry")
	}
	result := gjson.ParseBytes(data)
	if !result.IsObject() {
		return fmt.Errorf("entry must be a json object, got %s", result.Type)
	}
	*e = entryFrom(result)
	return nil
}

// NewEntry is the create payload for the elementary board. It deliberately
// has no identifier field.
type NewEntry struct {
	User     string `json:"user"`
	Score    int64  `json:"score"`
	GameName string `json:"gameName"`
}

// GlobalEntry is one row of the global ranking. The backend has shipped the
// player under "user" or "username" and the game under "gameName" or "game".
type GlobalEntry struct {
	User  string
	Game  string
	Score int64
}

// decodeGlobal parses the global ranking payload. Anything other than a JSON
// array is treated as an empty ranking.
func decodeGlobal(raw []byte) ([]GlobalEntry, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("invalid json payload")
	}
	result := gjson.ParseBytes(raw)
	if !result.IsArray() {
		return nil, nil
	}
	var entries []GlobalEntry
	result.ForEach(func(_, v gjson.Result) bool {
		entries = append(entries, GlobalEntry{
			User:  firstString(v, "user", "username"),
			Game:  firstString(v, "gameName", "game"),
			Score: scoreOf(v.Get("score")),
		})
		return true
	})
	return entries, nil
}

func firstString(v gjson.Result, keys ...string) string {
	for _, k := range keys {
		if field := v.Get(k); field.Exists() && field.String() != "" {
			return field.String()
		}
	}
	return ""
}

// decodeElementary parses the elementary list payload with the same
// tolerance as decodeGlobal.
func decodeElementary(raw []byte) ([]Entry, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(raw) {
		return nil, errors.New("invalid json payload")
	}
	result := gjson.ParseBytes(raw)
	if !result.IsArray() {
		return nil, nil
	}
	var entries []Entry
	result.ForEach(func(_, v gjson.Result) bool {
		if v.IsObject() {
			entries = append(entries, entryFrom(v))
		}
		return true
	})
	return entries, nil
}

func entryFrom(v gjson.Result) Entry {
	return Entry{
		ID:       entryIDOf(v.Get("id")),
		User:     v.Get("user").String(),
		Score:    scoreOf(v.Get("score")),
		GameName: firstString(v, "gameName", "game"),
	}
}

// entryIDOf keeps numeric ids exactly as sent.
func entryIDOf(v gjson.Result) EntryID {
	switch v.Type {
	case gjson.Number:
		return EntryID(v.Raw)
	case gjson.String:
		return EntryID(v.Str)
	}
	return ""
}

// scoreOf reads a score sent as a number or a numeric string. Decimals are
// truncated toward zero; anything unparseable reads as zero.
func scoreOf(v gjson.Result) int64 {
	switch v.Type {
	case gjson.Number:
		return truncateScore(v.Raw, v.Num)
	case gjson.String:
		text := strings.TrimSpace(v.Str)
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0
		}
		return truncateScore(text, f)
	}
	return 0
}

func truncateScore(text string, f float64) int64 {
	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return n
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0
	}
	return int64(f)
}
