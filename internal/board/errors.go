package board

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/five82/podium/internal/scores"
)

var (
	// ErrNotMounted is returned by mode operations before Mount or after Destroy.
	ErrNotMounted = errors.New("leaderboard is not mounted")
	// ErrWrongMode is returned when an operation does not belong to the active mode.
	ErrWrongMode = errors.New("operation not available in the current leaderboard mode")
)

const (
	validationMessage = "Please enter both name and score"
	// NetworkErrorMessage is shown when the backend cannot be reached.
	NetworkErrorMessage = "Network error: Unable to connect to server. Please check if the backend is running."
)

// ValidationError reports form input rejected before any request is sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return validationMessage
}

// ValidateSubmission turns raw form values into a create payload.
func ValidateSubmission(name, score, gameName string) (scores.NewEntry, error) {
	user := strings.TrimSpace(name)
	if user == "" {
		return scores.NewEntry{}, &ValidationError{Field: "name", Reason: "empty"}
	}
	value, err := ParseScore(score)
	if err != nil {
		return scores.NewEntry{}, &ValidationError{Field: "score", Reason: err.Error()}
	}
	return scores.NewEntry{User: user, Score: value, GameName: gameName}, nil
}

// ParseScore reads a score typed by a player. Integers are taken as-is and
// decimals are truncated toward zero. Anything else, including NaN and
// infinities, is rejected.
func ParseScore(text string) (int64, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, errors.New("score is empty")
	}
	if v, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("score %q is not a number", trimmed)
	}
	if f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("score %q is out of range", trimmed)
	}
	return int64(f), nil
}

// failureMessage words a mutation failure for the user.
func failureMessage(action string, err error) string {
	if scores.IsTransport(err) {
		return NetworkErrorMessage
	}
	if re, ok := scores.AsRemote(err); ok {
		return fmt.Sprintf("Failed to %s: %s", action, re.Detail())
	}
	return fmt.Sprintf("Failed to %s: %v", action, err)
}
