package scores

import (
	"errors"
	"fmt"
)

// TransportError reports a request that never produced an HTTP response,
// typically because the backend is unreachable.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("execute request %s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError reports a non-2xx response. Body holds the server-supplied
// message, if any.
type RemoteError struct {
	Method string
	Path   string
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("api %s %s returned status %d", e.Method, e.Path, e.Status)
}

// Detail formats the status and server message the way users see it.
func (e *RemoteError) Detail() string {
	if e.Body == "" {
		return fmt.Sprintf("%d", e.Status)
	}
	return fmt.Sprintf("%d - %s", e.Status, e.Body)
}

// IsTransport reports whether err stems from an unreachable backend.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// AsRemote extracts a RemoteError from err.
func AsRemote(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
