package scores

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Store defines the leaderboard backend operations the widget depends on.
// This interface is implemented by *Client and can be faked in tests.
type Store interface {
	FetchGlobal(ctx context.Context) ([]GlobalEntry, error)
	FetchElementary(ctx context.Context) ([]Entry, error)
	CreateElementary(ctx context.Context, entry NewEntry) (Entry, error)
	DeleteElementary(ctx context.Context, id EntryID) error
}

// Ensure Client implements Store at compile time.
var _ Store = (*Client)(nil)

// Client talks to the leaderboard HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is used when no backend has been configured.
	DefaultBaseURL   = "http://localhost:8585"
	defaultUserAgent = "podium/0.1"
	requestTimeout   = 5 * time.Second
	maxErrorBody     = 4 << 10

	globalPath     = "/api/leaderboard"
	elementaryPath = "/api/elementary-leaderboard"
)

// NewClient builds a Client for the given backend base URL.
//
// The underlying http.Client has no cookie jar, so requests never carry
// credentials.
func NewClient(baseURL string) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// BaseURL reports the normalised backend address.
func (c *Client) BaseURL() string {
	if c == nil || c.baseURL == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchGlobal retrieves the global ranked list used by the dynamic board.
func (c *Client) FetchGlobal(ctx context.Context) ([]GlobalEntry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body, err := c.doRaw(ctx, http.MethodGet, globalPath, nil)
	if err != nil {
		return nil, err
	}
	entries, err := decodeGlobal(body)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return entries, nil
}

// FetchElementary retrieves every stored elementary entry in backend order.
func (c *Client) FetchElementary(ctx context.Context) ([]Entry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	body, err := c.doRaw(ctx, http.MethodGet, elementaryPath, nil)
	if err != nil {
		return nil, err
	}
	entries, err := decodeElementary(body)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return entries, nil
}

// CreateElementary stores a new entry. NewEntry has no identifier, so the
// backend always treats the request as a create.
func (c *Client) CreateElementary(ctx context.Context, entry NewEntry) (Entry, error) {
	if c == nil {
		return Entry{}, fmt.Errorf("client is nil")
	}
	var created Entry
	if err := c.do(ctx, http.MethodPost, elementaryPath, entry, &created); err != nil {
		return Entry{}, err
	}
	return created, nil
}

// DeleteElementary removes the entry with the given identifier.
func (c *Client) DeleteElementary(ctx context.Context, id EntryID) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if id.IsZero() {
		return fmt.Errorf("entry id required")
	}
	path := elementaryPath + "/" + url.PathEscape(id.String())
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	raw, err := c.doRaw(ctx, method, path, body)
	if err != nil {
		return err
	}
	if dest == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (c *Client) doRaw(ctx context.Context, method, path string, body any) ([]byte, error) {
	rel := &url.URL{Path: path}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		text := strings.TrimSpace(string(detail))
		log.Warn().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Int("status", resp.StatusCode).
			Str("body", text).
			Msg("leaderboard api returned error status")
		return nil, &RemoteError{Method: method, Path: path, Status: resp.StatusCode, Body: text}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: method, Path: path, Err: fmt.Errorf("read response: %w", err)}
	}
	return raw, nil
}

func parseBaseURL(baseURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse backend url %q: %w", baseURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse backend url %q: missing host", baseURL)
	}
	u.Path = ""
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
