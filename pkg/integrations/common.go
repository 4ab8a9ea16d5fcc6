package integrations

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/matzehuels/pacmaze/pkg/buildinfo"
)

const httpTimeout = 15 * time.Second

// UserAgent identifies pacmaze to upstream APIs.
var UserAgent = buildinfo.UserAgent() + " (+https://github.com/matzehuels/pacmaze)"

var (
	// ErrNotFound is returned when the requested resource doesn't exist.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is returned for transport failures and unexpected statuses.
	ErrNetwork = errors.New("network error")

	// ErrUnauthorized is returned when credentials are missing or rejected.
	ErrUnauthorized = errors.New("unauthorized")
)

// RateLimitError is returned for 429 responses and exhausted quotas.
type RateLimitError struct {
	RetryAfter int // seconds, 0 when unknown
}

func (e *RateLimitError) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: retry after %d seconds", e.RetryAfter)
	}
	return "rate limited"
}

// NewHTTPClient creates an HTTP client with the standard timeout.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}
