package integrations

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/matzehuels/pacmaze/pkg/cache"
	"github.com/matzehuels/pacmaze/pkg/httputil"
)

func newTestClient(t *testing.T, server *httptest.Server, headers map[string]string) *Client {
	t.Helper()
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	client := NewClient(c, time.Hour, headers)
	client.http = server.Client()
	return client
}

func TestNewClient(t *testing.T) {
	c := cache.NewNullCache()
	client := NewClient(c, time.Hour, map[string]string{"Authorization": "Bearer token"})

	if client.http == nil {
		t.Error("NewClient() http client is nil")
	}
	if client.cache != c {
		t.Error("NewClient() cache not set correctly")
	}
	if client.headers["Authorization"] != "Bearer token" {
		t.Error("NewClient() headers not set correctly")
	}
}

func TestNewClientNilCache(t *testing.T) {
	client := NewClient(nil, 0, nil)
	if client.cache == nil {
		t.Error("nil cache should fall back to NullCache")
	}
}

func TestClientGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.Header.Get("User-Agent") != UserAgent {
			t.Errorf("User-Agent = %q", r.Header.Get("User-Agent"))
		}
		if r.Header.Get("X-Default") != "default" {
			t.Error("default header not sent")
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "hello"})
	}))
	defer server.Close()

	client := newTestClient(t, server, map[string]string{"X-Default": "default"})

	var resp map[string]string
	if err := client.Get(context.Background(), server.URL, &resp); err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if resp["message"] != "hello" {
		t.Errorf("Get() message = %q, want %q", resp["message"], "hello")
	}
}

func TestClientPostJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]string{"echo": body["query"]})
	}))
	defer server.Close()

	client := newTestClient(t, server, nil)

	var resp map[string]string
	err := client.PostJSON(context.Background(), server.URL, map[string]string{"query": "{ viewer }"}, &resp)
	if err != nil {
		t.Fatalf("PostJSON() error: %v", err)
	}
	if resp["echo"] != "{ viewer }" {
		t.Errorf("echo = %q", resp["echo"])
	}
}

func TestClientGetStatusErrors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		header    map[string]string
		check     func(error) bool
		retryable bool
	}{
		{"404", http.StatusNotFound, nil, func(err error) bool { return errors.Is(err, ErrNotFound) }, false},
		{"401", http.StatusUnauthorized, nil, func(err error) bool { return errors.Is(err, ErrUnauthorized) }, false},
		{"403 forbidden", http.StatusForbidden, nil, func(err error) bool { return errors.Is(err, ErrUnauthorized) }, false},
		{"403 quota", http.StatusForbidden, map[string]string{"X-RateLimit-Remaining": "0"}, func(err error) bool {
			return errors.As(err, new(*RateLimitError))
		}, false},
		{"429", http.StatusTooManyRequests, map[string]string{"Retry-After": "30"}, func(err error) bool {
			var rl *RateLimitError
			return errors.As(err, &rl) && rl.RetryAfter == 30
		}, false},
		{"500", http.StatusInternalServerError, nil, func(err error) bool { return errors.Is(err, ErrNetwork) }, true},
		{"400", http.StatusBadRequest, nil, func(err error) bool { return errors.Is(err, ErrNetwork) }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				for k, v := range tt.header {
					w.Header().Set(k, v)
				}
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			client := newTestClient(t, server, nil)
			var resp map[string]string
			err := client.Get(context.Background(), server.URL, &resp)
			if err == nil || !tt.check(err) {
				t.Fatalf("Get() error = %v", err)
			}
			if httputil.IsRetryable(err) != tt.retryable {
				t.Errorf("retryable = %v, want %v", httputil.IsRetryable(err), tt.retryable)
			}
		})
	}
}

func TestClientCached(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	client := newTestClient(t, server, nil)

	type payload struct {
		Value string `json:"value"`
	}

	fetches := 0
	fetch := func(v *payload) func() error {
		return func() error {
			fetches++
			v.Value = "fetched"
			return nil
		}
	}

	var first payload
	if err := client.Cached(context.Background(), "k", false, &first, fetch(&first)); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	var second payload
	if err := client.Cached(context.Background(), "k", false, &second, fetch(&second)); err != nil {
		t.Fatalf("Cached() error: %v", err)
	}
	if fetches != 1 {
		t.Errorf("fetches = %d, want 1 (second call should hit the cache)", fetches)
	}
	if second.Value != "fetched" {
		t.Errorf("cached value = %q", second.Value)
	}

	var third payload
	if err := client.Cached(context.Background(), "k", true, &third, fetch(&third)); err != nil {
		t.Fatal(err)
	}
	if fetches != 2 {
		t.Errorf("refresh should bypass the cache, fetches = %d", fetches)
	}
}

func TestClientCachedFetchError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()
	client := newTestClient(t, server, nil)

	var value string
	calls := 0
	err := client.Cached(context.Background(), "missing", false, &value, func() error {
		calls++
		return ErrNotFound
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Cached() error = %v, want ErrNotFound", err)
	}
	if calls != 1 {
		t.Errorf("non-retryable error should not be retried, calls = %d", calls)
	}
}
