package github

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matzehuels/pacmaze/pkg/cache"
	"github.com/matzehuels/pacmaze/pkg/errors"
)

const calendarJSON = `{
  "data": {
    "user": {
      "contributionsCollection": {
        "contributionCalendar": {
          "totalContributions": 42,
          "weeks": [
            {"contributionDays": [
              {"contributionCount": 0, "date": "2024-06-02", "weekday": 0},
              {"contributionCount": 12, "date": "2024-06-03", "weekday": 1}
            ]},
            {"contributionDays": [
              {"contributionCount": 30, "date": "2024-06-09", "weekday": 0}
            ]}
          ]
        }
      }
    }
  }
}`

func testClient(t *testing.T, handler http.HandlerFunc, token string) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	c := NewClient(token, store, time.Hour)
	c.endpoint = server.URL
	return c
}

func TestClient_FetchCalendar(t *testing.T) {
	var calls atomic.Int32
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		var req graphQLRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		if req.Variables["userName"] != "octocat" {
			t.Errorf("userName = %v", req.Variables["userName"])
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(calendarJSON))
	}, "secret")

	cal, err := c.FetchCalendar(context.Background(), "octocat", false)
	if err != nil {
		t.Fatalf("FetchCalendar() error: %v", err)
	}
	if cal.Total != 42 || len(cal.Weeks) != 2 {
		t.Errorf("calendar = total %d, %d weeks", cal.Total, len(cal.Weeks))
	}
	if d := cal.Weeks[0].Days[1]; d.Count != 12 || d.Weekday != 1 || d.Date != "2024-06-03" {
		t.Errorf("day = %+v", d)
	}

	if _, err := c.FetchCalendar(context.Background(), "octocat", false); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 1 {
		t.Errorf("second fetch should come from cache, calls = %d", calls.Load())
	}
	if _, err := c.FetchCalendar(context.Background(), "octocat", true); err != nil {
		t.Fatal(err)
	}
	if calls.Load() != 2 {
		t.Errorf("refresh should hit the API, calls = %d", calls.Load())
	}
}

func TestClient_FetchCalendarErrors(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		login   string
		handler http.HandlerFunc
		want    errors.Code
	}{
		{
			name:  "missing token",
			login: "octocat",
			want:  errors.ErrCodeUnauthorized,
		},
		{
			name:  "invalid login",
			token: "t",
			login: "-bad-",
			want:  errors.ErrCodeInvalidLogin,
		},
		{
			name:  "null user",
			token: "t",
			login: "ghost",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":{"user":null}}`))
			},
			want: errors.ErrCodeUserNotFound,
		},
		{
			name:  "graphql not found",
			token: "t",
			login: "ghost",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"data":{"user":null},"errors":[{"type":"NOT_FOUND","message":"Could not resolve to a User"}]}`))
			},
			want: errors.ErrCodeUserNotFound,
		},
		{
			name:  "graphql other error",
			token: "t",
			login: "octocat",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"errors":[{"type":"INTERNAL","message":"boom"}]}`))
			},
			want: errors.ErrCodeNetwork,
		},
		{
			name:  "bad credentials",
			token: "t",
			login: "octocat",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
			},
			want: errors.ErrCodeUnauthorized,
		},
		{
			name:  "rate limited",
			token: "t",
			login: "octocat",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Retry-After", "10")
				w.WriteHeader(http.StatusTooManyRequests)
			},
			want: errors.ErrCodeRateLimited,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := tt.handler
			if handler == nil {
				handler = func(w http.ResponseWriter, r *http.Request) {
					t.Error("no request expected")
				}
			}
			c := testClient(t, handler, tt.token)
			_, err := c.FetchCalendar(context.Background(), tt.login, true)
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("error = %v, want code %s", err, tt.want)
			}
		})
	}
}

func TestClient_FetchCalendarCancelled(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(calendarJSON))
	}, "t")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.FetchCalendar(ctx, "octocat", true)
	if !errors.Is(err, errors.ErrCodeTimeout) {
		t.Errorf("error = %v, want TIMEOUT", err)
	}
}

func TestNewClient(t *testing.T) {
	c := NewClient("token", nil, time.Hour)
	if c.Client == nil {
		t.Error("expected client to be initialized")
	}
	if c.endpoint != defaultEndpoint {
		t.Errorf("endpoint = %q", c.endpoint)
	}
	anon := NewClient("", nil, time.Hour)
	if c.keys.CalendarKey("x") == anon.keys.CalendarKey("x") {
		t.Error("authenticated calendars should be scoped by token")
	}
}

func TestResponse_Calendar(t *testing.T) {
	var r Response
	if err := json.Unmarshal([]byte(calendarJSON), &r); err != nil {
		t.Fatal(err)
	}
	cal, err := r.Calendar("octocat")
	if err != nil {
		t.Fatal(err)
	}
	if cal.DayCount() != 3 {
		t.Errorf("DayCount = %d, want 3", cal.DayCount())
	}
}
