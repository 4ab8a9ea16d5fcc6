package github

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/cache"
	"github.com/matzehuels/pacmaze/pkg/errors"
	"github.com/matzehuels/pacmaze/pkg/integrations"
)

const defaultEndpoint = "https://api.github.com/graphql"

// Client fetches contribution calendars from the GitHub GraphQL API.
type Client struct {
	*integrations.Client
	endpoint string
	token    string
	keys     cache.Keyer
}

// NewClient creates a client authenticated with token. The GraphQL API
// rejects anonymous requests, so FetchCalendar fails with UNAUTHORIZED
// when token is empty. Calendars are cached in c for ttl, scoped to the
// token's viewer.
func NewClient(token string, c cache.Cache, ttl time.Duration) *Client {
	headers := map[string]string{}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:   integrations.NewClient(c, ttl, headers),
		endpoint: defaultEndpoint,
		token:    token,
		keys:     cache.NewScopedKeyer(nil, cache.ViewerScope(token)),
	}
}

// FetchCalendar returns the last year of contributions of login.
// With refresh set the cached copy is ignored.
func (c *Client) FetchCalendar(ctx context.Context, login string, refresh bool) (*activity.Calendar, error) {
	if err := errors.ValidateLogin(login); err != nil {
		return nil, err
	}
	if c.token == "" {
		return nil, errors.New(errors.ErrCodeUnauthorized,
			"a GitHub token is required (set GITHUB_TOKEN)")
	}

	var cal activity.Calendar
	err := c.Cached(ctx, c.keys.CalendarKey(login), refresh, &cal, func() error {
		var resp Response
		req := graphQLRequest{
			Query:     calendarQuery,
			Variables: map[string]any{"userName": login},
		}
		if err := c.PostJSON(ctx, c.endpoint, req, &resp); err != nil {
			return err
		}
		got, err := resp.Calendar(login)
		if err != nil {
			return err
		}
		cal = *got
		return nil
	})
	if err != nil {
		return nil, mapError(err, login)
	}
	return &cal, nil
}

func mapError(err error, login string) error {
	var rl *integrations.RateLimitError
	switch {
	case errors.GetCode(err) != "":
		return err
	case stderrors.Is(err, context.Canceled), stderrors.Is(err, context.DeadlineExceeded):
		return errors.Wrap(errors.ErrCodeTimeout, err, "fetch calendar for %s", login)
	case stderrors.As(err, &rl):
		return errors.Wrap(errors.ErrCodeRateLimited, err, "GitHub API rate limit reached")
	case stderrors.Is(err, integrations.ErrUnauthorized):
		return errors.Wrap(errors.ErrCodeUnauthorized, err, "GitHub rejected the token")
	case stderrors.Is(err, integrations.ErrNotFound):
		return errors.Wrap(errors.ErrCodeNotFound, err, "GitHub GraphQL endpoint not found")
	default:
		return errors.Wrap(errors.ErrCodeNetwork, err, "fetch calendar for %s", login)
	}
}
