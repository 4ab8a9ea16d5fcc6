// Package github fetches contribution calendars from the GitHub GraphQL API.
//
// # Usage
//
//	client := github.NewClient(os.Getenv("GITHUB_TOKEN"), store, 6*time.Hour)
//	cal, err := client.FetchCalendar(ctx, "octocat", false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	grid, err := activity.NewGrid(*cal)
//
// # Authentication
//
// The GraphQL API has no anonymous access; a personal access token is
// required. With a token that belongs to the requested user the calendar
// also counts private contributions, so cache entries are keyed by a hash
// of the token.
//
// # Errors
//
// Failures carry codes from pkg/errors: UNAUTHORIZED for a missing or
// rejected token, USER_NOT_FOUND for unknown logins, RATE_LIMITED when the
// quota is exhausted, TIMEOUT on cancellation and NETWORK_ERROR for the
// rest. Transport errors and 5xx responses are retried with backoff first.
package github
