package github

import (
	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/errors"
)

const calendarQuery = `
query($userName:String!) {
  user(login: $userName) {
    contributionsCollection {
      contributionCalendar {
        totalContributions
        weeks {
          contributionDays {
            contributionCount
            date
            weekday
          }
        }
      }
    }
  }
}`

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

// GraphQLError is one entry of the "errors" array of a GraphQL response.
type GraphQLError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Response is the GraphQL response envelope of the contribution calendar
// query. Files saved from the API can be decoded into it directly.
type Response struct {
	Data struct {
		User *struct {
			ContributionsCollection struct {
				ContributionCalendar activity.Calendar `json:"contributionCalendar" yaml:"contributionCalendar"`
			} `json:"contributionsCollection" yaml:"contributionsCollection"`
		} `json:"user" yaml:"user"`
	} `json:"data" yaml:"data"`
	Errors []GraphQLError `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// Calendar extracts the calendar from the envelope, mapping GraphQL errors
// and a null user to structured errors.
func (r *Response) Calendar(login string) (*activity.Calendar, error) {
	if len(r.Errors) > 0 {
		e := r.Errors[0]
		if e.Type == "NOT_FOUND" {
			return nil, errors.New(errors.ErrCodeUserNotFound, "GitHub user %q not found", login)
		}
		return nil, errors.New(errors.ErrCodeNetwork, "GitHub GraphQL error: %s", e.Message)
	}
	if r.Data.User == nil {
		return nil, errors.New(errors.ErrCodeUserNotFound, "GitHub user %q not found", login)
	}
	cal := r.Data.User.ContributionsCollection.ContributionCalendar
	return &cal, nil
}
