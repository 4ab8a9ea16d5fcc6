package activity

// Day is one calendar day. Weekday is 0 for the first row of the calendar
// (Sunday in GitHub's layout).
type Day struct {
	Date    string `json:"date" yaml:"date"`
	Weekday int    `json:"weekday" yaml:"weekday"`
	Count   int    `json:"contributionCount" yaml:"contributionCount"`
}

// Week holds the days of one calendar column. The first and last week of a
// calendar are usually partial.
type Week struct {
	Days []Day `json:"contributionDays" yaml:"contributionDays"`
}

// Calendar is the normalized activity calendar consumed by [NewGrid].
type Calendar struct {
	Total int    `json:"totalContributions" yaml:"totalContributions"`
	Weeks []Week `json:"weeks" yaml:"weeks"`
}

// DayCount returns the number of days across all weeks.
func (c *Calendar) DayCount() int {
	n := 0
	for _, w := range c.Weeks {
		n += len(w.Days)
	}
	return n
}

// Sum adds up the contribution count of every day.
func (c *Calendar) Sum() int {
	n := 0
	for _, w := range c.Weeks {
		for _, d := range w.Days {
			n += d.Count
		}
	}
	return n
}
