package cache

import "strings"

// Keyer names cache entries.
type Keyer interface {
	// CalendarKey names the fetched calendar of login.
	CalendarKey(login string) string
	// RenderKey names one rendered document.
	RenderKey(login string, opts RenderKeyOpts) string
}

// RenderKeyOpts lists every input that changes a rendered document.
type RenderKeyOpts struct {
	Calendar string  `json:"calendar"` // hash of the encoded calendar
	Theme    string  `json:"theme"`
	Format   string  `json:"format"`
	Seed     uint64  `json:"seed"`
	Title    string  `json:"title,omitempty"`
	NoTotal  bool    `json:"no_total,omitempty"`
	Scale    float64 `json:"scale,omitempty"`
}

// DefaultKeyer produces unscoped keys. Logins are case-insensitive on
// GitHub, so they are lowercased.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard key scheme.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) CalendarKey(login string) string {
	return "calendar:" + strings.ToLower(login)
}

func (DefaultKeyer) RenderKey(login string, opts RenderKeyOpts) string {
	return hashKey("render", strings.ToLower(login), opts)
}
