// Package theme holds the closed set of color schemes a scene can be
// rendered with.
//
// Each [Theme] supplies a background, title text and wall stroke color, plus
// one color per activity bucket. The set of themes is fixed at compile time;
// [Lookup] fails with THEME_NOT_FOUND for any other name.
package theme

import (
	"slices"
	"strings"

	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/errors"
)

// Name identifies a theme.
type Name string

// Recognized theme names.
const (
	Dark  Name = "dark"
	Light Name = "light"
)

// Default is the theme used when none is requested.
const Default = Dark

// Theme is a complete color table. Colors are CSS hex strings.
type Theme struct {
	Name       Name
	Background string
	Text       string
	Wall       string
	Buckets    [activity.BucketCount]string
}

// Color returns the fill for bucket b.
func (t Theme) Color(b activity.Bucket) string {
	if b < 0 || int(b) >= len(t.Buckets) {
		return t.Buckets[activity.BucketNone]
	}
	return t.Buckets[b]
}

var themes = map[Name]Theme{
	Dark: {
		Name:       Dark,
		Background: "#0d1117",
		Text:       "#ffffff",
		Wall:       "#ffffff",
		Buckets:    [activity.BucketCount]string{"#161b22", "#0e4429", "#006d32", "#26a641", "#39d353"},
	},
	Light: {
		Name:       Light,
		Background: "#ffffff",
		Text:       "#000000",
		Wall:       "#000000",
		Buckets:    [activity.BucketCount]string{"#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39"},
	},
}

// Lookup returns the theme called name. Matching ignores case and
// surrounding space.
func Lookup(name string) (Theme, error) {
	t, ok := themes[Name(strings.ToLower(strings.TrimSpace(name)))]
	if !ok {
		return Theme{}, errors.New(errors.ErrCodeThemeNotFound,
			"unknown theme %q (must be one of: %s)", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names returns the recognized theme names in sorted order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for n := range themes {
		names = append(names, string(n))
	}
	slices.Sort(names)
	return names
}

// All returns every theme sorted by name.
func All() []Theme {
	out := make([]Theme, 0, len(themes))
	for _, n := range Names() {
		out = append(out, themes[Name(n)])
	}
	return out
}

// Validate checks that every name in names is a recognized theme.
func Validate(names []string) error {
	for _, n := range names {
		if _, err := Lookup(n); err != nil {
			return err
		}
	}
	return nil
}
