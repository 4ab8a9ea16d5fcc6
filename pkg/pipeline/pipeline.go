// Package pipeline runs the calendar → maze → scene → artifact flow.
//
// Both the CLI and the HTTP server go through a [Runner] so that caching,
// seeding and theme handling behave the same everywhere.
//
// # Stages
//
//  1. Load: fetch the calendar from GitHub, or import it from a file
//  2. Layout: build the activity grid and carve the maze
//  3. Render: compose one SVG per theme (concurrently) and convert it into
//     each requested format
//
// # Usage
//
//	runner := pipeline.NewRunner(githubClient, cache, store, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Login:   "octocat",
//	    Themes:  []string{"dark", "light"},
//	    Formats: []string{"svg"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	paths, err := io.WriteArtifacts("dist", result.Artifacts)
//
// # Seeds
//
// Without an explicit seed the maze is seeded from the grid shape
// ([maze.DefaultSeed]), so the picture only changes when the calendar does.
// RandomSeed draws a fresh seed per run; such renders are never cached.
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/errors"
	pkgio "github.com/matzehuels/pacmaze/pkg/io"
	"github.com/matzehuels/pacmaze/pkg/maze"
	"github.com/matzehuels/pacmaze/pkg/render"
	"github.com/matzehuels/pacmaze/pkg/storage"
	"github.com/matzehuels/pacmaze/pkg/theme"
)

// DefaultScale is the PNG resolution multiplier.
const DefaultScale = 2.0

// Options contains all configuration for one run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Login   string `json:"login,omitempty"`
	Input   string `json:"input,omitempty"` // calendar file, replaces Login
	Refresh bool   `json:"refresh,omitempty"`

	// Layout options
	Seed       uint64 `json:"seed,omitempty"` // 0 selects maze.DefaultSeed
	RandomSeed bool   `json:"random_seed,omitempty"`

	// Render options
	Themes    []string `json:"themes,omitempty"`
	Formats   []string `json:"formats,omitempty"`
	Title     string   `json:"title,omitempty"`
	HideTotal bool     `json:"hide_total,omitempty"`
	Scale     float64  `json:"scale,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Calendar *activity.Calendar
	Grid     *activity.Grid
	Layout   *maze.Layout

	// Artifacts are ordered by theme, then format, as requested.
	Artifacts []pkgio.Artifact
	// Records are the archive entries written for SVG artifacts.
	Records []*storage.Record

	Stats     Stats
	CacheInfo CacheInfo
}

// Artifact returns the document for theme and format, or nil.
func (r *Result) Artifact(themeName, format string) []byte {
	for _, a := range r.Artifacts {
		if a.Theme == themeName && a.Format == format {
			return a.Data
		}
	}
	return nil
}

// Stats contains run statistics.
type Stats struct {
	Weeks      int
	Days       int
	Total      int
	Seed       uint64
	Walls      int
	LoadTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks which artifacts came from the cache.
type CacheInfo struct {
	RenderHits int
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Theme names are canonicalized. Calling it twice has no further effect.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLoad(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLoad checks that a calendar source is given.
func (o *Options) ValidateForLoad() error {
	if o.Input == "" {
		if err := errors.ValidateLogin(o.Login); err != nil {
			return err
		}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// ValidateForRender checks themes and formats and fills render defaults.
func (o *Options) ValidateForRender() error {
	if len(o.Themes) == 0 {
		o.Themes = []string{string(theme.Default)}
	}
	canonical := make([]string, len(o.Themes))
	for i, name := range o.Themes {
		th, err := theme.Lookup(name)
		if err != nil {
			return err
		}
		canonical[i] = string(th.Name)
	}
	o.Themes = canonical

	if len(o.Formats) == 0 {
		o.Formats = []string{"svg"}
	}
	if err := render.ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// Cacheable reports whether renders for these options are reproducible.
func (o *Options) Cacheable() bool {
	return !o.RandomSeed
}
