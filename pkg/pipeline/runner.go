package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/cache"
	"github.com/matzehuels/pacmaze/pkg/errors"
	pkgio "github.com/matzehuels/pacmaze/pkg/io"
	"github.com/matzehuels/pacmaze/pkg/maze"
	"github.com/matzehuels/pacmaze/pkg/observability"
	"github.com/matzehuels/pacmaze/pkg/render"
	"github.com/matzehuels/pacmaze/pkg/scene"
	"github.com/matzehuels/pacmaze/pkg/storage"
)

// CalendarSource fetches calendars by login. The GitHub client implements
// it.
type CalendarSource interface {
	FetchCalendar(ctx context.Context, login string, refresh bool) (*activity.Calendar, error)
}

// Runner executes the pipeline with caching and archiving.
//
// The Runner holds no per-run state; multiple goroutines can use the same
// Runner with different options.
type Runner struct {
	Source CalendarSource
	Cache  cache.Cache
	Keyer  cache.Keyer
	Store  storage.Store
	Logger *log.Logger

	// RenderTTL bounds how long converted artifacts are cached.
	RenderTTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil store
// disables archiving and a nil source restricts the runner to file input.
func NewRunner(src CalendarSource, c cache.Cache, store storage.Store, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if store == nil {
		store = storage.NullStore{}
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Source:    src,
		Cache:     c,
		Keyer:     cache.NewDefaultKeyer(),
		Store:     store,
		Logger:    logger,
		RenderTTL: 24 * time.Hour,
	}
}

// Execute loads the calendar and renders every requested artifact.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	start := time.Now()
	cal, err := r.Load(ctx, opts)
	loadTime := time.Since(start)
	weeks := 0
	if cal != nil {
		weeks = len(cal.Weeks)
	}
	observability.Pipeline().OnLoad(ctx, sourceName(opts), weeks, loadTime, err)
	if err != nil {
		return nil, err
	}
	r.Logger.Info("loaded calendar", "weeks", len(cal.Weeks), "days", cal.DayCount(), "duration", loadTime)

	result, err := r.Render(ctx, cal, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.LoadTime = loadTime
	return result, nil
}

// Load returns the calendar named by opts: the Input file when set,
// otherwise the login's calendar from the source.
func (r *Runner) Load(ctx context.Context, opts Options) (*activity.Calendar, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return nil, err
	}
	if opts.Input != "" {
		r.Logger.Debug("importing calendar", "path", opts.Input)
		return pkgio.ImportCalendar(opts.Input)
	}
	if r.Source == nil {
		return nil, errors.New(errors.ErrCodeUnauthorized, "no calendar source configured; pass --input or set GITHUB_TOKEN")
	}
	r.Logger.Debug("fetching calendar", "login", opts.Login, "refresh", opts.Refresh)
	return r.Source.FetchCalendar(ctx, opts.Login, opts.Refresh)
}

// Render lays out cal and renders every theme concurrently. The first
// failure cancels the remaining themes and no partial result is returned.
func (r *Runner) Render(ctx context.Context, cal *activity.Calendar, opts Options) (*Result, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	start := time.Now()

	grid, layout, err := GenerateLayout(cal, opts)
	if err != nil {
		return nil, err
	}
	observability.Pipeline().OnMaze(ctx, layout.Rows, layout.Cols, layout.Seed(), time.Since(start))
	r.Logger.Debug("carved maze", "rows", layout.Rows, "cols", layout.Cols, "seed", layout.Seed(), "walls", layout.WallCount())

	calendarHash := calendarDigest(cal)

	perTheme := make([][]pkgio.Artifact, len(opts.Themes))
	hits := make([]int, len(opts.Themes))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range opts.Themes {
		g.Go(func() error {
			themeStart := time.Now()
			artifacts, n, err := r.renderTheme(gctx, grid, layout, name, calendarHash, opts)
			observability.Pipeline().OnRender(gctx, name, opts.Formats, time.Since(themeStart), err)
			if err != nil {
				return fmt.Errorf("theme %s: %w", name, err)
			}
			perTheme[i], hits[i] = artifacts, n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Calendar: cal, Grid: grid, Layout: layout}
	for i := range opts.Themes {
		result.Artifacts = append(result.Artifacts, perTheme[i]...)
		result.CacheInfo.RenderHits += hits[i]
	}
	result.Records = r.archive(ctx, result, opts)
	result.Stats = Stats{
		Weeks:      grid.Cols,
		Days:       grid.Len(),
		Total:      grid.Total,
		Seed:       layout.Seed(),
		Walls:      layout.WallCount(),
		RenderTime: time.Since(start),
	}

	r.Logger.Info("rendered outputs",
		"themes", opts.Themes,
		"formats", opts.Formats,
		"seed", layout.Seed(),
		"cached", result.CacheInfo.RenderHits,
		"duration", result.Stats.RenderTime)
	return result, nil
}

func (r *Runner) renderTheme(ctx context.Context, grid *activity.Grid, layout *maze.Layout, name, calendarHash string, opts Options) ([]pkgio.Artifact, int, error) {
	var composeOpts []scene.Option
	if opts.Title != "" {
		composeOpts = append(composeOpts, scene.WithTitle(opts.Title))
	}
	if opts.HideTotal {
		composeOpts = append(composeOpts, scene.WithoutTotal())
	}

	svg, err := scene.Compose(grid, layout, name, composeOpts...)
	if err != nil {
		return nil, 0, err
	}

	hits := 0
	artifacts := make([]pkgio.Artifact, 0, len(opts.Formats))
	for _, format := range opts.Formats {
		if format == "svg" {
			artifacts = append(artifacts, pkgio.Artifact{Theme: name, Format: format, Data: svg})
			continue
		}

		key := r.Keyer.RenderKey(opts.Login, cache.RenderKeyOpts{
			Calendar: calendarHash,
			Theme:    name,
			Format:   format,
			Seed:     layout.Seed(),
			Title:    opts.Title,
			NoTotal:  opts.HideTotal,
			Scale:    opts.Scale,
		})
		if opts.Cacheable() {
			if data, ok, err := r.Cache.Get(ctx, key); err == nil && ok {
				observability.Cache().OnCacheHit(ctx, "render")
				artifacts = append(artifacts, pkgio.Artifact{Theme: name, Format: format, Data: data})
				hits++
				continue
			}
			observability.Cache().OnCacheMiss(ctx, "render")
		}

		data, err := render.Convert(ctx, svg, format, opts.Scale)
		if err != nil {
			return nil, 0, err
		}
		if opts.Cacheable() {
			if err := r.Cache.Set(ctx, key, data, r.RenderTTL); err == nil {
				observability.Cache().OnCacheSet(ctx, "render", len(data))
			}
		}
		artifacts = append(artifacts, pkgio.Artifact{Theme: name, Format: format, Data: data})
	}
	return artifacts, hits, nil
}

func sourceName(opts Options) string {
	if opts.Input != "" {
		return opts.Input
	}
	return "@" + opts.Login
}

// calendarDigest identifies the calendar contents in render cache keys.
func calendarDigest(cal *activity.Calendar) string {
	data, err := json.Marshal(cal)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

// archive stores every SVG artifact of a login. Archive failures are
// logged and do not fail the run.
func (r *Runner) archive(ctx context.Context, result *Result, opts Options) []*storage.Record {
	if opts.Login == "" {
		return nil
	}
	var records []*storage.Record
	for _, a := range result.Artifacts {
		if a.Format != "svg" {
			continue
		}
		rec := &storage.Record{
			Login: opts.Login,
			Theme: a.Theme,
			Seed:  result.Layout.Seed(),
			Rows:  result.Grid.Rows,
			Cols:  result.Grid.Cols,
			Total: result.Grid.Total,
			SVG:   a.Data,
		}
		if err := r.Store.Save(ctx, rec); err != nil {
			r.Logger.Warn("archive render", "login", opts.Login, "theme", a.Theme, "err", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

// Close releases the cache and the store.
func (r *Runner) Close() error {
	var first error
	if r.Cache != nil {
		first = r.Cache.Close()
	}
	if r.Store != nil {
		if err := r.Store.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
