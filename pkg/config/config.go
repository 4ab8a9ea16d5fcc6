// Package config loads pacmaze settings.
//
// Values are layered, later sources winning:
//
//  1. built-in defaults ([Default])
//  2. a TOML file (pacmaze.toml in the working directory, or --config)
//  3. environment variables
//  4. command-line flags, applied by the CLI
//
// A minimal file:
//
//	user    = "octocat"
//	themes  = ["dark", "light"]
//	formats = ["svg"]
//
//	[cache]
//	ttl = "6h"
//
//	[server]
//	addr = ":8080"
//
// The GitHub token is read from GITHUB_TOKEN only and never from a file.
package config

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/matzehuels/pacmaze/pkg/errors"
	"github.com/matzehuels/pacmaze/pkg/render"
	"github.com/matzehuels/pacmaze/pkg/theme"
)

// DefaultFile is read when no explicit path is given and it exists.
const DefaultFile = "pacmaze.toml"

// Config holds every setting.
type Config struct {
	User      string   `toml:"user" env:"GITHUB_USER_NAME"`
	Token     string   `toml:"-" env:"GITHUB_TOKEN"`
	OutputDir string   `toml:"output_dir" env:"PACMAZE_OUTPUT_DIR"`
	Themes    []string `toml:"themes" env:"PACMAZE_THEMES" envSeparator:","`
	Formats   []string `toml:"formats" env:"PACMAZE_FORMATS" envSeparator:","`
	Title     string   `toml:"title" env:"PACMAZE_TITLE"`
	Scale     float64  `toml:"scale" env:"PACMAZE_SCALE"`

	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
}

// Cache configures calendar and render caching.
type Cache struct {
	Disabled bool          `toml:"disabled" env:"PACMAZE_NO_CACHE"`
	TTL      time.Duration `toml:"ttl" env:"PACMAZE_CACHE_TTL"`
	Dir      string        `toml:"dir" env:"PACMAZE_CACHE_DIR"`
	RedisURL string        `toml:"redis_url" env:"PACMAZE_REDIS_URL"`
}

// Server configures `pacmaze serve`.
type Server struct {
	Addr     string `toml:"addr" env:"PACMAZE_ADDR"`
	MongoURI string `toml:"mongo_uri" env:"PACMAZE_MONGO_URI"`
	MongoDB  string `toml:"mongo_db" env:"PACMAZE_MONGO_DB"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		OutputDir: "dist",
		Themes:    theme.Names(),
		Formats:   []string{"svg"},
		Scale:     2,
		Cache:     Cache{TTL: 6 * time.Hour},
		Server:    Server{Addr: ":8080", MongoDB: "pacmaze"},
	}
}

// Load applies the file at path (or [DefaultFile] when path is empty and
// the file exists) and then the environment on top of [Default].
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			path = DefaultFile
		}
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse env")
	}
	cfg.Themes = trimList(cfg.Themes)
	cfg.Formats = trimList(cfg.Formats)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "config file %s", path)
		}
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidInput, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks the settings that do not depend on a command.
func (c *Config) Validate() error {
	if len(c.Themes) == 0 {
		return errors.New(errors.ErrCodeThemeNotFound, "at least one theme is required")
	}
	if err := theme.Validate(c.Themes); err != nil {
		return err
	}
	if err := render.ValidateFormats(c.Formats); err != nil {
		return err
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache ttl must not be negative, got %s", c.Cache.TTL)
	}
	if c.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %v", c.Scale)
	}
	return nil
}

// String renders the settings for `--verbose` output with the token masked.
func (c *Config) String() string {
	token := "<unset>"
	if c.Token != "" {
		token = "<set>"
	}
	return fmt.Sprintf("user=%s token=%s output=%s themes=%s formats=%s cache(ttl=%s redis=%t disabled=%t) server(addr=%s mongo=%t)",
		c.User, token, c.OutputDir, strings.Join(c.Themes, ","), strings.Join(c.Formats, ","),
		c.Cache.TTL, c.Cache.RedisURL != "", c.Cache.Disabled, c.Server.Addr, c.Server.MongoURI != "")
}

func trimList(in []string) []string {
	out := in[:0]
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, strings.ToLower(s))
		}
	}
	return out
}
