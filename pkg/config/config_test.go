package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/pacmaze/pkg/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pacmaze.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.OutputDir != "dist" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if strings.Join(cfg.Themes, ",") != "dark,light" {
		t.Errorf("Themes = %v", cfg.Themes)
	}
	if cfg.Cache.TTL != 6*time.Hour {
		t.Errorf("Cache.TTL = %s", cfg.Cache.TTL)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
user = "octocat"
themes = ["light"]
formats = ["svg", "png"]
title = "My Year"

[cache]
ttl = "30m"

[server]
addr = "127.0.0.1:9000"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.User != "octocat" || cfg.Title != "My Year" {
		t.Errorf("cfg = %+v", cfg)
	}
	if strings.Join(cfg.Themes, ",") != "light" || len(cfg.Formats) != 2 {
		t.Errorf("Themes = %v, Formats = %v", cfg.Themes, cfg.Formats)
	}
	if cfg.Cache.TTL != 30*time.Minute {
		t.Errorf("Cache.TTL = %s", cfg.Cache.TTL)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.OutputDir != "dist" {
		t.Error("unset keys should keep defaults")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeFile(t, `user = "from-file"`)
	t.Setenv("GITHUB_USER_NAME", "from-env")
	t.Setenv("GITHUB_TOKEN", "secret")
	t.Setenv("PACMAZE_THEMES", " Dark , light ")
	t.Setenv("PACMAZE_CACHE_TTL", "1h")
	t.Setenv("PACMAZE_REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.User != "from-env" || cfg.Token != "secret" {
		t.Errorf("User = %q, Token = %q", cfg.User, cfg.Token)
	}
	if strings.Join(cfg.Themes, ",") != "dark,light" {
		t.Errorf("Themes = %v", cfg.Themes)
	}
	if cfg.Cache.TTL != time.Hour || cfg.Cache.RedisURL == "" {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if strings.Contains(cfg.String(), "secret") {
		t.Error("String() must not print the token")
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		env     map[string]string
		want    errors.Code
	}{
		{"unknown key", `colour = "red"`, nil, errors.ErrCodeInvalidInput},
		{"malformed", `user = `, nil, errors.ErrCodeInvalidInput},
		{"unknown theme", `themes = ["neon"]`, nil, errors.ErrCodeThemeNotFound},
		{"bad format", `formats = ["gif"]`, nil, errors.ErrCodeInvalidFormat},
		{"negative ttl", "[cache]\nttl = \"-1h\"", nil, errors.ErrCodeInvalidInput},
		{"bad env", ``, map[string]string{"PACMAZE_SCALE": "big"}, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeFile(t, tt.content))
			if got := errors.GetCode(err); got != tt.want {
				t.Errorf("Load() error = %v, want %s", err, tt.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("Load() error = %v, want INVALID_PATH", err)
	}
}
