package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/errors"
)

// ArtifactBase is the file name stem of every rendered document.
const ArtifactBase = "pacman-contribution-graph"

// Artifact is one rendered document.
type Artifact struct {
	Theme  string
	Format string // svg, png or pdf
	Data   []byte
}

// Name returns the artifact's file name.
func (a Artifact) Name() string { return ArtifactName(a.Theme, a.Format) }

// ArtifactName returns the file name for a theme and format. The dark SVG
// is the unsuffixed default.
func ArtifactName(theme, format string) string {
	if theme == "dark" && format == "svg" {
		return ArtifactBase + ".svg"
	}
	if theme == "dark" {
		return fmt.Sprintf("%s.%s", ArtifactBase, format)
	}
	return fmt.Sprintf("%s-%s.%s", ArtifactBase, theme, format)
}

// WriteCalendar encodes cal in format f to w.
func WriteCalendar(w io.Writer, cal *activity.Calendar, f Format) error {
	if f == FormatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cal); err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cal); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportCalendar writes cal to path, choosing the encoding by extension.
func ExportCalendar(cal *activity.Calendar, path string) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer file.Close()
	return WriteCalendar(file, cal, f)
}

// WriteArtifacts creates dir and writes every artifact into it. It returns
// the written paths in input order.
func WriteArtifacts(dir string, artifacts []Artifact) ([]string, error) {
	if err := errors.ValidateOutputDir(dir); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
	}

	paths := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		name := a.Name()
		if err := errors.ValidateFilename(name); err != nil {
			return paths, err
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, a.Data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
