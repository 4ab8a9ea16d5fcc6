package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/errors"
	"github.com/matzehuels/pacmaze/pkg/integrations/github"
)

// Format is a calendar file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatOf derives the encoding from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeUnsupportedPayload,
		"unsupported calendar file %q (use .json, .yaml or .yml)", filepath.Base(path))
}

// ReadCalendar decodes a calendar in format f from r. Both the bare
// calendar and the GraphQL response envelope are accepted. ReadCalendar
// does not close r.
func ReadCalendar(r io.Reader, f Format) (*activity.Calendar, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	unmarshal := json.Unmarshal
	if f == FormatYAML {
		unmarshal = yaml.Unmarshal
	}

	var envelope github.Response
	if err := unmarshal(data, &envelope); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCalendar, err, "decode %s calendar", f)
	}
	if envelope.Data.User != nil || len(envelope.Errors) > 0 {
		return envelope.Calendar("")
	}

	var cal activity.Calendar
	if err := unmarshal(data, &cal); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidCalendar, err, "decode %s calendar", f)
	}
	if len(cal.Weeks) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidCalendar, "calendar has no weeks")
	}
	return &cal, nil
}

// ImportCalendar reads the calendar file at path.
func ImportCalendar(path string) (*activity.Calendar, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer file.Close()
	return ReadCalendar(file, f)
}
