package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
)

// LogHooks writes every event to a logger at debug level. Failures are
// logged as warnings.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks logging to logger, prefixed per category.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

func (h *LogHooks) OnLoad(_ context.Context, source string, weeks int, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("load failed", "source", source, "err", err, "duration", d)
		return
	}
	h.logger.Debug("calendar loaded", "source", source, "weeks", weeks, "duration", d)
}

func (h *LogHooks) OnMaze(_ context.Context, rows, cols int, seed uint64, d time.Duration) {
	h.logger.Debug("maze carved", "rows", rows, "cols", cols, "seed", seed, "duration", d)
}

func (h *LogHooks) OnRender(_ context.Context, theme string, formats []string, d time.Duration, err error) {
	if err != nil {
		h.logger.Warn("render failed", "theme", theme, "err", err)
		return
	}
	h.logger.Debug("theme rendered", "theme", theme, "formats", formats, "duration", d)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "size", humanize.Bytes(uint64(size)))
}

func (h *LogHooks) OnResponse(_ context.Context, method, host, path string, status int, d time.Duration) {
	h.logger.Debug("http", "method", method, "host", host, "path", path, "status", status, "duration", d)
}

func (h *LogHooks) OnError(_ context.Context, method, host, path string, err error) {
	h.logger.Warn("http error", "method", method, "host", host, "path", path, "err", err)
}

var _ All = (*LogHooks)(nil)
