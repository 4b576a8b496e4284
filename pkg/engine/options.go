package engine

import (
	"io"

	"github.com/charmbracelet/log"
)

// Default sizing for per-document caches.
const (
	// DefaultLineCacheCapacity bounds the per-line inline result cache.
	DefaultLineCacheCapacity = 512

	// DefaultViewportLines is the line buffer added around the visible
	// range when viewport-limited parsing is enabled.
	DefaultViewportLines = 100
)

// Options configures an Engine.
type Options struct {
	// LineCacheCapacity bounds the inline line cache (entries).
	LineCacheCapacity int

	// ViewportLines is the buffer around the visible range for
	// UpdateViewport. Zero disables viewport limiting: every update
	// scans all lines.
	ViewportLines int

	// DetectLanguages enables content-based language detection for
	// unlabeled code fences.
	DetectLanguages bool

	// Logger receives diagnostics. Nil gets a discard logger.
	Logger *log.Logger
}

func (o Options) withDefaults() Options {
	if o.LineCacheCapacity == 0 {
		o.LineCacheCapacity = DefaultLineCacheCapacity
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}
