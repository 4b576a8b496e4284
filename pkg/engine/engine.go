// Package engine orchestrates the livemark pipeline for a single open
// document: block scan, inline scan, conflict resolution, and decoration
// building, with snapshot-identity caching so cursor-only changes never
// re-parse and a top-level recovery boundary so a parsing bug yields an
// empty instruction set instead of breaking the host editor.
//
// An Engine is single-threaded by contract: it runs inside the host's
// change-notification handler, one instance per open document. Nothing in
// it is safe for concurrent use.
package engine

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/livemark/pkg/decorate"
	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
	"github.com/yaklabco/livemark/pkg/inline"
	"github.com/yaklabco/livemark/pkg/resolve"
	"github.com/yaklabco/livemark/pkg/scan"
)

// Engine owns the parse state and caches for one open document.
type Engine struct {
	opts    Options
	logger  *log.Logger
	scanner *inline.Scanner

	// Cached state for the most recent snapshot.
	doc      *document.Snapshot
	window   lineRange
	combined []element.Element
	resolved []element.Element
}

// lineRange is an inclusive 1-based line window; zero means whole document.
type lineRange struct {
	first, last int
}

// New creates an engine for a single document.
func New(opts Options) *Engine {
	opts = opts.withDefaults()
	return &Engine{
		opts:    opts,
		logger:  opts.Logger,
		scanner: inline.NewScanner(opts.LineCacheCapacity),
	}
}

// Update runs the pipeline over the full document and returns the ordered
// render-instruction set. When the snapshot identity matches the previous
// call, the cached element list is reused and only conflict resolution and
// decoration building re-run (reveal state may have changed).
//
// Any panic inside the pass is recovered: the pass yields an empty
// instruction set and logs the failure; the next edit retries the full
// pipeline.
func (e *Engine) Update(doc *document.Snapshot, oracle decorate.Oracle) (out []decorate.Instruction) {
	return e.update(doc, oracle, lineRange{})
}

// UpdateViewport is Update limited to a visible line range. Block scanning
// still covers the whole document (block boundaries can be arbitrarily far
// from the viewport); only inline scanning is windowed, widened by the
// configured line buffer.
func (e *Engine) UpdateViewport(doc *document.Snapshot, oracle decorate.Oracle, firstLine, lastLine int) []decorate.Instruction {
	if e.opts.ViewportLines <= 0 {
		return e.update(doc, oracle, lineRange{})
	}

	window := lineRange{
		first: max(1, firstLine-e.opts.ViewportLines),
		last:  min(doc.LineCount(), lastLine+e.opts.ViewportLines),
	}
	return e.update(doc, oracle, window)
}

func (e *Engine) update(doc *document.Snapshot, oracle decorate.Oracle, window lineRange) (out []decorate.Instruction) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("parse pass failed", "panic", r, "snapshot", doc.ID)
			out = []decorate.Instruction{}
			// Drop cached state so the next call retries from scratch.
			e.doc = nil
			e.combined = nil
			e.resolved = nil
		}
	}()

	if !e.cachedFor(doc, window) {
		e.parse(doc, window)
	}

	e.resolved = resolve.Resolve(e.combined)
	return decorate.Build(doc, e.resolved, oracle, e.logger)
}

// cachedFor reports whether the cached element list is valid for this
// snapshot and window.
func (e *Engine) cachedFor(doc *document.Snapshot, window lineRange) bool {
	return e.doc != nil && e.doc.ID == doc.ID && e.window == window
}

// parse runs the block and inline scanners and caches the combined list.
func (e *Engine) parse(doc *document.Snapshot, window lineRange) {
	blocks := scan.Scan(doc, scan.Options{
		DetectLanguages: e.opts.DetectLanguages,
		Logger:          e.logger,
	})

	first, last := 1, doc.LineCount()
	if window.first > 0 {
		first, last = window.first, window.last
	}

	combined := make([]element.Element, 0, len(blocks.Elements))
	combined = append(combined, blocks.Elements...)

	for line := first; line <= last; line++ {
		if blocks.Occupied[line] {
			continue
		}
		combined = append(combined, e.scanner.ScanLine(doc, line, blocks.Refs)...)
	}

	e.doc = doc
	e.window = window
	e.combined = combined
	e.resolved = nil
}

// Elements returns a read-only view of the last resolved element list,
// for collaborators (such as the reveal oracle) that need to know which
// constructs exist. Callers must not mutate the returned slice.
func (e *Engine) Elements() []element.Element {
	return e.resolved
}

// ElementsAt returns the resolved elements whose spans contain the offset,
// outermost first. Span edges count as inside, so a cursor sitting at a
// construct's closing marker still reports the construct.
func (e *Engine) ElementsAt(offset int) []element.Element {
	var out []element.Element
	for i := range e.resolved {
		if e.resolved[i].From <= offset && offset <= e.resolved[i].To {
			out = append(out, e.resolved[i])
		}
	}
	return out
}

// CacheStats returns the inline line cache counters.
func (e *Engine) CacheStats() inline.CacheStats {
	return e.scanner.CacheStats()
}

// ClearCaches drops all cached parse state, forcing a clean re-parse on
// the next update. Hosts call this when the document identity changes
// out-of-band (switching files into the same editor instance).
func (e *Engine) ClearCaches() {
	e.scanner.ClearCache()
	e.doc = nil
	e.combined = nil
	e.resolved = nil
}
