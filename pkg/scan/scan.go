// Package scan implements the block-level scanner family: a set of
// single-pass, line-oriented state machines that recognize fenced code,
// math blocks, pipe tables, callouts, details blocks, footnote definitions,
// and link-reference definitions, plus per-line constructs (headings,
// quotes, list items, horizontal rules) on lines no block has claimed.
//
// Scanners are pure over the snapshot: they emit match elements and an
// occupied-line set and nothing else. Malformed or unterminated constructs
// are not emitted; a debug log entry is the only trace they leave.
package scan

import (
	"github.com/charmbracelet/log"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
	"github.com/yaklabco/livemark/pkg/refs"
)

// Options controls optional scanner behavior.
type Options struct {
	// DetectLanguages enables content-based language detection for fenced
	// code blocks without an info string.
	DetectLanguages bool

	// Logger receives diagnostics for malformed constructs. Nil disables
	// logging.
	Logger *log.Logger
}

// Result is the output of a full block-level pass.
type Result struct {
	// Elements holds all block-level elements in document order.
	Elements []element.Element

	// Occupied marks 1-based line numbers claimed by block constructs.
	// Occupied lines are excluded from inline and line-level scanning.
	Occupied map[int]bool

	// Refs is the reference-definition table for this snapshot.
	Refs *refs.Table
}

// Scan runs all block scanners over the snapshot.
//
// Order matters: code fences run first so later scanners can skip their
// lines, math runs before tables (a $$ fence inside a table cell would
// otherwise be claimed twice), and reference definitions explicitly exclude
// code-claimed lines to avoid false positives inside fences.
func Scan(doc *document.Snapshot, opts Options) *Result {
	res := &Result{
		Occupied: make(map[int]bool),
		Refs:     refs.NewTable(),
	}

	codeLines := make(map[int]bool)

	fences := scanFences(doc, opts)
	for i := range fences {
		claim(res, &fences[i])
		for line := fences[i].StartLine; line <= fences[i].EndLine; line++ {
			codeLines[line] = true
		}
	}

	maths := scanMath(doc, res.Occupied, opts)
	for i := range maths {
		claim(res, &maths[i])
	}

	tables := scanTables(doc, res.Occupied, opts)
	for i := range tables {
		claim(res, &tables[i])
	}

	quotes := scanQuotes(doc, res.Occupied, opts)
	for i := range quotes {
		claim(res, &quotes[i])
	}

	details := scanDetails(doc, res.Occupied, opts)
	for i := range details {
		claim(res, &details[i])
	}

	notes := scanFootnoteDefs(doc, res.Occupied)
	for i := range notes {
		claim(res, &notes[i])
	}

	defs := scanRefDefs(doc, codeLines, res.Occupied)
	for i := range defs {
		claim(res, &defs[i])
		if payload, ok := defs[i].Payload.(element.RefDef); ok {
			res.Refs.Add(refs.Definition{
				Label: payload.Label,
				URL:   payload.URL,
				Title: payload.Title,
				Line:  defs[i].Line,
			})
		}
	}

	// Per-line constructs on whatever is left unclaimed. These do not
	// occupy their lines: headings, quote lines, and list items still get
	// inline scanning.
	res.Elements = append(res.Elements, scanLineConstructs(doc, res.Occupied)...)

	return res
}

// claim records a block element and marks its lines occupied.
func claim(res *Result, el *element.Element) {
	res.Elements = append(res.Elements, *el)

	start, end := el.Line, el.Line
	if el.StartLine != 0 {
		start, end = el.StartLine, el.EndLine
	}
	for line := start; line <= end; line++ {
		res.Occupied[line] = true
	}
}

// clampTo bounds an offset to the document length.
func clampTo(offset, docLen int) int {
	if offset > docLen {
		return docLen
	}
	return offset
}

func debugf(opts Options, msg string, kv ...any) {
	if opts.Logger != nil {
		opts.Logger.Debug(msg, kv...)
	}
}
