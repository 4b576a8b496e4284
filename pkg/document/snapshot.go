// Package document provides the immutable document snapshot consumed by the
// livemark parsing pipeline. A Snapshot carries the full text, a line index,
// and an identity token used by downstream caches to detect text changes
// without comparing content.
package document

import "sync/atomic"

// idCounter hands out process-unique snapshot identities.
//
//nolint:gochecknoglobals // Monotonic identity source is intentionally package-level
var idCounter atomic.Uint64

// Snapshot is an immutable view of a document at a specific time.
// Two snapshots with the same ID are guaranteed to have the same text;
// any edit produces a snapshot with a fresh ID.
type Snapshot struct {
	// Text is the full document text.
	Text string

	// Lines contains metadata for each line, in order.
	Lines []LineInfo

	// ID is the identity token for this snapshot.
	ID uint64
}

// LineInfo holds metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the line start.
	StartOffset int

	// NewlineStart is the byte index where newline characters begin.
	// For lines without a trailing newline this equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just after the newline (or end of text).
	EndOffset int
}

// NewSnapshot creates a snapshot from text, assigning a fresh identity.
func NewSnapshot(text string) *Snapshot {
	return &Snapshot{
		Text:  text,
		Lines: BuildLines(text),
		ID:    idCounter.Add(1),
	}
}

// WithID creates a snapshot carrying a host-supplied identity token.
// Hosts that already version their documents can reuse their own tokens.
func WithID(text string, id uint64) *Snapshot {
	return &Snapshot{
		Text:  text,
		Lines: BuildLines(text),
		ID:    id,
	}
}

// Len returns the total document length in bytes.
func (s *Snapshot) Len() int {
	return len(s.Text)
}

// LineCount returns the number of lines.
func (s *Snapshot) LineCount() int {
	return len(s.Lines)
}

// LineText returns the content of a 1-based line number, excluding the
// newline. Returns "" if the line number is out of range.
func (s *Snapshot) LineText(line int) string {
	if line < 1 || line > len(s.Lines) {
		return ""
	}
	info := s.Lines[line-1]
	return s.Text[info.StartOffset:info.NewlineStart]
}

// LineSpan returns the [from, to) byte span of a 1-based line, excluding the
// newline. Returns (0, 0, false) if the line number is out of range.
func (s *Snapshot) LineSpan(line int) (from, to int, ok bool) {
	if line < 1 || line > len(s.Lines) {
		return 0, 0, false
	}
	info := s.Lines[line-1]
	return info.StartOffset, info.NewlineStart, true
}
