// Package inline implements the inline-level scanner: ordered, precompiled
// pattern matchers applied to every line not occupied by a block construct,
// with a bounded per-line result cache keyed by line number, line text, and
// the reference-table signature.
package inline

import (
	"sort"
	"strings"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
	"github.com/yaklabco/livemark/pkg/refs"
)

// span is a line-relative half-open byte range.
type span struct {
	from, to int
}

func (s span) intersects(other span) bool {
	return s.from < other.to && other.from < s.to
}

// lineScan holds the state of scanning a single line.
type lineScan struct {
	text   string
	base   int
	lineNo int
	refs   *refs.Table

	// claimedMarkers holds delimiter spans of emitted emphasis-family
	// elements; content between them stays open for nesting.
	claimedMarkers []span

	// claimedFull holds whole spans of emitted leaf and bracket elements;
	// nothing inside them may match again.
	claimedFull []span
}

// Scanner scans lines for inline constructs, caching per-line results.
// It is not safe for concurrent use; each document owns one Scanner.
type Scanner struct {
	cache *lineCache
}

// NewScanner creates a Scanner with the given cache capacity.
// A capacity of 0 disables caching.
func NewScanner(cacheCapacity int) *Scanner {
	return &Scanner{cache: newLineCache(cacheCapacity)}
}

// ScanLine returns the inline elements of a 1-based line. On a cache hit
// with an unchanged line start offset the previous slice is returned by
// reference, enabling cheap downstream identity checks.
func (s *Scanner) ScanLine(doc *document.Snapshot, lineNo int, table *refs.Table) []element.Element {
	text := doc.LineText(lineNo)
	base, _, _ := doc.LineSpan(lineNo)
	key := cacheKey(lineNo, text, table.Signature())

	if cached, ok := s.cache.get(key, base); ok {
		return cached
	}

	elems := scanLineText(text, base, lineNo, table)
	s.cache.put(key, base, elems)
	return elems
}

// CacheStats returns the line cache's current counters.
func (s *Scanner) CacheStats() CacheStats {
	return s.cache.stats()
}

// ClearCache drops all cached line results.
func (s *Scanner) ClearCache() {
	s.cache.clear()
}

func cacheKey(lineNo int, text, sig string) string {
	var b strings.Builder
	b.Grow(len(text) + len(sig) + 16)
	writeInt(&b, lineNo)
	b.WriteByte(':')
	b.WriteString(text)
	b.WriteByte(':')
	b.WriteString(sig)
	return b.String()
}

func writeInt(b *strings.Builder, n int) {
	if n >= 10 {
		writeInt(b, n/10)
	}
	b.WriteByte(byte('0' + n%10))
}

// scanLineText applies all matchers in order to one line.
func scanLineText(text string, base, lineNo int, table *refs.Table) []element.Element {
	s := &lineScan{text: text, base: base, lineNo: lineNo, refs: table}
	var out []element.Element

	for i := range matchers {
		m := &matchers[i]

		// Walk candidates one at a time. A rejected candidate advances the
		// scan by a single byte past its start, so a match blocked by an
		// earlier claim does not swallow a valid construct inside its span.
		pos := 0
		for pos < len(text) {
			idx := m.re.FindStringSubmatchIndex(text[pos:])
			if idx == nil {
				break
			}
			for k := range idx {
				if idx[k] >= 0 {
					idx[k] += pos
				}
			}

			el, ok := m.build(s, idx)
			if ok {
				open := span{el.From - base, el.ContentFrom - base}
				closing := span{el.ContentTo - base, el.To - base}
				full := span{el.From - base, el.To - base}

				switch {
				case escaped(text, open.from):
				case m.checkClose && escaped(text, closing.from):
				case s.overlapsAny(open) || s.overlapsAny(closing):
				case m.claimFull && s.overlapsFull(full):
				default:
					el.Kind = m.kind
					el.Line = lineNo
					out = append(out, el)

					if m.claimFull {
						s.claimedFull = append(s.claimedFull, full)
					} else {
						s.claimedMarkers = append(s.claimedMarkers, open, closing)
					}
					pos = idx[1]
					continue
				}
			}
			pos = idx[0] + 1
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To > out[j].To
	})

	return out
}

// overlapsAny reports whether sp intersects any claimed span, marker or
// full.
func (s *lineScan) overlapsAny(sp span) bool {
	for _, c := range s.claimedMarkers {
		if sp.intersects(c) {
			return true
		}
	}
	return s.overlapsFull(sp)
}

// overlapsFull reports whether sp intersects any fully claimed span.
func (s *lineScan) overlapsFull(sp span) bool {
	for _, c := range s.claimedFull {
		if sp.intersects(c) {
			return true
		}
	}
	return false
}

// escaped reports whether the character at position i is preceded by an odd
// number of consecutive backslashes.
func escaped(text string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}
