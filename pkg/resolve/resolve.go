// Package resolve merges the block and inline element lists into one
// non-overlapping set using a priority-and-containment algorithm. After
// resolution, any two surviving elements are either disjoint or cleanly
// nested; partial overlap never survives.
package resolve

import (
	"sort"

	"github.com/yaklabco/livemark/pkg/element"
)

// Resolve removes conflicting elements and returns the survivors.
//
// Rules, applied pairwise:
//   - Containment is nesting and normally keeps both elements.
//   - A leaf element (code or math) acting as the outer span drops every
//     element nested inside it: its content is verbatim.
//   - Two replace-whole-span elements cannot nest, because both would try
//     to replace overlapping text; the inner one is dropped. Emphasis-family
//     formatting is rendered by hiding markers, not replacing spans, so it
//     nests freely (bold may contain italic).
//   - Partial overlap keeps the element whose kind ranks higher; the other
//     is dropped.
//
// The scan is O(n²) over the element count of the parsed range, which stays
// small after line caching; it is not proportional to document length.
func Resolve(elems []element.Element) []element.Element {
	if len(elems) <= 1 {
		return elems
	}

	sorted := make([]element.Element, len(elems))
	copy(sorted, elems)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].From != sorted[j].From {
			return sorted[i].From < sorted[j].From
		}
		if sorted[i].To != sorted[j].To {
			return sorted[i].To > sorted[j].To
		}
		return sorted[i].Kind.Compare(sorted[j].Kind) < 0
	})

	dropped := make([]bool, len(sorted))

	for i := range sorted {
		if dropped[i] {
			continue
		}
		for j := i + 1; j < len(sorted); j++ {
			if dropped[j] {
				continue
			}
			// Sorted by From: once j starts past i's end, no more overlap.
			if sorted[j].From >= sorted[i].To {
				break
			}
			if !sorted[i].Overlaps(&sorted[j]) {
				continue
			}

			switch {
			case sorted[i].Contains(&sorted[j]):
				if dropInner(&sorted[i], &sorted[j]) {
					dropped[j] = true
				}
			case sorted[j].Contains(&sorted[i]):
				if dropInner(&sorted[j], &sorted[i]) {
					dropped[i] = true
				}
			default:
				// Partial overlap: the higher-priority kind survives.
				if sorted[i].Kind.Compare(sorted[j].Kind) <= 0 {
					dropped[j] = true
				} else {
					dropped[i] = true
				}
			}
			if dropped[i] {
				break
			}
		}
	}

	out := sorted[:0]
	for i := range sorted {
		if !dropped[i] {
			out = append(out, sorted[i])
		}
	}
	return out
}

// dropInner decides whether a contained element must be dropped, given the
// containing element. The rule is symmetric in the sense that only the
// outer/inner roles matter, not discovery order.
func dropInner(outer, inner *element.Element) bool {
	if outer.Kind.IsLeaf() {
		return true
	}
	if outer.Kind.IsReplaceContainer() && inner.Kind.IsReplaceContainer() {
		return true
	}
	return false
}
