package decorate

import (
	"sort"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
)

// Build maps resolved elements to the final ordered render-instruction set.
// Elements with invalid ranges are skipped with a diagnostic; offsets past
// the document end are clamped rather than dropped, so trailing-document
// elements still render.
func Build(doc *document.Snapshot, elems []element.Element, oracle Oracle, logger *log.Logger) []Instruction {
	if oracle == nil {
		oracle = NoReveal
	}

	var out []Instruction
	for i := range elems {
		el := elems[i]
		if !el.Valid(doc.Len()) {
			if logger != nil {
				logger.Warn("skipping element with invalid range",
					"kind", el.Kind.String(), "from", el.From, "to", el.To)
			}
			continue
		}
		el.To = clamp(el.To, doc.Len())
		el.ContentTo = clamp(el.ContentTo, doc.Len())

		out = append(out, buildOne(doc, &el, oracle)...)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}
		return out[i].Priority < out[j].Priority
	})

	return out
}

func buildOne(doc *document.Snapshot, el *element.Element, oracle Oracle) []Instruction {
	if el.Kind.IsMultiLineBlock() {
		return buildBlock(doc, el, oracle)
	}

	switch el.Kind {
	case element.KindHeading:
		return buildHeading(doc, el, oracle)
	case element.KindBlockquote, element.KindListItem:
		line := lineInstruction(doc, el.Line, "lm-"+el.Kind.String(), el.Kind)
		out := []Instruction{line}
		// List bullets additionally render as a replaced marker span.
		if el.Kind == element.KindListItem && !oracle.ShouldReveal(el.From, el.ContentFrom, el.Kind) {
			if el.ContentFrom > el.From {
				out = append(out, Instruction{
					Kind: SpanReplace,
					From: el.From,
					To:   el.ContentFrom,
					Replacement: &Replacement{
						Class:   "lm-list-bullet",
						Payload: el.Payload,
					},
					Source:   el.Kind,
					Priority: el.Kind.Precedence(),
				})
			}
		}
		return out
	case element.KindTag:
		// Tags are marked, not replaced, to preserve searchability.
		if oracle.ShouldReveal(el.From, el.To, el.Kind) {
			return nil
		}
		return []Instruction{{
			Kind:     SpanMark,
			From:     el.From,
			To:       el.To,
			Class:    "lm-tag",
			Source:   el.Kind,
			Priority: el.Kind.Precedence(),
		}}
	default:
		if oracle.ShouldReveal(el.From, el.To, el.Kind) {
			return nil
		}
		return []Instruction{{
			Kind: SpanReplace,
			From: el.From,
			To:   el.To,
			Replacement: &Replacement{
				Text:    el.Content(doc.Text),
				Class:   "lm-" + el.Kind.String(),
				Payload: el.Payload,
			},
			Source:   el.Kind,
			Priority: el.Kind.Precedence(),
		}}
	}
}

// buildHeading always emits the line-level heading style; the marker-hide
// span uses a reveal check scoped to the markers only, so the style stays
// applied while the caret edits the # characters.
func buildHeading(doc *document.Snapshot, el *element.Element, oracle Oracle) []Instruction {
	payload, _ := el.Payload.(element.Heading)

	out := []Instruction{lineInstruction(doc, el.Line, headingClass(payload.Level), el.Kind)}

	markerFrom, markerTo := el.From, el.ContentFrom
	if markerTo > markerFrom && !oracle.ShouldReveal(markerFrom, markerTo, el.Kind) {
		out = append(out, Instruction{
			Kind:     SpanReplace,
			From:     markerFrom,
			To:       markerTo,
			Replacement: &Replacement{
				Class:   "lm-heading-marker",
				Payload: el.Payload,
			},
			Source:   el.Kind,
			Priority: el.Kind.Precedence(),
		})
	}
	return out
}

// buildBlock handles multi-line block kinds: editing style per covered line
// while the cursor is inside, otherwise a single widget anchored at the
// first line with hidden markers on every covered line, or a direct span
// replacement when the block fits on one line.
func buildBlock(doc *document.Snapshot, el *element.Element, oracle Oracle) []Instruction {
	start, end := el.Line, el.Line
	if el.Multiline() {
		start, end = el.StartLine, el.EndLine
	}

	if oracle.ShouldReveal(el.From, el.To, el.Kind) {
		out := make([]Instruction, 0, end-start+1)
		for line := start; line <= end; line++ {
			out = append(out, lineInstruction(doc, line, "lm-editing-"+el.Kind.String(), el.Kind))
		}
		return out
	}

	if !el.Multiline() {
		return []Instruction{{
			Kind: SpanReplace,
			From: el.From,
			To:   el.To,
			Replacement: &Replacement{
				Text:    el.Content(doc.Text),
				Class:   "lm-" + el.Kind.String(),
				Payload: el.Payload,
			},
			Source:   el.Kind,
			Priority: el.Kind.Precedence(),
		}}
	}

	out := []Instruction{{
		Kind: WidgetAnchor,
		From: el.From,
		To:   el.From,
		Widget: &Widget{
			Class:   "lm-" + el.Kind.String(),
			Payload: el.Payload,
			Lines:   end - start + 1,
		},
		Source:   el.Kind,
		Priority: el.Kind.Precedence(),
	}}
	for line := start; line <= end; line++ {
		out = append(out, lineInstruction(doc, line, "lm-hidden", el.Kind))
	}
	return out
}

func lineInstruction(doc *document.Snapshot, line int, class string, source element.Kind) Instruction {
	from, _, _ := doc.LineSpan(line)
	return Instruction{
		Kind:      LineAttribute,
		From:      from,
		To:        from,
		Class:     class,
		Source:    source,
		Priority:  source.Precedence(),
		LineLevel: true,
	}
}

func headingClass(level int) string {
	switch level {
	case 1:
		return "lm-heading-1"
	case 2:
		return "lm-heading-2"
	case 3:
		return "lm-heading-3"
	case 4:
		return "lm-heading-4"
	case 5:
		return "lm-heading-5"
	case 6:
		return "lm-heading-6"
	default:
		return "lm-heading"
	}
}

func clamp(offset, max int) int {
	if offset > max {
		return max
	}
	return offset
}
