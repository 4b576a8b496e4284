// Package decorate maps resolved elements to concrete render instructions:
// line attributes, span replacements, span marks, and anchored widgets. It
// consults the reveal oracle so spans the cursor occupies keep their raw
// markup visible.
package decorate

import "github.com/yaklabco/livemark/pkg/element"

// InstructionKind discriminates the render instruction variants.
type InstructionKind uint8

// Render instruction variants, matching what the host renderer applies.
const (
	// LineAttribute attaches a style class to the line starting at From.
	LineAttribute InstructionKind = iota

	// SpanReplace replaces [From, To) with a renderable payload.
	SpanReplace

	// SpanMark styles [From, To) in place without replacing it, keeping
	// the text searchable.
	SpanMark

	// WidgetAnchor places an out-of-band renderable block at From,
	// used for multi-line constructs.
	WidgetAnchor
)

func (k InstructionKind) String() string {
	switch k {
	case LineAttribute:
		return "line-attribute"
	case SpanReplace:
		return "span-replace"
	case SpanMark:
		return "span-mark"
	case WidgetAnchor:
		return "widget-anchor"
	default:
		return "unknown"
	}
}

// Instruction is one entry of the ordered render-instruction set.
type Instruction struct {
	Kind InstructionKind

	// From and To are document offsets. For LineAttribute and
	// WidgetAnchor, From is the anchor offset and To equals From.
	From int
	To   int

	// Class is the style class for LineAttribute and SpanMark.
	Class string

	// Replacement is the renderable payload for SpanReplace.
	Replacement *Replacement

	// Widget is the out-of-band block for WidgetAnchor.
	Widget *Widget

	// Source is the element kind that produced this instruction.
	Source element.Kind

	// Priority orders instructions sharing a span; lower applies first.
	Priority int

	// LineLevel is true for instructions styling whole lines.
	LineLevel bool
}

// Replacement is the renderable form of a replaced span.
type Replacement struct {
	// Text is the visible content (markers stripped).
	Text string

	// Class is the style class of the rendered form.
	Class string

	// Payload carries the element payload for hosts that render richer
	// forms than styled text (links need URLs, images need sources).
	Payload element.Payload
}

// Widget is an out-of-band renderable block anchored at an offset.
type Widget struct {
	// Class identifies the widget type to the renderer.
	Class string

	// Payload carries the full element payload the widget renders.
	Payload element.Payload

	// Lines is the number of raw lines the widget stands in for.
	Lines int
}
