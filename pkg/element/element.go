package element

// Element is the common unit produced by both scanners and consumed by the
// conflict resolver and decoration builder. Spans are byte offsets into the
// snapshot text; [From, To) is the full syntax span including markers.
type Element struct {
	// Kind identifies the construct.
	Kind Kind

	// From and To delimit the full syntax span (markers included).
	From int
	To   int

	// Line is the 1-based line number of the element start.
	Line int

	// StartLine and EndLine are set (non-zero) only for elements spanning
	// multiple lines.
	StartLine int
	EndLine   int

	// ContentFrom and ContentTo delimit the inner content span, excluding
	// syntax markers, so the decoration builder can keep only the content
	// visible. For elements without distinct markers they equal From/To.
	ContentFrom int
	ContentTo   int

	// Payload carries kind-specific data; its dynamic type is determined
	// by Kind.
	Payload Payload
}

// Multiline returns true if the element spans more than one line.
func (e *Element) Multiline() bool {
	return e.StartLine != 0 && e.EndLine > e.StartLine
}

// Contains returns true if e's span fully contains other's span.
// Equal spans count as containment.
func (e *Element) Contains(other *Element) bool {
	return e.From <= other.From && e.To >= other.To
}

// Overlaps returns true if the two spans share at least one offset.
func (e *Element) Overlaps(other *Element) bool {
	return e.From < other.To && other.From < e.To
}

// Valid reports whether the element's span is well-formed against a document
// of the given length. Offsets past the end are tolerated (the decoration
// builder clamps them); negative or inverted spans are not.
func (e *Element) Valid(docLen int) bool {
	return e.From >= 0 && e.From <= e.To && e.From <= docLen
}

// Content extracts the inner content from the document text, clamped to the
// text bounds.
func (e *Element) Content(text string) string {
	from, to := e.ContentFrom, e.ContentTo
	if from < 0 {
		from = 0
	}
	if to > len(text) {
		to = len(text)
	}
	if from >= to {
		return ""
	}
	return text[from:to]
}
