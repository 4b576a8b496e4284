package scan

import (
	"strings"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
)

// scanLineConstructs recognizes the per-line constructs on lines no block
// has claimed: ATX headings, plain quote lines, list items, and horizontal
// rules. These lines stay available to the inline scanner, so none of them
// are marked occupied.
func scanLineConstructs(doc *document.Snapshot, occupied map[int]bool) []element.Element {
	var out []element.Element

	for line := 1; line <= doc.LineCount(); line++ {
		if occupied[line] {
			continue
		}

		text := doc.LineText(line)
		from, to, _ := doc.LineSpan(line)

		if level, heading, ok := atxHeading(text); ok {
			markerWidth := level + 1 // hashes plus the following space
			out = append(out, element.Element{
				Kind:        element.KindHeading,
				From:        from,
				To:          to,
				Line:        line,
				ContentFrom: from + markerWidth,
				ContentTo:   to,
				Payload:     element.Heading{Level: level, Text: heading},
			})
			continue
		}

		if isHorizontalRule(text) {
			out = append(out, element.Element{
				Kind:        element.KindHorizontalRule,
				From:        from,
				To:          to,
				Line:        line,
				ContentFrom: from,
				ContentTo:   to,
				Payload:     element.HorizontalRule{},
			})
			continue
		}

		pre := stripPrefix(text)

		if pre.QuoteDepth > 0 {
			out = append(out, element.Element{
				Kind:        element.KindBlockquote,
				From:        from,
				To:          to,
				Line:        line,
				ContentFrom: from + pre.Offset,
				ContentTo:   to,
				Payload:     element.Blockquote{Depth: pre.QuoteDepth},
			})
		}

		if pre.ListMarker != "" {
			item := element.ListItem{
				Marker:  pre.ListMarker,
				Ordered: pre.ListMarker[0] >= '0' && pre.ListMarker[0] <= '9',
				Indent:  indentWidth(text),
			}
			if checked, ok := taskBox(pre.Rest); ok {
				item.Task = true
				item.Checked = checked
			}
			out = append(out, element.Element{
				Kind:        element.KindListItem,
				From:        from,
				To:          to,
				Line:        line,
				ContentFrom: from + pre.Offset,
				ContentTo:   to,
				Payload:     item,
			})
		}
	}

	return out
}

// atxHeading matches "# " through "###### " headings.
func atxHeading(text string) (level int, heading string, ok bool) {
	n := 0
	for n < len(text) && text[n] == '#' {
		n++
	}
	if n < 1 || n > 6 || n >= len(text) || text[n] != ' ' {
		return 0, "", false
	}
	return n, strings.TrimSpace(text[n+1:]), true
}

// isHorizontalRule matches lines of 3+ identical -, *, or _ characters,
// optionally space-separated.
func isHorizontalRule(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 3 {
		return false
	}
	char := trimmed[0]
	if char != '-' && char != '*' && char != '_' {
		return false
	}
	count := 0
	for i := 0; i < len(trimmed); i++ {
		switch trimmed[i] {
		case char:
			count++
		case ' ', '\t':
		default:
			return false
		}
	}
	return count >= 3
}

// taskBox recognizes "[ ]", "[x]", or "[X]" at the start of list item text.
func taskBox(rest string) (checked, ok bool) {
	if len(rest) < 3 || rest[0] != '[' || rest[2] != ']' {
		return false, false
	}
	switch rest[1] {
	case ' ':
		return false, true
	case 'x', 'X':
		return true, true
	default:
		return false, false
	}
}

// indentWidth returns the leading whitespace width in bytes.
func indentWidth(text string) int {
	n := 0
	for n < len(text) && (text[n] == ' ' || text[n] == '\t') {
		n++
	}
	return n
}
