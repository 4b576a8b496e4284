package scan

import (
	"regexp"
	"strings"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
)

// footnoteHeader matches "[^id]: body" definition headers.
//
//nolint:gochecknoglobals // Precompiled pattern
var footnoteHeader = regexp.MustCompile(`^\[\^([^\]\s]+)\]:\s*(.*)$`)

// scanFootnoteDefs recognizes footnote definition blocks: a "[^id]:" header
// line plus any directly following indented continuation lines.
func scanFootnoteDefs(doc *document.Snapshot, occupied map[int]bool) []element.Element {
	var out []element.Element

	line := 1
	for line <= doc.LineCount() {
		if occupied[line] {
			line++
			continue
		}

		m := footnoteHeader.FindStringSubmatch(doc.LineText(line))
		if m == nil {
			line++
			continue
		}

		body := []string{m[2]}
		endLine := line
		for next := line + 1; next <= doc.LineCount(); next++ {
			if occupied[next] {
				break
			}
			text := doc.LineText(next)
			if !strings.HasPrefix(text, "    ") && !strings.HasPrefix(text, "\t") {
				break
			}
			body = append(body, strings.TrimLeft(text, " \t"))
			endLine = next
		}

		from, _, _ := doc.LineSpan(line)
		_, to, _ := doc.LineSpan(endLine)

		el := element.Element{
			Kind:        element.KindFootnoteDef,
			From:        from,
			To:          clampTo(to, doc.Len()),
			Line:        line,
			ContentFrom: from + strings.Index(doc.LineText(line), ":") + 1,
			ContentTo:   clampTo(to, doc.Len()),
			Payload: element.FootnoteDef{
				ID:   m[1],
				Body: strings.TrimSpace(strings.Join(body, "\n")),
			},
		}
		if endLine > line {
			el.StartLine = line
			el.EndLine = endLine
		}
		out = append(out, el)

		line = endLine + 1
	}

	return out
}
