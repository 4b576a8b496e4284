package scan

import (
	"regexp"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
)

// refDefLine matches `[label]: url "title"` definition lines. The label may
// not start with ^ (that is a footnote definition); the title is optional
// and may be quoted with ", ', or parentheses.
//
//nolint:gochecknoglobals // Precompiled pattern
var refDefLine = regexp.MustCompile(
	`^ {0,3}\[([^\^\]][^\]]*)\]:\s*(\S+)(?:\s+(?:"([^"]*)"|'([^']*)'|\(([^)]*)\)))?\s*$`)

// scanRefDefs recognizes link-reference definition lines. Lines already
// claimed by a code block are excluded to avoid false positives inside
// fenced code.
func scanRefDefs(doc *document.Snapshot, codeLines, occupied map[int]bool) []element.Element {
	var out []element.Element

	for line := 1; line <= doc.LineCount(); line++ {
		if codeLines[line] || occupied[line] {
			continue
		}

		m := refDefLine.FindStringSubmatch(doc.LineText(line))
		if m == nil {
			continue
		}

		title := m[3]
		if title == "" {
			title = m[4]
		}
		if title == "" {
			title = m[5]
		}

		from, to, _ := doc.LineSpan(line)
		out = append(out, element.Element{
			Kind:        element.KindRefDef,
			From:        from,
			To:          to,
			Line:        line,
			ContentFrom: from,
			ContentTo:   to,
			Payload: element.RefDef{
				Label: m[1],
				URL:   m[2],
				Title: title,
			},
		})
	}

	return out
}
