package scan

import (
	"regexp"
	"strings"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
)

// calloutHeader matches "> [!type]" headers with an optional fold marker
// and title, after the quote prefix has been stripped.
//
//nolint:gochecknoglobals // Precompiled pattern
var calloutHeader = regexp.MustCompile(`^\[!([A-Za-z][\w-]*)\]([-+]?)[ \t]*(.*)$`)

// scanQuotes recognizes typed callout blocks: a "> [!type]" header line and
// every directly following quoted line. Plain quote lines without a callout
// header are left to the per-line scanner.
func scanQuotes(doc *document.Snapshot, occupied map[int]bool, opts Options) []element.Element {
	var out []element.Element

	line := 1
	for line <= doc.LineCount() {
		if occupied[line] {
			line++
			continue
		}

		pre := stripPrefix(doc.LineText(line))
		if pre.QuoteDepth == 0 {
			line++
			continue
		}

		m := calloutHeader.FindStringSubmatch(strings.TrimSpace(pre.Rest))
		if m == nil {
			line++
			continue
		}

		var body []string
		endLine := line
		for next := line + 1; next <= doc.LineCount(); next++ {
			if occupied[next] {
				break
			}
			nextPre := stripPrefix(doc.LineText(next))
			if nextPre.QuoteDepth == 0 {
				break
			}
			body = append(body, nextPre.Rest)
			endLine = next
		}

		from, _, _ := doc.LineSpan(line)
		_, to, _ := doc.LineSpan(endLine)

		el := element.Element{
			Kind:        element.KindCallout,
			From:        from,
			To:          clampTo(to, doc.Len()),
			Line:        line,
			ContentFrom: from,
			ContentTo:   clampTo(to, doc.Len()),
			Payload: element.Callout{
				Type:   strings.ToLower(m[1]),
				Title:  strings.TrimSpace(m[3]),
				Body:   body,
				Folded: m[2] == "-",
			},
		}
		if endLine > line {
			el.StartLine = line
			el.EndLine = endLine
		}
		out = append(out, el)
		debugf(opts, "callout", "type", m[1], "line", line)

		line = endLine + 1
	}

	return out
}
