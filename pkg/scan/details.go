package scan

import (
	"regexp"
	"strings"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
)

//nolint:gochecknoglobals // Precompiled patterns
var (
	detailsOpen  = regexp.MustCompile(`(?i)^<details(\s+open)?\s*>`)
	detailsClose = regexp.MustCompile(`(?i)</details\s*>`)
	summaryTag   = regexp.MustCompile(`(?i)<summary\s*>(.*?)</summary\s*>`)
)

// scanDetails recognizes collapsible <details> ... </details> blocks.
// An opening tag without a matching close is discarded at end of document.
func scanDetails(doc *document.Snapshot, occupied map[int]bool, opts Options) []element.Element {
	var out []element.Element

	open := false
	var startLine int
	var isOpen bool
	var summary string

	for line := 1; line <= doc.LineCount(); line++ {
		if occupied[line] {
			continue
		}
		pre := stripPrefix(doc.LineText(line))
		trimmed := strings.TrimSpace(pre.Rest)

		if !open {
			m := detailsOpen.FindStringSubmatch(trimmed)
			if m == nil {
				continue
			}
			open = true
			startLine = line
			isOpen = m[1] != ""
			summary = ""
			// <summary> may share the opening line.
			if sm := summaryTag.FindStringSubmatch(trimmed); sm != nil {
				summary = strings.TrimSpace(sm[1])
			}
			continue
		}

		if summary == "" {
			if sm := summaryTag.FindStringSubmatch(trimmed); sm != nil {
				summary = strings.TrimSpace(sm[1])
			}
		}

		if !detailsClose.MatchString(trimmed) {
			continue
		}

		from, _, _ := doc.LineSpan(startLine)
		_, to, _ := doc.LineSpan(line)

		el := element.Element{
			Kind:        element.KindDetails,
			From:        from,
			To:          clampTo(to, doc.Len()),
			Line:        startLine,
			ContentFrom: from,
			ContentTo:   clampTo(to, doc.Len()),
			Payload:     element.Details{Summary: summary, Open: isOpen},
		}
		if line > startLine {
			el.StartLine = startLine
			el.EndLine = line
		}
		out = append(out, el)
		open = false
	}

	if open {
		debugf(opts, "unterminated details block", "line", startLine)
	}

	return out
}
