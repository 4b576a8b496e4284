package scan

import (
	"strings"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
	"github.com/yaklabco/livemark/pkg/langdetect"
)

// fenceState tracks the code-fence machine.
type fenceState struct {
	open      bool
	char      byte
	length    int
	info      string
	startLine int
	bodyStart int
}

// scanFences recognizes fenced code blocks delimited by runs of 3 or more
// backticks or tildes. An opened fence that never closes is discarded at
// end of document.
func scanFences(doc *document.Snapshot, opts Options) []element.Element {
	var out []element.Element
	var st fenceState

	for line := 1; line <= doc.LineCount(); line++ {
		pre := stripPrefix(doc.LineText(line))
		trimmed := strings.TrimSpace(pre.Rest)

		if !st.open {
			char, length, info, ok := fenceOpen(trimmed)
			if !ok {
				continue
			}
			from, _, _ := doc.LineSpan(line)
			st = fenceState{
				open:      true,
				char:      char,
				length:    length,
				info:      info,
				startLine: line,
				bodyStart: from, // fixed up below once the body begins
			}
			if line < doc.LineCount() {
				next, _, _ := doc.LineSpan(line + 1)
				st.bodyStart = next
			}
			continue
		}

		if fenceClose(trimmed, st.char, st.length) {
			startFrom, _, _ := doc.LineSpan(st.startLine)
			_, endTo, _ := doc.LineSpan(line)
			bodyEnd, _, _ := doc.LineSpan(line)

			body := ""
			if st.bodyStart < bodyEnd {
				body = strings.TrimRight(doc.Text[st.bodyStart:bodyEnd], "\r\n")
			}

			lang := st.info
			detected := false
			if lang == "" && opts.DetectLanguages && body != "" {
				lang = langdetect.Detect(body)
				detected = true
			}

			contentFrom := st.bodyStart
			contentTo := contentFrom + len(body)

			out = append(out, element.Element{
				Kind:        element.KindCodeBlock,
				From:        startFrom,
				To:          clampTo(endTo, doc.Len()),
				Line:        st.startLine,
				StartLine:   st.startLine,
				EndLine:     line,
				ContentFrom: contentFrom,
				ContentTo:   clampTo(contentTo, doc.Len()),
				Payload: element.CodeBlock{
					Language: lang,
					Detected: detected,
					Body:     body,
				},
			})
			st = fenceState{}
		}
	}

	if st.open {
		debugf(opts, "unterminated code fence", "line", st.startLine)
	}

	return out
}

// fenceOpen matches a fence opener: 3+ identical fence characters followed
// by an optional info string (which may not itself contain the fence char).
func fenceOpen(trimmed string) (char byte, length int, info string, ok bool) {
	if len(trimmed) < 3 {
		return 0, 0, "", false
	}
	c := trimmed[0]
	if c != '`' && c != '~' {
		return 0, 0, "", false
	}

	n := 0
	for n < len(trimmed) && trimmed[n] == c {
		n++
	}
	if n < 3 {
		return 0, 0, "", false
	}

	rest := strings.TrimSpace(trimmed[n:])
	if strings.ContainsRune(rest, rune(c)) {
		return 0, 0, "", false
	}

	// First word of the info string is the language.
	if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
		rest = rest[:idx]
	}

	return c, n, rest, true
}

// fenceClose matches a closing fence: a run of at least the opening length
// of the same character and nothing else.
func fenceClose(trimmed string, char byte, length int) bool {
	if len(trimmed) < length {
		return false
	}
	n := 0
	for n < len(trimmed) && trimmed[n] == char {
		n++
	}
	return n >= length && n == len(trimmed)
}
