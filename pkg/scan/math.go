package scan

import (
	"strings"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
)

// mathState tracks the display-math machine across lines.
type mathState struct {
	open      bool
	delimiter string // "$$", "\[", or "\begin{env}"
	env       string
	startLine int
	bodyFrom  int
}

// scanMath recognizes display math in four bracket styles: $$ fences,
// \[ ... \], \begin{env} ... \end{env} environments, and single-line
// $$body$$. A block whose body trims to empty, or to the literal string
// "undefined", is rejected.
func scanMath(doc *document.Snapshot, occupied map[int]bool, opts Options) []element.Element {
	var out []element.Element
	var st mathState

	for line := 1; line <= doc.LineCount(); line++ {
		if occupied[line] {
			continue
		}
		pre := stripPrefix(doc.LineText(line))
		trimmed := strings.TrimSpace(pre.Rest)

		if !st.open {
			// Single-line $$body$$ form first.
			if strings.HasPrefix(trimmed, "$$") && strings.HasSuffix(trimmed, "$$") && len(trimmed) > 4 {
				body := trimmed[2 : len(trimmed)-2]
				if validMathBody(body) {
					out = append(out, singleLineMath(doc, line, body))
				} else {
					debugf(opts, "rejected empty math block", "line", line)
				}
				continue
			}

			delim, env, ok := mathOpen(trimmed)
			if !ok {
				continue
			}
			st = mathState{open: true, delimiter: delim, env: env, startLine: line}
			if line < doc.LineCount() {
				st.bodyFrom, _, _ = doc.LineSpan(line + 1)
			}
			continue
		}

		if !mathClose(trimmed, st.delimiter, st.env) {
			continue
		}

		startFrom, _, _ := doc.LineSpan(st.startLine)
		_, endTo, _ := doc.LineSpan(line)
		bodyTo, _, _ := doc.LineSpan(line)

		body := ""
		if st.bodyFrom < bodyTo {
			body = strings.TrimRight(doc.Text[st.bodyFrom:bodyTo], "\r\n")
		}

		if validMathBody(body) {
			out = append(out, element.Element{
				Kind:        element.KindMathBlock,
				From:        startFrom,
				To:          clampTo(endTo, doc.Len()),
				Line:        st.startLine,
				StartLine:   st.startLine,
				EndLine:     line,
				ContentFrom: st.bodyFrom,
				ContentTo:   clampTo(st.bodyFrom+len(body), doc.Len()),
				Payload: element.MathBlock{
					Delimiter:   st.delimiter,
					Environment: st.env,
					Body:        body,
				},
			})
		} else {
			debugf(opts, "rejected empty math block", "line", st.startLine)
		}
		st = mathState{}
	}

	if st.open {
		debugf(opts, "unterminated math block", "line", st.startLine)
	}

	return out
}

func singleLineMath(doc *document.Snapshot, line int, body string) element.Element {
	from, to, _ := doc.LineSpan(line)
	text := doc.LineText(line)
	inner := strings.Index(text, "$$") + 2

	return element.Element{
		Kind:        element.KindMathBlock,
		From:        from,
		To:          to,
		Line:        line,
		ContentFrom: from + inner,
		ContentTo:   from + inner + len(body),
		Payload:     element.MathBlock{Delimiter: "$$", Body: body},
	}
}

// mathOpen matches multi-line math openers on a trimmed line.
func mathOpen(trimmed string) (delimiter, env string, ok bool) {
	switch {
	case trimmed == "$$" || (strings.HasPrefix(trimmed, "$$") && !strings.HasSuffix(trimmed, "$$")):
		return "$$", "", true
	case trimmed == `\[` || (strings.HasPrefix(trimmed, `\[`) && !strings.HasSuffix(trimmed, `\]`)):
		return `\[`, "", true
	case strings.HasPrefix(trimmed, `\begin{`):
		end := strings.IndexByte(trimmed, '}')
		if end <= len(`\begin{`) {
			return "", "", false
		}
		name := trimmed[len(`\begin{`):end]
		return trimmed[:end+1], name, true
	default:
		return "", "", false
	}
}

// mathClose matches the closer corresponding to the open delimiter.
func mathClose(trimmed, delimiter, env string) bool {
	switch {
	case delimiter == "$$":
		return trimmed == "$$" || strings.HasSuffix(trimmed, "$$")
	case delimiter == `\[`:
		return trimmed == `\]` || strings.HasSuffix(trimmed, `\]`)
	case env != "":
		return strings.HasPrefix(trimmed, `\end{`+env+`}`)
	default:
		return false
	}
}

// validMathBody rejects bodies that trim to empty or the literal
// "undefined" (a host-side serialization artifact that must never render).
func validMathBody(body string) bool {
	t := strings.TrimSpace(body)
	return t != "" && t != "undefined"
}
