package pretty

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/yaklabco/livemark/pkg/decorate"
	"github.com/yaklabco/livemark/pkg/element"
)

// defaultTermWidth is used when terminal width cannot be determined.
const defaultTermWidth = 100

// RenderInstructions writes the instruction set as an aligned table.
func RenderInstructions(w io.Writer, styles *Styles, instrs []decorate.Instruction) {
	if len(instrs) == 0 {
		fmt.Fprintln(w, styles.Dim.Render("no render instructions"))
		return
	}

	// Fixed columns plus separators take 49 cells; the rest is detail.
	detailWidth := terminalWidth(w) - 49
	if detailWidth < 20 {
		detailWidth = 20
	}

	fmt.Fprintf(w, "%s  %s  %s  %s\n",
		styles.Header.Render(pad("SPAN", 14)),
		styles.Header.Render(pad("INSTRUCTION", 15)),
		styles.Header.Render(pad("SOURCE", 15)),
		styles.Header.Render("DETAIL"))

	for _, in := range instrs {
		span := fmt.Sprintf("%d..%d", in.From, in.To)
		fmt.Fprintf(w, "%s  %s  %s  %s\n",
			styles.Offset.Render(pad(span, 14)),
			kindStyle(styles, in.Kind).Render(pad(in.Kind.String(), 15)),
			styles.Dim.Render(pad(in.Source.String(), 15)),
			detail(styles, &in, detailWidth))
	}
}

// terminalWidth attempts to get the terminal width from the writer.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultTermWidth
}

// RenderElements writes an element dump, one element per line.
func RenderElements(w io.Writer, styles *Styles, elems []element.Element) {
	if len(elems) == 0 {
		fmt.Fprintln(w, styles.Dim.Render("no elements"))
		return
	}
	for i := range elems {
		el := &elems[i]
		fmt.Fprintf(w, "%s %s %s\n",
			styles.ElementKind.Render(pad(el.Kind.String(), 15)),
			styles.Span.Render(fmt.Sprintf("%d..%d line %d", el.From, el.To, el.Line)),
			styles.Payload.Render(payloadSummary(el.Payload)))
	}
}

func kindStyle(styles *Styles, k decorate.InstructionKind) lipgloss.Style {
	switch k {
	case decorate.LineAttribute:
		return styles.KindLine
	case decorate.SpanReplace:
		return styles.KindReplace
	case decorate.SpanMark:
		return styles.KindMark
	default:
		return styles.KindWidget
	}
}

func detail(styles *Styles, in *decorate.Instruction, width int) string {
	switch in.Kind {
	case decorate.LineAttribute, decorate.SpanMark:
		return styles.Class.Render(in.Class)
	case decorate.SpanReplace:
		if in.Replacement == nil {
			return ""
		}
		text := in.Replacement.Text
		if budget := width - len(in.Replacement.Class) - 1; len(text) > budget {
			text = text[:budget] + "…"
		}
		return styles.Class.Render(in.Replacement.Class) + " " +
			styles.Content.Render(strings.ReplaceAll(text, "\n", "⏎"))
	case decorate.WidgetAnchor:
		if in.Widget == nil {
			return ""
		}
		return styles.Class.Render(in.Widget.Class) + " " +
			styles.Dim.Render(fmt.Sprintf("(%d lines)", in.Widget.Lines))
	default:
		return ""
	}
}

func payloadSummary(p element.Payload) string {
	switch v := p.(type) {
	case element.CodeBlock:
		return fmt.Sprintf("lang=%s", v.Language)
	case element.MathBlock:
		return fmt.Sprintf("delim=%s", v.Delimiter)
	case element.Table:
		return fmt.Sprintf("rows=%d cols=%d", len(v.Rows), len(v.Alignments))
	case element.Callout:
		return fmt.Sprintf("type=%s", v.Type)
	case element.Heading:
		return fmt.Sprintf("level=%d", v.Level)
	case element.Link:
		return fmt.Sprintf("url=%s", v.URL)
	case element.Image:
		return fmt.Sprintf("src=%s", v.URL)
	case element.Tag:
		return "#" + v.Name
	case element.RefDef:
		return fmt.Sprintf("[%s]: %s", v.Label, v.URL)
	default:
		return ""
	}
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
