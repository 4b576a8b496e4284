package scan

import (
	"strings"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
)

// scanTables recognizes pipe tables. A table exists only when a header row
// is immediately followed by a valid alignment-separator row; everything
// else containing pipes stays plain text.
func scanTables(doc *document.Snapshot, occupied map[int]bool, opts Options) []element.Element {
	var out []element.Element

	line := 1
	for line <= doc.LineCount() {
		if occupied[line] || line == doc.LineCount() {
			line++
			continue
		}

		headPre := stripPrefix(doc.LineText(line))
		head := strings.TrimSpace(headPre.Rest)
		if !isTableRow(head) {
			line++
			continue
		}

		sepPre := stripPrefix(doc.LineText(line + 1))
		aligns, ok := parseSeparator(strings.TrimSpace(sepPre.Rest))
		if !ok || occupied[line+1] {
			line++
			continue
		}

		header := splitRow(head)
		if len(header) == 0 || len(header) != len(aligns) {
			debugf(opts, "rejected table with mismatched separator", "line", line)
			line++
			continue
		}

		rows := [][]string{header}
		endLine := line + 1
		for next := line + 2; next <= doc.LineCount(); next++ {
			if occupied[next] {
				break
			}
			rowPre := stripPrefix(doc.LineText(next))
			row := strings.TrimSpace(rowPre.Rest)
			if !isTableRow(row) {
				break
			}
			rows = append(rows, splitRow(row))
			endLine = next
		}

		from, _, _ := doc.LineSpan(line)
		_, to, _ := doc.LineSpan(endLine)

		out = append(out, element.Element{
			Kind:        element.KindTable,
			From:        from,
			To:          clampTo(to, doc.Len()),
			Line:        line,
			StartLine:   line,
			EndLine:     endLine,
			ContentFrom: from,
			ContentTo:   clampTo(to, doc.Len()),
			Payload: element.Table{
				Rows:       rows,
				Alignments: aligns,
				HasHeader:  true,
			},
		})

		line = endLine + 1
	}

	return out
}

// isTableRow matches a pipe-delimited row. A leading pipe or at least one
// interior unescaped pipe is required.
func isTableRow(trimmed string) bool {
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "|") {
		return true
	}
	for i := 0; i < len(trimmed); i++ {
		if trimmed[i] == '|' && countBackslashesBefore(trimmed, i)%2 == 0 {
			return true
		}
	}
	return false
}

// parseSeparator validates an alignment row: every cell must match
// :?-{3,}:? after trimming.
func parseSeparator(trimmed string) ([]element.Alignment, bool) {
	if !strings.ContainsRune(trimmed, '|') {
		return nil, false
	}

	cells := splitRow(trimmed)
	if len(cells) == 0 {
		return nil, false
	}

	aligns := make([]element.Alignment, 0, len(cells))
	for _, cell := range cells {
		cell = strings.TrimSpace(cell)
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		dashes := strings.TrimSuffix(strings.TrimPrefix(cell, ":"), ":")
		if len(dashes) < 3 || strings.Count(dashes, "-") != len(dashes) {
			return nil, false
		}
		switch {
		case left && right:
			aligns = append(aligns, element.AlignCenter)
		case right:
			aligns = append(aligns, element.AlignRight)
		case left:
			aligns = append(aligns, element.AlignLeft)
		default:
			aligns = append(aligns, element.AlignNone)
		}
	}
	return aligns, true
}

// splitRow splits a pipe row into trimmed cells, respecting escaped pipes
// and dropping the empty edge cells produced by leading/trailing pipes.
func splitRow(trimmed string) []string {
	var cells []string
	var cur strings.Builder

	for i := 0; i < len(trimmed); i++ {
		c := trimmed[i]
		if c == '|' && countBackslashesBefore(trimmed, i)%2 == 0 {
			cells = append(cells, strings.TrimSpace(cur.String()))
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	cells = append(cells, strings.TrimSpace(cur.String()))

	// Leading and trailing pipes produce empty edge cells.
	if len(cells) > 0 && cells[0] == "" {
		cells = cells[1:]
	}
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}
	return cells
}

// countBackslashesBefore counts consecutive backslashes immediately before
// index i.
func countBackslashesBefore(s string, i int) int {
	n := 0
	for j := i - 1; j >= 0 && s[j] == '\\'; j-- {
		n++
	}
	return n
}
