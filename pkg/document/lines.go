package document

import "sort"

// BuildLines constructs line metadata from document text.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(text string) []LineInfo {
	if len(text) == 0 {
		return []LineInfo{}
	}

	var lines []LineInfo
	lineStart := 0

	for idx := 0; idx < len(text); idx++ {
		if text[idx] == '\n' {
			newlineStart := idx
			if idx > 0 && text[idx-1] == '\r' {
				newlineStart = idx - 1
			}

			lines = append(lines, LineInfo{
				StartOffset:  lineStart,
				NewlineStart: newlineStart,
				EndOffset:    idx + 1,
			})
			lineStart = idx + 1
		}
	}

	// Last line may not have a trailing newline.
	if lineStart <= len(text) {
		lines = append(lines, LineInfo{
			StartOffset:  lineStart,
			NewlineStart: len(text),
			EndOffset:    len(text),
		})
	}

	return lines
}

// LineAt converts a byte offset to a 1-based line number.
// Offsets at or past the end of text map to the last line.
// Returns 0 if the offset is negative or the snapshot is empty.
func (s *Snapshot) LineAt(offset int) int {
	if offset < 0 || len(s.Lines) == 0 {
		return 0
	}

	if offset >= len(s.Text) {
		return len(s.Lines)
	}

	lineIdx := sort.Search(len(s.Lines), func(i int) bool {
		return s.Lines[i].EndOffset > offset
	})
	if lineIdx >= len(s.Lines) {
		lineIdx = len(s.Lines) - 1
	}

	return lineIdx + 1
}

// Offset converts a 1-based line number and 1-based column to a byte offset.
// Returns (offset, true) on success, or (0, false) if out of range.
func (s *Snapshot) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(s.Lines) {
		return 0, false
	}
	if col < 1 {
		return 0, false
	}

	info := s.Lines[line-1]
	offset := info.StartOffset + col - 1

	// Column may point just past the end of the line (cursor positioning).
	if offset > info.EndOffset {
		return 0, false
	}

	return offset, true
}
