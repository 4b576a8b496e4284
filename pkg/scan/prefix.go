package scan

import "strings"

// linePrefix describes the quotation/list context stripped from the front
// of a line, so block constructs are recognized inside quoted or nested
// list contexts.
type linePrefix struct {
	// Rest is the line content after the stripped prefix.
	Rest string

	// Offset is the byte offset of Rest within the original line.
	Offset int

	// QuoteDepth is the number of > markers stripped.
	QuoteDepth int

	// ListMarker is the list marker stripped, if any ("-", "3.", ...).
	ListMarker string
}

// stripPrefix removes leading quote markers and at most one list marker
// from a line, tracking how far into the line the remaining content starts.
func stripPrefix(line string) linePrefix {
	pre := linePrefix{Rest: line}

	for {
		trimmed, width := trimIndent(pre.Rest, 3)
		if !strings.HasPrefix(trimmed, ">") {
			break
		}
		pre.Offset += width + 1
		pre.QuoteDepth++
		rest := trimmed[1:]
		// A single space after > belongs to the marker.
		if strings.HasPrefix(rest, " ") {
			rest = rest[1:]
			pre.Offset++
		}
		pre.Rest = rest
	}

	if marker, width := listMarker(pre.Rest); marker != "" {
		pre.ListMarker = marker
		pre.Offset += width
		pre.Rest = pre.Rest[width:]
	}

	return pre
}

// trimIndent strips up to max leading spaces (tabs count as one), returning
// the trimmed string and the byte width removed.
func trimIndent(s string, max int) (string, int) {
	width := 0
	for width < len(s) && width < max && (s[width] == ' ' || s[width] == '\t') {
		width++
	}
	return s[width:], width
}

// listMarker recognizes bullet, numbered, and task-list markers at the
// start of a (possibly indented) line. Returns the marker text and the
// total byte width consumed, including indentation and the trailing space.
// Task-list checkboxes are left in place; they are part of the item text.
func listMarker(s string) (string, int) {
	trimmed, indent := trimIndent(s, 8)

	if len(trimmed) >= 2 && (trimmed[0] == '-' || trimmed[0] == '*' || trimmed[0] == '+') && trimmed[1] == ' ' {
		return trimmed[:1], indent + 2
	}

	// Numbered markers: digits then '.' or ')' then space.
	digits := 0
	for digits < len(trimmed) && trimmed[digits] >= '0' && trimmed[digits] <= '9' {
		digits++
	}
	if digits > 0 && digits <= 9 && digits+1 < len(trimmed) &&
		(trimmed[digits] == '.' || trimmed[digits] == ')') && trimmed[digits+1] == ' ' {
		return trimmed[:digits+1], indent + digits + 2
	}

	return "", 0
}
