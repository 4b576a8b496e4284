// Package refs provides the link-reference definition table built once per
// snapshot, plus the derived signature used in inline line-cache keys. The
// signature changes exactly when the table's visible effect changes, so
// cached line results stay valid across edits that do not touch definitions.
package refs

import (
	"sort"
	"strings"
)

// Definition is a single [label]: url "title" entry.
type Definition struct {
	// Label is the reference label as written in the source.
	Label string

	// URL is the destination.
	URL string

	// Title is the optional title.
	Title string

	// Line is the 1-based line number of the definition.
	Line int
}

// Table maps normalized labels to their first definitions.
// Duplicate definitions keep the first entry, matching reference-link
// resolution rules.
type Table struct {
	defs map[string]Definition
	sig  string
}

// NewTable creates an empty reference table.
func NewTable() *Table {
	return &Table{defs: make(map[string]Definition)}
}

// Normalize canonicalizes a reference label for matching: trim, lowercase,
// collapse internal whitespace runs to single spaces.
func Normalize(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), " ")
}

// Add records a definition. The first definition for a label wins;
// later duplicates are ignored.
func (t *Table) Add(def Definition) {
	key := Normalize(def.Label)
	if key == "" {
		return
	}
	if _, exists := t.defs[key]; exists {
		return
	}
	t.defs[key] = def
	t.sig = ""
}

// Resolve looks up a label, normalizing it first.
func (t *Table) Resolve(label string) (Definition, bool) {
	def, ok := t.defs[Normalize(label)]
	return def, ok
}

// Len returns the number of distinct definitions.
func (t *Table) Len() int {
	return len(t.defs)
}

// Signature returns a stable string summarizing the table's visible effect:
// definitions sorted by normalized label, joined as label=url|title entries.
// The result is memoized until the table changes.
func (t *Table) Signature() string {
	if t.sig != "" || len(t.defs) == 0 {
		return t.sig
	}

	keys := make([]string, 0, len(t.defs))
	for key := range t.defs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, key := range keys {
		if i > 0 {
			b.WriteByte(';')
		}
		def := t.defs[key]
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(def.URL)
		b.WriteByte('|')
		b.WriteString(def.Title)
	}
	t.sig = b.String()
	return t.sig
}
