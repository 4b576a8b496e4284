package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
	"github.com/yaklabco/livemark/pkg/scan"
)

func TestScanCallouts_Basic(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("> [!note] Heads up\n> first\n> second\nafter")
	res := scan.Scan(doc, scan.Options{})

	callouts := ofKind(res, element.KindCallout)
	require.Len(t, callouts, 1)

	el := callouts[0]
	assert.Equal(t, 1, el.StartLine)
	assert.Equal(t, 3, el.EndLine)

	payload := el.Payload.(element.Callout)
	assert.Equal(t, "note", payload.Type)
	assert.Equal(t, "Heads up", payload.Title)
	assert.Equal(t, []string{"first", "second"}, payload.Body)
	assert.False(t, payload.Folded)

	// Callout lines are claimed; plain quote elements must not double up.
	assert.Empty(t, ofKind(res, element.KindBlockquote))
}

func TestScanCallouts_Folded(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("> [!tip]- Collapsed")
	res := scan.Scan(doc, scan.Options{})

	callouts := ofKind(res, element.KindCallout)
	require.Len(t, callouts, 1)

	payload := callouts[0].Payload.(element.Callout)
	assert.Equal(t, "tip", payload.Type)
	assert.True(t, payload.Folded)
}

func TestScanCallouts_PlainQuoteIsNotCallout(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("> just a quote")
	res := scan.Scan(doc, scan.Options{})

	assert.Empty(t, ofKind(res, element.KindCallout))

	quotes := ofKind(res, element.KindBlockquote)
	require.Len(t, quotes, 1)
	assert.Equal(t, 1, quotes[0].Payload.(element.Blockquote).Depth)
}

func TestScanDetails_Basic(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("<details>\n<summary>Click</summary>\nhidden\n</details>")
	res := scan.Scan(doc, scan.Options{})

	details := ofKind(res, element.KindDetails)
	require.Len(t, details, 1)

	el := details[0]
	assert.Equal(t, 1, el.StartLine)
	assert.Equal(t, 4, el.EndLine)

	payload := el.Payload.(element.Details)
	assert.Equal(t, "Click", payload.Summary)
	assert.False(t, payload.Open)
}

func TestScanDetails_OpenAttribute(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("<details open>\ntext\n</details>")
	res := scan.Scan(doc, scan.Options{})

	details := ofKind(res, element.KindDetails)
	require.Len(t, details, 1)
	assert.True(t, details[0].Payload.(element.Details).Open)
}

func TestScanDetails_Unterminated(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("<details>\nnever closed")
	res := scan.Scan(doc, scan.Options{})

	assert.Empty(t, ofKind(res, element.KindDetails))
}

func TestScanFootnoteDefs(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("[^note]: First line\n    continued\nplain")
	res := scan.Scan(doc, scan.Options{})

	defs := ofKind(res, element.KindFootnoteDef)
	require.Len(t, defs, 1)

	el := defs[0]
	assert.Equal(t, 1, el.StartLine)
	assert.Equal(t, 2, el.EndLine)

	payload := el.Payload.(element.FootnoteDef)
	assert.Equal(t, "note", payload.ID)
	assert.Equal(t, "First line\ncontinued", payload.Body)

	assert.True(t, res.Occupied[1])
	assert.True(t, res.Occupied[2])
	assert.False(t, res.Occupied[3])
}

func TestScanRefDefs(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("[ref]: https://example.com \"Site\"\ntext")
	res := scan.Scan(doc, scan.Options{})

	defs := ofKind(res, element.KindRefDef)
	require.Len(t, defs, 1)

	payload := defs[0].Payload.(element.RefDef)
	assert.Equal(t, "ref", payload.Label)
	assert.Equal(t, "https://example.com", payload.URL)
	assert.Equal(t, "Site", payload.Title)

	def, ok := res.Refs.Resolve("ref")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", def.URL)
	assert.Equal(t, "Site", def.Title)
}

func TestScanRefDefs_TitleForms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{"double quotes", `[r]: https://x.example "T"`, "T"},
		{"single quotes", `[r]: https://x.example 'T'`, "T"},
		{"parens", `[r]: https://x.example (T)`, "T"},
		{"none", `[r]: https://x.example`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := scan.Scan(document.NewSnapshot(tt.text), scan.Options{})
			def, ok := res.Refs.Resolve("r")
			require.True(t, ok)
			assert.Equal(t, tt.want, def.Title)
		})
	}
}

func TestScanRefDefs_ExcludedInsideCode(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("```\n[ref]: https://example.com\n```")
	res := scan.Scan(doc, scan.Options{})

	assert.Empty(t, ofKind(res, element.KindRefDef))
	assert.Equal(t, 0, res.Refs.Len())
}

func TestScanLineConstructs_Headings(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("# One\n## Two\n###### Six\n####### Seven\n#nospace")
	res := scan.Scan(doc, scan.Options{})

	headings := ofKind(res, element.KindHeading)
	require.Len(t, headings, 3)

	assert.Equal(t, 1, headings[0].Payload.(element.Heading).Level)
	assert.Equal(t, "One", headings[0].Payload.(element.Heading).Text)
	assert.Equal(t, 2, headings[0].ContentFrom, "content starts after the marker")

	assert.Equal(t, 2, headings[1].Payload.(element.Heading).Level)
	assert.Equal(t, 6, headings[2].Payload.(element.Heading).Level)

	// Heading lines stay open for inline scanning.
	assert.False(t, res.Occupied[1])
}

func TestScanLineConstructs_HorizontalRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"dashes", "---", true},
		{"asterisks", "***", true},
		{"underscores", "___", true},
		{"spaced", "- - -", true},
		{"too short", "--", false},
		{"mixed chars", "-*-", false},
		{"text", "dashes---", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := scan.Scan(document.NewSnapshot(tt.text), scan.Options{})
			rules := ofKind(res, element.KindHorizontalRule)
			if tt.want {
				assert.Len(t, rules, 1)
			} else {
				assert.Empty(t, rules)
			}
		})
	}
}

func TestScanLineConstructs_ListItems(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("- bullet\n3. ordered\n- [ ] todo\n- [x] done\n  - nested")
	res := scan.Scan(doc, scan.Options{})

	items := ofKind(res, element.KindListItem)
	require.Len(t, items, 5)

	bullet := items[0].Payload.(element.ListItem)
	assert.Equal(t, "-", bullet.Marker)
	assert.False(t, bullet.Ordered)
	assert.False(t, bullet.Task)
	assert.Equal(t, 0, bullet.Indent)

	ordered := items[1].Payload.(element.ListItem)
	assert.Equal(t, "3.", ordered.Marker)
	assert.True(t, ordered.Ordered)

	todo := items[2].Payload.(element.ListItem)
	assert.True(t, todo.Task)
	assert.False(t, todo.Checked)

	done := items[3].Payload.(element.ListItem)
	assert.True(t, done.Task)
	assert.True(t, done.Checked)

	nested := items[4].Payload.(element.ListItem)
	assert.Equal(t, 2, nested.Indent)
}

func TestScanLineConstructs_BlockquoteDepth(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("> one\n> > two")
	res := scan.Scan(doc, scan.Options{})

	quotes := ofKind(res, element.KindBlockquote)
	require.Len(t, quotes, 2)
	assert.Equal(t, 1, quotes[0].Payload.(element.Blockquote).Depth)
	assert.Equal(t, 2, quotes[1].Payload.(element.Blockquote).Depth)
}
