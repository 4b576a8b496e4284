package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
	"github.com/yaklabco/livemark/pkg/scan"
)

// ofKind filters a result's elements down to one kind.
func ofKind(res *scan.Result, kind element.Kind) []element.Element {
	var out []element.Element
	for _, el := range res.Elements {
		if el.Kind == kind {
			out = append(out, el)
		}
	}
	return out
}

func TestScanFences_Basic(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("```go\ncode\n```")
	res := scan.Scan(doc, scan.Options{})

	blocks := ofKind(res, element.KindCodeBlock)
	require.Len(t, blocks, 1)

	el := blocks[0]
	assert.Equal(t, 0, el.From)
	assert.Equal(t, 14, el.To)
	assert.Equal(t, 1, el.StartLine)
	assert.Equal(t, 3, el.EndLine)
	assert.Equal(t, 6, el.ContentFrom)
	assert.Equal(t, 10, el.ContentTo)

	payload, ok := el.Payload.(element.CodeBlock)
	require.True(t, ok)
	assert.Equal(t, "go", payload.Language)
	assert.Equal(t, "code", payload.Body)
	assert.False(t, payload.Detected)

	for line := 1; line <= 3; line++ {
		assert.True(t, res.Occupied[line], "line %d must be occupied", line)
	}
}

func TestScanFences_ContentIsInert(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("```\n# not a heading\n- not a list\n```")
	res := scan.Scan(doc, scan.Options{})

	assert.Len(t, ofKind(res, element.KindCodeBlock), 1)
	assert.Empty(t, ofKind(res, element.KindHeading))
	assert.Empty(t, ofKind(res, element.KindListItem))
}

func TestScanFences_Unterminated(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("```go\ncode without close")
	res := scan.Scan(doc, scan.Options{})

	assert.Empty(t, ofKind(res, element.KindCodeBlock))
}

func TestScanFences_TildeAndLongerClose(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("~~~\nbody\n~~~~~")
	res := scan.Scan(doc, scan.Options{})

	blocks := ofKind(res, element.KindCodeBlock)
	require.Len(t, blocks, 1)
	payload := blocks[0].Payload.(element.CodeBlock)
	assert.Equal(t, "body", payload.Body)
}

func TestScanFences_InfoStringFirstWordOnly(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("```python title=example\nx = 1\n```")
	res := scan.Scan(doc, scan.Options{})

	blocks := ofKind(res, element.KindCodeBlock)
	require.Len(t, blocks, 1)
	assert.Equal(t, "python", blocks[0].Payload.(element.CodeBlock).Language)
}

func TestScanFences_DetectsLanguage(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("```\npackage main\n```")
	res := scan.Scan(doc, scan.Options{DetectLanguages: true})

	blocks := ofKind(res, element.KindCodeBlock)
	require.Len(t, blocks, 1)

	payload := blocks[0].Payload.(element.CodeBlock)
	assert.Equal(t, "go", payload.Language)
	assert.True(t, payload.Detected)
}

func TestScanFences_NoDetectionWhenLabeled(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("```rust\npackage main\n```")
	res := scan.Scan(doc, scan.Options{DetectLanguages: true})

	blocks := ofKind(res, element.KindCodeBlock)
	require.Len(t, blocks, 1)

	payload := blocks[0].Payload.(element.CodeBlock)
	assert.Equal(t, "rust", payload.Language)
	assert.False(t, payload.Detected)
}

func TestScanFences_CRLFBody(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("```\r\nline\r\n```")
	res := scan.Scan(doc, scan.Options{})

	blocks := ofKind(res, element.KindCodeBlock)
	require.Len(t, blocks, 1)
	assert.Equal(t, "line", blocks[0].Payload.(element.CodeBlock).Body)
}
