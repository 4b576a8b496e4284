package scan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/livemark/pkg/document"
	"github.com/yaklabco/livemark/pkg/element"
	"github.com/yaklabco/livemark/pkg/scan"
)

func TestScanTables_Basic(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("| a | b |\n| --- | :---: |\n| 1 | 2 |")
	res := scan.Scan(doc, scan.Options{})

	tables := ofKind(res, element.KindTable)
	require.Len(t, tables, 1)

	el := tables[0]
	assert.Equal(t, 1, el.StartLine)
	assert.Equal(t, 3, el.EndLine)

	payload := el.Payload.(element.Table)
	require.True(t, payload.HasHeader)
	require.Len(t, payload.Rows, 2)
	assert.Equal(t, []string{"a", "b"}, payload.Rows[0])
	assert.Equal(t, []string{"1", "2"}, payload.Rows[1])
	assert.Equal(t, []element.Alignment{element.AlignNone, element.AlignCenter}, payload.Alignments)

	for line := 1; line <= 3; line++ {
		assert.True(t, res.Occupied[line], "line %d must be occupied", line)
	}
}

func TestScanTables_Alignments(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("| l | c | r | n |\n| :--- | :---: | ---: | --- |\n| 1 | 2 | 3 | 4 |")
	res := scan.Scan(doc, scan.Options{})

	tables := ofKind(res, element.KindTable)
	require.Len(t, tables, 1)
	assert.Equal(t, []element.Alignment{
		element.AlignLeft, element.AlignCenter, element.AlignRight, element.AlignNone,
	}, tables[0].Payload.(element.Table).Alignments)
}

func TestScanTables_RequiresSeparator(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("| just | pipes |\nplain text")
	res := scan.Scan(doc, scan.Options{})

	assert.Empty(t, ofKind(res, element.KindTable))
}

func TestScanTables_RejectsColumnMismatch(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("| a | b |\n| --- |\n| 1 | 2 |")
	res := scan.Scan(doc, scan.Options{})

	assert.Empty(t, ofKind(res, element.KindTable))
}

func TestScanTables_StopsAtNonRow(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("| a |\n| --- |\n| 1 |\nafter")
	res := scan.Scan(doc, scan.Options{})

	tables := ofKind(res, element.KindTable)
	require.Len(t, tables, 1)
	assert.Equal(t, 3, tables[0].EndLine)
	assert.False(t, res.Occupied[4])
}

func TestScanTables_EscapedPipeInCell(t *testing.T) {
	t.Parallel()

	doc := document.NewSnapshot("| a\\|b | c |\n| --- | --- |")
	res := scan.Scan(doc, scan.Options{})

	tables := ofKind(res, element.KindTable)
	require.Len(t, tables, 1)
	assert.Equal(t, []string{`a\|b`, "c"}, tables[0].Payload.(element.Table).Rows[0])
}
