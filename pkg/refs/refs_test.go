package refs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/livemark/pkg/refs"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		label string
		want  string
	}{
		{"lowercase", "Ref", "ref"},
		{"trim", "  ref  ", "ref"},
		{"collapse whitespace", "my \t ref", "my ref"},
		{"already normalized", "plain", "plain"},
		{"empty", "", ""},
		{"only whitespace", "  \t ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, refs.Normalize(tt.label))
		})
	}
}

func TestTable_FirstDefinitionWins(t *testing.T) {
	t.Parallel()

	table := refs.NewTable()
	table.Add(refs.Definition{Label: "ref", URL: "https://first.example", Line: 1})
	table.Add(refs.Definition{Label: "REF", URL: "https://second.example", Line: 5})

	def, ok := table.Resolve("ref")
	require.True(t, ok)
	assert.Equal(t, "https://first.example", def.URL)
	assert.Equal(t, 1, table.Len())
}

func TestTable_ResolveNormalizesLookup(t *testing.T) {
	t.Parallel()

	table := refs.NewTable()
	table.Add(refs.Definition{Label: "My  Ref", URL: "https://example.com"})

	def, ok := table.Resolve("  my ref ")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", def.URL)

	_, ok = table.Resolve("missing")
	assert.False(t, ok)
}

func TestTable_IgnoresEmptyLabel(t *testing.T) {
	t.Parallel()

	table := refs.NewTable()
	table.Add(refs.Definition{Label: "   ", URL: "https://example.com"})

	assert.Equal(t, 0, table.Len())
}

func TestTable_Signature(t *testing.T) {
	t.Parallel()

	table := refs.NewTable()
	assert.Equal(t, "", table.Signature())

	table.Add(refs.Definition{Label: "beta", URL: "https://b.example", Title: "B"})
	table.Add(refs.Definition{Label: "alpha", URL: "https://a.example"})

	// Sorted by normalized label, label=url|title entries joined by ;
	want := "alpha=https://a.example|;beta=https://b.example|B"
	assert.Equal(t, want, table.Signature())

	// Memoized: repeated calls agree.
	assert.Equal(t, want, table.Signature())

	// Adding a definition changes the signature.
	table.Add(refs.Definition{Label: "gamma", URL: "https://g.example"})
	assert.NotEqual(t, want, table.Signature())
}
