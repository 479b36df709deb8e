package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCtx(t *testing.T, localContext interface{}) *Context {
	t.Helper()
	ctx, err := NewContext(NewOptions()).Parse(localContext)
	require.NoError(t, err)
	return ctx
}

func strp(s string) *string { return &s }

// Scenario 1: alias only (spec.md §8, scenario 1).
func TestCompact_AliasOnly(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"name": "http://schema.org/name",
	})

	node := NewNode()
	node.ID = strp("u1")
	node.Properties = map[string][]Indexed[Object]{
		"http://schema.org/name": {NewIndexed[Object](NewStringLiteral("Ann", nil))},
	}

	out, err := Compact(ctx, ctx, "", []Indexed[Object]{NewIndexed[Object](node)}, NewOptions())
	require.NoError(t, err)

	m, ok := out.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "u1", m["@id"])
	assert.Equal(t, "Ann", m["name"])
}

// Scenario 2: language map (spec.md §8, scenario 2).
func TestCompact_LanguageMap(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"label": map[string]interface{}{
			"@id":        "http://ex/label",
			"@container": "@language",
		},
	})

	en, fr := "en", "fr"
	node := NewNode()
	node.Properties = map[string][]Indexed[Object]{
		"http://ex/label": {
			NewIndexed[Object](LangString{Text: "Hi", Language: &en}),
			NewIndexed[Object](LangString{Text: "Salut", Language: &fr}),
			NewIndexed[Object](LangString{Text: "Hej"}),
		},
	}

	out, err := Compact(ctx, ctx, "", []Indexed[Object]{NewIndexed[Object](node)}, NewOptions())
	require.NoError(t, err)

	m := out.(map[string]interface{})
	label := m["label"].(map[string]interface{})
	assert.Equal(t, "Hi", label["en"])
	assert.Equal(t, "Salut", label["fr"])
	assert.Equal(t, "Hej", label["@none"])
}

// Scenario 3: list container, no @list wrapper in output (spec.md §8, scenario 3).
func TestCompact_ListContainer(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"items": map[string]interface{}{
			"@id":        "http://ex/items",
			"@container": "@list",
		},
	})

	node := NewNode()
	node.Properties = map[string][]Indexed[Object]{
		"http://ex/items": {
			NewIndexed[Object](List{Items: []Indexed[Object]{
				NewIndexed[Object](NewNumberLiteral(1)),
				NewIndexed[Object](NewNumberLiteral(2)),
			}}),
		},
	}

	out, err := Compact(ctx, ctx, "", []Indexed[Object]{NewIndexed[Object](node)}, NewOptions())
	require.NoError(t, err)

	m := out.(map[string]interface{})
	items, ok := m["items"].([]interface{})
	require.True(t, ok, "items must be a bare array, not an @list wrapper")
	assert.Equal(t, []interface{}{1.0, 2.0}, items)
}

// Scenario 5: compact-IRI fallback via a prefix term (spec.md §8, scenario 5).
func TestCompact_PrefixFallback(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"ex": "http://ex/",
	})

	compacted, err := ctx.CompactIRI("http://ex/foo", nil, true, false)
	require.NoError(t, err)
	assert.Equal(t, "ex:foo", compacted)
}

// Scenario 6: reverse property (spec.md §8, scenario 6).
func TestCompact_ReverseProperty(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"parent": map[string]interface{}{
			"@reverse": "http://ex/child",
		},
	})

	child := NewNode()
	child.ID = strp("u2")

	node := NewNode()
	node.Reverse = map[string][]Indexed[*Node]{
		"http://ex/child": {NewIndexed(child)},
	}

	out, err := Compact(ctx, ctx, "", []Indexed[Object]{NewIndexed[Object](node)}, NewOptions())
	require.NoError(t, err)

	m := out.(map[string]interface{})
	parent := m["parent"].(map[string]interface{})
	assert.Equal(t, "u2", parent["@id"])
}

// Scenario 4: graph + index container (spec.md §8, scenario 4).
func TestCompact_GraphIndexContainer(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"g": map[string]interface{}{
			"@id":        "http://ex/g",
			"@container": []interface{}{"@graph", "@index"},
		},
	})

	member := NewNode()
	member.ID = strp("u1")

	graphA := NewNode()
	graphA.Graph = []Indexed[Object]{NewIndexed[Object](member)}

	graphB := NewNode()
	graphB.Graph = []Indexed[Object]{NewIndexed[Object](member)}

	node := NewNode()
	node.Properties = map[string][]Indexed[Object]{
		"http://ex/g": {
			NewIndexedWith[Object](graphA, "A"),
			NewIndexedWith[Object](graphB, "B"),
		},
	}

	out, err := Compact(ctx, ctx, "", []Indexed[Object]{NewIndexed[Object](node)}, NewOptions())
	require.NoError(t, err)

	m := out.(map[string]interface{})
	g := m["g"].(map[string]interface{})
	_, hasA := g["A"]
	_, hasB := g["B"]
	assert.True(t, hasA)
	assert.True(t, hasB)
}

// Array-folding law (spec.md §8, invariant 5): a single-object input produces
// a non-array top-level output when CompactArrays is true and no List/Set
// container applies.
func TestCompact_ArrayFoldingLaw(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{})

	node := NewNode()
	node.ID = strp("u1")

	opts := NewOptions()
	opts.CompactArrays = true
	out, err := Compact(ctx, ctx, "", []Indexed[Object]{NewIndexed[Object](node)}, opts)
	require.NoError(t, err)
	_, isArray := out.([]interface{})
	assert.False(t, isArray, "single value must fold to a bare object when compact_arrays is true")

	opts.CompactArrays = false
	out, err = Compact(ctx, ctx, "", []Indexed[Object]{NewIndexed[Object](node)}, opts)
	require.NoError(t, err)
	_, isArray = out.([]interface{})
	assert.True(t, isArray, "compact_arrays=false must keep the array wrapper")
}
