package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCompactProperty_NestGroupsTerm exercises @nest grouping: a term whose
// definition carries @nest must land under the named nest object instead of
// directly in the node's top-level result (spec.md §4.4, §4.6 "nest group").
func TestCompactProperty_NestGroupsTerm(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"homepage": map[string]interface{}{
			"@id":   "http://schema.org/homepage",
			"@nest": "contactInfo",
		},
		"contactInfo": "@nest",
	})

	node := NewNode()
	node.ID = strp("http://example.org/jane")
	node.Properties = map[string][]Indexed[Object]{
		"http://schema.org/homepage": {NewIndexed[Object](NewStringLiteral("http://jane.example", nil))},
	}

	out, err := compactNode(ctx, ctx, "", node, nil, NewOptions())
	require.NoError(t, err)

	m := out.(map[string]interface{})
	assert.NotContains(t, m, "homepage")

	nested, ok := m["contactInfo"].(map[string]interface{})
	require.True(t, ok, "expected a contactInfo nest object, got %#v", m)
	assert.Equal(t, "http://jane.example", nested["homepage"])
}

// TestCompactProperty_NestLiteralAliasesAtNestKeyword covers a term whose
// @nest value is the bare "@nest" keyword itself rather than a user term: the
// grouping key is then whatever "@nest" compacts to (itself, absent an
// explicit alias).
func TestCompactProperty_NestLiteralAliasesAtNestKeyword(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"age": map[string]interface{}{
			"@id":   "http://schema.org/age",
			"@nest": "@nest",
		},
	})

	node := NewNode()
	node.Properties = map[string][]Indexed[Object]{
		"http://schema.org/age": {NewIndexed[Object](NewNumberLiteral(31))},
	}

	out, err := compactNode(ctx, ctx, "", node, nil, NewOptions())
	require.NoError(t, err)

	m := out.(map[string]interface{})
	nested, ok := m["@nest"].(map[string]interface{})
	require.True(t, ok, "expected an @nest object, got %#v", m)
	assert.EqualValues(t, 31, nested["age"])
}
