package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactNode_TypeAndID(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"Person": "http://schema.org/Person",
	})

	node := NewNode()
	node.ID = strp("http://example.org/jane")
	node.Types = []string{"http://schema.org/Person"}

	out, err := compactNode(ctx, ctx, "", node, nil, NewOptions())
	require.NoError(t, err)

	m := out.(map[string]interface{})
	assert.Equal(t, "http://example.org/jane", m["@id"])
	assert.Equal(t, "Person", m["@type"])
}

func TestCompactNode_MultipleTypesEmitArray(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"Person": "http://schema.org/Person",
	})

	node := NewNode()
	node.Types = []string{"http://schema.org/Person", "http://ex/Employee"}

	out, err := compactNode(ctx, ctx, "", node, nil, NewOptions())
	require.NoError(t, err)

	m := out.(map[string]interface{})
	types, ok := m["@type"].([]interface{})
	require.True(t, ok)
	assert.ElementsMatch(t, []interface{}{"Person", "http://ex/Employee"}, types)
}

func TestCompactNode_IncludedWrapsAsArray(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{})

	included := NewNode()
	included.ID = strp("http://ex/a")

	node := NewNode()
	node.Included = []Indexed[*Node]{NewIndexed(included)}

	out, err := compactNode(ctx, ctx, "", node, nil, NewOptions())
	require.NoError(t, err)

	m := out.(map[string]interface{})
	arr, ok := m["@included"].([]interface{})
	require.True(t, ok)
	require.Len(t, arr, 1)
}
