package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spec.md §8, invariant 7: given two terms mapping the same IRI, the term
// with the more specific container/bucket hint wins.
func TestSelectTerm_MoreSpecificContainerWins(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"label": "http://ex/label",
		"labelSet": map[string]interface{}{
			"@id":        "http://ex/label",
			"@container": "@set",
		},
	})

	term := ctx.selectTerm("http://ex/label", []string{"@set", "@none"}, "@type", []string{"@none"})
	assert.Equal(t, "labelSet", term)

	term = ctx.selectTerm("http://ex/label", []string{"@none"}, "@type", []string{"@none"})
	assert.Equal(t, "label", term)
}

func TestCompactIRI_SelectsMostSpecificTerm(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"label": "http://ex/label",
		"labelSet": map[string]interface{}{
			"@id":        "http://ex/label",
			"@container": "@set",
		},
	})

	compacted, err := ctx.CompactIRI("http://ex/label", NewStringLiteral("hi", nil), true, false)
	require.NoError(t, err)
	assert.Equal(t, "labelSet", compacted)
}
