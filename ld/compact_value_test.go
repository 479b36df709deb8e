package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompactValue_BareScalarWhenNoTypeOrLanguageContract(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{})

	out, err := compactValue(ctx, "http://ex/untyped", NewStringLiteral("hello", nil), nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

func TestCompactValue_StringWithLanguageNeedsFullObject(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{})

	en := "en"
	out, err := compactValue(ctx, "http://ex/untyped", LangString{Text: "hi", Language: &en}, nil)
	require.NoError(t, err)

	m, ok := out.(map[string]interface{})
	require.True(t, ok, "a lang-tagged value must not collapse to a bare string unless the property's own language matches")
	assert.Equal(t, "hi", m["@value"])
	assert.Equal(t, "en", m["@language"])
}

func TestCompactValue_LangStringMatchingPropertyLanguageCollapses(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"label": map[string]interface{}{
			"@id":       "http://ex/label",
			"@language": "en",
		},
	})

	en := "en"
	out, err := compactValue(ctx, "label", LangString{Text: "hi", Language: &en}, nil)
	require.NoError(t, err)
	assert.Equal(t, "hi", out)
}

func TestCompactValue_JSONTypeMappingReturnsRawPayload(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{
		"payload": map[string]interface{}{
			"@id":   "http://ex/payload",
			"@type": "@json",
		},
	})

	raw := map[string]interface{}{"a": 1.0}
	out, err := compactValue(ctx, "payload", JSONValue{Raw: raw}, nil)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestCompactValue_IndexKeptWhenContainerLacksIndex(t *testing.T) {
	ctx := parseCtx(t, map[string]interface{}{})

	idx := "en"
	out, err := compactValue(ctx, "http://ex/untyped", NewStringLiteral("hello", nil), &idx)
	require.NoError(t, err)

	m, ok := out.(map[string]interface{})
	require.True(t, ok, "an indexed value without an @index container must keep @index, forcing the full object form")
	assert.Equal(t, "hello", m["@value"])
	assert.Equal(t, "en", m["@index"])
}
