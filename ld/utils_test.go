package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareShortestLeast(t *testing.T) {
	assert.True(t, CompareShortestLeast("a", "bb"))
	assert.False(t, CompareShortestLeast("bb", "a"))
	assert.True(t, CompareShortestLeast("aa", "ab"))
	assert.False(t, CompareShortestLeast("aa", "aa"))
}

func TestSortShortestLeast(t *testing.T) {
	in := []string{"ccc", "a", "bb", "ab"}
	out := sortShortestLeast(in)
	assert.Equal(t, []string{"a", "ab", "bb", "ccc"}, out)
	// original slice must be untouched
	assert.Equal(t, []string{"ccc", "a", "bb", "ab"}, in)
}

func TestOrderedKeys(t *testing.T) {
	m := map[string][]Indexed[Object]{
		"http://ex/b": nil,
		"http://ex/a": nil,
		"http://ex/c": nil,
	}
	assert.Equal(t, []string{"http://ex/a", "http://ex/b", "http://ex/c"}, orderedKeys(m))
}

func TestDeepEqualJSON(t *testing.T) {
	a := map[string]interface{}{"x": []interface{}{1.0, "y"}}
	b := map[string]interface{}{"x": []interface{}{1.0, "y"}}
	c := map[string]interface{}{"x": []interface{}{1.0, "z"}}
	assert.True(t, deepEqualJSON(a, b))
	assert.False(t, deepEqualJSON(a, c))
}
