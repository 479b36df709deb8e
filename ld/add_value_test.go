package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddValue_SeedsArrayWhenRequested(t *testing.T) {
	m := map[string]interface{}{}
	addValue(m, "k", "v1", true)
	assert.Equal(t, []interface{}{"v1"}, m["k"])
}

func TestAddValue_SeedsScalarByDefault(t *testing.T) {
	m := map[string]interface{}{}
	addValue(m, "k", "v1", false)
	assert.Equal(t, "v1", m["k"])
}

func TestAddValue_PromotesScalarToArray(t *testing.T) {
	m := map[string]interface{}{"k": "v1"}
	addValue(m, "k", "v2", false)
	assert.Equal(t, []interface{}{"v1", "v2"}, m["k"])
}

func TestAddValue_AppendsToExistingArray(t *testing.T) {
	m := map[string]interface{}{"k": []interface{}{"v1"}}
	addValue(m, "k", "v2", false)
	assert.Equal(t, []interface{}{"v1", "v2"}, m["k"])
}

func TestAddValue_SplitsArrayValueWhenAppending(t *testing.T) {
	m := map[string]interface{}{"k": []interface{}{"v1"}}
	addValue(m, "k", []interface{}{"v2", "v3"}, false)
	assert.Equal(t, []interface{}{"v1", "v2", "v3"}, m["k"])
}
