package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainer_HasAnyEmpty(t *testing.T) {
	c := ParseContainer("@graph", "@index")

	assert.True(t, c.Has(ContainerGraph))
	assert.True(t, c.Has(ContainerGraph|ContainerIndex))
	assert.False(t, c.Has(ContainerGraph|ContainerSet))
	assert.True(t, c.Any(ContainerSet|ContainerIndex))
	assert.False(t, c.Any(ContainerSet|ContainerList))
	assert.False(t, c.Empty())
	assert.True(t, Container(0).Empty())
}

func TestContainer_Signature(t *testing.T) {
	assert.Equal(t, "@none", Container(0).signature())
	assert.Equal(t, "@graph@index", ParseContainer("@index", "@graph").signature())
	assert.Equal(t, "@language", ParseContainer("@language").signature())
}
