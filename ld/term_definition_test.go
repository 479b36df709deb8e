package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermDefinition_EqualIgnoringProtected(t *testing.T) {
	iri := "http://ex/name"

	a := &TermDefinition{IRI: &iri, Container: ContainerSet, Protected: true}
	b := &TermDefinition{IRI: &iri, Container: ContainerSet, Protected: false}
	assert.True(t, a.EqualIgnoringProtected(b), "Protected must not affect equality")

	c := &TermDefinition{IRI: &iri, Container: ContainerList, Protected: true}
	assert.False(t, a.EqualIgnoringProtected(c), "differing Container must break equality")

	other := "http://ex/other"
	d := &TermDefinition{IRI: &other}
	assert.False(t, a.EqualIgnoringProtected(d))
}

func TestNullableLanguage(t *testing.T) {
	unset := UnsetLanguage()
	assert.False(t, unset.IsSet())
	_, ok := unset.Value()
	assert.False(t, ok)

	null := NullLanguage()
	assert.True(t, null.IsSet())
	assert.True(t, null.IsNull())

	en := SomeLanguage("en")
	assert.True(t, en.IsSet())
	assert.False(t, en.IsNull())
	v, ok := en.Value()
	assert.True(t, ok)
	assert.Equal(t, "en", v)

	assert.True(t, unset.Equal(UnsetLanguage()))
	assert.False(t, unset.Equal(null))
	assert.False(t, null.Equal(en))
}
