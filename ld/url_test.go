package ld

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseURL(t *testing.T) {
	parsed := parseURL("http://www.example.com")
	assert.Equal(t, "http:", parsed.Protocol)
	assert.Equal(t, "www.example.com", parsed.Host)
}

func TestRelativizeIRI(t *testing.T) {
	result := relativizeIRI(
		"http://json-ld.org/test-suite/tests/compact-0045-in.jsonld",
		"http://json-ld.org/test-suite/parent-node",
	)
	assert.Equal(t, "../parent-node", result)

	result = relativizeIRI(
		"http://example.com/",
		"http://example.com/relative-url",
	)
	assert.Equal(t, "relative-url", result)

	result = relativizeIRI(
		"http://example.com/api/things/1",
		"http://example.com/api/things/1",
	)
	assert.Equal(t, "1", result)
}

func TestIsAbsoluteAndRelativeIRI(t *testing.T) {
	assert.True(t, IsAbsoluteIRI("http://example.com/foo"))
	assert.True(t, IsAbsoluteIRI("_:b0"))
	assert.False(t, IsAbsoluteIRI("relative/path"))

	assert.True(t, IsRelativeIRI("relative/path"))
	assert.False(t, IsRelativeIRI("http://example.com/foo"))
	assert.False(t, IsRelativeIRI("_:b0"))
}
