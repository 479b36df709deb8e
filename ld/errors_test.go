package ld

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonLdError_Error(t *testing.T) {
	err := NewJsonLdError(InvalidIriRef, "http://ex/ bad")
	assert.Equal(t, "invalid IRI ref: http://ex/ bad", err.Error())

	bare := NewJsonLdError(CompactionToListOfLists, nil)
	assert.Equal(t, string(CompactionToListOfLists), bare.Error())
}

func TestJsonLdError_Unwrap(t *testing.T) {
	cause := errors.New("network down")
	err := NewJsonLdError(LoadingRemoteContextFailed, cause)

	require.ErrorIs(t, err, cause)

	wrapped := new(JsonLdError)
	require.ErrorAs(t, err, &wrapped)
	assert.Equal(t, LoadingRemoteContextFailed, wrapped.Code)
}
