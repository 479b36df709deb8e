package ld

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorDocumentLoader struct {
	err error
}

func (l errorDocumentLoader) LoadDocument(u string) (*RemoteDocument, error) {
	return nil, l.err
}

func TestCachingDocumentLoader_PreloadAvoidsNextLoader(t *testing.T) {
	boom := errors.New("should never be called")
	cdl := NewCachingDocumentLoader(errorDocumentLoader{err: boom})
	cdl.AddDocument("http://ex/context.jsonld", &RemoteDocument{
		DocumentURL: "http://ex/context.jsonld",
		Document: map[string]interface{}{
			"@context": map[string]interface{}{
				"name": "http://schema.org/name",
			},
		},
	})

	doc, err := cdl.LoadDocument("http://ex/context.jsonld")
	require.NoError(t, err)
	assert.Equal(t, "http://ex/context.jsonld", doc.DocumentURL)
}

func TestCachingDocumentLoader_CachesNextLoaderResult(t *testing.T) {
	calls := 0
	loader := countingDocumentLoader{
		doc:   &RemoteDocument{DocumentURL: "http://ex/a.jsonld", Document: map[string]interface{}{}},
		calls: &calls,
	}
	cdl := NewCachingDocumentLoader(loader)

	_, err := cdl.LoadDocument("http://ex/a.jsonld")
	require.NoError(t, err)
	_, err = cdl.LoadDocument("http://ex/a.jsonld")
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second call must be served from cache")
}

type countingDocumentLoader struct {
	doc   *RemoteDocument
	calls *int
}

func (l countingDocumentLoader) LoadDocument(u string) (*RemoteDocument, error) {
	*l.calls++
	return l.doc, nil
}

// Remote @context references are resolved through Options.DocumentLoader during
// context processing (spec.md §6); a failing loader must surface as
// LoadingRemoteContextFailed.
func TestContext_Parse_RemoteContextLoadFailure(t *testing.T) {
	expectedErr := errors.New("network down")
	opts := NewOptions()
	opts.DocumentLoader = errorDocumentLoader{err: expectedErr}

	_, err := NewContext(opts).Parse("http://example.org/missing-context.jsonld")
	require.Error(t, err)

	jsonLDErr := new(JsonLdError)
	require.ErrorAs(t, err, &jsonLDErr)
	assert.Equal(t, LoadingRemoteContextFailed, jsonLDErr.Code)
	assert.ErrorIs(t, err, expectedErr)
}
