// Copyright 2015-2017 Piprate Limited
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ld

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/pquerna/cachecontrol"
)

const acceptHeader = "application/ld+json, application/json;q=0.9, application/javascript;q=0.5, text/javascript;q=0.5, text/plain;q=0.2, */*;q=0.1"

// RemoteDocument is a document retrieved from a remote source, or a local one wrapped
// to satisfy the same contract.
type RemoteDocument struct {
	DocumentURL string
	Document    interface{}
	ContextURL  string
}

// DocumentLoader is the external collaborator the context processor calls out to when
// a local context is (or references) a remote URL (spec.md §6). The compaction core
// itself never calls this interface directly.
type DocumentLoader interface {
	LoadDocument(u string) (*RemoteDocument, error)
}

// DocumentFromReader decodes a JSON document from r.
func DocumentFromReader(r io.Reader) (interface{}, error) {
	var document interface{}
	if err := json.NewDecoder(r).Decode(&document); err != nil {
		return nil, NewJsonLdError(LoadingFailed, err)
	}
	return document, nil
}

// DefaultDocumentLoader retrieves documents over HTTP(S) or from the local filesystem,
// and honors RFC 7234 cache-control headers via cachecontrol so repeated references to
// the same remote context (common when many term definitions share one scoped context)
// don't re-fetch it every time.
type DefaultDocumentLoader struct {
	httpClient *http.Client
	cache      map[string]*cachedDocument
}

type cachedDocument struct {
	doc          *RemoteDocument
	expireTime   time.Time
	neverExpires bool
}

// NewDefaultDocumentLoader creates a DefaultDocumentLoader. A nil httpClient uses
// http.DefaultClient.
func NewDefaultDocumentLoader(httpClient *http.Client) *DefaultDocumentLoader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &DefaultDocumentLoader{
		httpClient: httpClient,
		cache:      make(map[string]*cachedDocument),
	}
}

// LoadDocument returns the contents of the JSON resource at u, preferring a cached
// response when one is still fresh.
func (dl *DefaultDocumentLoader) LoadDocument(u string) (*RemoteDocument, error) {
	now := time.Now()
	if entry, ok := dl.cache[u]; ok && (entry.neverExpires || entry.expireTime.After(now)) {
		return entry.doc, nil
	}

	parsedURL, err := url.Parse(u)
	if err != nil {
		return nil, NewJsonLdError(LoadingFailed, fmt.Sprintf("error parsing URL: %s", u))
	}

	remoteDoc := &RemoteDocument{}
	neverExpires := false
	shouldCache := false
	expireTime := now

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		remoteDoc.DocumentURL = u
		file, err := os.Open(u)
		if err != nil {
			return nil, NewJsonLdError(LoadingFailed, err)
		}
		defer file.Close()

		remoteDoc.Document, err = DocumentFromReader(file)
		if err != nil {
			return nil, NewJsonLdError(LoadingFailed, err)
		}
		neverExpires = true
		shouldCache = true
	} else {
		req, err := http.NewRequest("GET", u, http.NoBody)
		if err != nil {
			return nil, NewJsonLdError(LoadingFailed, err)
		}
		req.Header.Add("Accept", acceptHeader)

		res, err := dl.httpClient.Do(req)
		if err != nil {
			return nil, NewJsonLdError(LoadingFailed, err)
		}
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			return nil, NewJsonLdError(LoadingFailed, fmt.Sprintf("bad response status code: %d", res.StatusCode))
		}

		remoteDoc.DocumentURL = res.Request.URL.String()
		remoteDoc.Document, err = DocumentFromReader(res.Body)
		if err != nil {
			return nil, NewJsonLdError(LoadingFailed, err)
		}

		reasons, resExpireTime, err := cachecontrol.CachableResponse(req, res, cachecontrol.Options{})
		if err == nil && len(reasons) == 0 {
			shouldCache = true
			expireTime = resExpireTime
		}
	}

	if shouldCache {
		dl.cache[u] = &cachedDocument{doc: remoteDoc, expireTime: expireTime, neverExpires: neverExpires}
	}

	return remoteDoc, nil
}

// CachingDocumentLoader is an overlay that caches whatever the next loader returns
// indefinitely, ignoring cache-control headers entirely. Useful for tests: preload its
// cache map with fixture documents to avoid any network access.
type CachingDocumentLoader struct {
	next  DocumentLoader
	cache map[string]*RemoteDocument
}

// NewCachingDocumentLoader wraps next with an unconditional cache.
func NewCachingDocumentLoader(next DocumentLoader) *CachingDocumentLoader {
	return &CachingDocumentLoader{next: next, cache: make(map[string]*RemoteDocument)}
}

// AddDocument preloads u with doc, so LoadDocument never calls the wrapped loader for it.
func (cdl *CachingDocumentLoader) AddDocument(u string, doc *RemoteDocument) {
	cdl.cache[u] = doc
}

// LoadDocument returns the cached document for u, loading and caching it on first use.
func (cdl *CachingDocumentLoader) LoadDocument(u string) (*RemoteDocument, error) {
	if doc, ok := cdl.cache[u]; ok {
		return doc, nil
	}
	doc, err := cdl.next.LoadDocument(u)
	if err != nil {
		return nil, err
	}
	cdl.cache[u] = doc
	return doc, nil
}
