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

const (
	JsonLd_1_0 = "json-ld-1.0" //nolint:stylecheck
	JsonLd_1_1 = "json-ld-1.1" //nolint:stylecheck
)

// Options are the processing knobs spec.md §6 names. Framing and RDF-conversion
// options from the teacher's JsonLdOptions are deliberately not carried over: nothing
// in this module reads them.
type Options struct {
	ProcessingMode    string
	CompactToRelative bool
	CompactArrays     bool
	Ordered           bool
	DocumentLoader    DocumentLoader
}

// NewOptions returns Options with the spec-mandated defaults.
func NewOptions() *Options {
	return &Options{
		ProcessingMode:    JsonLd_1_1,
		CompactToRelative: true,
		CompactArrays:     true,
		Ordered:           false,
		DocumentLoader:    NewDefaultDocumentLoader(nil),
	}
}

// Copy returns a shallow copy of opts.
func (opts *Options) Copy() *Options {
	cp := *opts
	return &cp
}
