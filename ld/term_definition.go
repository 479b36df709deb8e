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

// TypeMapping is a term's type coercion: either an absolute IRI, or one of the
// keyword references @id, @vocab, @json, @none.
type TypeMapping string

const (
	TypeID   TypeMapping = "@id"
	TypeVocab TypeMapping = "@vocab"
	TypeJSON TypeMapping = "@json"
	TypeNone TypeMapping = "@none"
)

// TermDefinition records everything the context model tracks for one term: its IRI
// mapping, container layout, type/language/direction coercions, and scoping metadata.
//
// Invariants: Prefix is false whenever IRI names a Keyword; a term with Reverse set
// carries no container flags other than Set or Index.
type TermDefinition struct {
	IRI          *string // nil only for an @type keyword definition without @container; a term mapped to null is stored as a nil *TermDefinition
	Prefix       bool
	Protected    bool
	Reverse      bool
	Base         *string
	LocalContext interface{} // unprocessed nested local context, handed to the context processor
	LocalContextBase string  // base URL in effect when LocalContext should be processed
	Container    Container
	Direction    NullableDirection
	IndexKey     *string
	Language     NullableLanguage
	Nest         *string
	Type         *TypeMapping
}

// NullableLanguage is a tri-state value: unset, explicitly null, or an explicit tag.
type NullableLanguage struct {
	set   bool
	null  bool
	value string
}

func UnsetLanguage() NullableLanguage { return NullableLanguage{} }

func NullLanguage() NullableLanguage { return NullableLanguage{set: true, null: true} }

func SomeLanguage(tag string) NullableLanguage { return NullableLanguage{set: true, value: tag} }

func (l NullableLanguage) IsSet() bool { return l.set }

func (l NullableLanguage) IsNull() bool { return l.set && l.null }

func (l NullableLanguage) Value() (string, bool) {
	if l.set && !l.null {
		return l.value, true
	}
	return "", false
}

func (l NullableLanguage) Equal(o NullableLanguage) bool {
	return l.set == o.set && l.null == o.null && l.value == o.value
}

// EqualIgnoringProtected performs a structural comparison of two term definitions,
// deliberately excluding Protected: the field exists to gate redefinition, not to
// distinguish otherwise-identical mappings (spec.md §9, "Open questions").
func (d *TermDefinition) EqualIgnoringProtected(o *TermDefinition) bool {
	if d == nil || o == nil {
		return d == o
	}
	if !strPtrEqual(d.IRI, o.IRI) || d.Prefix != o.Prefix || d.Reverse != o.Reverse {
		return false
	}
	if !strPtrEqual(d.Base, o.Base) {
		return false
	}
	if d.Container != o.Container {
		return false
	}
	if !d.Direction.Equal(o.Direction) || !d.Language.Equal(o.Language) {
		return false
	}
	if !strPtrEqual(d.IndexKey, o.IndexKey) || !strPtrEqual(d.Nest, o.Nest) {
		return false
	}
	if (d.Type == nil) != (o.Type == nil) {
		return false
	}
	if d.Type != nil && *d.Type != *o.Type {
		return false
	}
	return deepEqualJSON(d.LocalContext, o.LocalContext)
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
