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

// Value is the sum type of a value object's payload: a scalar Literal, a
// language/direction-tagged string, or a raw JSON literal. It also satisfies Object,
// since a bare value with no @id or @type is a legal expanded-form Object on its own.
type Value interface {
	Object
	isValue()
}

// LiteralKind discriminates the primitive JSON kinds a Literal may carry.
type LiteralKind int

const (
	LiteralNull LiteralKind = iota
	LiteralBoolean
	LiteralNumber
	LiteralString
)

// Literal is a scalar value (null, boolean, number or string) with an optional
// datatype IRI. A Literal with Type == nil has no coercion and compacts to its bare
// JSON form when the active property has no type mapping and no @index has to be
// kept; an untyped string additionally needs no language or direction mapping.
type Literal struct {
	Kind LiteralKind
	Bool bool
	Num  float64
	Str  string
	Type *string
}

func (Literal) isObject() {}
func (Literal) isValue()  {}

// NewNullLiteral builds a Literal representing JSON null.
func NewNullLiteral() Literal { return Literal{Kind: LiteralNull} }

// NewBoolLiteral builds a Literal carrying a boolean.
func NewBoolLiteral(b bool) Literal { return Literal{Kind: LiteralBoolean, Bool: b} }

// NewNumberLiteral builds a Literal carrying a number.
func NewNumberLiteral(n float64) Literal { return Literal{Kind: LiteralNumber, Num: n} }

// NewStringLiteral builds a Literal carrying a string, with an optional datatype IRI.
func NewStringLiteral(s string, datatype *string) Literal {
	return Literal{Kind: LiteralString, Str: s, Type: datatype}
}

// LangString is a string tagged with an optional language and/or base direction.
type LangString struct {
	Text      string
	Language  *string
	Direction *Direction
}

func (LangString) isObject() {}
func (LangString) isValue()  {}

// JSONValue wraps an arbitrary JSON payload compacted/expanded with @type: @json.
// Raw holds the already-decoded JSON tree (map[string]interface{}, []interface{}, or a
// scalar) so it can be merged straight into the output tree without re-parsing.
type JSONValue struct {
	Raw interface{}
}

func (JSONValue) isObject() {}
func (JSONValue) isValue()  {}
