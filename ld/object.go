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

// Object is the sum type of every shape an expanded-form value may take: a Value
// (scalar/lang-string/json literal), a *Node, or a List. It is a flat tagged union,
// not a base type to subclass: callers switch on the concrete type.
type Object interface {
	isObject()
}

// List is an ordered sequence of indexed Objects. The data model forbids a List from
// directly containing another List (CompactionToListOfLists guards this at compaction).
type List struct {
	Items []Indexed[Object]
}

func (List) isObject() {}

// Indexed pairs a value of type T with an optional @index string carried alongside it
// in the expanded form (list items, graph members, included nodes).
type Indexed[T any] struct {
	Value T
	Index *string
}

// NewIndexed wraps v with no @index.
func NewIndexed[T any](v T) Indexed[T] {
	return Indexed[T]{Value: v}
}

// NewIndexedWith wraps v with the given @index.
func NewIndexedWith[T any](v T, index string) Indexed[T] {
	return Indexed[T]{Value: v, Index: &index}
}
