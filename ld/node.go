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

// Node is an object with identity and properties: a lenient IRI or blank-node @id, zero
// or more @type entries, an optional @graph, an optional @included set, ordinary
// properties keyed by expanded IRI, and reverse properties keyed by expanded IRI.
//
// Properties never contain a key equal to a Keyword; that invariant is the expander's
// responsibility and is assumed to hold for any Node reaching the compactor.
type Node struct {
	ID         *string
	Types      []string
	Graph      []Indexed[Object]
	Included   []Indexed[*Node]
	Properties map[string][]Indexed[Object]
	Reverse    map[string][]Indexed[*Node]
}

func (*Node) isObject() {}

// NewNode returns an empty Node ready to have properties attached.
func NewNode() *Node {
	return &Node{
		Properties: make(map[string][]Indexed[Object]),
		Reverse:    make(map[string][]Indexed[*Node]),
	}
}

// IsGraphObject returns true if n has a @graph entry and no other entry except
// optionally @id (and/or @index, tracked separately via the enclosing Indexed wrapper).
func (n *Node) IsGraphObject() bool {
	return n.Graph != nil &&
		len(n.Included) == 0 &&
		len(n.Properties) == 0 &&
		len(n.Reverse) == 0 &&
		len(n.Types) == 0
}

// HasSingleIDOnly returns true if the only populated field on n is ID. Used to decide
// whether entering a node resets a lingering term-scoped context (spec.md §4.6).
func (n *Node) HasSingleIDOnly() bool {
	return n.ID != nil &&
		n.Graph == nil &&
		len(n.Included) == 0 &&
		len(n.Types) == 0 &&
		len(n.Properties) == 0 &&
		len(n.Reverse) == 0
}
