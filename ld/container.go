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

// Container is a set over the container layout flags a term definition may carry.
// Multiple flags may co-occur, e.g. Graph|Index.
type Container uint8

const (
	ContainerList Container = 1 << iota
	ContainerSet
	ContainerIndex
	ContainerLanguage
	ContainerID
	ContainerType
	ContainerGraph
)

// Has returns true if c carries every flag set in mask.
func (c Container) Has(mask Container) bool {
	return c&mask == mask
}

// Any returns true if c carries at least one of the flags set in mask.
func (c Container) Any(mask Container) bool {
	return c&mask != 0
}

// Empty returns true if no container flag is set.
func (c Container) Empty() bool {
	return c == 0
}

// containerOrder is the fixed order used when encoding a canonical container signature,
// matching the order the inverse index construction iterates containers in.
var containerOrder = []struct {
	flag Container
	name string
}{
	{ContainerGraph, "@graph"},
	{ContainerID, "@id"},
	{ContainerIndex, "@index"},
	{ContainerLanguage, "@language"},
	{ContainerList, "@list"},
	{ContainerSet, "@set"},
	{ContainerType, "@type"},
}

// signature encodes the container flag set as the canonical string used as an inverse
// index key, e.g. "@graph@index". An empty container encodes to the sentinel "@none".
func (c Container) signature() string {
	if c.Empty() {
		return "@none"
	}
	s := ""
	for _, entry := range containerOrder {
		if c.Has(entry.flag) {
			s += entry.name
		}
	}
	return s
}

// ParseContainer builds a Container from its JSON-LD string names (e.g. "@set", "@index").
func ParseContainer(names ...string) Container {
	var c Container
	for _, n := range names {
		switch n {
		case "@list":
			c |= ContainerList
		case "@set":
			c |= ContainerSet
		case "@index":
			c |= ContainerIndex
		case "@language":
			c |= ContainerLanguage
		case "@id":
			c |= ContainerID
		case "@type":
			c |= ContainerType
		case "@graph":
			c |= ContainerGraph
		}
	}
	return c
}
