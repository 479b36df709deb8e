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
	"reflect"
	"sort"
)

// CompareShortestLeast compares two strings first by length, then lexicographically.
// The inverse-context term selector and the IRI compactor's compact-IRI fallback both
// need "shortest, then least" ordering over candidate terms (spec.md §4.7).
func CompareShortestLeast(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// ShortestLeast sorts strings by CompareShortestLeast.
type ShortestLeast []string

func (s ShortestLeast) Len() int           { return len(s) }
func (s ShortestLeast) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s ShortestLeast) Less(i, j int) bool { return CompareShortestLeast(s[i], s[j]) }

// sortShortestLeast returns a sorted copy of keys, shortest-then-lexicographic.
func sortShortestLeast(keys []string) []string {
	out := make([]string, len(keys))
	copy(out, keys)
	sort.Sort(ShortestLeast(out))
	return out
}

// orderedKeys returns the keys of m sorted lexicographically, for use when
// Options.Ordered requests deterministic iteration over a map (spec.md §6).
func orderedKeys(m map[string][]Indexed[Object]) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// deepEqualJSON compares two values decoded from JSON (maps, slices, strings, bools,
// float64, nil) for structural equality. Used by TermDefinition.EqualIgnoringProtected
// to compare unprocessed nested local contexts.
func deepEqualJSON(a, b interface{}) bool {
	return reflect.DeepEqual(a, b)
}
