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

// addValue inserts v under key k in m, per spec.md §4.4-3 / §4.8. asArray
// forces m[k] to be (or become) a JSON array even for a single insertion.
func addValue(m map[string]interface{}, key string, v interface{}, asArray bool) {
	existing, present := m[key]

	if !present {
		if asArray {
			if list, ok := v.([]interface{}); ok {
				cp := make([]interface{}, len(list))
				copy(cp, list)
				m[key] = cp
			} else {
				m[key] = []interface{}{v}
			}
		} else {
			m[key] = v
		}
		return
	}

	list, isList := existing.([]interface{})
	if !isList {
		list = []interface{}{existing}
	}

	if items, ok := v.([]interface{}); ok {
		list = append(list, items...)
	} else {
		list = append(list, v)
	}

	m[key] = list
}
