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

// compactProperty is the property-compactor engine (spec.md §4.4): compact one
// expanded property IRI and its values into result, honoring whatever
// container the winning term carries.
func compactProperty(activeContext, typeScopedContext *Context, property string, values []Indexed[Object], opts *Options, insideReverse bool, result map[string]interface{}) error {
	if len(values) == 0 {
		term, err := activeContext.CompactIRI(property, nil, true, insideReverse)
		if err != nil {
			return err
		}
		target, err := nestTarget(activeContext, activeContext.GetTermDefinition(term), result)
		if err != nil {
			return err
		}
		if _, present := target[term]; !present {
			target[term] = []interface{}{}
		} else {
			addValue(target, term, []interface{}{}, true)
		}
		return nil
	}

	for _, item := range values {
		term, err := activeContext.CompactIRI(property, item.Value, true, insideReverse)
		if err != nil {
			return err
		}

		def := activeContext.GetTermDefinition(term)
		var container Container
		if def != nil {
			container = def.Container
		}

		target, err := nestTarget(activeContext, def, result)
		if err != nil {
			return err
		}

		_, isListValue := item.Value.(List)

		// compactElement (via compactList) already produced the correctly shaped
		// result for a list value -- a bare array when the term's container
		// includes List, an {@list: [...]} object otherwise. A second list
		// object is never allowed to land directly on a List-container term.
		if isListValue && container.Has(ContainerList) {
			if _, present := target[term]; present {
				return NewJsonLdError(CompactionToListOfLists, term)
			}
		}

		compacted, err := compactElement(activeContext, typeScopedContext, term, item, opts)
		if err != nil {
			return err
		}

		if isListValue && container.Has(ContainerList) {
			target[term] = compacted
			continue
		}

		switch {
		case container.Has(ContainerGraph) && !isListValue:
			graphNode, isGraphNode := item.Value.(*Node)
			graphCompacted := compacted
			if isGraphNode && graphNode.Graph != nil {
				gc, err := Compact(activeContext, typeScopedContext, term, graphNode.Graph, opts)
				if err != nil {
					return err
				}
				graphCompacted = gc
			}
			switch {
			case container.Has(ContainerID):
				m, _ := target[term].(map[string]interface{})
				if m == nil {
					m = make(map[string]interface{})
					target[term] = m
				}
				key := "@none"
				if isGraphNode && graphNode.ID != nil {
					compactedID, err := activeContext.CompactIRI(*graphNode.ID, nil, true, false)
					if err == nil {
						key = compactedID
					}
				}
				addValue(m, key, graphCompacted, false)
			case container.Has(ContainerIndex):
				m, _ := target[term].(map[string]interface{})
				if m == nil {
					m = make(map[string]interface{})
					target[term] = m
				}
				key := "@none"
				if item.Index != nil {
					key = *item.Index
				}
				addValue(m, key, graphCompacted, false)
			default:
				addValue(target, term, graphCompacted, !opts.CompactArrays)
			}

		case container.Has(ContainerLanguage):
			m, _ := target[term].(map[string]interface{})
			if m == nil {
				m = make(map[string]interface{})
				target[term] = m
			}
			key := "@none"
			if ls, ok := item.Value.(LangString); ok && ls.Language != nil {
				key = *ls.Language
			}
			if inner, ok := compacted.(map[string]interface{}); ok {
				if v, ok := inner["@value"]; ok {
					compacted = v
				}
			}
			addValue(m, key, compacted, false)

		case container.Has(ContainerIndex):
			m, _ := target[term].(map[string]interface{})
			if m == nil {
				m = make(map[string]interface{})
				target[term] = m
			}
			key := "@none"
			if def != nil && def.IndexKey != nil {
				if node, ok := item.Value.(*Node); ok {
					if v, ok := node.Properties[*def.IndexKey]; ok && len(v) > 0 {
						if lit, ok := v[0].Value.(Literal); ok {
							key = lit.Str
						}
					}
				}
			} else if item.Index != nil {
				key = *item.Index
			}
			if inner, ok := compacted.(map[string]interface{}); ok {
				delete(inner, "@index")
			}
			addValue(m, key, compacted, false)

		case container.Has(ContainerID) && !isListValue:
			m, _ := target[term].(map[string]interface{})
			if m == nil {
				m = make(map[string]interface{})
				target[term] = m
			}
			key := "@none"
			if node, ok := item.Value.(*Node); ok && node.ID != nil {
				compactedID, err := activeContext.CompactIRI(*node.ID, nil, true, false)
				if err == nil {
					key = compactedID
				}
			}
			addValue(m, key, compacted, false)

		case container.Has(ContainerType) && !isListValue:
			m, _ := target[term].(map[string]interface{})
			if m == nil {
				m = make(map[string]interface{})
				target[term] = m
			}
			key := "@none"
			if node, ok := item.Value.(*Node); ok && len(node.Types) > 0 {
				compactedType, err := typeScopedContext.CompactIRI(node.Types[0], nil, true, false)
				if err == nil {
					key = compactedType
				}
				if inner, ok := compacted.(map[string]interface{}); ok {
					typeAlias, _ := activeContext.CompactIRI(string(KeywordType), nil, true, false)
					if raw, ok := inner[typeAlias]; ok {
						if arr, ok := raw.([]interface{}); ok && len(arr) > 1 {
							inner[typeAlias] = arr[1:]
						} else {
							delete(inner, typeAlias)
						}
					}
				}
			}
			addValue(m, key, compacted, false)

		case !container.Empty() && container.Has(ContainerSet):
			addValue(target, term, compacted, true)

		default:
			forceArray := !opts.CompactArrays || container.Has(ContainerSet) || container.Has(ContainerList) ||
				property == string(KeywordList) || property == string(KeywordGraph)
			if forceArray {
				if _, isArr := compacted.([]interface{}); !isArr {
					compacted = []interface{}{compacted}
				}
			}
			addValue(target, term, compacted, false)
		}
	}

	return nil
}

// nestTarget resolves the map a term's compacted value is written into. A term
// definition carrying @nest routes its value into a named sub-object of
// result instead of result itself (spec.md §4.4, @nest grouping).
func nestTarget(activeContext *Context, def *TermDefinition, result map[string]interface{}) (map[string]interface{}, error) {
	if def == nil || def.Nest == nil {
		return result, nil
	}

	nestKey := *def.Nest
	if nestKey == string(KeywordNest) {
		alias, err := activeContext.CompactIRI(string(KeywordNest), nil, true, false)
		if err != nil {
			return nil, err
		}
		nestKey = alias
	}

	m, _ := result[nestKey].(map[string]interface{})
	if m == nil {
		m = make(map[string]interface{})
		result[nestKey] = m
	}
	return m, nil
}

// compactReverseProperties compacts node.Reverse into result's @reverse entry
// (spec.md §4.4-4), hoisting any value whose own term is itself a reverse
// property back out to the top level.
func compactReverseProperties(activeContext, typeScopedContext *Context, node *Node, opts *Options, result map[string]interface{}) error {
	if len(node.Reverse) == 0 {
		return nil
	}

	reverseAlias, err := activeContext.CompactIRI(string(KeywordReverse), nil, true, false)
	if err != nil {
		return err
	}

	compactedReverse := make(map[string]interface{})
	for property, nodes := range node.Reverse {
		values := make([]Indexed[Object], len(nodes))
		for i, n := range nodes {
			values[i] = Indexed[Object]{Value: n.Value, Index: n.Index}
		}
		if err := compactProperty(activeContext, typeScopedContext, property, values, opts, true, compactedReverse); err != nil {
			return err
		}
	}

	for term, value := range compactedReverse {
		def := activeContext.GetTermDefinition(term)
		if def != nil && def.Reverse {
			if list, ok := value.([]interface{}); ok {
				if def.Container.Has(ContainerSet) || !opts.CompactArrays {
					addValue(result, term, list, true)
				} else {
					for _, v := range list {
						addValue(result, term, v, false)
					}
				}
			} else {
				addValue(result, term, value, !opts.CompactArrays)
			}
			delete(compactedReverse, term)
		}
	}

	if len(compactedReverse) > 0 {
		result[reverseAlias] = compactedReverse
	}

	return nil
}
