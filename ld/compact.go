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

// Compact implements the Compaction Algorithm driver (spec.md §4.3): compact a
// set of expanded Indexed Objects under activeContext, using typeScopedContext
// to resolve @type values that were current when the node's types were
// processed.
func Compact(activeContext, typeScopedContext *Context, activeProperty string, elements []Indexed[Object], opts *Options) (interface{}, error) {
	if opts == nil {
		opts = NewOptions()
	}

	results := make([]interface{}, 0, len(elements))
	for _, item := range elements {
		compacted, err := compactElement(activeContext, typeScopedContext, activeProperty, item, opts)
		if err != nil {
			return nil, err
		}
		if compacted != nil {
			results = append(results, compacted)
		}
	}

	if opts.CompactArrays && len(results) == 1 {
		def := activeContext.GetTermDefinition(activeProperty)
		hasListOrSet := def != nil && def.Container.Any(ContainerList|ContainerSet)
		if activeProperty != string(KeywordGraph) && activeProperty != string(KeywordSet) && !hasListOrSet {
			return results[0], nil
		}
	}

	return results, nil
}

// compactElement dispatches a single Indexed Object to the value, node, or
// list compactor based on its dynamic shape.
func compactElement(activeContext, typeScopedContext *Context, activeProperty string, item Indexed[Object], opts *Options) (interface{}, error) {
	switch v := item.Value.(type) {
	case Value:
		return compactValue(activeContext, activeProperty, v, item.Index)
	case *Node:
		return compactNode(activeContext, typeScopedContext, activeProperty, v, item.Index, opts)
	case List:
		return compactList(activeContext, typeScopedContext, activeProperty, v, item.Index, opts)
	}
	return nil, NewJsonLdError(UnexpectedObjectShape, item.Value)
}

// compactList implements the list-object branch of §4.3.
func compactList(activeContext, typeScopedContext *Context, activeProperty string, list List, index *string, opts *Options) (interface{}, error) {
	// A list never consists of a single @id entry, so the scope of a
	// term-scoped context never applies here: restore the previous context
	// unconditionally, before even consulting the property's own definition.
	listCtx := activeContext
	if listCtx.previousContext != nil {
		listCtx = listCtx.previousContext
	}

	def := typeScopedContext.GetTermDefinition(activeProperty)
	if def != nil && def.LocalContext != nil {
		next, err := listCtx.Parse(def.LocalContext)
		if err != nil {
			return nil, err
		}
		listCtx = next
	}

	if def != nil && def.Container.Has(ContainerList) {
		return Compact(listCtx, typeScopedContext, activeProperty, list.Items, opts)
	}

	inner, err := Compact(listCtx, typeScopedContext, activeProperty, list.Items, opts)
	if err != nil {
		return nil, err
	}
	if _, isArray := inner.([]interface{}); !isArray {
		inner = []interface{}{inner}
	}

	listAlias, err := listCtx.CompactIRI(string(KeywordList), nil, true, false)
	if err != nil {
		return nil, err
	}
	result := map[string]interface{}{listAlias: inner}

	if index != nil && (def == nil || !def.Container.Has(ContainerIndex)) {
		indexAlias, err := listCtx.CompactIRI(string(KeywordIndex), nil, true, false)
		if err != nil {
			return nil, err
		}
		result[indexAlias] = *index
	}

	return result, nil
}
