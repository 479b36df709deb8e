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

// compactNode implements the Node Compaction procedure (spec.md §4.6).
func compactNode(activeContext, typeScopedContext *Context, activeProperty string, node *Node, index *string, opts *Options) (interface{}, error) {
	ctx := activeContext
	if ctx.previousContext != nil && !node.HasSingleIDOnly() {
		ctx = ctx.previousContext
	}

	// Entering a property-local context uses the type-scoped context as its
	// parent: the property's @context was recorded while the type-scoped
	// context (not whatever previous-context restoration just happened) was
	// active, per the upstream reference implementation's own choice here
	// (spec.md §9, Open Question).
	if def := typeScopedContext.GetTermDefinition(activeProperty); def != nil && def.LocalContext != nil {
		next, err := typeScopedContext.Parse(def.LocalContext)
		if err != nil {
			return nil, err
		}
		ctx = next
	}

	result := make(map[string]interface{})

	if len(node.Types) > 0 {
		typeAlias, err := ctx.CompactIRI(string(KeywordType), nil, true, false)
		if err != nil {
			return nil, err
		}
		compactedTypes := make([]interface{}, 0, len(node.Types))
		for _, t := range node.Types {
			ct, err := typeScopedContext.CompactIRI(t, nil, true, false)
			if err != nil {
				return nil, err
			}
			compactedTypes = append(compactedTypes, ct)
		}
		if len(compactedTypes) == 1 {
			result[typeAlias] = compactedTypes[0]
		} else {
			result[typeAlias] = compactedTypes
		}
	}

	if node.ID != nil {
		idAlias, err := ctx.CompactIRI(string(KeywordID), nil, true, false)
		if err != nil {
			return nil, err
		}
		compactedID, err := ctx.CompactIRI(*node.ID, nil, false, false)
		if err != nil {
			return nil, err
		}
		result[idAlias] = compactedID
	}

	if node.Graph != nil {
		graphAlias, err := ctx.CompactIRI(string(KeywordGraph), nil, true, false)
		if err != nil {
			return nil, err
		}
		compacted, err := Compact(ctx, typeScopedContext, string(KeywordGraph), node.Graph, opts)
		if err != nil {
			return nil, err
		}
		result[graphAlias] = compacted
	}

	if len(node.Included) > 0 {
		includedAlias, err := ctx.CompactIRI(string(KeywordIncluded), nil, true, false)
		if err != nil {
			return nil, err
		}
		items := make([]Indexed[Object], len(node.Included))
		for i, n := range node.Included {
			items[i] = Indexed[Object]{Value: n.Value, Index: n.Index}
		}
		compacted, err := Compact(ctx, typeScopedContext, string(KeywordIncluded), items, opts)
		if err != nil {
			return nil, err
		}
		if _, isArray := compacted.([]interface{}); !isArray {
			compacted = []interface{}{compacted}
		}
		result[includedAlias] = compacted
	}

	if err := compactReverseProperties(ctx, typeScopedContext, node, opts, result); err != nil {
		return nil, err
	}

	for _, property := range orderedPropertyKeys(node.Properties, opts) {
		if err := compactProperty(ctx, typeScopedContext, property, node.Properties[property], opts, false, result); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func orderedPropertyKeys(props map[string][]Indexed[Object], opts *Options) []string {
	if opts != nil && opts.Ordered {
		return orderedKeys(props)
	}
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	return keys
}
