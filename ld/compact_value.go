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

// compactValue implements the Value Compaction algorithm (spec.md §4.5): turn
// one Value (plus its optional @index) into the most compact JSON shape the
// active property's term definition allows.
func compactValue(activeCtx *Context, activeProperty string, value Value, index *string) (interface{}, error) {
	def := activeCtx.GetTermDefinition(activeProperty)

	var typeMapping *TypeMapping
	language, hasLanguage := activeCtx.language.Value()
	direction, hasDirection := activeCtx.direction.Value()
	var container Container

	if def != nil {
		typeMapping = def.Type
		if def.Language.IsSet() {
			language, hasLanguage = def.Language.Value()
		}
		if def.Direction.IsSet() {
			direction, hasDirection = def.Direction.Value()
		}
		container = def.Container
	}

	removeIndex := container.Has(ContainerIndex) || index == nil

	switch v := value.(type) {
	case Literal:
		sameType := (v.Type == nil && typeMapping == nil) || (v.Type != nil && typeMapping != nil && *v.Type == string(*typeMapping))
		if v.Kind != LiteralString {
			if sameType && removeIndex {
				return literalToRawJSON(v), nil
			}
		} else {
			if sameType && removeIndex && !hasLanguage && !hasDirection {
				return v.Str, nil
			}
		}
		return compactValueObject(activeCtx, litToMap(v), removeIndex, index)

	case LangString:
		langMatches := (!hasLanguage && v.Language == nil) || (hasLanguage && v.Language != nil && *v.Language == language)
		dirMatches := (!hasDirection && v.Direction == nil) || (hasDirection && v.Direction != nil && *v.Direction == direction)
		if removeIndex && langMatches && dirMatches {
			return v.Text, nil
		}
		m := map[string]interface{}{"@value": v.Text}
		if v.Language != nil {
			m["@language"] = *v.Language
		}
		if v.Direction != nil {
			m["@direction"] = string(*v.Direction)
		}
		return compactValueObject(activeCtx, m, removeIndex, index)

	case JSONValue:
		if typeMapping != nil && *typeMapping == TypeJSON && removeIndex {
			return v.Raw, nil
		}
		m := map[string]interface{}{"@value": v.Raw, "@type": "@json"}
		return compactValueObject(activeCtx, m, removeIndex, index)
	}

	return nil, NewJsonLdError(UnexpectedObjectShape, value)
}

func litToMap(lit Literal) map[string]interface{} {
	m := map[string]interface{}{"@value": literalToRawJSON(lit)}
	if lit.Type != nil {
		m["@type"] = *lit.Type
	}
	return m
}

func literalToRawJSON(lit Literal) interface{} {
	switch lit.Kind {
	case LiteralBoolean:
		return lit.Bool
	case LiteralNumber:
		return lit.Num
	case LiteralNull:
		return nil
	default:
		return lit.Str
	}
}

// compactValueObject renders a full {@value, @type?, @language?, @direction?}
// object (with keyword aliasing applied) and attaches @index when required.
func compactValueObject(activeCtx *Context, m map[string]interface{}, removeIndex bool, index *string) (interface{}, error) {
	out := make(map[string]interface{}, len(m)+1)
	for _, k := range []string{"@value", "@type", "@language", "@direction"} {
		v, ok := m[k]
		if !ok {
			continue
		}
		alias, err := activeCtx.CompactIRI(k, nil, true, false)
		if err != nil {
			return nil, err
		}
		out[alias] = v
	}
	if !removeIndex && index != nil {
		alias, err := activeCtx.CompactIRI("@index", nil, true, false)
		if err != nil {
			return nil, err
		}
		out[alias] = *index
	}
	return out, nil
}
