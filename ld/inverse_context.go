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

// inverseContext is the index built from an active context's term definitions,
// keyed iri -> container signature -> {"@language": {...}, "@type": {...}, "@any": {...}}.
// It lets the IRI compactor (spec.md §4.7) go from an IRI plus a value's shape
// straight to the best term, instead of scanning every term definition per call.
type inverseContext struct {
	entries map[string]map[string]*typeLanguageMap
}

type typeLanguageMap struct {
	language map[string]string
	typ      map[string]string
	any      map[string]string
}

func newTypeLanguageMap(firstTerm string) *typeLanguageMap {
	return &typeLanguageMap{
		language: make(map[string]string),
		typ:      make(map[string]string),
		any:      map[string]string{"@none": firstTerm},
	}
}

// buildInverseContext constructs the inverse index for c, iterating term
// definitions shortest-then-lexicographic so earlier (preferred) terms win
// ties when multiple terms map to the same IRI and container signature.
func buildInverseContext(c *Context) *inverseContext {
	inv := &inverseContext{entries: make(map[string]map[string]*typeLanguageMap)}

	defaultLanguage := "@none"
	if lang, ok := c.language.Value(); ok {
		defaultLanguage = lang
	}
	defaultDirection, hasDefaultDirection := c.direction.Value()

	for _, term := range c.termsSorted() {
		def := c.termDefinitions[term]
		if def == nil || def.IRI == nil {
			continue
		}

		containerJoin := def.Container.signature()

		containerMap, ok := inv.entries[*def.IRI]
		if !ok {
			containerMap = make(map[string]*typeLanguageMap)
			inv.entries[*def.IRI] = containerMap
		}

		tlm, ok := containerMap[containerJoin]
		if !ok {
			tlm = newTypeLanguageMap(term)
			containerMap[containerJoin] = tlm
		}

		language, hasLanguage := def.Language.Value()
		isNullLanguage := def.Language.IsNull()
		direction, hasDirection := def.Direction.Value()
		isNullDirection := def.Direction.IsNull()

		switch {
		case def.Reverse:
			if _, has := tlm.typ["@reverse"]; !has {
				tlm.typ["@reverse"] = term
			}
		case def.Type != nil && *def.Type == TypeNone:
			setDefault(tlm.typ, "@any", term)
			setDefault(tlm.language, "@any", term)
			setDefault(tlm.any, "@any", term)
		case def.Type != nil:
			setDefault(tlm.typ, string(*def.Type), term)
		case (hasLanguage || isNullLanguage) && (hasDirection || isNullDirection):
			key := langDirKey(language, hasLanguage, isNullLanguage, direction, hasDirection, isNullDirection)
			setDefault(tlm.language, key, term)
		case hasLanguage || isNullLanguage:
			key := "@null"
			if hasLanguage {
				key = language
			}
			setDefault(tlm.language, key, term)
		case hasDirection || isNullDirection:
			key := "@none"
			if hasDirection {
				key = "_" + string(direction)
			}
			setDefault(tlm.language, key, term)
		case hasDefaultDirection:
			key := "_" + string(defaultDirection)
			if hasLanguage {
				key = language + "_" + string(defaultDirection)
			}
			setDefault(tlm.language, key, term)
			setDefault(tlm.language, "@none", term)
			setDefault(tlm.typ, "@none", term)
		default:
			setDefault(tlm.language, defaultLanguage, term)
			setDefault(tlm.language, "@none", term)
			setDefault(tlm.typ, "@none", term)
		}
	}

	return inv
}

func setDefault(m map[string]string, key, term string) {
	if _, ok := m[key]; !ok {
		m[key] = term
	}
}

func langDirKey(language string, hasLanguage, isNullLanguage bool, direction Direction, hasDirection, isNullDirection bool) string {
	switch {
	case hasLanguage && hasDirection:
		return language + "_" + string(direction)
	case hasLanguage:
		return language
	case hasDirection:
		return "_" + string(direction)
	default:
		return "@null"
	}
}

// selectTerm implements Term Selection (spec.md §4.7): pick the best term for
// iri given candidate container signatures (in preference order), a
// type-or-language bucket, and preferred bucket keys (in preference order).
func (c *Context) selectTerm(iri string, containers []string, bucket string, preferredValues []string) string {
	inv := c.inverseIndex()
	containerMap, ok := inv.entries[iri]
	if !ok {
		return ""
	}

	for _, container := range containers {
		tlm, ok := containerMap[container]
		if !ok {
			continue
		}

		var valueMap map[string]string
		switch bucket {
		case "@language":
			valueMap = tlm.language
		case "@type":
			valueMap = tlm.typ
		default:
			valueMap = tlm.any
		}

		for _, candidate := range preferredValues {
			if term, ok := valueMap[candidate]; ok {
				return term
			}
		}
	}

	return ""
}
