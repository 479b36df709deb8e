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

import "strings"

// CompactIRI implements the IRI Compaction algorithm (spec.md §4.7): given an
// absolute IRI (or keyword) and the shape of the value it labels, pick the
// shortest/most specific term, compact IRI, or relative IRI that round-trips.
//
// value is the (already-compacted-irrelevant) object the IRI labels, or nil
// when compacting a bare IRI with no associated value hint. vocab is true
// when iri names a vocabulary term (a property key, a @type value, a keyword
// alias); it is false when iri is itself a data value, such as a node's own
// @id -- those must never be shortened against @vocab.
func (c *Context) CompactIRI(iri string, value Object, vocab bool, reverse bool) (string, error) {
	if iri == "" {
		return "", nil
	}

	inv := c.inverseIndex()

	relativeToVocab := vocab
	if IsKeyword(iri) {
		if containerMap, ok := inv.entries[iri]; ok {
			if tlm, ok := containerMap["@none"]; ok {
				if term, ok := tlm.typ["@none"]; ok {
					return term, nil
				}
			}
		}
		relativeToVocab = true
	}

	if relativeToVocab {
		if _, containsIRI := inv.entries[iri]; containsIRI {
			if term := c.selectTermFor(iri, value, reverse); term != "" {
				return term, nil
			}
		}

		if c.vocab != nil {
			vocab := *c.vocab
			if strings.HasPrefix(iri, vocab) && iri != vocab {
				suffix := iri[len(vocab):]
				if !c.HasTerm(suffix) {
					return suffix, nil
				}
			}
		}
	}

	compactIRI := ""
	for _, term := range c.termsSorted() {
		def := c.termDefinitions[term]
		if def == nil || def.IRI == nil || strings.Contains(term, ":") {
			continue
		}
		id := *def.IRI
		if iri == id || !strings.HasPrefix(iri, id) {
			continue
		}
		candidate := term + ":" + iri[len(id):]
		candidateDef := c.termDefinitions[candidate]
		if def.Prefix && (compactIRI == "" || CompareShortestLeast(candidate, compactIRI)) &&
			(candidateDef == nil || (candidateDef.IRI != nil && *candidateDef.IRI == iri && value == nil)) {
			compactIRI = candidate
		}
	}
	if compactIRI != "" {
		return compactIRI, nil
	}

	for term, def := range c.termDefinitions {
		if def != nil && def.Prefix && strings.HasPrefix(iri, term+":") {
			return "", NewJsonLdError(InvalidIriRef, iri)
		}
	}

	if !relativeToVocab {
		base := c.BaseIRI()
		if c.options != nil && c.options.CompactToRelative {
			return relativizeIRI(base, iri), nil
		}
		return iri, nil
	}

	return iri, nil
}

// selectTermFor computes the container/type-language/preferred-value inputs to
// Term Selection for one (iri, value) pair and returns the winning term, or "".
func (c *Context) selectTermFor(iri string, value Object, reverse bool) string {
	defaultLanguage := "@none"
	if lang, ok := c.language.Value(); ok {
		if dir, ok := c.direction.Value(); ok {
			defaultLanguage = lang + "_" + string(dir)
		} else {
			defaultLanguage = lang
		}
	} else if dir, ok := c.direction.Value(); ok {
		defaultLanguage = "_" + string(dir)
	}

	var containers []string

	typeLanguage := "@language"
	typeLanguageValue := "@null"

	switch v := value.(type) {
	case nil:
		// no value: fall through to defaults below
	case List:
		containers = append(containers, "@list")
		commonLanguage, commonType := "", ""
		if len(v.Items) == 0 {
			commonLanguage, commonType = defaultLanguage, "@id"
		}
		for _, item := range v.Items {
			itemLanguage, itemType := "@none", "@none"
			if lv, ok := item.Value.(LangString); ok {
				switch {
				case lv.Direction != nil && lv.Language != nil:
					itemLanguage = *lv.Language + "_" + string(*lv.Direction)
				case lv.Direction != nil:
					itemLanguage = "_" + string(*lv.Direction)
				case lv.Language != nil:
					itemLanguage = *lv.Language
				default:
					itemLanguage = "@null"
				}
			} else if lit, ok := item.Value.(Literal); ok && lit.Type != nil {
				itemType = *lit.Type
			} else if _, ok := item.Value.(*Node); ok {
				itemType = "@id"
			}

			if commonLanguage == "" {
				commonLanguage = itemLanguage
			} else if commonLanguage != itemLanguage {
				if _, ok := item.Value.(LangString); ok {
					commonLanguage = "@none"
				} else if _, ok := item.Value.(Literal); ok {
					commonLanguage = "@none"
				}
			}
			if commonType == "" {
				commonType = itemType
			} else if commonType != itemType {
				commonType = "@none"
			}
		}
		if commonLanguage == "" {
			commonLanguage = "@none"
		}
		if commonType == "" {
			commonType = "@none"
		}
		if commonType != "@none" {
			typeLanguage, typeLanguageValue = "@type", commonType
		} else {
			typeLanguageValue = commonLanguage
		}
	case LangString:
		containers = append(containers, "@language", "@language@set")
		switch {
		case v.Direction != nil && v.Language != nil:
			typeLanguageValue = *v.Language + "_" + string(*v.Direction)
		case v.Language != nil:
			typeLanguageValue = *v.Language
		case v.Direction != nil:
			typeLanguageValue = "_" + string(*v.Direction)
		}
		containers = append(containers, "@set")
	case Literal:
		if v.Type != nil {
			typeLanguage, typeLanguageValue = "@type", *v.Type
		}
		containers = append(containers, "@set")
	case *Node:
		if v.IsGraphObject() {
			if v.ID != nil {
				containers = append(containers, "@graph@id", "@graph@id@set")
			}
			containers = append(containers, "@graph@index", "@graph@index@set", "@graph", "@graph@set")
			if v.ID == nil {
				containers = append(containers, "@graph@id", "@graph@id@set")
			}
		}
		containers = append(containers, "@id", "@id@set", "@type", "@set@type")
		typeLanguage, typeLanguageValue = "@type", "@id"
	default:
		containers = append(containers, "@set")
	}

	if reverse {
		typeLanguage, typeLanguageValue = "@type", "@reverse"
		containers = append(containers, "@set")
	}

	containers = append(containers, "@none")
	if _, ok := value.(LangString); !ok {
		if lit, ok := value.(Literal); ok && lit.Type == nil {
			containers = append(containers, "@language", "@language@set")
		}
	}

	if typeLanguageValue == "" {
		typeLanguageValue = "@null"
	}

	var preferredValues []string
	if node, ok := value.(*Node); ok && node.ID != nil && (typeLanguageValue == "@reverse" || typeLanguageValue == "@id") {
		if typeLanguageValue == "@reverse" {
			preferredValues = append(preferredValues, "@reverse")
		}
		compacted, err := c.CompactIRI(*node.ID, nil, false, false)
		if err == nil {
			if def := c.termDefinitions[compacted]; def != nil && def.IRI != nil && *def.IRI == *node.ID {
				preferredValues = append(preferredValues, "@vocab", "@id", "@none")
			} else {
				preferredValues = append(preferredValues, "@id", "@vocab", "@none")
			}
		}
	} else {
		preferredValues = append(preferredValues, typeLanguageValue, "@none")
	}
	preferredValues = append(preferredValues, "@any")

	for _, pv := range preferredValues {
		if idx := strings.LastIndex(pv, "_"); idx != -1 {
			preferredValues = append(preferredValues, pv[idx:])
		}
	}

	return c.selectTerm(iri, containers, typeLanguage, preferredValues)
}
