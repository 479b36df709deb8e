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
	"fmt"
	"regexp"
	"strings"
)

// This file is the external collaborator spec.md §4.1 calls "context processing":
// it turns an unprocessed local context (plain JSON: map[string]interface{},
// []interface{}, string, or nil) into a typed active Context. The compaction
// core never inspects raw JSON context syntax itself -- it only ever calls
// Context.Parse, which delegates here.

var (
	ignoredKeywordPattern = regexp.MustCompile(`^@[a-zA-Z]+$`)
	invalidPrefixPattern  = regexp.MustCompile(`[:/]`)
	iriLikeTermPattern    = regexp.MustCompile(`(?::[^:])|/`)

	nonTermDefKeys = map[string]bool{
		"@base":      true,
		"@direction": true,
		"@import":    true,
		"@language":  true,
		"@propagate": true,
		"@protected": true,
		"@version":   true,
		"@vocab":     true,
	}

	validContainers10 = map[string]bool{"@list": true, "@set": true, "@index": true, "@language": true}
	validContainers11 = map[string]bool{
		"@list": true, "@set": true, "@index": true, "@language": true,
		"@graph": true, "@id": true, "@type": true,
	}
)

func arrayifyContext(localContext interface{}) []interface{} {
	if localContext == nil {
		return nil
	}
	if arr, ok := localContext.([]interface{}); ok {
		return arr
	}
	return []interface{}{localContext}
}

// processLocalContext implements the JSON-LD context-processing algorithm
// (https://www.w3.org/TR/json-ld-api/#context-processing-algorithms) over the
// typed Context model.
func processLocalContext(active *Context, localContext interface{}, remoteContexts []string, propagate, protected, overrideProtected bool) (*Context, error) {
	contexts := arrayifyContext(localContext)
	if len(contexts) == 0 {
		return active, nil
	}

	if first, ok := contexts[0].(map[string]interface{}); ok {
		if p, ok := first["@propagate"].(bool); ok {
			propagate = p
		}
	}

	result := CopyContext(active)
	if !propagate && result.previousContext == nil {
		result.previousContext = active
	}

	for _, context := range contexts {
		if context == nil {
			if !overrideProtected && len(result.protected) != 0 {
				return nil, NewJsonLdError(InvalidContextNullification,
					"tried to nullify a context with protected terms outside of a term definition")
			}
			nullCtx := NewContext(active.options)
			if !propagate {
				nullCtx.previousContext = result
			}
			result = nullCtx
			continue
		}

		var contextMap map[string]interface{}
		switch ctx := context.(type) {
		case string:
			base := result.BaseIRI()
			uri := resolveIRI(base, ctx)
			for _, seen := range remoteContexts {
				if seen == uri {
					return nil, NewJsonLdError(RecursiveContextInclusion, uri)
				}
			}
			remoteContexts = append(remoteContexts, uri)

			rd, err := active.options.DocumentLoader.LoadDocument(uri)
			if err != nil {
				return nil, NewJsonLdError(LoadingRemoteContextFailed,
					fmt.Errorf("dereferencing %s did not produce a valid JSON-LD context: %w", uri, err))
			}
			remoteDoc, isMap := rd.Document.(map[string]interface{})
			nested, hasContext := remoteDoc["@context"]
			if !isMap || !hasContext {
				return nil, NewJsonLdError(InvalidRemoteContext, uri)
			}
			nextResult, err := processLocalContext(result, nested, remoteContexts, true, protected, overrideProtected)
			if err != nil {
				return nil, err
			}
			result = nextResult
			continue
		case map[string]interface{}:
			contextMap = ctx
		default:
			return nil, NewJsonLdError(InvalidLocalContext, context)
		}

		if nested, ok := contextMap["@context"]; ok {
			nestedMap, isMap := nested.(map[string]interface{})
			if !isMap {
				return nil, NewJsonLdError(InvalidLocalContext, nested)
			}
			contextMap = nestedMap
		}

		if versionVal, ok := contextMap["@version"]; ok {
			if versionVal != 1.1 {
				return nil, NewJsonLdError(InvalidVersionValue, versionVal)
			}
			if result.processingMode == JsonLd_1_0 {
				return nil, NewJsonLdError(ProcessingModeConflict, versionVal)
			}
			result.processingMode = JsonLd_1_1
		}

		if baseVal, present := contextMap["@base"]; present && len(remoteContexts) == 0 {
			switch b := baseVal.(type) {
			case nil:
				result.base = nil
			case string:
				if IsAbsoluteIRI(b) {
					result.base = &b
				} else {
					baseURI := result.BaseIRI()
					if !IsAbsoluteIRI(baseURI) {
						return nil, NewJsonLdError(InvalidBaseIRI, baseURI)
					}
					resolved := resolveIRI(baseURI, b)
					result.base = &resolved
				}
			default:
				return nil, NewJsonLdError(InvalidBaseIRI, baseVal)
			}
		}

		if langVal, present := contextMap["@language"]; present {
			switch l := langVal.(type) {
			case nil:
				result.language = UnsetLanguage()
			case string:
				result.language = SomeLanguage(strings.ToLower(l))
			default:
				return nil, NewJsonLdError(InvalidDefaultLanguage, langVal)
			}
		}

		if dirVal, present := contextMap["@direction"]; present {
			switch d := dirVal.(type) {
			case nil:
				result.direction = UnsetDirection()
			case string:
				if d != "ltr" && d != "rtl" {
					return nil, NewJsonLdError(InvalidBaseDirection, dirVal)
				}
				result.direction = SomeDirection(Direction(d))
			default:
				return nil, NewJsonLdError(InvalidBaseDirection, dirVal)
			}
		}

		defined := make(map[string]bool)

		if propagateVal, present := contextMap["@propagate"]; present {
			if active.processingMode == JsonLd_1_0 {
				return nil, NewJsonLdError(InvalidLocalContext, "@propagate not compatible with json-ld-1.0")
			}
			if _, isBool := propagateVal.(bool); !isBool {
				return nil, NewJsonLdError(InvalidLocalContext, "@propagate value must be a boolean")
			}
		}

		if vocabVal, present := contextMap["@vocab"]; present {
			switch v := vocabVal.(type) {
			case nil:
				result.vocab = nil
			case string:
				if !IsAbsoluteIRI(v) && active.processingMode == JsonLd_1_0 {
					return nil, NewJsonLdError(InvalidVocabMapping, "@vocab must be an absolute IRI in 1.0 mode")
				}
				expanded, err := result.expandIRI(v, true, true, contextMap, defined)
				if err != nil {
					return nil, err
				}
				result.vocab = &expanded
			default:
				return nil, NewJsonLdError(InvalidVocabMapping, vocabVal)
			}
		}

		termsProtected := protected
		if p, present := contextMap["@protected"]; present {
			if pb, ok := p.(bool); ok {
				termsProtected = pb
			}
		}

		keys := make([]string, 0, len(contextMap))
		for k := range contextMap {
			if !nonTermDefKeys[k] {
				keys = append(keys, k)
			}
		}
		for _, key := range keys {
			if err := defineTerm(result, contextMap, key, defined, termsProtected, overrideProtected); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// defineTerm implements the Create Term Definition algorithm for one term,
// mutating result.termDefinitions[term] in place.
func defineTerm(result *Context, contextMap map[string]interface{}, term string, defined map[string]bool, termsProtected, overrideProtected bool) error {
	if v, ok := defined[term]; ok {
		if v {
			return nil
		}
		return NewJsonLdError(CyclicIRIMapping, term)
	}
	defined[term] = false

	value, present := contextMap[term]
	var valueMap map[string]interface{}
	simpleTerm := false

	if s, isString := value.(string); isString {
		valueMap = map[string]interface{}{"@id": s}
		simpleTerm = true
	} else if m, isMap := value.(map[string]interface{}); isMap {
		valueMap = m
	}

	if !present || value == nil || (valueMap != nil && valueMap["@id"] == nil && hasKey(valueMap, "@id")) {
		result.termDefinitions[term] = nil
		defined[term] = true
		return nil
	}

	if valueMap == nil {
		return NewJsonLdError(InvalidTermDefinition, value)
	}

	if IsKeyword(term) {
		allowedKeysOnly := true
		for k := range valueMap {
			if k != "@container" && k != "@protected" {
				allowedKeysOnly = false
				break
			}
		}
		containerVal := valueMap["@container"]
		isSet := containerVal == nil || containerVal == "@set"
		if !(result.processingMode == JsonLd_1_1 && term == "@type" && allowedKeysOnly && isSet) {
			return NewJsonLdError(KeywordRedefinition, term)
		}
	} else if ignoredKeywordPattern.MatchString(term) {
		return nil
	}

	prevDefinition := result.termDefinitions[term]
	delete(result.termDefinitions, term)

	validKeys := map[string]bool{"@container": true, "@id": true, "@language": true, "@reverse": true, "@type": true}
	if result.processingMode == JsonLd_1_1 {
		for _, k := range []string{"@context", "@direction", "@index", "@nest", "@prefix", "@protected"} {
			validKeys[k] = true
		}
	}
	for k := range valueMap {
		if !validKeys[k] {
			return NewJsonLdError(InvalidTermDefinition, fmt.Sprintf("a term definition must not contain %s", k))
		}
	}

	colIndex := strings.Index(term, ":")
	termHasColon := colIndex > 0

	def := &TermDefinition{}

	if reverseVal, present := valueMap["@reverse"]; present {
		if _, has := valueMap["@id"]; has {
			return NewJsonLdError(InvalidReverseProperty, "an @reverse term definition must not contain @id")
		}
		if _, has := valueMap["@nest"]; has {
			return NewJsonLdError(InvalidReverseProperty, "an @reverse term definition must not contain @nest")
		}
		reverseStr, isString := reverseVal.(string)
		if !isString {
			return NewJsonLdError(InvalidIRIMapping, "expected string for @reverse value")
		}
		id, err := result.expandIRI(reverseStr, false, true, contextMap, defined)
		if err != nil {
			return err
		}
		if !IsAbsoluteIRI(id) {
			return NewJsonLdError(InvalidIRIMapping, "@reverse value must be an absolute IRI or blank node identifier")
		}
		if ignoredKeywordPattern.MatchString(reverseStr) {
			return nil
		}
		def.IRI = &id
		def.Reverse = true
	} else if idVal, has := valueMap["@id"]; has {
		idStr, isString := idVal.(string)
		if !isString {
			return NewJsonLdError(InvalidIRIMapping, "expected value of @id to be a string")
		}
		if term != idStr {
			if !IsKeyword(idStr) && ignoredKeywordPattern.MatchString(idStr) {
				return nil
			}
			res, err := result.expandIRI(idStr, false, true, contextMap, defined)
			if err != nil {
				return err
			}
			if IsKeyword(res) || IsAbsoluteIRI(res) {
				if res == "@context" {
					return NewJsonLdError(InvalidKeywordAlias, "cannot alias @context")
				}
				def.IRI = &res
				if iriLikeTermPattern.MatchString(term) {
					defined[term] = true
					termIRI, err := result.expandIRI(term, false, true, contextMap, defined)
					if err != nil {
						return err
					}
					if termIRI != res {
						return NewJsonLdError(InvalidIRIMapping, fmt.Sprintf("term %s expands to %s, not %s", term, res, termIRI))
					}
					delete(defined, term)
				}
				termHasSuffix := len(res) > 0 && strings.ContainsRune(":/?#[]@", rune(res[len(res)-1]))
				def.Prefix = !termHasColon && termHasSuffix && (simpleTerm || result.processingMode == JsonLd_1_0)
			} else {
				return NewJsonLdError(InvalidIRIMapping, "resulting IRI mapping should be a keyword, absolute IRI or blank node")
			}
		}
	}

	if def.IRI == nil {
		if termHasColon {
			prefix := term[:colIndex]
			if _, ok := contextMap[prefix]; ok {
				if err := defineTerm(result, contextMap, prefix, defined, termsProtected, overrideProtected); err != nil {
					return err
				}
			}
			if prefixDef := result.termDefinitions[prefix]; prefixDef != nil && prefixDef.IRI != nil {
				iri := *prefixDef.IRI + term[colIndex+1:]
				def.IRI = &iri
			} else {
				iri := term
				def.IRI = &iri
			}
		} else if result.vocab != nil {
			iri := *result.vocab + term
			def.IRI = &iri
		} else if term != "@type" {
			return NewJsonLdError(InvalidIRIMapping, "relative term definition without vocab mapping")
		}
	}

	if protectedVal, present := valueMap["@protected"]; (present && protectedVal.(bool)) || (termsProtected && !(present && !protectedVal.(bool))) {
		result.protected[term] = true
		def.Protected = true
	}

	defined[term] = true

	if typeVal, present := valueMap["@type"]; present {
		typeStr, isString := typeVal.(string)
		if !isString {
			return NewJsonLdError(InvalidTypeMapping, typeVal)
		}
		if (typeStr == "@json" || typeStr == "@none") && result.processingMode == JsonLd_1_0 {
			return NewJsonLdError(InvalidTypeMapping, fmt.Sprintf("unknown mapping for @type: %s on term %s", typeStr, term))
		}
		if typeStr != "@id" && typeStr != "@vocab" && typeStr != "@json" && typeStr != "@none" {
			expanded, err := result.expandIRI(typeStr, false, true, contextMap, defined)
			if err != nil {
				return NewJsonLdError(InvalidTypeMapping, typeStr)
			}
			if !IsAbsoluteIRI(expanded) || strings.HasPrefix(expanded, "_:") {
				return NewJsonLdError(InvalidTypeMapping, "an @context @type value must be an absolute IRI")
			}
			typeStr = expanded
		}
		tm := TypeMapping(typeStr)
		def.Type = &tm
	}

	if containerVal, present := valueMap["@container"]; present {
		var names []string
		if arr, isArr := containerVal.([]interface{}); isArr {
			for _, v := range arr {
				names = append(names, v.(string))
			}
		} else {
			names = append(names, containerVal.(string))
		}

		valid := validContainers10
		if result.processingMode == JsonLd_1_1 {
			valid = validContainers11
		}
		seen := make(map[string]bool, len(names))
		for _, n := range names {
			seen[n] = true
			if !valid[n] {
				return NewJsonLdError(InvalidContainerMapping, fmt.Sprintf("@container value must be one of %v", valid))
			}
		}
		if seen["@set"] && seen["@list"] {
			return NewJsonLdError(InvalidContainerMapping, "@set not allowed with @list")
		}
		if def.Reverse {
			for n := range seen {
				if n != "@index" && n != "@set" {
					return NewJsonLdError(InvalidReverseProperty, "@container for a reverse term must be @index or @set")
				}
			}
		}
		if seen["@type"] {
			if def.Type == nil {
				tm := TypeID
				def.Type = &tm
			} else if *def.Type != TypeID && *def.Type != TypeVocab {
				return NewJsonLdError(InvalidTypeMapping, "container: @type requires @type to be @id or @vocab")
			}
		}

		def.Container = ParseContainer(names...)
		if term == "@type" {
			iri := string(TypeID)
			def.IRI = &iri
		}
	}

	if indexVal, present := valueMap["@index"]; present {
		if def.Container.Empty() {
			return NewJsonLdError(InvalidTermDefinition, fmt.Sprintf("@index without @index in @container on term %s", term))
		}
		indexStr, isString := indexVal.(string)
		if !isString || strings.HasPrefix(indexStr, "@") {
			return NewJsonLdError(InvalidTermDefinition, fmt.Sprintf("@index must expand to an IRI on term %s", term))
		}
		def.IndexKey = &indexStr
	}

	if ctxVal, present := valueMap["@context"]; present {
		def.LocalContext = ctxVal
		def.LocalContextBase = result.BaseIRI()
	}

	_, hasType := valueMap["@type"]
	if langVal, present := valueMap["@language"]; present && !hasType {
		switch l := langVal.(type) {
		case nil:
			def.Language = NullLanguage()
		case string:
			def.Language = SomeLanguage(strings.ToLower(l))
		default:
			return NewJsonLdError(InvalidLanguageMapping, "@language must be a string or null")
		}
	}

	if prefixVal, present := valueMap["@prefix"]; present {
		if invalidPrefixPattern.MatchString(term) {
			return NewJsonLdError(InvalidTermDefinition, "@prefix used on compact or relative IRI term")
		}
		prefix, isBool := prefixVal.(bool)
		if !isBool {
			return NewJsonLdError(InvalidPrefixValue, "@context value for @prefix must be boolean")
		}
		if def.IRI != nil && IsKeyword(*def.IRI) {
			return NewJsonLdError(InvalidTermDefinition, "keywords may not be used as prefixes")
		}
		def.Prefix = prefix
	}

	if dirVal, present := valueMap["@direction"]; present {
		switch d := dirVal.(type) {
		case nil:
			def.Direction = NullDirection()
		case string:
			dl := strings.ToLower(d)
			if dl != "ltr" && dl != "rtl" {
				return NewJsonLdError(InvalidBaseDirection, fmt.Sprintf("direction must be null, 'ltr', or 'rtl', was %s on term %s", dirVal, term))
			}
			def.Direction = SomeDirection(Direction(dl))
		default:
			return NewJsonLdError(InvalidBaseDirection, dirVal)
		}
	}

	if nestVal, present := valueMap["@nest"]; present {
		nest, isString := nestVal.(string)
		if !isString || (nest != "@nest" && strings.HasPrefix(nest, "@")) {
			return NewJsonLdError(InvalidNestValue, "@nest value must be a string which is not a keyword other than @nest")
		}
		def.Nest = &nest
	}

	if def.IRI != nil && (*def.IRI == "@context" || *def.IRI == "@preserve") {
		return NewJsonLdError(InvalidKeywordAlias, "@context and @preserve cannot be aliased")
	}

	if prevDefinition != nil && prevDefinition.Protected && !overrideProtected {
		result.protected[term] = true
		def.Protected = true
		if !prevDefinition.EqualIgnoringProtected(def) {
			return NewJsonLdError(ProtectedTermRedefinition, term)
		}
	}

	result.termDefinitions[term] = def
	return nil
}

func hasKey(m map[string]interface{}, key string) bool {
	if m == nil {
		return false
	}
	_, ok := m[key]
	return ok
}

// expandIRI implements the IRI Expansion algorithm.
func (c *Context) expandIRI(value string, relative, vocab bool, localContext map[string]interface{}, defined map[string]bool) (string, error) {
	if IsKeyword(value) {
		return value, nil
	}
	if ignoredKeywordPattern.MatchString(value) {
		return "", nil
	}

	if localContext != nil {
		if _, has := localContext[value]; has && !defined[value] {
			if err := defineTerm(c, localContext, value, defined, false, false); err != nil {
				return "", err
			}
		}
	}

	if def := c.termDefinitions[value]; vocab && def != nil {
		if def.IRI != nil {
			return *def.IRI, nil
		}
		return "", nil
	}

	if colIndex := strings.Index(value, ":"); colIndex > 0 {
		prefix := value[:colIndex]
		suffix := value[colIndex+1:]
		if prefix == "_" || strings.HasPrefix(suffix, "//") {
			return value, nil
		}
		if localContext != nil {
			if _, has := localContext[prefix]; has && !defined[prefix] {
				if err := defineTerm(c, localContext, prefix, defined, false, false); err != nil {
					return "", err
				}
			}
		}
		if def := c.termDefinitions[prefix]; def != nil && def.IRI != nil && def.Prefix {
			return *def.IRI + suffix, nil
		}
		if IsAbsoluteIRI(value) {
			return value, nil
		}
	}

	if vocab && c.vocab != nil {
		return *c.vocab + value, nil
	}
	if relative {
		return resolveIRI(c.BaseIRI(), value), nil
	}
	if localContext != nil && IsRelativeIRI(value) {
		return "", NewJsonLdError(InvalidIRIMapping, "not an absolute IRI: "+value)
	}
	return value, nil
}

// ExpandIRI is the public entry point for resolving a term, compact IRI, or
// relative IRI against the active context.
func (c *Context) ExpandIRI(value string, relative, vocab bool) (string, error) {
	return c.expandIRI(value, relative, vocab, nil, nil)
}
