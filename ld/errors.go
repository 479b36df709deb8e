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

import "fmt"

// ErrorCode is a closed enumeration of the error kinds the core may surface.
type ErrorCode string

const (
	InvalidIriRef               ErrorCode = "invalid IRI ref"
	InvalidLocalContext         ErrorCode = "invalid local context"
	LoadingFailed                ErrorCode = "loading failed"
	ProtectedTermRedefinition    ErrorCode = "protected term redefinition"
	CompactionToListOfLists      ErrorCode = "compaction to list of lists"
	InvalidReversePropertyMap    ErrorCode = "invalid reverse property map"
	UnexpectedObjectShape        ErrorCode = "unexpected object shape"

	// non-spec, raised by context processing (external collaborator contract)
	InvalidTermDefinition     ErrorCode = "invalid term definition"
	CyclicIRIMapping          ErrorCode = "cyclic IRI mapping"
	KeywordRedefinition       ErrorCode = "keyword redefinition"
	InvalidVersionValue       ErrorCode = "invalid @version value"
	ProcessingModeConflict    ErrorCode = "processing mode conflict"
	InvalidVocabMapping       ErrorCode = "invalid vocab mapping"
	InvalidBaseIRI            ErrorCode = "invalid base IRI"
	InvalidDefaultLanguage    ErrorCode = "invalid default language"
	InvalidBaseDirection      ErrorCode = "invalid base direction"
	InvalidContainerMapping   ErrorCode = "invalid container mapping"
	InvalidTypeMapping        ErrorCode = "invalid type mapping"
	InvalidLanguageMapping    ErrorCode = "invalid language mapping"
	InvalidIRIMapping         ErrorCode = "invalid IRI mapping"
	InvalidKeywordAlias       ErrorCode = "invalid keyword alias"
	InvalidNestValue          ErrorCode = "invalid @nest value"
	InvalidPrefixValue        ErrorCode = "invalid @prefix value"
	InvalidReverseProperty    ErrorCode = "invalid reverse property"
	InvalidContextNullification ErrorCode = "invalid context nullification"
	LoadingRemoteContextFailed  ErrorCode = "loading remote context failed"
	InvalidRemoteContext        ErrorCode = "invalid remote context"
	RecursiveContextInclusion   ErrorCode = "recursive context inclusion"
	MultipleContextLinkHeaders  ErrorCode = "multiple context link headers"
)

// JsonLdError is the single error type the core returns; Details carries the
// offending value or a wrapped underlying error.
type JsonLdError struct {
	Code    ErrorCode
	Details interface{}
}

func (e *JsonLdError) Error() string {
	if e.Details != nil {
		return fmt.Sprintf("%v: %v", e.Code, e.Details)
	}
	return string(e.Code)
}

// Unwrap allows errors.Is/errors.As to see through to a wrapped underlying error.
func (e *JsonLdError) Unwrap() error {
	if err, ok := e.Details.(error); ok {
		return err
	}
	return nil
}

// NewJsonLdError creates a new JsonLdError.
func NewJsonLdError(code ErrorCode, details interface{}) *JsonLdError {
	return &JsonLdError{Code: code, Details: details}
}
