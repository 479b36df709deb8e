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

// Keyword is a reserved LD-JSON name. Anything that is not a Keyword is either
// a term or an absolute IRI (blank node identifiers count as IRIs, prefixed "_:").
type Keyword string

const (
	KeywordID        Keyword = "@id"
	KeywordType      Keyword = "@type"
	KeywordValue     Keyword = "@value"
	KeywordLanguage  Keyword = "@language"
	KeywordDirection Keyword = "@direction"
	KeywordIndex     Keyword = "@index"
	KeywordList      Keyword = "@list"
	KeywordSet       Keyword = "@set"
	KeywordGraph     Keyword = "@graph"
	KeywordIncluded  Keyword = "@included"
	KeywordReverse   Keyword = "@reverse"
	KeywordContext   Keyword = "@context"
	KeywordJSON      Keyword = "@json"
	KeywordNone      Keyword = "@none"
	KeywordNest      Keyword = "@nest"
	KeywordVocab     Keyword = "@vocab"
	KeywordBase      Keyword = "@base"
)

var allKeywords = map[string]bool{
	string(KeywordID): true, string(KeywordType): true, string(KeywordValue): true,
	string(KeywordLanguage): true, string(KeywordDirection): true, string(KeywordIndex): true,
	string(KeywordList): true, string(KeywordSet): true, string(KeywordGraph): true,
	string(KeywordIncluded): true, string(KeywordReverse): true, string(KeywordContext): true,
	string(KeywordJSON): true, string(KeywordNone): true, string(KeywordNest): true,
	string(KeywordVocab): true, string(KeywordBase): true,
}

// IsKeyword returns whether term names one of the reserved Keywords.
func IsKeyword(term string) bool {
	return allKeywords[term]
}
