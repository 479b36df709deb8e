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

// Context is an active JSON-LD context: the term-definition table plus the
// default base/vocab/language/direction values compaction consults at every
// step (spec.md §3, §4.1).
type Context struct {
	termDefinitions map[string]*TermDefinition
	protected       map[string]bool

	base      *string
	vocab     *string
	language  NullableLanguage
	direction NullableDirection

	processingMode string
	options        *Options

	previousContext *Context

	inverse *inverseContext
}

// NewContext creates an empty active context seeded from opts.
func NewContext(opts *Options) *Context {
	if opts == nil {
		opts = NewOptions()
	}
	return &Context{
		termDefinitions: make(map[string]*TermDefinition),
		protected:       make(map[string]bool),
		processingMode:  opts.ProcessingMode,
		options:         opts,
	}
}

// CopyContext returns a deep-enough copy of ctx: term definitions and the
// protected set are copied by reference to value (TermDefinition is treated as
// immutable once built), the inverse index is dropped so it regenerates lazily.
func CopyContext(ctx *Context) *Context {
	cp := &Context{
		termDefinitions: make(map[string]*TermDefinition, len(ctx.termDefinitions)),
		protected:       make(map[string]bool, len(ctx.protected)),
		base:            ctx.base,
		vocab:           ctx.vocab,
		language:        ctx.language,
		direction:       ctx.direction,
		processingMode:  ctx.processingMode,
		options:         ctx.options,
	}
	for k, v := range ctx.termDefinitions {
		cp.termDefinitions[k] = v
	}
	for k, v := range ctx.protected {
		cp.protected[k] = v
	}
	if ctx.previousContext != nil {
		cp.previousContext = CopyContext(ctx.previousContext)
	}
	return cp
}

// Parse processes localContext against c, returning the resulting active context.
// The heavy lifting (createTermDefinition-equivalent logic) lives in
// context_processor.go; this is the entry point spec.md §4.1 names.
func (c *Context) Parse(localContext interface{}) (*Context, error) {
	return processLocalContext(c, localContext, nil, true, false, false)
}

// GetTermDefinition returns the term definition for term, or nil if term is undefined.
func (c *Context) GetTermDefinition(term string) *TermDefinition {
	return c.termDefinitions[term]
}

// HasTerm reports whether term has an entry in the active context, including
// entries explicitly mapped to null (stored as a nil definition).
func (c *Context) HasTerm(term string) bool {
	_, ok := c.termDefinitions[term]
	return ok
}

// IsProtected reports whether term was defined with @protected: true.
func (c *Context) IsProtected(term string) bool {
	return c.protected[term]
}

// BaseIRI returns the active context's @base value, or "" if unset.
func (c *Context) BaseIRI() string {
	if c.base == nil {
		return ""
	}
	return *c.base
}

// Vocabulary returns the active context's @vocab value, or "" if unset.
func (c *Context) Vocabulary() string {
	if c.vocab == nil {
		return ""
	}
	return *c.vocab
}

// DefaultLanguage returns the active context's default @language, and whether one is set.
func (c *Context) DefaultLanguage() (string, bool) {
	return c.language.Value()
}

// DefaultBaseDirection returns the active context's default @direction, and whether one is set.
func (c *Context) DefaultBaseDirection() (Direction, bool) {
	return c.direction.Value()
}

// PreviousContext returns the context this one was built from before an
// @propagate: false local context was applied, or nil.
func (c *Context) PreviousContext() *Context {
	return c.previousContext
}

// ProcessingMode returns the effective JSON-LD processing mode.
func (c *Context) ProcessingMode() string {
	return c.processingMode
}

// Prefixes returns the subset of term definitions usable as compact-IRI prefixes:
// a simple (non-keyword) IRI mapping explicitly marked Prefix: true.
func (c *Context) Prefixes() map[string]string {
	out := make(map[string]string)
	for term, def := range c.termDefinitions {
		if def == nil || def.IRI == nil || !def.Prefix {
			continue
		}
		out[term] = *def.IRI
	}
	return out
}

// inverseIndex returns the lazily-built, cached inverse context for c.
func (c *Context) inverseIndex() *inverseContext {
	if c.inverse == nil {
		c.inverse = buildInverseContext(c)
	}
	return c.inverse
}

// termsSorted returns the active context's defined term names, shortest-then-lexicographic.
func (c *Context) termsSorted() []string {
	terms := make([]string, 0, len(c.termDefinitions))
	for term := range c.termDefinitions {
		terms = append(terms, term)
	}
	return sortShortestLeast(terms)
}
