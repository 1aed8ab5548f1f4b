// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package lex

import (
	"github.com/logicquiz/go-logicquiz/pkg/util/source"
)

// Token associates a piece of information with a given range of characters in
// the string being scanned.
type Token struct {
	Kind uint
	Span source.Span
}

// LexRule associates groups of matching items with a given tag or, for a skip
// rule, consumes them without producing a token.
type LexRule[T any] struct {
	scanner Scanner[T]
	tag     uint
	skip    bool
}

// Rule constructs a new lexing rule which maps matching characters to a given
// tag.
func Rule[T any](scanner Scanner[T], tag uint) LexRule[T] {
	return LexRule[T]{scanner, tag, false}
}

// Skip constructs a lexing rule whose matches (e.g. whitespace) separate
// tokens, but are not tokens themselves.
func Skip[T any](scanner Scanner[T]) LexRule[T] {
	return LexRule[T]{scanner, 0, true}
}

// Lexer tokenises a sequence of items against a table of rules.  Rules are
// tried in the order given, and the first matching rule wins.  Hence, longer
// operators (e.g. "<->") must be listed before their prefixes (e.g. "<").
type Lexer[T any] struct {
	items []T
	rules []LexRule[T]
	// Position of the next unmatched item.  This moves one beyond the end
	// once the end itself has been matched.
	index int
}

// NewLexer constructs a new lexer with a given set of lexing rules.
func NewLexer[T any](input []T, rules ...LexRule[T]) *Lexer[T] {
	return &Lexer[T]{input, rules, 0}
}

// Index returns the position of the first item not yet matched.
func (p *Lexer[T]) Index() uint {
	return uint(p.index)
}

// Remaining determines how many items were left unmatched.
func (p *Lexer[T]) Remaining() uint {
	return uint(max(0, len(p.items)-p.index))
}

// Collect tokenises as much of the input as possible.  This stops either at
// the first item which no rule matches, or after the end of the input has
// been matched.  Whatever skip rules match is dropped.
func (p *Lexer[T]) Collect() []Token {
	var tokens []Token
	//
	for p.index <= len(p.items) {
		rule, n := p.match()
		if n == 0 {
			break
		}
		//
		start := p.index
		end := min(len(p.items), start+int(n))
		// An empty match can only be the end of input.
		p.index = max(end, start+1)
		//
		if !rule.skip {
			tokens = append(tokens, Token{rule.tag, source.NewSpan(start, end)})
		}
	}
	//
	return tokens
}

// Find the first rule matching at the current position, along with how many
// items it matched (where zero means none did).
func (p *Lexer[T]) match() (LexRule[T], uint) {
	for _, r := range p.rules {
		if n := r.scanner(p.items[p.index:]); n > 0 {
			return r, n
		}
	}
	//
	return LexRule[T]{}, 0
}
