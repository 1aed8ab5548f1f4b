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
package formula

import (
	"slices"

	"github.com/logicquiz/go-logicquiz/pkg/util/source"
	"github.com/logicquiz/go-logicquiz/pkg/util/source/lex"
)

// Binding strength of the binary connectives, from loosest to tightest.
// Negation binds tighter than all of them.
var precedence = map[uint]int{
	EQUIV:   1,
	IMPLIES: 2,
	OR:      3,
	AND:     4,
}

// Parse a given input string into a formula in the given dialect.  Whitespace
// between tokens is ignored.  If the input is malformed, the returned error is
// a *source.SyntaxError identifying the offending part of the input.
func Parse(input string, dialect Dialect) (Formula, error) {
	return ParseText(source.NewText("formula", input), dialect)
}

// ParseText parses a given piece of source text into a formula in the given
// dialect.  This is the same as Parse, except that errors are reported
// against the given (named) text.
func ParseText(text *source.Text, dialect Dialect) (Formula, error) {
	var (
		lexer = lex.NewLexer(text.Contents(), dialect.rules()...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		return nil, text.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
	}
	//
	p := &Parser{dialect, text, tokens, 0}
	//
	f, err := p.parse()
	if err != nil {
		return nil, err
	}
	//
	return f, nil
}

// Parser is a recursive-descent parser for formulae in a given dialect.
// Binary connectives are parsed by precedence climbing.
type Parser struct {
	dialect Dialect
	text    *source.Text
	tokens  []lex.Token
	// Position within the tokens
	index int
}

func (p *Parser) parse() (Formula, *source.SyntaxError) {
	var (
		f   Formula
		err *source.SyntaxError
	)
	//
	if p.dialect == DNF {
		f, err = p.parseDisjunction()
	} else {
		f, err = p.parseBinary(1)
	}
	// Check all parsed
	if err == nil && !p.follows(END_OF) {
		return nil, p.syntaxError(p.lookahead(), "unexpected token")
	}
	//
	return f, err
}

// Parse a formula whose outermost connective binds no looser than the given
// precedence.  Since the right-hand side is parsed at one level above the
// connective itself, connectives of equal precedence associate to the left.
func (p *Parser) parseBinary(minimum int) (Formula, *source.SyntaxError) {
	lhs, err := p.parseUnary()
	//
	for err == nil {
		var (
			rhs      Formula
			token    = p.lookahead()
			prec, ok = precedence[token.Kind]
		)
		//
		if !ok || prec < minimum {
			break
		}
		// Consume connective
		p.expect(token.Kind)
		//
		if rhs, err = p.parseBinary(prec + 1); err == nil {
			lhs = connective(token.Kind, lhs, rhs)
		}
	}
	//
	return lhs, err
}

func (p *Parser) parseUnary() (Formula, *source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case NOT:
		p.expect(NOT)
		// Negation applies only to a letter or a bracketed formula.
		switch p.lookahead().Kind {
		case LETTER:
			return Not{p.parseLetter()}, nil
		case LBRACE:
			arg, err := p.parseBracketed()
			if err != nil {
				return nil, err
			}
			//
			return Not{arg}, nil
		}
		//
		return nil, p.syntaxError(p.lookahead(), "expected letter or '(' after '-'")
	case LBRACE:
		return p.parseBracketed()
	case LETTER:
		return p.parseLetter(), nil
	case END_OF:
		return nil, p.syntaxError(token, "unexpected end of formula")
	}
	//
	return nil, p.syntaxError(token, "expected formula")
}

func (p *Parser) parseBracketed() (Formula, *source.SyntaxError) {
	p.expect(LBRACE)
	//
	f, err := p.parseBinary(1)
	//
	if err == nil && !p.match(RBRACE) {
		return nil, p.syntaxError(p.lookahead(), "expected ')'")
	}
	//
	return f, err
}

// disjunction := conjunction ('<' conjunction)*
func (p *Parser) parseDisjunction() (Formula, *source.SyntaxError) {
	lhs, err := p.parseConjunction()
	//
	for err == nil && p.match(OR) {
		var rhs Formula
		//
		if rhs, err = p.parseConjunction(); err == nil {
			lhs = Or{lhs, rhs}
		}
	}
	//
	return lhs, err
}

// conjunction := literal | '(' literal '^' conjunction ')'
func (p *Parser) parseConjunction() (Formula, *source.SyntaxError) {
	if !p.match(LBRACE) {
		return p.parseLiteral()
	}
	//
	lhs, err := p.parseLiteral()
	if err != nil {
		return nil, err
	} else if !p.match(AND) {
		return nil, p.syntaxError(p.lookahead(), "expected '^'")
	}
	//
	rhs, err := p.parseConjunction()
	if err != nil {
		return nil, err
	} else if !p.match(RBRACE) {
		return nil, p.syntaxError(p.lookahead(), "expected ')'")
	}
	//
	return And{lhs, rhs}, nil
}

// literal := letter | '-' letter
func (p *Parser) parseLiteral() (Formula, *source.SyntaxError) {
	negated := p.match(NOT)
	//
	if !p.follows(LETTER) {
		return nil, p.syntaxError(p.lookahead(), "expected literal")
	} else if negated {
		return Not{p.parseLetter()}, nil
	}
	//
	return p.parseLetter(), nil
}

func (p *Parser) parseLetter() Letter {
	token := p.expect(LETTER)
	return Letter{p.text.Slice(token.Span)}
}

// Construct the formula for a given binary connective.
func connective(kind uint, lhs Formula, rhs Formula) Formula {
	switch kind {
	case AND:
		return And{lhs, rhs}
	case OR:
		return Or{lhs, rhs}
	case IMPLIES:
		return Implies{lhs, rhs}
	case EQUIV:
		return Equivalent{lhs, rhs}
	}
	//
	panic("unreachable")
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxError(token lex.Token, msg string) *source.SyntaxError {
	return p.text.SyntaxError(token.Span, msg)
}
