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
	"github.com/logicquiz/go-logicquiz/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// LBRACE signals "left brace"
const LBRACE uint = 1

// RBRACE signals "right brace"
const RBRACE uint = 2

// LETTER signals a propositional variable.
const LETTER uint = 3

// NOT represents logical negation
const NOT uint = 4

// AND represents logical conjunction
const AND uint = 5

// OR represents logical disjunction
const OR uint = 6

// IMPLIES represents logical implication
const IMPLIES uint = 7

// EQUIV represents logical equivalence
const EQUIV uint = 8

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.OneOf(' ', '\t', '\n', '\r'))

// Rule for describing letters.  Only a single letter is matched, hence "pq"
// produces two tokens (and, subsequently, a parse error).
var letter lex.Scanner[rune] = lex.Or(lex.Within('a', 'z'), lex.Within('A', 'Z'))

// Rules common to all dialects.
var (
	lbrace = lex.Rule(lex.Unit('('), LBRACE)
	rbrace = lex.Rule(lex.Unit(')'), RBRACE)
	minus  = lex.Rule(lex.Unit('-'), NOT)
	spaces = lex.Skip(whitespace)
	ident  = lex.Rule(letter, LETTER)
	eof    = lex.Rule(lex.Eof[rune](), END_OF)
)

// lexing rules for propositional logic.  Observe that "<->" and "->" must be
// tried before "<" and "-".
var propRules = []lex.LexRule[rune]{
	lbrace,
	rbrace,
	lex.Rule(lex.Unit('<', '-', '>'), EQUIV),
	lex.Rule(lex.Unit('-', '>'), IMPLIES),
	lex.Rule(lex.Unit('<'), OR),
	lex.Rule(lex.Unit('^'), AND),
	minus,
	spaces,
	ident,
	eof,
}

// lexing rules for boolean algebra.
var boolRules = []lex.LexRule[rune]{
	lbrace,
	rbrace,
	lex.Rule(lex.Unit('+'), OR),
	lex.Rule(lex.Unit('.'), AND),
	minus,
	spaces,
	ident,
	eof,
}

// lexing rules for disjunctive normal form.
var dnfRules = []lex.LexRule[rune]{
	lbrace,
	rbrace,
	lex.Rule(lex.Unit('<'), OR),
	lex.Rule(lex.Unit('^'), AND),
	minus,
	spaces,
	ident,
	eof,
}

func (d Dialect) rules() []lex.LexRule[rune] {
	switch d {
	case BooleanAlgebra:
		return boolRules
	case DNF:
		return dnfRules
	default:
		return propRules
	}
}
