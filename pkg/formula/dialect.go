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
	"errors"
	"fmt"
)

// ErrUnknownDialect signals a dialect tag which is not recognised.
var ErrUnknownDialect = errors.New("unknown dialect")

// Dialect identifies one of the concrete syntaxes in which formulae can be
// written.  All dialects share the same abstract syntax.
type Dialect uint8

const (
	// Propositional is the syntax of propositional logic, using "<->" for
	// equivalence, "->" for implication, "<" for disjunction, "^" for
	// conjunction and "-" for negation.
	Propositional Dialect = iota
	// BooleanAlgebra is the syntax of boolean algebra, using "+" for
	// disjunction, "." for conjunction and "-" for negation.  There is no
	// implication or equivalence.
	BooleanAlgebra
	// DNF restricts propositional syntax to disjunctive normal form, i.e. a
	// disjunction of parenthesised conjunctions of literals.
	DNF
)

// Dialects lists all known dialects.
var Dialects = []Dialect{Propositional, BooleanAlgebra, DNF}

// ParseDialect maps a dialect tag (i.e. "prop", "bool" or "dnf") to the
// corresponding dialect.
func ParseDialect(tag string) (Dialect, error) {
	for _, d := range Dialects {
		if d.String() == tag {
			return d, nil
		}
	}
	//
	return 0, fmt.Errorf("%w %q", ErrUnknownDialect, tag)
}

// String returns the tag for this dialect.
func (d Dialect) String() string {
	switch d {
	case Propositional:
		return "prop"
	case BooleanAlgebra:
		return "bool"
	case DNF:
		return "dnf"
	}
	//
	return fmt.Sprintf("dialect(%d)", uint8(d))
}

// Alphabet returns the letters from which generated formulae in this dialect
// are drawn.
func (d Dialect) Alphabet() []string {
	if d == BooleanAlgebra {
		return []string{"a", "b", "c", "d", "e"}
	}
	//
	return []string{"p", "q", "r", "s", "t"}
}

// MarshalText implements encoding.TextMarshaler.
func (d Dialect) MarshalText() ([]byte, error) {
	if d > DNF {
		return nil, fmt.Errorf("%w %d", ErrUnknownDialect, uint8(d))
	}
	//
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Dialect) UnmarshalText(text []byte) error {
	dialect, err := ParseDialect(string(text))
	if err != nil {
		return err
	}
	//
	*d = dialect
	//
	return nil
}

// Symbol returns the concrete syntax of a binary connective in this dialect,
// or false if the dialect has no such connective.  The connective is
// identified by the token kind which represents it.
func (d Dialect) Symbol(kind uint) (string, bool) {
	switch {
	case kind == AND && d == BooleanAlgebra:
		return ".", true
	case kind == OR && d == BooleanAlgebra:
		return "+", true
	case kind == AND:
		return "^", true
	case kind == OR:
		return "<", true
	case kind == IMPLIES && d == Propositional:
		return "->", true
	case kind == EQUIV && d == Propositional:
		return "<->", true
	}
	//
	return "", false
}
