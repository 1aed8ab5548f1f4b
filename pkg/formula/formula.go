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

// Package formula provides the abstract syntax of propositional formulae,
// along with parsers for the supported concrete syntaxes (dialects) and the
// semantic operations over them: evaluation, equivalence checking and
// canonicalisation.
package formula

import (
	"fmt"
	"slices"
)

// Formula represents a propositional formula.  The set of formula kinds is
// closed: Letter, Not, And, Or, Implies and Equivalent.  All operations over
// formulae are implemented as functions which dispatch on the kind, rather than
// as methods.  Formulae are immutable once constructed.
type Formula interface {
	fmt.Stringer
	// Prevent other packages from extending the set of formula kinds.
	formula()
}

// Letter represents a propositional variable, identified by a single letter.
// Letters are case-sensitive.
type Letter struct {
	Name string
}

// Not represents the logical negation of a formula.
type Not struct {
	Arg Formula
}

// And represents the conjunction of two formulae.
type And struct {
	Left  Formula
	Right Formula
}

// Or represents the disjunction of two formulae.
type Or struct {
	Left  Formula
	Right Formula
}

// Implies represents the material implication "if Left then Right".
type Implies struct {
	Left  Formula
	Right Formula
}

// Equivalent represents the biconditional "Left if and only if Right".
type Equivalent struct {
	Left  Formula
	Right Formula
}

func (Letter) formula()     {}
func (Not) formula()        {}
func (And) formula()        {}
func (Or) formula()         {}
func (Implies) formula()    {}
func (Equivalent) formula() {}

func (f Letter) String() string     { return mustFormat(f) }
func (f Not) String() string        { return mustFormat(f) }
func (f And) String() string        { return mustFormat(f) }
func (f Or) String() string         { return mustFormat(f) }
func (f Implies) String() string    { return mustFormat(f) }
func (f Equivalent) String() string { return mustFormat(f) }

// Letters returns the distinct letters occurring in a formula, in sorted
// order.
func Letters(f Formula) []string {
	var letters []string
	//
	collectLetters(f, &letters)
	slices.Sort(letters)
	//
	return slices.Compact(letters)
}

func collectLetters(f Formula, letters *[]string) {
	switch f := f.(type) {
	case Letter:
		*letters = append(*letters, f.Name)
	case Not:
		collectLetters(f.Arg, letters)
	case And:
		collectLetters(f.Left, letters)
		collectLetters(f.Right, letters)
	case Or:
		collectLetters(f.Left, letters)
		collectLetters(f.Right, letters)
	case Implies:
		collectLetters(f.Left, letters)
		collectLetters(f.Right, letters)
	case Equivalent:
		collectLetters(f.Left, letters)
		collectLetters(f.Right, letters)
	default:
		panic(fmt.Sprintf("unknown formula %T", f))
	}
}

// Propositional formulae can express every kind, so formatting cannot fail.
func mustFormat(f Formula) string {
	s, err := Format(f, Propositional)
	if err != nil {
		panic(err)
	}
	//
	return s
}
