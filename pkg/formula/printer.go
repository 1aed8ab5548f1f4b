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
	"strings"
)

// Binding strength of negation and letters, which is tighter than any binary
// connective.
const atomic = 5

// Format renders a formula in the concrete syntax of a given dialect, using
// only those brackets which are necessary for the formula to parse back into
// the same tree.  This fails if the dialect cannot express the formula (e.g. an
// implication in boolean algebra, or anything not in disjunctive normal form
// for DNF).
func Format(f Formula, dialect Dialect) (string, error) {
	var builder strings.Builder
	//
	if dialect == DNF {
		if !IsDNF(f) {
			return "", errors.New("formula not in disjunctive normal form")
		}
		//
		formatDisjunction(f, &builder)
	} else if err := format(f, dialect, &builder); err != nil {
		return "", err
	}
	//
	return builder.String(), nil
}

// IsDNF determines whether a formula has the shape accepted by the DNF
// dialect, namely a left-nested disjunction of right-nested conjunctions of
// literals.
func IsDNF(f Formula) bool {
	if f, ok := f.(Or); ok {
		return IsDNF(f.Left) && isConjunction(f.Right)
	}
	//
	return isConjunction(f)
}

func isConjunction(f Formula) bool {
	if f, ok := f.(And); ok {
		return isLiteral(f.Left) && isConjunction(f.Right)
	}
	//
	return isLiteral(f)
}

func isLiteral(f Formula) bool {
	switch f := f.(type) {
	case Letter:
		return true
	case Not:
		_, ok := f.Arg.(Letter)
		return ok
	}
	//
	return false
}

func format(f Formula, dialect Dialect, builder *strings.Builder) error {
	switch f := f.(type) {
	case Letter:
		builder.WriteString(f.Name)
		return nil
	case Not:
		builder.WriteString("-")
		//
		if _, ok := f.Arg.(Letter); ok {
			return format(f.Arg, dialect, builder)
		}
		//
		return formatBracketed(f.Arg, dialect, builder)
	case And:
		return formatBinary(AND, f.Left, f.Right, dialect, builder)
	case Or:
		return formatBinary(OR, f.Left, f.Right, dialect, builder)
	case Implies:
		return formatBinary(IMPLIES, f.Left, f.Right, dialect, builder)
	case Equivalent:
		return formatBinary(EQUIV, f.Left, f.Right, dialect, builder)
	}
	//
	panic(fmt.Sprintf("unknown formula %T", f))
}

func formatBinary(kind uint, lhs Formula, rhs Formula, dialect Dialect, builder *strings.Builder) error {
	var (
		prec       = precedence[kind]
		symbol, ok = dialect.Symbol(kind)
		err1, err2 error
	)
	//
	if !ok {
		return fmt.Errorf("%s formulae cannot express %q", dialect, binding(kind))
	}
	if bindingOf(lhs) < prec {
		err1 = formatBracketed(lhs, dialect, builder)
	} else {
		err1 = format(lhs, dialect, builder)
	}
	//
	builder.WriteString(" " + symbol + " ")
	// Since connectives associate to the left, a right operand of equal
	// precedence must be bracketed.
	if bindingOf(rhs) <= prec {
		err2 = formatBracketed(rhs, dialect, builder)
	} else {
		err2 = format(rhs, dialect, builder)
	}
	//
	return errors.Join(err1, err2)
}

func formatBracketed(f Formula, dialect Dialect, builder *strings.Builder) error {
	builder.WriteString("(")
	err := format(f, dialect, builder)
	builder.WriteString(")")
	//
	return err
}

func formatDisjunction(f Formula, builder *strings.Builder) {
	if or, ok := f.(Or); ok {
		formatDisjunction(or.Left, builder)
		builder.WriteString(" < ")
		formatConjunction(or.Right, builder)
		//
		return
	}
	//
	formatConjunction(f, builder)
}

func formatConjunction(f Formula, builder *strings.Builder) {
	if and, ok := f.(And); ok {
		builder.WriteString("(")
		// Literals cannot fail to format
		_ = format(and.Left, DNF, builder)
		builder.WriteString(" ^ ")
		formatConjunction(and.Right, builder)
		builder.WriteString(")")
		//
		return
	}
	//
	_ = format(f, DNF, builder)
}

// Determine how tightly the outermost connective of a formula binds.
func bindingOf(f Formula) int {
	switch f.(type) {
	case And:
		return precedence[AND]
	case Or:
		return precedence[OR]
	case Implies:
		return precedence[IMPLIES]
	case Equivalent:
		return precedence[EQUIV]
	}
	//
	return atomic
}

// Name of a connective, for error reporting.
func binding(kind uint) string {
	switch kind {
	case AND:
		return "conjunction"
	case OR:
		return "disjunction"
	case IMPLIES:
		return "implication"
	default:
		return "equivalence"
	}
}
