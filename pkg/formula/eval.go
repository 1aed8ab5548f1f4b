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
	"fmt"
	"strings"
)

// Valuation assigns a truth value to each letter of a formula.
type Valuation map[string]bool

// Format returns a human-readable representation of this valuation, listing
// letters in the given order (e.g. "p=1 q=0").
func (v Valuation) Format(letters []string) string {
	var builder strings.Builder
	//
	for i, l := range letters {
		if i != 0 {
			builder.WriteString(" ")
		}
		//
		builder.WriteString(l)
		//
		if v[l] {
			builder.WriteString("=1")
		} else {
			builder.WriteString("=0")
		}
	}
	//
	return builder.String()
}

// LookupError signals an attempt to evaluate a formula under a valuation
// which does not assign some letter of that formula.  This indicates a
// programming error (e.g. a mismatch between the letters a formula was
// generated with and those it is evaluated over), and is therefore raised as a
// panic rather than returned.
type LookupError struct {
	Letter string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("valuation lacks binding for letter %s", e.Letter)
}

// Evaluate a formula under a given valuation, which must assign every letter
// occurring in the formula.  Evaluation has no side effects, and the same
// formula can be evaluated repeatedly under different valuations.
func Evaluate(f Formula, valuation Valuation) bool {
	switch f := f.(type) {
	case Letter:
		val, ok := valuation[f.Name]
		if !ok {
			panic(&LookupError{f.Name})
		}
		//
		return val
	case Not:
		return !Evaluate(f.Arg, valuation)
	case And:
		return Evaluate(f.Left, valuation) && Evaluate(f.Right, valuation)
	case Or:
		return Evaluate(f.Left, valuation) || Evaluate(f.Right, valuation)
	case Implies:
		return !Evaluate(f.Left, valuation) || Evaluate(f.Right, valuation)
	case Equivalent:
		lhs, rhs := Evaluate(f.Left, valuation), Evaluate(f.Right, valuation)
		return (!lhs || rhs) && (!rhs || lhs)
	}
	//
	panic(fmt.Sprintf("unknown formula %T", f))
}

// NumValuations returns the number of distinct valuations over n letters.
// Since this grows exponentially, n is limited to 63 letters.
func NumValuations(n int) uint64 {
	if n > 63 {
		panic(fmt.Sprintf("too many letters (%d)", n))
	}
	//
	return uint64(1) << n
}

// ValuationOf constructs the valuation over a given (ordered) set of letters
// which is encoded by a given bit pattern.  The first letter corresponds to the
// most significant bit, hence counting upwards from zero enumerates valuations
// in the conventional truth table order.
func ValuationOf(letters []string, bits uint64) Valuation {
	var (
		n         = len(letters)
		valuation = make(Valuation, n)
	)
	//
	for i, l := range letters {
		valuation[l] = (bits>>(n-1-i))&1 == 1
	}
	//
	return valuation
}
