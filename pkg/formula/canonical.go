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

// Marker prefixed to the key of a negated formula.
const notMarker = "NOT"

// CanonicalKey computes a key for a formula which is insensitive to the order
// of operands of the commutative connectives (conjunction and disjunction).
// For example, "p ^ q" and "q ^ p" have the same key.  Operand order is
// significant for implication and equivalence.
func CanonicalKey(f Formula) string {
	c := canonicaliser{false, ""}
	return c.key(f)
}

// CandidateKey computes the key of a candidate answer, for comparison against
// the canonical key of a prohibited formula.  In addition to what CanonicalKey
// does, double negations cancel out and a conjunction (or disjunction) of the
// prohibited formula with itself collapses to the prohibited formula.  Thus,
// "-(-(q ^ p))" and "(p ^ q) ^ (q ^ p)" both produce the key of "p ^ q".
func CandidateKey(f Formula, prohibitedKey string) string {
	c := canonicaliser{true, prohibitedKey}
	return c.key(f)
}

// IsProhibited determines whether an answer is (a trivial restatement of) a
// prohibited formula.
func IsProhibited(answer Formula, prohibited Formula) bool {
	key := CanonicalKey(prohibited)
	return CandidateKey(answer, key) == key
}

type canonicaliser struct {
	// Enables cancellation of double negation and self-duplication.
	candidate bool
	// Key of the prohibited formula (only when candidate is set).
	prohibited string
}

func (c *canonicaliser) key(f Formula) string {
	switch f := f.(type) {
	case Letter:
		return f.Name
	case Not:
		arg := c.key(f.Arg)
		// Cancel out double negation
		if c.candidate && strings.HasPrefix(arg, notMarker) {
			return arg[len(notMarker):]
		}
		//
		return notMarker + arg
	case And:
		return c.commutative("AND", c.key(f.Left), c.key(f.Right))
	case Or:
		return c.commutative("OR", c.key(f.Left), c.key(f.Right))
	case Implies:
		return "IMPLIES(" + c.key(f.Left) + "," + c.key(f.Right) + ")"
	case Equivalent:
		return "EQUIVALENT(" + c.key(f.Left) + "," + c.key(f.Right) + ")"
	}
	//
	panic(fmt.Sprintf("unknown formula %T", f))
}

func (c *canonicaliser) commutative(op string, lhs string, rhs string) string {
	if c.candidate && lhs == c.prohibited && rhs == c.prohibited {
		return lhs
	} else if rhs < lhs {
		lhs, rhs = rhs, lhs
	}
	//
	return op + "(" + lhs + "," + rhs + ")"
}
