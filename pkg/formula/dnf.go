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
)

// ErrUnsatisfiable signals that a formula has no satisfying valuation, and
// therefore has no representation in disjunctive normal form (which lacks a
// constant for falsehood).
var ErrUnsatisfiable = errors.New("formula is unsatisfiable")

// ToDNF constructs an equivalent formula in disjunctive normal form, over the
// same letters.  There is one conjunction (minterm) for each satisfying row of
// the truth table, listed in truth table order.
func ToDNF(f Formula) (Formula, error) {
	var (
		letters = Letters(f)
		dnf     Formula
	)
	//
	for bits, n := uint64(0), NumValuations(len(letters)); bits < n; bits++ {
		valuation := ValuationOf(letters, bits)
		//
		if !Evaluate(f, valuation) {
			continue
		} else if minterm := mintermOf(letters, valuation); dnf == nil {
			dnf = minterm
		} else {
			dnf = Or{dnf, minterm}
		}
	}
	//
	if dnf == nil {
		return nil, ErrUnsatisfiable
	}
	//
	return dnf, nil
}

// Construct the right-nested conjunction of literals which holds exactly under
// the given valuation.
func mintermOf(letters []string, valuation Valuation) Formula {
	var minterm Formula
	//
	for i := len(letters) - 1; i >= 0; i-- {
		var literal Formula = Letter{letters[i]}
		//
		if !valuation[letters[i]] {
			literal = Not{literal}
		}
		//
		if minterm == nil {
			minterm = literal
		} else {
			minterm = And{literal, minterm}
		}
	}
	//
	return minterm
}
