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
)

// AreEquivalent determines whether two formulae are semantically equivalent.
// Formulae over different sets of letters are never considered equivalent,
// even if one merely ignores a letter of the other (e.g. "p" and
// "p ^ (q < -q)").  Otherwise, every valuation over the shared letters is
// checked, hence the cost is exponential in the number of letters.
func AreEquivalent(f1 Formula, f2 Formula) bool {
	if !slices.Equal(Letters(f1), Letters(f2)) {
		return false
	}
	//
	_, found := Counterexample(f1, f2)
	//
	return !found
}

// Counterexample searches for a valuation, over all letters occurring in either
// formula, under which the two formulae evaluate differently.  If one exists,
// the first in truth table order is returned.
func Counterexample(f1 Formula, f2 Formula) (Valuation, bool) {
	letters := slices.Concat(Letters(f1), Letters(f2))
	slices.Sort(letters)
	letters = slices.Compact(letters)
	//
	for bits, n := uint64(0), NumValuations(len(letters)); bits < n; bits++ {
		valuation := ValuationOf(letters, bits)
		//
		if Evaluate(f1, valuation) != Evaluate(f2, valuation) {
			return valuation, true
		}
	}
	//
	return nil, false
}
