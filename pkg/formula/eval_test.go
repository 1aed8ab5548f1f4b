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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Eval_01(t *testing.T) {
	checkTruthTable(t, "-p", 1, 0)
}

func Test_Eval_02(t *testing.T) {
	checkTruthTable(t, "p ^ q", 0, 0, 0, 1)
}

func Test_Eval_03(t *testing.T) {
	checkTruthTable(t, "p < q", 0, 1, 1, 1)
}

func Test_Eval_04(t *testing.T) {
	checkTruthTable(t, "p -> q", 1, 1, 0, 1)
}

func Test_Eval_05(t *testing.T) {
	checkTruthTable(t, "p <-> q", 1, 0, 0, 1)
}

func Test_Eval_06(t *testing.T) {
	checkTruthTable(t, "-(p ^ q) < r", 1, 1, 1, 1, 1, 1, 0, 1)
}

func Test_Eval_07(t *testing.T) {
	var (
		f         = And{p, q}
		valuation = Valuation{"p": true}
	)
	//
	defer func() {
		err, ok := recover().(*LookupError)
		require.True(t, ok)
		assert.Equal(t, "q", err.Letter)
	}()
	//
	Evaluate(f, valuation)
	t.Fatal("expected lookup failure")
}

func Test_Valuation_01(t *testing.T) {
	letters := []string{"p", "q", "r"}
	assert.Equal(t, Valuation{"p": true, "q": false, "r": true}, ValuationOf(letters, 5))
	assert.Equal(t, "p=1 q=0 r=1", ValuationOf(letters, 5).Format(letters))
}

func Test_Valuation_02(t *testing.T) {
	assert.Equal(t, uint64(32), NumValuations(5))
	assert.Panics(t, func() { NumValuations(64) })
}

// ==================================================================
// Framework
// ==================================================================

// Check the result column of a formula's truth table, where rows are given in
// binary counting order.
func checkTruthTable(t *testing.T, input string, expected ...int) {
	t.Helper()
	//
	f := mustParse(t, Propositional, input)
	letters := Letters(f)
	require.Equal(t, int(NumValuations(len(letters))), len(expected))
	//
	for i, e := range expected {
		valuation := ValuationOf(letters, uint64(i))
		assert.Equal(t, e == 1, Evaluate(f, valuation), "row %s", valuation.Format(letters))
	}
}
