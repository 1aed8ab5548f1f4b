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
package quiz

import (
	"testing"

	"github.com/logicquiz/go-logicquiz/pkg/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==================================================================
// Truth Tables
// ==================================================================

func Test_TruthTable_01(t *testing.T) {
	table := TruthTable(mustParse("p ^ q", formula.Propositional), []string{"p", "q"})
	assert.Equal(t, []Row{
		{[]bool{false, false}, false},
		{[]bool{false, true}, false},
		{[]bool{true, false}, false},
		{[]bool{true, true}, true},
	}, table.Rows)
}

func Test_TruthTable_02(t *testing.T) {
	table := TruthTable(mustParse("p ^ q", formula.Propositional), []string{"p", "q"})
	expected := `<table class ='table'><thead><tr>` +
		`<th scope='col'>\(p\)</th><th scope='col'>\(q\)</th><th scope='col'>\(?\)</th>` +
		`</tr></thead><tbody>` +
		`<tr><td>\(0\)</td><td>\(0\)</td><td>\(0\)</td></tr>` +
		`<tr><td>\(0\)</td><td>\(1\)</td><td>\(0\)</td></tr>` +
		`<tr><td>\(1\)</td><td>\(0\)</td><td>\(0\)</td></tr>` +
		`<tr><td>\(1\)</td><td>\(1\)</td><td>\(1\)</td></tr>` +
		`</tbody></table>`
	assert.Equal(t, expected, table.HTML())
}

func Test_TruthTable_03(t *testing.T) {
	table := TruthTable(mustParse("-a", formula.BooleanAlgebra), []string{"a"})
	assert.Equal(t, []Row{{[]bool{false}, true}, {[]bool{true}, false}}, table.Rows)
}

func Test_TruthTable_04(t *testing.T) {
	// Letters not covering the formula is a defect
	assert.Panics(t, func() {
		TruthTable(mustParse("p ^ q", formula.Propositional), []string{"p"})
	})
}

// ==================================================================
// LaTeX
// ==================================================================

func Test_LaTeX_01(t *testing.T) {
	assert.Equal(t, `\neg p \longleftrightarrow (q \rightarrow r)`, LaTeX("-p <-> (q -> r)", formula.Propositional))
}

func Test_LaTeX_02(t *testing.T) {
	assert.Equal(t, `p \lor q \land r`, LaTeX("p < q ^ r", formula.Propositional))
}

func Test_LaTeX_03(t *testing.T) {
	assert.Equal(t, `\neg (p \land q)`, LaTeX("-(p ^ q)", formula.DNF))
}

func Test_LaTeX_04(t *testing.T) {
	assert.Equal(t, `a \cdot -b + c`, LaTeX("a . -b + c", formula.BooleanAlgebra))
}

// ==================================================================
// Translation
// ==================================================================

func Test_Translate_01(t *testing.T) {
	checkTranslate(t, "p ^ -q", "(it is dark) and (it is not night)")
}

func Test_Translate_02(t *testing.T) {
	checkTranslate(t, "-(p < q)", "it is not that ((it is dark) or (it is night))")
}

func Test_Translate_03(t *testing.T) {
	checkTranslate(t, "p -> q", "if (it is dark), then (it is night)")
}

func Test_Translate_04(t *testing.T) {
	checkTranslate(t, "(p <-> q)", "(it is dark) if and only if (it is night)")
}

func Test_Translate_05(t *testing.T) {
	f := mustParse("-b + a", formula.BooleanAlgebra)
	text, err := Translate(f, []string{"a", "b"}, PhrasePairs[2])
	require.NoError(t, err)
	assert.Equal(t, `Let \(a\) = it is late, \(b\) = I am tired. (I am not tired) or (it is late)`, text)
}

func Test_Translate_06(t *testing.T) {
	f := mustParse("p ^ q ^ r", formula.Propositional)
	_, err := Translate(f, []string{"p", "q", "r"}, PhrasePairs[0])
	assert.Error(t, err)
}

func Test_Translate_07(t *testing.T) {
	f := mustParse("p ^ r", formula.Propositional)
	_, err := Translate(f, []string{"p", "q"}, PhrasePairs[0])
	assert.Error(t, err)
}

func checkTranslate(t *testing.T, text string, sentence string) {
	t.Helper()
	//
	f := mustParse(text, formula.Propositional)
	translation, err := Translate(f, []string{"p", "q"}, PhrasePairs[0])
	require.NoError(t, err)
	assert.Equal(t, `Let \(p\) = it is dark, \(q\) = it is night. `+sentence, translation)
}
