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
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/logicquiz/go-logicquiz/pkg/formula"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Number of seeds tried by each randomised test.
const seeds = 500

func Test_Generator_01(t *testing.T) {
	checkFormulae(t, formula.BooleanAlgebra)
}

func Test_Generator_02(t *testing.T) {
	checkFormulae(t, formula.Propositional)
}

func Test_Generator_03(t *testing.T) {
	// Generation is reproducible from a seed
	for seed := range uint64(seeds) {
		q1 := newGenerator(seed).Generate()
		q2 := newGenerator(seed).Generate()
		assert.Equal(t, q1, q2)
	}
}

func Test_Generator_04(t *testing.T) {
	// Zero derivations leaves a single letter
	g := NewGenerator(rand.New(rand.NewPCG(1, 2)), WithDerivations(0))
	text, letters := g.Formula(formula.Propositional)
	assert.Len(t, text, 1)
	assert.Equal(t, []string{text}, letters)
}

func Test_Generator_05(t *testing.T) {
	for seed := range uint64(seeds) {
		for _, kind := range Kinds {
			q := newGenerator(seed).GenerateKind(kind)
			checkQuestion(t, q)
		}
	}
}

func Test_Generator_06(t *testing.T) {
	// Translation prompts arise for formulae over exactly two letters
	for seed := range uint64(seeds) {
		q := newGenerator(seed).GenerateKind(PropEquivalent)
		if strings.HasPrefix(q.Prompt, "Translate the following sentence into a propositional logic formula: Let \\(") {
			assert.Empty(t, q.Prohibited)
			return
		}
	}
	//
	t.Fatal("no translation prompt generated")
}

func Test_Generator_07(t *testing.T) {
	// Restating prompts prohibit the formula being restated
	for seed := range uint64(seeds) {
		q := newGenerator(seed).GenerateKind(BoolEquivalent)
		if q.Prohibited != "" {
			assert.Equal(t, q.Formula, q.Prohibited)
			assert.Equal(t, Text, q.InputMethod)
			assert.True(t, strings.HasPrefix(q.Prompt, "Give an equivalent boolean algebra formula to \\("))
			assert.Equal(t, Prohibited, q.Mark(NewValidator(0), q.Formula).Outcome)
			return
		}
	}
	//
	t.Fatal("no restating prompt generated")
}

func Test_Generator_08(t *testing.T) {
	// A DNF restatement of each satisfiable formula is a correct answer
	validator := NewValidator(0)
	//
	for seed := range uint64(seeds) {
		q := newGenerator(seed).GenerateKind(DNFConversion)
		require.Equal(t, formula.DNF, q.Dialect)
		require.Equal(t, Text, q.InputMethod)
		//
		f, err := formula.Parse(q.Formula, formula.Propositional)
		require.NoError(t, err)
		//
		dnf, err := formula.ToDNF(f)
		if err != nil {
			assert.ErrorIs(t, err, formula.ErrUnsatisfiable)
			continue
		}
		//
		text, err := formula.Format(dnf, formula.DNF)
		require.NoError(t, err)
		assert.Equal(t, Correct, q.Mark(validator, text).Outcome, "%s as %s", q.Formula, text)
	}
}

func Test_Generator_09(t *testing.T) {
	for seed := range uint64(seeds) {
		q := newGenerator(seed).GenerateKind(PropTruthTable)
		assert.True(t, strings.HasPrefix(q.Prompt,
			"Give a propositional logic formula for the following truth table:\n<table class ='table'>"))
		assert.True(t, strings.HasSuffix(q.Prompt, "</tbody></table>"))
	}
}

func Test_Generator_10(t *testing.T) {
	dialect, correct, _, prompt, method := GenerateQuestion()
	assert.Contains(t, []string{"prop", "bool", "dnf"}, dialect)
	assert.Contains(t, []string{"Text", "Blocks"}, method)
	assert.NotEmpty(t, correct)
	assert.NotEmpty(t, prompt)
}

func Test_Generator_11(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(5, 5)), WithKinds(BoolTruthTable))
	//
	for range seeds {
		q := g.Generate()
		assert.Equal(t, BoolTruthTable, q.Kind)
		assert.Equal(t, formula.BooleanAlgebra, q.Dialect)
	}
}

// ==================================================================
// Question Sets
// ==================================================================

func Test_GenerateSet_01(t *testing.T) {
	set, err := newGenerator(7).GenerateSet(context.Background(), 50, 1)
	require.NoError(t, err)
	assert.Len(t, set.Questions, 50)
	//
	for _, q := range set.Questions {
		assert.Equal(t, GeneratedSource, q.Source)
		checkQuestion(t, q)
	}
}

func Test_GenerateSet_02(t *testing.T) {
	// Sets are independent of the number of jobs
	set1, err := newGenerator(7).GenerateSet(context.Background(), 50, 1)
	require.NoError(t, err)
	set8, err := newGenerator(7).GenerateSet(context.Background(), 50, 8)
	require.NoError(t, err)
	assert.Equal(t, set1, set8)
}

func Test_GenerateSet_04(t *testing.T) {
	g := NewGenerator(rand.New(rand.NewPCG(5, 5)), WithKinds(DNFConversion))
	set, err := g.GenerateSet(context.Background(), 20, 4)
	require.NoError(t, err)
	//
	for _, q := range set.Questions {
		assert.Equal(t, DNFConversion, q.Kind)
	}
}

func Test_GenerateSet_03(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	//
	_, err := newGenerator(7).GenerateSet(ctx, 10, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

// ==================================================================
// Helpers
// ==================================================================

func newGenerator(seed uint64) *Generator {
	return NewGenerator(rand.New(rand.NewPCG(seed, 0)))
}

func checkFormulae(t *testing.T, d formula.Dialect) {
	t.Helper()
	//
	for seed := range uint64(seeds) {
		text, letters := newGenerator(seed).Formula(d)
		f, err := formula.Parse(text, d)
		require.NoError(t, err, "generated %q", text)
		//
		assert.Equal(t, formula.Letters(f), letters)
		assert.LessOrEqual(t, len(letters), 5)
		//
		for _, l := range letters {
			assert.Contains(t, d.Alphabet(), l)
		}
	}
}

func checkQuestion(t *testing.T, q Question) {
	t.Helper()
	//
	assert.NotEmpty(t, q.ID)
	assert.NotEmpty(t, q.Prompt)
	// Correct formula parses in its dialect (DNF questions expect propositional)
	d := q.Dialect
	if d == formula.DNF {
		d = formula.Propositional
	}
	//
	_, err := formula.Parse(q.Formula, d)
	require.NoError(t, err, "generated %q", q.Formula)
	//
	if q.Prohibited != "" || q.Dialect == formula.DNF {
		assert.Equal(t, Text, q.InputMethod)
	}
	// Answering with the correct formula is correct, unless prohibited
	if q.Prohibited == "" && q.Dialect != formula.DNF {
		assert.Equal(t, Correct, q.Mark(NewValidator(0), q.Formula).Outcome)
	}
	//
	assert.True(t, slices.Contains(Kinds, q.Kind))
}
