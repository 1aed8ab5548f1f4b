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
package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/logicquiz/go-logicquiz/pkg/formula"
	"github.com/logicquiz/go-logicquiz/pkg/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet() *quiz.QuestionSet {
	set := quiz.NewQuestionSet("set", "Set")
	_ = set.Add(quiz.Question{ID: "1", Source: "user", Kind: quiz.PropEquivalent, Prompt: "Give p",
		InputMethod: quiz.Text, Dialect: formula.Propositional, Formula: "p ^ q", Prohibited: "q ^ p"})
	//
	return set
}

func Test_WriteQuestionSet_01(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeQuestionSet(&buf, testSet(), "json"))
	//
	var decoded quiz.QuestionSet
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *testSet(), decoded)
}

func Test_WriteQuestionSet_02(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeQuestionSet(&buf, testSet(), "yaml"))
	assert.Contains(t, buf.String(), "correct_formula: p ^ q")
	assert.Contains(t, buf.String(), "kind: prop-equivalent")
}

func Test_WriteQuestionSet_03(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeQuestionSet(&buf, testSet(), "text"))
	assert.Contains(t, buf.String(), "#1 prop-equivalent (prop, Text)")
	assert.Contains(t, buf.String(), "answer: p ^ q")
	assert.Contains(t, buf.String(), "prohibited: q ^ p")
}

func Test_WriteQuestionSet_04(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, writeQuestionSet(&buf, testSet(), "xml"))
}

func Test_PrintPrompt_01(t *testing.T) {
	var (
		buf bytes.Buffer
		q   = quiz.Question{Kind: quiz.BoolTruthTable, Dialect: formula.BooleanAlgebra, Formula: "a . b",
			Prompt: "Give a boolean algebra formula for the following truth table:\n<table></table>"}
	)
	//
	require.NoError(t, printPrompt(&buf, q, true, false))
	assert.Contains(t, buf.String(), "Give a boolean algebra formula for the following truth table:")
	assert.NotContains(t, buf.String(), "<table>")
	assert.Contains(t, buf.String(), "┌")
}

func Test_PrintPrompt_02(t *testing.T) {
	var (
		buf bytes.Buffer
		q   = quiz.Question{Kind: quiz.BoolTruthTable, Dialect: formula.BooleanAlgebra,
			Prompt: "Give a boolean algebra formula for the following truth table:\n<table></table>"}
	)
	// Hidden answers leave the table as it was
	require.NoError(t, printPrompt(&buf, q, true, false))
	assert.Contains(t, buf.String(), "<table></table>")
}

func Test_PrintPrompt_03(t *testing.T) {
	var (
		buf bytes.Buffer
		q   = quiz.Question{Kind: quiz.PropTruthTable, Dialect: formula.Propositional, Formula: "q -> p",
			Prompt: "Give a propositional logic formula for the following truth table:\n<table></table>"}
	)
	// Shuffled blocks may parse, but must not be used to rebuild the table
	require.NoError(t, printPrompt(&buf, q, false, false))
	assert.Contains(t, buf.String(), "<table></table>")
	assert.NotContains(t, buf.String(), "┌")
}

func Test_WriteQuestionSet_05(t *testing.T) {
	for seed := range uint64(20) {
		var (
			buf       bytes.Buffer
			rng       = rand.New(rand.NewPCG(seed, 0))
			generator = quiz.NewGenerator(rng, quiz.WithKinds(quiz.PropTruthTable, quiz.BoolTruthTable))
		)
		//
		set, err := generator.GenerateSet(context.Background(), 5, 2)
		require.NoError(t, err)
		//
		hidden := set.HideAnswers(rng)
		require.NoError(t, writeQuestionSet(&buf, hidden, "text"), "seed %d", seed)
		assert.NotContains(t, buf.String(), "answer:")
		assert.Contains(t, buf.String(), "<table class ='table'>")
		//
		for _, q := range hidden.Questions {
			if q.InputMethod == quiz.Blocks {
				assert.Contains(t, buf.String(), "blocks: "+q.Formula)
			}
		}
	}
}

func Test_WriteQuestionSet_06(t *testing.T) {
	var buf bytes.Buffer
	//
	hidden := testSet().HideAnswers(rand.New(rand.NewPCG(1, 1)))
	require.NoError(t, writeQuestionSet(&buf, hidden, "json"))
	assert.Contains(t, buf.String(), `"hidden": true`)
	//
	var decoded quiz.QuestionSet
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, *hidden, decoded)
}

func Test_RestateDNF_01(t *testing.T) {
	for _, input := range []string{"p", "-p", "p -> q", "(p <-> q) ^ -r", "-(p ^ q) < (q -> r)"} {
		f, err := formula.Parse(input, formula.Propositional)
		require.NoError(t, err)
		//
		text, err := restateDNF(f)
		require.NoError(t, err, input)
		//
		g, err := formula.Parse(text, formula.DNF)
		require.NoError(t, err, text)
		assert.True(t, formula.AreEquivalent(f, g), "%s as %s", input, text)
		assert.False(t, strings.Contains(text, "->"), text)
	}
}

func Test_RestateDNF_02(t *testing.T) {
	f, err := formula.Parse("p ^ -p", formula.Propositional)
	require.NoError(t, err)
	//
	_, err = restateDNF(f)
	assert.ErrorIs(t, err, formula.ErrUnsatisfiable)
}
