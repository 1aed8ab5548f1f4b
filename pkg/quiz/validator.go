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
	"slices"

	"github.com/logicquiz/go-logicquiz/pkg/formula"
	"github.com/logicquiz/go-logicquiz/pkg/util/source"
	log "github.com/sirupsen/logrus"
)

// DefaultMaxLetters is the default bound on the number of distinct letters in
// an answer.  Checking equivalence enumerates every valuation, hence the cost
// doubles with each letter.
const DefaultMaxLetters = 16

// Validator marks answers.  A validator holds no mutable state, and can be
// used concurrently.
type Validator struct {
	// MaxLetters bounds the number of distinct letters an answer and the
	// correct formula may use between them before the answer is rejected
	// without checking equivalence.  Zero means no bound.
	MaxLetters uint
}

// NewValidator constructs a validator with a given letter bound.
func NewValidator(maxLetters uint) *Validator {
	return &Validator{maxLetters}
}

var defaultValidator = NewValidator(DefaultMaxLetters)

// ValidateAnswer marks an answer using the default validator, returning the
// verdict as text.  The prohibited formula may be empty.  The tag identifies
// the dialect ("prop", "bool" or "dnf").
func ValidateAnswer(answer string, correct string, prohibited string, tag string) string {
	return defaultValidator.Validate(answer, correct, prohibited, tag).String()
}

// Validate marks an answer against a correct formula and an optional (i.e.
// possibly empty) prohibited formula.  All three are parsed in the dialect
// identified by the tag, except that for "dnf" the correct formula is written
// in propositional logic.  If any fails to parse, the verdict is ParseError.
// Otherwise, an answer restating the prohibited formula is Prohibited, even if
// it is equivalent to the correct formula.  An unrecognised tag is a
// ParseError, rather than being read as boolean algebra.
func (v *Validator) Validate(answer string, correct string, prohibited string, tag string) Verdict {
	dialect, err := formula.ParseDialect(tag)
	if err != nil {
		log.Warnf("cannot mark answer: %s", err)
		return Verdict{ParseError, correct, err}
	}
	//
	answerDialect, correctDialect := dialect, dialect
	if dialect == formula.DNF {
		correctDialect = formula.Propositional
	}
	//
	answerTree, err := formula.ParseText(source.NewText("answer", answer), answerDialect)
	if err != nil {
		return v.verdict(answer, Verdict{ParseError, correct, err})
	}
	//
	correctTree, err := formula.ParseText(source.NewText("correct", correct), correctDialect)
	if err != nil {
		log.Warnf("correct formula %q does not parse: %s", correct, err)
		return v.verdict(answer, Verdict{ParseError, correct, err})
	}
	//
	if prohibited != "" {
		prohibitedTree, err := formula.ParseText(source.NewText("prohibited", prohibited), answerDialect)
		if err != nil {
			log.Warnf("prohibited formula %q does not parse: %s", prohibited, err)
			return v.verdict(answer, Verdict{ParseError, correct, err})
		} else if formula.IsProhibited(answerTree, prohibitedTree) {
			return v.verdict(answer, Verdict{Prohibited, correct, nil})
		}
	}
	//
	if n := countLetters(answerTree, correctTree); v.MaxLetters != 0 && uint(n) > v.MaxLetters {
		log.Warnf("answer %q spans %d letters (limit %d)", answer, n, v.MaxLetters)
		return v.verdict(answer, Verdict{Incorrect, correct, nil})
	} else if formula.AreEquivalent(answerTree, correctTree) {
		return v.verdict(answer, Verdict{Outcome: Correct})
	}
	//
	return v.verdict(answer, Verdict{Incorrect, correct, nil})
}

// Count distinct letters used across both formulae.
func countLetters(f1 formula.Formula, f2 formula.Formula) int {
	letters := slices.Concat(formula.Letters(f1), formula.Letters(f2))
	slices.Sort(letters)
	//
	return len(slices.Compact(letters))
}

func (v *Validator) verdict(answer string, verdict Verdict) Verdict {
	log.Debugf("marked %q: %s", answer, verdict)
	return verdict
}
