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

// Package quiz turns the formula engine into quiz content.  It marks answers
// against a correct (and, optionally, a prohibited) formula, and generates
// random questions complete with prompts, truth tables and natural language
// translations.
package quiz

import "fmt"

// Outcome classifies the result of marking an answer.
type Outcome uint8

const (
	// ParseError indicates one of the formulae involved was malformed.
	ParseError Outcome = iota
	// Prohibited indicates the answer restates the prohibited formula.
	Prohibited
	// Correct indicates the answer is equivalent to the correct formula.
	Correct
	// Incorrect indicates the answer is not equivalent to the correct formula.
	Incorrect
)

// Verdict is the result of marking an answer.  Except for correct answers,
// the correct formula is reported back so the user can learn from it.
type Verdict struct {
	Outcome Outcome
	// Correct formula, exactly as given.
	Expected string
	// Syntax error responsible for a ParseError outcome (if any).
	Err error
}

func (v Verdict) String() string {
	switch v.Outcome {
	case ParseError:
		return "Parse error. Correct answer was " + v.Expected
	case Prohibited:
		return "Prohibited formula. Correct answer was " + v.Expected
	case Correct:
		return "Correct"
	case Incorrect:
		return "Incorrect. Correct answer was " + v.Expected
	}
	//
	return fmt.Sprintf("outcome(%d)", uint8(v.Outcome))
}
