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
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/logicquiz/go-logicquiz/pkg/formula"
)

// ErrDuplicateQuestion is returned when adding a question to a set which
// already holds a question with the same identifier.
var ErrDuplicateQuestion = errors.New("duplicate question identifier")

// ErrUnknownInputMethod is returned when decoding an unrecognised input
// method.
var ErrUnknownInputMethod = errors.New("unknown input method")

// InputMethod determines how a user enters their answer.
type InputMethod uint8

const (
	// Text means the answer is typed freely.
	Text InputMethod = iota
	// Blocks means the answer is assembled from the (shuffled) tokens of the
	// correct formula.
	Blocks
)

func (m InputMethod) String() string {
	if m == Blocks {
		return "Blocks"
	}
	//
	return "Text"
}

// MarshalText implements encoding.TextMarshaler.
func (m InputMethod) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *InputMethod) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Text":
		*m = Text
	case "Blocks":
		*m = Blocks
	default:
		return fmt.Errorf("%w %q", ErrUnknownInputMethod, string(text))
	}
	//
	return nil
}

// Question is a single quiz question.  An answer to it is marked by validating
// against its Formula and Prohibited fields in its dialect.
type Question struct {
	ID          string          `json:"id" yaml:"id"`
	Source      string          `json:"source" yaml:"source"`
	Kind        Kind            `json:"kind" yaml:"kind"`
	Prompt      string          `json:"prompt" yaml:"prompt"`
	InputMethod InputMethod     `json:"input_method" yaml:"input_method"`
	Dialect     formula.Dialect `json:"correct_grammar" yaml:"correct_grammar"`
	Formula     string          `json:"correct_formula" yaml:"correct_formula"`
	Prohibited  string          `json:"prohibited_formula" yaml:"prohibited_formula"`
}

// Mark validates an answer to this question.
func (q *Question) Mark(v *Validator, answer string) Verdict {
	return v.Validate(answer, q.Formula, q.Prohibited, q.Dialect.String())
}

// QuestionSet is a named collection of questions with distinct identifiers.
// Once answers are hidden, the correct formula of each question is either
// blank or a shuffled list of tokens, and cannot be used for marking.
type QuestionSet struct {
	ID        string     `json:"id" yaml:"id"`
	Name      string     `json:"name" yaml:"name"`
	Hidden    bool       `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// NewQuestionSet constructs an empty question set.
func NewQuestionSet(id string, name string) *QuestionSet {
	return &QuestionSet{ID: id, Name: name}
}

// Add a question to this set, failing if its identifier is already taken.
func (s *QuestionSet) Add(q Question) error {
	if _, ok := s.Lookup(q.ID); ok {
		return fmt.Errorf("%w %q", ErrDuplicateQuestion, q.ID)
	}
	//
	s.Questions = append(s.Questions, q)
	//
	return nil
}

// Lookup the question with a given identifier.
func (s *QuestionSet) Lookup(id string) (*Question, bool) {
	for i := range s.Questions {
		if s.Questions[i].ID == id {
			return &s.Questions[i], true
		}
	}
	//
	return nil, false
}

// HideAnswers returns a copy of this set fit for handing to those answering
// it.  Text questions lose their correct formula, whilst Blocks questions have
// its tokens shuffled to give the blocks.  Prohibited formulae are kept, since
// they are already shown in the prompt.
func (s *QuestionSet) HideAnswers(rng *rand.Rand) *QuestionSet {
	hidden := &QuestionSet{s.ID, s.Name, true, make([]Question, len(s.Questions))}
	//
	for i, q := range s.Questions {
		if q.InputMethod == Blocks {
			q.Formula = ShuffleTokens(q.Formula, rng)
		} else {
			q.Formula = ""
		}
		//
		hidden.Questions[i] = q
	}
	//
	return hidden
}

// ShuffleTokens breaks the text of a formula into its tokens, ignoring
// whitespace, and returns them shuffled and separated by single spaces.
// Multi-character operators are kept whole.
func ShuffleTokens(text string, rng *rand.Rand) string {
	var tokens []string
	//
	for text = strings.ReplaceAll(text, " ", ""); len(text) > 0; {
		n := 1
		//
		switch {
		case strings.HasPrefix(text, "<->"):
			n = 3
		case strings.HasPrefix(text, "->"):
			n = 2
		}
		//
		tokens = append(tokens, text[:n])
		text = text[n:]
	}
	//
	rng.Shuffle(len(tokens), func(i, j int) {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	})
	//
	return strings.Join(tokens, " ")
}
