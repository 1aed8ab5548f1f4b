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
	"fmt"
	"slices"
	"strings"

	"github.com/logicquiz/go-logicquiz/pkg/formula"
)

// Phrases gives an English reading to a pair of letters, along with the
// reading of each letter's negation.
type Phrases struct {
	Positive [2]string
	Negative [2]string
}

// PhrasePairs lists the readings from which translation questions draw.
var PhrasePairs = []Phrases{
	{[2]string{"it is dark", "it is night"}, [2]string{"it is not dark", "it is not night"}},
	{[2]string{"it is snowing", "it is cold"}, [2]string{"it is not snowing", "it is not cold"}},
	{[2]string{"it is late", "I am tired"}, [2]string{"it is not late", "I am not tired"}},
}

// Translate renders a formula as an English sentence, prefixed with a legend
// giving the reading of each letter.  The i-th letter takes the i-th phrase of
// the pair, hence at most two letters are permitted and these must cover
// every letter of the formula.
func Translate(f formula.Formula, letters []string, phrases Phrases) (string, error) {
	if len(letters) > len(phrases.Positive) {
		return "", fmt.Errorf("cannot translate %d letters (limit %d)", len(letters), len(phrases.Positive))
	}
	//
	for _, l := range formula.Letters(f) {
		if !slices.Contains(letters, l) {
			return "", fmt.Errorf("no phrase for letter %s", l)
		}
	}
	//
	var (
		t       = translator{letters, phrases}
		builder strings.Builder
	)
	//
	builder.WriteString("Let ")
	//
	for i, l := range letters {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		fmt.Fprintf(&builder, "\\(%s\\) = %s", l, phrases.Positive[i])
	}
	//
	builder.WriteString(". ")
	builder.WriteString(t.translate(f))
	//
	return builder.String(), nil
}

type translator struct {
	letters []string
	phrases Phrases
}

func (t *translator) translate(f formula.Formula) string {
	switch f := f.(type) {
	case formula.Letter:
		return t.phrases.Positive[slices.Index(t.letters, f.Name)]
	case formula.Not:
		if l, ok := f.Arg.(formula.Letter); ok {
			return t.phrases.Negative[slices.Index(t.letters, l.Name)]
		}
		//
		return "it is not that (" + t.translate(f.Arg) + ")"
	case formula.And:
		return "(" + t.translate(f.Left) + ") and (" + t.translate(f.Right) + ")"
	case formula.Or:
		return "(" + t.translate(f.Left) + ") or (" + t.translate(f.Right) + ")"
	case formula.Implies:
		return "if (" + t.translate(f.Left) + "), then (" + t.translate(f.Right) + ")"
	case formula.Equivalent:
		return "(" + t.translate(f.Left) + ") if and only if (" + t.translate(f.Right) + ")"
	}
	//
	panic(fmt.Sprintf("unknown formula %T", f))
}
