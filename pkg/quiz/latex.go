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
	"strings"

	"github.com/logicquiz/go-logicquiz/pkg/formula"
)

// Longer operators are listed first, so "<->" is never split into "<" and
// "->".
var (
	propLaTeX = strings.NewReplacer(
		"<->", `\longleftrightarrow`,
		"->", `\rightarrow`,
		"^", `\land`,
		"-", `\neg `,
		"<", `\lor`,
	)
	boolLaTeX = strings.NewReplacer(".", `\cdot`)
)

// LaTeX rewrites the concrete syntax of a formula into LaTeX math notation,
// suitable for embedding within "\(" and "\)".  Boolean algebra only needs its
// conjunction rewritten, as "+" and "-" already read naturally.
func LaTeX(text string, d formula.Dialect) string {
	if d == formula.BooleanAlgebra {
		return boolLaTeX.Replace(text)
	}
	//
	return propLaTeX.Replace(text)
}
