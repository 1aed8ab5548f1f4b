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

// Table is the truth table of a formula over a given sequence of letters.
type Table struct {
	// Column headings, in order.
	Letters []string
	// Rows in binary counting order, with the first letter as the most
	// significant bit.
	Rows []Row
}

// Row is a single valuation within a truth table, along with the value of the
// formula under it.
type Row struct {
	Values []bool
	Result bool
}

// TruthTable evaluates a formula under every valuation of the given letters.
// The letters must cover those used by the formula, otherwise evaluation
// panics with a *formula.LookupError.
func TruthTable(f formula.Formula, letters []string) *Table {
	var (
		n    = formula.NumValuations(len(letters))
		rows = make([]Row, 0, n)
	)
	//
	for bits := uint64(0); bits < n; bits++ {
		valuation := formula.ValuationOf(letters, bits)
		values := make([]bool, len(letters))
		//
		for i, l := range letters {
			values[i] = valuation[l]
		}
		//
		rows = append(rows, Row{values, formula.Evaluate(f, valuation)})
	}
	//
	return &Table{letters, rows}
}

// HTML renders this table as an HTML fragment whose cells hold MathJax inline
// maths, with a final column headed "?" holding the formula's value.
func (t *Table) HTML() string {
	var builder strings.Builder
	//
	builder.WriteString("<table class ='table'><thead><tr>")
	//
	for _, l := range t.Letters {
		builder.WriteString("<th scope='col'>\\(")
		builder.WriteString(l)
		builder.WriteString("\\)</th>")
	}
	//
	builder.WriteString("<th scope='col'>\\(?\\)</th></tr></thead><tbody>")
	//
	for _, row := range t.Rows {
		builder.WriteString("<tr>")
		//
		for _, v := range row.Values {
			writeCell(&builder, v)
		}
		//
		writeCell(&builder, row.Result)
		builder.WriteString("</tr>")
	}
	//
	builder.WriteString("</tbody></table>")
	//
	return builder.String()
}

func writeCell(builder *strings.Builder, value bool) {
	if value {
		builder.WriteString("<td>\\(1\\)</td>")
	} else {
		builder.WriteString("<td>\\(0\\)</td>")
	}
}
