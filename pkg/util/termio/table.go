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
package termio

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// TablePrinter is useful for printing tables to the terminal.  Cells can be
// given escapes (e.g. for colour) which are only emitted when escapes are
// enabled.
type TablePrinter struct {
	header        []string
	rows          [][]string
	escapes       [][]AnsiEscape
	maxWidth      uint
	enableEscapes bool
}

// NewTablePrinter constructs a new table with a given header row.  The header
// determines the table's width.
func NewTablePrinter(header ...string) *TablePrinter {
	return &TablePrinter{header, nil, nil, 0, true}
}

// AddRow appends a row to this table, returning its index.
func (p *TablePrinter) AddRow(vals ...string) uint {
	if len(vals) != len(p.header) {
		panic("incorrect number of columns")
	}
	//
	p.rows = append(p.rows, vals)
	p.escapes = append(p.escapes, make([]AnsiEscape, len(vals)))
	//
	return uint(len(p.rows) - 1)
}

// SetEscape set the colour to use when printing the contents of a given cell
func (p *TablePrinter) SetEscape(col uint, row uint, escape AnsiEscape) {
	p.escapes[row][col] = escape
}

// AnsiEscapes enables or disables the use of ANSI escapes (e.g. for showing
// colour).  Disabling escapes is useful in environments that don't support
// escapes as, otherwise, you get a lot of visible excape characters being
// printed.
func (p *TablePrinter) AnsiEscapes(enable bool) {
	p.enableEscapes = enable
}

// SetMaxWidth puts an upper bound on the width of a rendered row, where zero
// means no bound.
func (p *TablePrinter) SetMaxWidth(width uint) {
	p.maxWidth = width
}

// Print the table to a given writer.
func (p *TablePrinter) Print(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetAllowedRowLength(int(p.maxWidth))
	//
	t.AppendHeader(toRow(p.header))
	//
	for i, row := range p.rows {
		cells := make(table.Row, len(row))
		//
		for j, col := range row {
			cells[j] = p.escapes[i][j].Wrap(col, p.enableEscapes)
		}
		//
		t.AppendRow(cells)
	}
	//
	t.Render()
}

func toRow(vals []string) table.Row {
	row := make(table.Row, len(vals))
	for i, v := range vals {
		row[i] = v
	}
	//
	return row
}
