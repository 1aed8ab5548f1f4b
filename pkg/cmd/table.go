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
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/logicquiz/go-logicquiz/pkg/formula"
	"github.com/logicquiz/go-logicquiz/pkg/quiz"
	"github.com/logicquiz/go-logicquiz/pkg/util/termio"
	"github.com/spf13/cobra"
)

var tableCmd = &cobra.Command{
	Use:   "table [flags] formula",
	Short: "print the truth table of a formula.",
	Long: `Print the truth table of a formula, with one row for each valuation
	of its letters in binary counting order.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			f     = parseFormula("formula", args[0], getDialect(cmd))
			table = quiz.TruthTable(f, formula.Letters(f))
		)
		//
		if GetFlag(cmd, "html") {
			fmt.Println(table.HTML())
		} else {
			printTruthTable(os.Stdout, table, ansiEscapes())
		}
	},
}

// Print a truth table for the terminal, colouring the result column.
func printTruthTable(w io.Writer, table *quiz.Table, escapes bool) {
	printer := termio.NewTablePrinter(slices.Concat(table.Letters, []string{"?"})...)
	//
	for _, row := range table.Rows {
		cells := make([]string, 0, len(row.Values)+1)
		for _, v := range row.Values {
			cells = append(cells, bit(v))
		}
		//
		i := printer.AddRow(append(cells, bit(row.Result))...)
		printer.SetEscape(uint(len(row.Values)), i, truthEscape(row.Result))
	}
	//
	if width, ok := termio.Width(os.Stdout); ok {
		printer.SetMaxWidth(width)
	}
	//
	printer.AnsiEscapes(escapes)
	printer.Print(w)
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringP("dialect", "d", "prop", "dialect of the formula (prop, bool or dnf)")
	tableCmd.Flags().Bool("html", false, "print the table as an HTML fragment")
}
