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
	"os"
	"slices"
	"strings"

	"github.com/logicquiz/go-logicquiz/pkg/formula"
	"github.com/spf13/cobra"
)

var equivCmd = &cobra.Command{
	Use:   "equiv [flags] formula formula",
	Short: "check whether two formulae are equivalent.",
	Long: `Check whether two formulae are equivalent by enumerating every
	valuation of their letters.  Formulae over different letters are never
	considered equivalent.  When they are not equivalent, a distinguishing
	valuation is reported and the exit status is non-zero.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			dialect            = getDialect(cmd)
			lhs                = parseFormula("lhs", args[0], dialect)
			rhs                = parseFormula("rhs", args[1], dialect)
			lhsVars            = formula.Letters(lhs)
			rhsVars            = formula.Letters(rhs)
			valuation, differs = formula.Counterexample(lhs, rhs)
		)
		//
		switch {
		case !slices.Equal(lhsVars, rhsVars):
			fmt.Printf("not equivalent: letters {%s} differ from {%s}\n",
				strings.Join(lhsVars, ","), strings.Join(rhsVars, ","))
		case differs:
			fmt.Printf("not equivalent: %s gives %s and %s\n", valuation.Format(lhsVars),
				bit(formula.Evaluate(lhs, valuation)), bit(formula.Evaluate(rhs, valuation)))
		default:
			fmt.Println("equivalent")
			return
		}
		//
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(equivCmd)
	equivCmd.Flags().StringP("dialect", "d", "prop", "dialect of the formulae (prop, bool or dnf)")
}
