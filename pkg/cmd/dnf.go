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
	"errors"
	"fmt"
	"os"

	"github.com/logicquiz/go-logicquiz/pkg/formula"
	"github.com/spf13/cobra"
)

var dnfCmd = &cobra.Command{
	Use:   "dnf [flags] formula",
	Short: "restate a formula in disjunctive normal form.",
	Long: `Restate a formula in disjunctive normal form, with one conjunction for
	each row of its truth table which holds.  Unsatisfiable formulae have no
	such form.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		f := parseFormula("formula", args[0], getDialect(cmd))
		//
		text, err := restateDNF(f)
		if errors.Is(err, formula.ErrUnsatisfiable) {
			fmt.Println("formula is unsatisfiable")
			os.Exit(1)
		} else if err != nil {
			printError(err)
			os.Exit(2)
		}
		//
		fmt.Println(text)
	},
}

// Restate a formula in the concrete syntax of the DNF dialect.
func restateDNF(f formula.Formula) (string, error) {
	dnf, err := formula.ToDNF(f)
	if err != nil {
		return "", err
	}
	//
	return formula.Format(dnf, formula.DNF)
}

func init() {
	rootCmd.AddCommand(dnfCmd)
	dnfCmd.Flags().StringP("dialect", "d", "prop", "dialect of the formula (prop or bool)")
}
