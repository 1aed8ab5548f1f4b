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

	"github.com/logicquiz/go-logicquiz/pkg/quiz"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [flags] answer correct",
	Short: "mark an answer against a correct formula.",
	Long: `Mark an answer against a correct formula, reporting whether it is
	correct, incorrect, prohibited or malformed.  An answer restating the
	prohibited formula (if given) is rejected even when equivalent.  Exits
	with a non-zero status unless the answer is correct.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			prohibited = GetString(cmd, "prohibited")
			tag        = GetString(cmd, "dialect")
			validator  = quiz.NewValidator(settings.MaxLetters)
			verdict    = validator.Validate(args[0], args[1], prohibited, tag)
		)
		//
		fmt.Println(outcomeEscape(verdict.Outcome).Wrap(verdict.String(), ansiEscapes()))
		//
		if verdict.Err != nil {
			printError(verdict.Err)
		}
		//
		if verdict.Outcome != quiz.Correct {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	validateCmd.Flags().String("prohibited", "", "formula which the answer must not restate")
	validateCmd.Flags().StringP("dialect", "d", "prop", "dialect of the formulae (prop, bool or dnf)")
}
