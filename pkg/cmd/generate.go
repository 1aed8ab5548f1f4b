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
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/logicquiz/go-logicquiz/pkg/quiz"
	"github.com/logicquiz/go-logicquiz/pkg/util"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags]",
	Short: "generate a set of random questions.",
	Long: `Generate a set of random questions, printed either as text or
	encoded as JSON or YAML.  Questions are generated concurrently, but the
	set depends only on the seed.`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			generator = newGenerator(getKinds(cmd)...)
			stats     = util.NewPerfStats()
		)
		//
		set, err := generator.GenerateSet(cmd.Context(), settings.Count, settings.Jobs)
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		//
		stats.Log("Generating questions", settings.Count)
		//
		if GetFlag(cmd, "hide-answers") {
			set = set.HideAnswers(newRand())
		}
		//
		if err := writeQuestionSet(os.Stdout, set, settings.Output); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

// Get the question kinds selected by the "kind" flag, where none means all
// kinds.
func getKinds(cmd *cobra.Command) []quiz.Option {
	name := GetString(cmd, "kind")
	if name == "" {
		return nil
	}
	//
	kind, err := quiz.ParseKind(name)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return []quiz.Option{quiz.WithKinds(kind)}
}

// Write a question set in a given output format.
func writeQuestionSet(w io.Writer, set *quiz.QuestionSet, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", " ")
		//
		return enc.Encode(set)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		//
		if err := enc.Encode(set); err != nil {
			return err
		}
		//
		return enc.Close()
	case "text":
		for i, q := range set.Questions {
			fmt.Fprintf(w, "#%d %s (%s, %s)\n", i+1, q.Kind, q.Dialect, q.InputMethod)
			//
			if err := printPrompt(w, q, !set.Hidden, false); err != nil {
				return err
			}
			//
			switch {
			case q.Formula == "":
			case set.Hidden:
				fmt.Fprintf(w, "blocks: %s\n", q.Formula)
			default:
				fmt.Fprintf(w, "answer: %s\n", q.Formula)
			}
			//
			if q.Prohibited != "" {
				fmt.Fprintf(w, "prohibited: %s\n", q.Prohibited)
			}
			//
			fmt.Fprintln(w)
		}
		//
		return nil
	}
	//
	return fmt.Errorf("unknown output format %q", format)
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().Uint("count", 10, "number of questions to generate")
	generateCmd.Flags().Uint("jobs", uint(runtime.NumCPU()), "number of questions to generate concurrently")
	generateCmd.Flags().Uint64("seed", 0, "seed for random generation (0 picks one at random)")
	generateCmd.Flags().Uint("derivations", quiz.DefaultDerivations, "number of rewrites applied when generating formulae")
	generateCmd.Flags().String("kind", "", "only generate questions of this kind")
	generateCmd.Flags().StringP("output", "o", "text", "output format (text, json or yaml)")
	generateCmd.Flags().Bool("hide-answers", false, "blank (or shuffle) correct answers")
}
