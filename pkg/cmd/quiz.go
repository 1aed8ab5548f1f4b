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
	"io"
	"os"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/chzyer/readline"
	"github.com/logicquiz/go-logicquiz/pkg/formula"
	"github.com/logicquiz/go-logicquiz/pkg/quiz"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz [flags]",
	Short: "answer random questions interactively.",
	Long: `Answer an endless supply of random questions interactively.  Type
	.skip to reveal the answer and move on, or .quit to finish.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runQuiz(cmd.OutOrStdout(), getKinds(cmd)); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	},
}

func runQuiz(out io.Writer, opts []quiz.Option) error {
	var (
		generator = newGenerator(opts...)
		validator = quiz.NewValidator(settings.MaxLetters)
		shuffler  = newRand()
		escapes   = ansiEscapes()
		score     uint
		answered  uint
	)
	//
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "answer> ",
		HistoryFile:     settings.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialise quiz: %w", err)
	}
	defer func() { _ = rl.Close() }()
	//
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	//
questions:
	for n := 1; ; n++ {
		q := generator.Generate()
		//
		_, _ = fmt.Fprintf(out, "\nQuestion %d (%s)\n", n, q.Kind)
		if err := printPrompt(out, q, true, escapes); err != nil {
			return err
		}
		//
		if q.InputMethod == quiz.Blocks {
			_, _ = fmt.Fprintf(out, "blocks: %s\n", quiz.ShuffleTokens(q.Formula, shuffler))
		}
		//
		for {
			line, err := rl.Readline()
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			} else if errors.Is(err, io.EOF) {
				break questions
			} else if err != nil {
				return err
			}
			//
			switch line = strings.TrimSpace(line); line {
			case "":
				continue
			case ".quit", ".exit":
				break questions
			case ".help":
				printQuizHelp(out)
				continue
			case ".skip":
				_, _ = fmt.Fprintf(out, "Skipped. Correct answer was %s\n", q.Formula)
				continue questions
			}
			//
			verdict := q.Mark(validator, line)
			answered++
			//
			if verdict.Outcome == quiz.Correct {
				score++
			}
			//
			_, _ = fmt.Fprintln(out, outcomeEscape(verdict.Outcome).Wrap(verdict.String(), escapes))
			//
			if verdict.Err != nil {
				printError(verdict.Err)
			}
			//
			continue questions
		}
	}
	//
	_, _ = fmt.Fprintf(out, "Scored %d out of %d\n", score, answered)
	//
	return nil
}

// Print the prompt of a question for the terminal.  Prompts are HTML fragments
// (sometimes holding a truth table), which are converted into Markdown.  Truth
// tables are rebuilt from the correct formula when it is known, since they
// read better as a terminal table.  Otherwise (i.e. answers are hidden), the
// table is printed as given.
func printPrompt(w io.Writer, q quiz.Question, known bool, escapes bool) error {
	head, table, hasTable := strings.Cut(q.Prompt, "\n")
	//
	text, err := htmltomarkdown.ConvertString(head)
	if err != nil {
		return fmt.Errorf("failed to render prompt: %w", err)
	}
	//
	_, _ = fmt.Fprintln(w, text)
	//
	if !hasTable {
		return nil
	} else if !known || q.Formula == "" {
		_, _ = fmt.Fprintln(w, table)
		return nil
	}
	//
	f, err := formula.Parse(q.Formula, q.Dialect)
	if err != nil {
		return err
	}
	//
	printTruthTable(w, quiz.TruthTable(f, formula.Letters(f)), escapes)
	//
	return nil
}

func printQuizHelp(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Commands:")
	_, _ = fmt.Fprintln(out, "  .skip    reveal the answer and move on")
	_, _ = fmt.Fprintln(out, "  .help    show this message")
	_, _ = fmt.Fprintln(out, "  .quit    finish the quiz")
	_, _ = fmt.Fprintln(out, "Operators: - (not), ^ or . (and), < or + (or), -> (implies), <-> (iff)")
}

func init() {
	rootCmd.AddCommand(quizCmd)
	quizCmd.Flags().Uint64("seed", 0, "seed for random generation (0 picks one at random)")
	quizCmd.Flags().Uint("derivations", quiz.DefaultDerivations, "number of rewrites applied when generating formulae")
	quizCmd.Flags().String("kind", "", "only ask questions of this kind")
	quizCmd.Flags().String("history-file", "", "file in which to keep answer history")
}
