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
	"math/rand/v2"
	"os"

	"github.com/logicquiz/go-logicquiz/pkg/formula"
	"github.com/logicquiz/go-logicquiz/pkg/quiz"
	"github.com/logicquiz/go-logicquiz/pkg/util/source"
	"github.com/logicquiz/go-logicquiz/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected uint, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get the dialect identified by the "dialect" flag, or exit if it is unknown.
func getDialect(cmd *cobra.Command) formula.Dialect {
	d, err := formula.ParseDialect(GetString(cmd, "dialect"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return d
}

// Parse a formula given on the command line, or exit with a highlighted syntax
// error.
func parseFormula(name string, text string, d formula.Dialect) formula.Formula {
	f, err := formula.ParseText(source.NewText(name, text), d)
	if err != nil {
		printError(err)
		os.Exit(2)
	}
	//
	return f
}

// Print an error, highlighting the offending text for syntax errors.
func printError(err error) {
	var serr *source.SyntaxError
	//
	if errors.As(err, &serr) {
		fmt.Println(serr.Highlight())
	} else {
		fmt.Println(err)
	}
}

// Construct a random source from the configured seed, where zero means pick a
// seed at random.
func newRand() *rand.Rand {
	seed := settings.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	//
	log.Debugf("using seed %d", seed)
	//
	return rand.New(rand.NewPCG(seed, 0))
}

// Construct a generator from the configured settings.
func newGenerator(opts ...quiz.Option) *quiz.Generator {
	opts = append([]quiz.Option{quiz.WithDerivations(settings.Derivations)}, opts...)
	//
	return quiz.NewGenerator(newRand(), opts...)
}

// Determine whether ANSI escapes should be written to stdout.
func ansiEscapes() bool {
	return settings.AnsiEscapes && termio.IsTerminal(os.Stdout)
}

// Escape used to display a given outcome.
func outcomeEscape(outcome quiz.Outcome) termio.AnsiEscape {
	switch outcome {
	case quiz.Correct:
		return termio.BoldAnsiEscape().FgColour(termio.TERM_GREEN)
	case quiz.Incorrect:
		return termio.BoldAnsiEscape().FgColour(termio.TERM_RED)
	case quiz.Prohibited:
		return termio.BoldAnsiEscape().FgColour(termio.TERM_YELLOW)
	default:
		return termio.BoldAnsiEscape().FgColour(termio.TERM_MAGENTA)
	}
}

// Escape used to display a given truth value.
func truthEscape(value bool) termio.AnsiEscape {
	if value {
		return termio.NewAnsiEscape().FgColour(termio.TERM_GREEN)
	}
	//
	return termio.NewAnsiEscape().FgColour(termio.TERM_RED)
}

func bit(value bool) string {
	if value {
		return "1"
	}
	//
	return "0"
}
