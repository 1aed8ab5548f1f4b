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
	"runtime/debug"

	"github.com/logicquiz/go-logicquiz/pkg/config"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// Settings loaded before any command runs.
var settings *config.Config

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "go-logicquiz",
	Short: "A quiz engine for propositional logic and boolean algebra.",
	Long: `A toolbox for checking answers to, and generating, questions on
	propositional logic, boolean algebra and disjunctive normal form.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		var err error
		//
		if settings, err = config.Load(GetString(cmd, "config"), cmd.Flags()); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		// Configure log level
		if settings.Verbose {
			log.SetLevel(log.DebugLevel)
		}
		//
		if settings.File != "" {
			log.Debugf("read configuration from %s", settings.File)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("go-logicquiz ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().String("config", "", "read configuration from file (default logicquiz.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("ansi-escapes", true, "use ANSI escapes (e.g. colour) when writing to a terminal")
	rootCmd.PersistentFlags().Uint("max-letters", 16, "maximum number of letters an answer may use")
}
