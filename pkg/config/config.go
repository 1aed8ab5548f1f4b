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

// Package config loads the settings shared by the command-line tools.  Settings
// are layered, with later layers taking precedence: built-in defaults, then a
// YAML file, then LOGICQUIZ_ environment variables, and finally any command
// line flags which were explicitly set.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/logicquiz/go-logicquiz/pkg/quiz"
	"github.com/spf13/pflag"
)

// DefaultFile is the configuration file read from the working directory, when
// no other is given.
const DefaultFile = "logicquiz.yaml"

// EnvPrefix prefixes the environment variables holding configuration.  For
// example, LOGICQUIZ_MAX_LETTERS sets max_letters.
const EnvPrefix = "LOGICQUIZ_"

// Output formats for generated question sets.
var Outputs = []string{"text", "json", "yaml"}

// ErrInvalid is returned when a loaded configuration holds an unusable value.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the loaded settings.
type Config struct {
	Verbose bool `koanf:"verbose"`
	// Seed for random generation, where zero means a fresh random seed.
	Seed        uint64 `koanf:"seed"`
	Derivations uint   `koanf:"derivations"`
	MaxLetters  uint   `koanf:"max_letters"`
	Output      string `koanf:"output"`
	Count       uint   `koanf:"count"`
	Jobs        uint   `koanf:"jobs"`
	AnsiEscapes bool   `koanf:"ansi_escapes"`
	HistoryFile string `koanf:"history_file"`
	// File from which configuration was read, or empty if none.
	File string `koanf:"-"`
}

// Defaults returns the built-in settings.
func Defaults() map[string]any {
	history := ""
	if home, err := os.UserHomeDir(); err == nil {
		history = filepath.Join(home, ".logicquiz_history")
	}
	//
	return map[string]any{
		"verbose":      false,
		"seed":         uint64(0),
		"derivations":  uint(quiz.DefaultDerivations),
		"max_letters":  uint(quiz.DefaultMaxLetters),
		"output":       "text",
		"count":        uint(10),
		"jobs":         uint(runtime.NumCPU()),
		"ansi_escapes": true,
		"history_file": history,
	}
}

// Load reads the configuration from every layer.  An explicitly given file
// must exist, whilst the default file is read only if present.  Flags may be
// nil, otherwise those which were changed are applied with their names
// converted from kebab-case into snake_case.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	//
	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	//
	if cfgFile == "" {
		if _, err := os.Stat(DefaultFile); err == nil {
			cfgFile = DefaultFile
		}
	}
	//
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}
	// LOGICQUIZ_MAX_LETTERS -> max_letters
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}
	//
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			//
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}
	//
	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	//
	cfg.File = cfgFile
	//
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	//
	return &cfg, nil
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	if !slices.Contains(Outputs, c.Output) {
		return fmt.Errorf("%w: output %q (expected one of %s)", ErrInvalid, c.Output, strings.Join(Outputs, ", "))
	} else if c.Jobs == 0 {
		return fmt.Errorf("%w: jobs must be positive", ErrInvalid)
	}
	//
	return nil
}
