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
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	//
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, uint(2), cfg.Derivations)
	assert.Equal(t, uint(16), cfg.MaxLetters)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, uint(10), cfg.Count)
	assert.Equal(t, uint64(0), cfg.Seed)
	assert.True(t, cfg.AnsiEscapes)
	assert.Empty(t, cfg.File)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", "max_letters: 4\noutput: json\nseed: 99\n")
	//
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, uint(4), cfg.MaxLetters)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, uint64(99), cfg.Seed)
	assert.Equal(t, path, cfg.File)
	// Untouched keys keep their defaults
	assert.Equal(t, uint(2), cfg.Derivations)
}

func TestLoad_DefaultFile(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, DefaultFile, "count: 3\n")
	t.Chdir(dir)
	//
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, uint(3), cfg.Count)
	assert.Equal(t, DefaultFile, cfg.File)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "config.yaml", "max_letters: 4\n")
	t.Setenv("LOGICQUIZ_MAX_LETTERS", "6")
	//
	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, uint(6), cfg.MaxLetters)
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOGICQUIZ_MAX_LETTERS", "6")
	t.Setenv("LOGICQUIZ_OUTPUT", "yaml")
	//
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Uint("max-letters", 16, "")
	flags.String("output", "text", "")
	require.NoError(t, flags.Parse([]string{"--max-letters=8"}))
	//
	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, uint(8), cfg.MaxLetters)
	// Unchanged flags do not override
	assert.Equal(t, "yaml", cfg.Output)
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("LOGICQUIZ_OUTPUT", "xml")
	//
	_, err := Load("", nil)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{"text", Config{Output: "text", Jobs: 1}, false},
		{"json", Config{Output: "json", Jobs: 4}, false},
		{"yaml", Config{Output: "yaml", Jobs: 1}, false},
		{"unknown output", Config{Output: "csv", Jobs: 1}, true},
		{"no jobs", Config{Output: "text", Jobs: 0}, true},
	}
	//
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func writeConfig(t *testing.T, dir string, name string, contents string) string {
	t.Helper()
	//
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	//
	return path
}
