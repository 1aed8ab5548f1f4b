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
package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_DNF_01(t *testing.T) {
	checkDNF(t, "p", "p")
}

func Test_DNF_02(t *testing.T) {
	checkDNF(t, "p -> q", "(-p ^ -q) < (-p ^ q) < (p ^ q)")
}

func Test_DNF_03(t *testing.T) {
	checkDNF(t, "-(p < q)", "(-p ^ -q)")
}

func Test_DNF_04(t *testing.T) {
	checkDNF(t, "p ^ q ^ r", "(p ^ (q ^ r))")
}

func Test_DNF_05(t *testing.T) {
	checkDNF(t, "p <-> -p < q", "(p ^ q)")
}

func Test_DNF_06(t *testing.T) {
	_, err := ToDNF(mustParse(t, Propositional, "p ^ -p"))
	assert.ErrorIs(t, err, ErrUnsatisfiable)
}

func Test_DNF_07(t *testing.T) {
	assert.True(t, IsDNF(Or{Or{p, Not{q}}, And{p, And{Not{q}, r}}}))
	assert.False(t, IsDNF(Or{p, Or{q, r}}))
	assert.False(t, IsDNF(And{And{p, q}, r}))
	assert.False(t, IsDNF(Not{Not{p}}))
	assert.False(t, IsDNF(Implies{p, q}))
}

// ==================================================================
// Framework
// ==================================================================

func checkDNF(t *testing.T, input string, expected string) {
	t.Helper()
	//
	f := mustParse(t, Propositional, input)
	dnf, err := ToDNF(f)
	require.NoError(t, err)
	//
	text, err := Format(dnf, DNF)
	require.NoError(t, err)
	assert.Equal(t, expected, text)
	// The DNF text must be accepted by the DNF dialect, and mean the same.
	g := mustParse(t, DNF, text)
	assert.Equal(t, dnf, g)
	assert.True(t, AreEquivalent(f, g))
}
