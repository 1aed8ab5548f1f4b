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
package quiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/logicquiz/go-logicquiz/pkg/formula"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// GeneratedSource identifies questions produced by a Generator.
const GeneratedSource = "randomly generated"

// DefaultDerivations is the default number of placeholder rewrites applied
// when generating a formula.
const DefaultDerivations = 2

// ErrUnknownKind is returned when decoding an unrecognised question kind.
var ErrUnknownKind = errors.New("unknown question kind")

// Kind identifies one of the varieties of generated question.
type Kind uint8

const (
	// PropEquivalent asks for a propositional formula, either translating a
	// sentence or restating a given formula.
	PropEquivalent Kind = iota
	// BoolEquivalent is PropEquivalent for boolean algebra.
	BoolEquivalent
	// PropTruthTable asks for a propositional formula matching a truth table.
	PropTruthTable
	// BoolTruthTable is PropTruthTable for boolean algebra.
	BoolTruthTable
	// DNFConversion asks for a propositional formula to be restated in
	// disjunctive normal form.
	DNFConversion
)

// Kinds lists every question kind.
var Kinds = []Kind{PropEquivalent, BoolEquivalent, PropTruthTable, BoolTruthTable, DNFConversion}

var kindNames = []string{"prop-equivalent", "bool-equivalent", "prop-truth-table", "bool-truth-table", "dnf-conversion"}

// ParseKind identifies the question kind with a given name.
func ParseKind(name string) (Kind, error) {
	if i := slices.Index(kindNames, name); i >= 0 {
		return Kind(i), nil
	}
	//
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, name)
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	//
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if int(k) >= len(kindNames) {
		return nil, fmt.Errorf("%w %d", ErrUnknownKind, uint8(k))
	}
	//
	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err == nil {
		*k = kind
	}
	//
	return err
}

// Templates which may replace the placeholder F.  A placeholder L stands for a
// letter.
var (
	propPalette = []string{
		"-L", "F ^ F", "F < F", "F -> F", "F <-> F",
		"(F ^ F)", "(F < F)", "(F -> F)", "(F <-> F)",
		"-(F ^ F)", "-(F < F)", "-(F -> F)", "-(F <-> F)",
	}
	boolPalette = []string{
		"-L", "F . F", "F + F", "(F . F)", "(F + F)", "-(F . F)", "-(F + F)",
	}
)

// Option configures a Generator.
type Option func(*Generator)

// WithDerivations sets the number of placeholder rewrites applied when
// generating a formula.
func WithDerivations(n uint) Option {
	return func(g *Generator) {
		g.derivations = n
	}
}

// WithKinds restricts the kinds of question drawn by Generate.  An empty list
// leaves every kind available.
func WithKinds(kinds ...Kind) Option {
	return func(g *Generator) {
		if len(kinds) > 0 {
			g.kinds = kinds
		}
	}
}

// Generator produces random formulae and questions.  All randomness is drawn
// from the given source, hence a seeded source gives reproducible output.  A
// generator is not safe for concurrent use.
type Generator struct {
	rng         *rand.Rand
	derivations uint
	kinds       []Kind
}

// NewGenerator constructs a generator drawing from a given source.
func NewGenerator(rng *rand.Rand, opts ...Option) *Generator {
	g := &Generator{rng, DefaultDerivations, Kinds}
	//
	for _, opt := range opts {
		opt(g)
	}
	//
	return g
}

// Formula generates the text of a random formula in a given dialect, along
// with the sorted distinct letters it uses.  DNF yields a propositional
// formula, since every such formula has a DNF restatement to ask for.
func (g *Generator) Formula(d formula.Dialect) (string, []string) {
	var (
		text     = "F"
		palette  = propPalette
		alphabet = d.Alphabet()
		letters  []string
	)
	//
	if d == formula.BooleanAlgebra {
		palette = boolPalette
	}
	// Each derivation rewrites the leftmost placeholder (if any remain).
	for range g.derivations {
		template := palette[g.rng.IntN(len(palette))]
		text = strings.Replace(text, "F", template, 1)
	}
	//
	text = strings.ReplaceAll(text, "F", "L")
	// Restrict letters to a random prefix of the alphabet
	k := 1 + g.rng.IntN(len(alphabet))
	//
	for strings.Contains(text, "L") {
		l := alphabet[g.rng.IntN(k)]
		text = strings.Replace(text, "L", l, 1)
		letters = append(letters, l)
	}
	//
	slices.Sort(letters)
	letters = slices.Compact(letters)
	//
	log.Debugf("generated %s formula %q over %v", d, text, letters)
	//
	return text, letters
}

// Translate renders a formula as an English sentence, using a randomly chosen
// pair of phrases.
func (g *Generator) Translate(f formula.Formula, letters []string) (string, error) {
	return Translate(f, letters, PhrasePairs[g.rng.IntN(len(PhrasePairs))])
}

// Generate a question of a randomly chosen kind.
func (g *Generator) Generate() Question {
	return g.GenerateKind(g.kinds[g.rng.IntN(len(g.kinds))])
}

// GenerateKind generates a question of a given kind.
func (g *Generator) GenerateKind(kind Kind) Question {
	var (
		q      = Question{ID: g.newID(), Source: GeneratedSource, Kind: kind}
		forced = false
	)
	//
	switch kind {
	case PropEquivalent, BoolEquivalent:
		q.Dialect = kindDialect(kind)
		text, letters := g.Formula(q.Dialect)
		q.Formula = text
		//
		if len(letters) == 2 {
			sentence, err := g.Translate(mustParse(text, q.Dialect), letters)
			if err != nil {
				panic(err)
			}
			//
			q.Prompt = fmt.Sprintf("Translate the following sentence into a %s formula: %s", subject(q.Dialect), sentence)
		} else {
			// Blocks would hand over the prohibited formula itself
			q.Prohibited, forced, q.InputMethod = text, true, Text
			q.Prompt = fmt.Sprintf("Give an equivalent %s formula to \\(%s\\)", subject(q.Dialect), LaTeX(text, q.Dialect))
		}
	case PropTruthTable, BoolTruthTable:
		q.Dialect = kindDialect(kind)
		text, letters := g.Formula(q.Dialect)
		q.Formula = text
		table := TruthTable(mustParse(text, q.Dialect), letters)
		q.Prompt = fmt.Sprintf("Give a %s formula for the following truth table:\n%s", subject(q.Dialect), table.HTML())
	case DNFConversion:
		q.Dialect = formula.DNF
		q.Formula, _ = g.Formula(formula.Propositional)
		forced, q.InputMethod = true, Text
		q.Prompt = fmt.Sprintf("Give the following propositional logic formula in DNF: \\(%s\\)",
			LaTeX(q.Formula, formula.Propositional))
	default:
		panic(fmt.Sprintf("unknown question kind %d", kind))
	}
	//
	if !forced {
		q.InputMethod = InputMethod(g.rng.IntN(2))
	}
	//
	return q
}

// GenerateSet generates a set of n random questions using up to the given
// number of concurrent jobs.  Each question draws from its own source, seeded
// from this generator and the question's index, so the set depends only on
// this generator's state and not on scheduling.
func (g *Generator) GenerateSet(ctx context.Context, n uint, jobs uint) (*QuestionSet, error) {
	var (
		seed      = g.rng.Uint64()
		questions = make([]Question, n)
		set       = NewQuestionSet(g.newID(), "Random Question Set")
	)
	//
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(int(max(jobs, 1)))
	//
	for i := range n {
		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}
			//
			worker := NewGenerator(rand.New(rand.NewPCG(seed, uint64(i))),
				WithDerivations(g.derivations), WithKinds(g.kinds...))
			questions[i] = worker.Generate()
			//
			return nil
		})
	}
	//
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("generating questions: %w", err)
	}
	//
	for _, q := range questions {
		if err := set.Add(q); err != nil {
			return nil, err
		}
	}
	//
	return set, nil
}

// Identifiers are drawn from the generator's own source, so they are
// reproducible too.
func (g *Generator) newID() string {
	return uuid.Must(uuid.NewRandomFromReader(randReader{g.rng})).String()
}

// randReader adapts a random source into an io.Reader.
type randReader struct {
	rng *rand.Rand
}

func (r randReader) Read(bytes []byte) (int, error) {
	for i := range bytes {
		bytes[i] = byte(r.rng.Uint32())
	}
	//
	return len(bytes), nil
}

func kindDialect(kind Kind) formula.Dialect {
	if kind == BoolEquivalent || kind == BoolTruthTable {
		return formula.BooleanAlgebra
	}
	//
	return formula.Propositional
}

func subject(d formula.Dialect) string {
	if d == formula.BooleanAlgebra {
		return "boolean algebra"
	}
	//
	return "propositional logic"
}

// Generated formulae are well-formed by construction.
func mustParse(text string, d formula.Dialect) formula.Formula {
	f, err := formula.Parse(text, d)
	if err != nil {
		panic(fmt.Sprintf("generated malformed formula %q: %s", text, err))
	}
	//
	return f
}

var (
	defaultMutex     sync.Mutex
	defaultGenerator = NewGenerator(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
)

// GenerateQuestion generates a random question using a shared, randomly seeded
// generator.  It returns the dialect tag, correct formula, prohibited formula
// (possibly empty), prompt and input method.
func GenerateQuestion() (dialect, correct, prohibited, prompt, inputMethod string) {
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	//
	q := defaultGenerator.Generate()
	//
	return q.Dialect.String(), q.Formula, q.Prohibited, q.Prompt, q.InputMethod.String()
}
