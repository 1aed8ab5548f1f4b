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
package source

import (
	"fmt"
	"strings"
)

// Line provides information about a given line within the original text.
// This includes the line number (counting from 1), and the span of the line
// within the original text.
type Line struct {
	// Original text
	text []rune
	// Span within original text of this line.
	span Span
	// Line number of this line (counting from 1).
	number int
}

// Get the string representing this line.
func (p *Line) String() string {
	return string(p.text[p.span.start:p.span.end])
}

// Number gets the line number of this line, where the first line has line
// number 1.
func (p *Line) Number() int {
	return p.number
}

// Start returns the starting index of this line in the original text.
func (p *Line) Start() int {
	return p.span.start
}

// Length returns the number of characters in this line.
func (p *Line) Length() int {
	return p.span.Length()
}

// Text represents a named piece of input, such as a formula typed in by a user
// or a formula stored in a question.
type Text struct {
	// Name used when reporting errors (e.g. "answer").
	name string
	// Contents of this text.
	contents []rune
}

// NewText constructs a new piece of source text from a given string.
func NewText(name string, input string) *Text {
	// Convert into runes for easier lexing
	return &Text{name, []rune(input)}
}

// Name returns the name associated with this text.
func (s *Text) Name() string {
	return s.name
}

// Contents returns the contents of this text.
func (s *Text) Contents() []rune {
	return s.contents
}

// Slice returns the characters covered by a given span as a string.
func (s *Text) Slice(span Span) string {
	start, end := min(span.start, len(s.contents)), min(span.end, len(s.contents))
	return string(s.contents[start:end])
}

// SyntaxError constructs a syntax error over a given span of this text with a
// given message.
func (s *Text) SyntaxError(span Span, msg string) *SyntaxError {
	return &SyntaxError{s, span, msg}
}

// FindFirstEnclosingLine determines the first line in this text which encloses
// the start of a span.  Observe that, if the position is beyond the bounds of
// the text then the last physical line is returned.
func (s *Text) FindFirstEnclosingLine(span Span) Line {
	// Index identifies the current position within the original text.
	index := span.start
	// Num records the line number, counting from 1.
	num := 1
	// Start records the starting offset of the current line.
	start := 0
	// Find the line.
	for i := 0; i < len(s.contents); i++ {
		if i == index {
			end := findEndOfLine(index, s.contents)
			return Line{s.contents, Span{start, end}, num}
		} else if s.contents[i] == '\n' {
			num++
			start = i + 1
		}
	}
	//
	return Line{s.contents, Span{start, len(s.contents)}, num}
}

// SyntaxError is a structured error which retains the index into the original
// text where an error occurred, along with an error message.
type SyntaxError struct {
	text *Text
	// Index range in the text where the error arose.
	span Span
	// Error message being reported
	msg string
}

// Text returns the underlying text that this syntax error covers.
func (p *SyntaxError) Text() *Text {
	return p.text
}

// Span returns the span of the original text on which this error is reported.
func (p *SyntaxError) Span() Span {
	return p.span
}

// Message returns the message to be reported.
func (p *SyntaxError) Message() string {
	return p.msg
}

// Error implements the error interface.
func (p *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d:%s", p.span.Start(), p.span.End(), p.Message())
}

// FirstEnclosingLine determines the first line in the text to which this error
// is associated.
func (p *SyntaxError) FirstEnclosingLine() Line {
	return p.text.FindFirstEnclosingLine(p.span)
}

// Highlight renders this error as a message, followed by the enclosing line,
// followed by a row of carets underneath the offending characters.
func (p *SyntaxError) Highlight() string {
	var (
		builder strings.Builder
		line    = p.FirstEnclosingLine()
		// Carets for an error at EOF still need to be visible.
		width  = max(1, p.span.Length())
		indent = max(0, p.span.start-line.Start())
	)
	//
	fmt.Fprintf(&builder, "%s:%d: %s\n", p.text.name, line.Number(), p.msg)
	builder.WriteString(line.String())
	builder.WriteString("\n")
	builder.WriteString(strings.Repeat(" ", indent))
	builder.WriteString(strings.Repeat("^", width))
	//
	return builder.String()
}

// Find the end of the enclosing line
func findEndOfLine(index int, text []rune) int {
	for i := index; i < len(text); i++ {
		if text[i] == '\n' {
			return i
		}
	}
	// No end in sight!
	return len(text)
}
