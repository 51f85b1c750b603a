// Copyright 2026 The Expectlib Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package failure holds the error type produced by failed expectations,
// plus the message composition rules shared by every dispatch path.
//
// A Failure carries exactly two things: the fully composed, human-readable
// message (its Error() text) and the sanitized stack it was raised from.
// There are intentionally no further structured fields.
package failure

import (
	"strings"
)

// Frame is one entry of a Failure's retained call stack.
type Frame struct {
	// Function is the fully qualified function name
	// (e.g. "github.com/expectlib/expect.(*Expectation).Call").
	Function string

	// Filename is the source file of the frame.
	Filename string

	// Lineno is the line number within Filename.
	Lineno int
}

// Failure is the error raised (or returned, in non-raising mode) when an
// expectation's predicate disagrees with its expected truth value.
type Failure struct {
	message string
	stack   []Frame
}

// New returns a Failure whose Error() text is exactly message.
//
// Matchers that validate their inputs with an inner expectation return the
// inner *Failure unchanged; dispatch recognizes the type and propagates the
// message as-is instead of composing a second "Expect ..." around it.
func New(message string) *Failure {
	return &Failure{message: message}
}

// Error returns the composed expectation message, nothing more.
func (f *Failure) Error() string { return f.message }

// Stack returns the retained call stack, innermost frame first.
//
// After sanitization (the default) this is a single library entry frame
// followed by the caller's frames; see the expect package's
// WithFullBacktraces for the unsanitized form.
func (f *Failure) Stack() []Frame { return f.stack }

// SetStack attaches the retained call stack. The stack is attached at most
// once: a Failure passing through an outer dispatch keeps the stack from
// the inner one, so nested expectations are not double-sanitized.
func (f *Failure) SetStack(stack []Frame) {
	if f.stack == nil {
		f.stack = stack
	}
}

// longSubjectLen is the rendering length past which the subject gets its
// own line in the composed message. Purely presentational.
const longSubjectLen = 80

// Compose builds the default failure message:
//
//	Expect <subject> [not ]<fragment>
//
// Long or multi-line subject renderings are separated from the rest by
// a line break instead of a space, for terminal readability.
func Compose(subject any, negated bool, fragment string) string {
	rendered := Repr(subject)

	sep := " "
	if len(rendered) > longSubjectLen || strings.Contains(rendered, "\n") {
		sep = "\n"
	}

	var b strings.Builder
	b.WriteString("Expect ")
	b.WriteString(rendered)
	b.WriteString(sep)
	if negated {
		b.WriteString("not ")
	}
	b.WriteString(fragment)
	return b.String()
}

// Expand formats a caller-supplied message template.
//
// Recognized placeholders:
//
//	{actual}            plain rendering of the subject (no quoting)
//	{negation}          "not " when the expectation was negated, else ""
//	{fragment}          the matcher's message fragment
//	{assertion_message} the fully composed default message
//
// Templates may ignore any or all of these; unknown text passes through
// untouched, so templates containing user data are safe to expand.
func Expand(template string, subject any, negated bool, fragment, assertionMessage string) string {
	negation := ""
	if negated {
		negation = "not "
	}
	return strings.NewReplacer(
		"{actual}", Plain(subject),
		"{negation}", negation,
		"{fragment}", fragment,
		"{assertion_message}", assertionMessage,
	).Replace(template)
}
