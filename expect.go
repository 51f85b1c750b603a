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

package expect

import (
	"github.com/expectlib/expect/catalog"
	"github.com/expectlib/expect/comparison"
	"github.com/expectlib/expect/matchers"
)

// Expectation wraps one value under test for the duration of one
// assertion chain. Expectations are cheap, single-use and not safe for
// concurrent use; construct one per assertion.
type Expectation struct {
	subject        any
	raiseOnFailure bool
	customMessage  string
	registry       *catalog.Registry

	// Chain state. Negation is monotonic: once a chain word sets it,
	// it stays set for every later invocation on this wrapper.
	negated      bool
	selectedName string
	selected     comparison.Func
}

// Option configures an Expectation at construction time.
type Option func(*Expectation)

// RaiseOnFailure selects between raising mode (Call returns the failure
// as an error) and non-raising mode (Call returns a Result tuple).
// Raising mode is the default.
func RaiseOnFailure(raise bool) Option {
	return func(e *Expectation) { e.raiseOnFailure = raise }
}

// MessageTemplate replaces the generated failure message with a custom
// template; see failure.Expand for the available placeholders.
func MessageTemplate(template string) Option {
	return func(e *Expectation) { e.customMessage = template }
}

// WithCatalog selects the matcher registry for this expectation instead
// of the default catalog.
func WithCatalog(reg *catalog.Registry) Option {
	return func(e *Expectation) { e.registry = reg }
}

// Value wraps a subject in a raising-mode expectation.
func Value(subject any, opts ...Option) *Expectation {
	e := &Expectation{
		subject:        subject,
		raiseOnFailure: true,
		registry:       matchers.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Returning wraps a subject in a non-raising expectation: terminal calls
// yield a Result tuple instead of a failure error.
func Returning(subject any, opts ...Option) *Expectation {
	return Value(subject, append([]Option{RaiseOnFailure(false)}, opts...)...)
}

// WithMessage wraps a subject with a custom failure message template.
func WithMessage(message string, subject any, opts ...Option) *Expectation {
	return Value(subject, append([]Option{MessageTemplate(message)}, opts...)...)
}

// Subject returns the wrapped value.
func (e *Expectation) Subject() any { return e.subject }

// RaisesOnFailure reports the mode fixed at construction.
func (e *Expectation) RaisesOnFailure() bool { return e.raiseOnFailure }

// Result is the outcome tuple of a non-raising expectation. Message is
// empty exactly when OK is true.
type Result struct {
	OK      bool
	Message string
}
