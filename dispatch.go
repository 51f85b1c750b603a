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
	"errors"
	"fmt"

	"github.com/expectlib/expect/failure"
)

// MatcherNotFoundError reports a terminal invocation whose chain never
// selected a catalog entry — a typo'd matcher name, or no word at all.
// It is always surfaced by panicking, in both modes: a mistyped matcher
// is a bug in the test, not a failed expectation.
type MatcherNotFoundError struct {
	// Name is the last chain word, "" if the chain had none.
	Name string
}

func (m *MatcherNotFoundError) Error() string {
	if m.Name == "" {
		return "expect: invoked without selecting a matcher"
	}
	return fmt.Sprintf("expect: tried to call non existing matcher %q", m.Name)
}

// Call is the terminal invocation of a chain, honoring the wrapper's
// mode.
//
// Raising mode: on success Call returns whatever the matcher handed back
// (usually nil; the panic matcher returns the recovered payload) and a
// nil error; on a failed expectation it returns a *failure.Failure whose
// Error() text is the composed message.
//
// Non-raising mode: Call returns a Result tuple and a nil error for both
// outcomes.
//
// In either mode, matcher misuse errors come back verbatim in the error
// slot and an unresolved matcher panics with *MatcherNotFoundError.
func (e *Expectation) Call(args ...any) (any, error) {
	value, fail, err := e.invoke(args)
	if err != nil {
		return nil, err
	}
	if e.raiseOnFailure {
		if fail != nil {
			return nil, fail
		}
		return value, nil
	}
	if fail != nil {
		return Result{OK: false, Message: fail.Error()}, nil
	}
	return Result{OK: true, Message: ""}, nil
}

// Test is the terminal invocation in tuple form, regardless of mode:
// (true, "") on success, (false, message) on a failed expectation.
//
// Test has no error slot, so matcher misuse propagates by panicking; it
// is never folded into the tuple.
func (e *Expectation) Test(args ...any) (bool, string) {
	_, fail, err := e.invoke(args)
	if err != nil {
		panic(err)
	}
	if fail != nil {
		return false, fail.Error()
	}
	return true, ""
}

// invoke is the one dispatch path every entry point funnels through:
// named calls, the tuple form, typed sugar and the operator-style
// shorthand all sanitize identically because they all end up here.
func (e *Expectation) invoke(args []any) (value any, fail *failure.Failure, err error) {
	if e.selected == nil {
		panic(&MatcherNotFoundError{Name: e.selectedName})
	}

	outcome, err := e.selected(e.subject, args)
	if err != nil {
		var inner *failure.Failure
		if errors.As(err, &inner) {
			// An inner expectation failed inside the matcher. Its message
			// is already composed; attach a stack if it has none and
			// propagate as-is.
			inner.SetStack(captureStack())
			return nil, inner, nil
		}
		return nil, nil, err
	}

	if outcome.Ok != e.negated {
		return outcome.Value, nil, nil
	}

	message := failure.Compose(e.subject, e.negated, outcome.Fragment)
	if e.customMessage != "" {
		message = failure.Expand(e.customMessage, e.subject, e.negated, outcome.Fragment, message)
	}
	f := failure.New(message)
	f.SetStack(captureStack())
	return nil, f, nil
}
