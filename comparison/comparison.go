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

// Package comparison defines the contract between the matcher catalog and
// the dispatch engine.
//
// A matcher is a plain function: it evaluates a predicate over the subject
// and its arguments and describes, as a message fragment, what it expected.
// Negation, message composition, and failure propagation are not the
// matcher's business — dispatch owns those.
package comparison

import (
	"fmt"
)

// Outcome is the result of evaluating one matcher.
type Outcome struct {
	// Ok is the raw predicate result, before negation is applied.
	Ok bool

	// Fragment completes the sentence "Expect <subject> [not] ...".
	// Example: `to equal 42`.
	Fragment string

	// Value is optional derived data handed back to the caller on success
	// in raising mode. The panic matcher returns the recovered value here
	// so it can be inspected further.
	Value any
}

// Func evaluates a subject against caller-supplied arguments.
//
// A non-nil error means the matcher could not run at all:
//
//   - a *failure.Failure is an inner expectation failure and propagates
//     with its message unchanged;
//   - any other error is matcher misuse (wrong argument count or type)
//     and propagates verbatim, in both raising and non-raising modes.
//
// Misuse is never reported as a failed expectation.
type Func func(subject any, args []any) (Outcome, error)

// Resultf is a convenience constructor for the common case: a predicate
// result plus a formatted fragment.
func Resultf(ok bool, format string, args ...any) (Outcome, error) {
	return Outcome{Ok: ok, Fragment: fmt.Sprintf(format, args...)}, nil
}

// Misusef reports that the matcher was invoked incorrectly.
func Misusef(format string, args ...any) (Outcome, error) {
	return Outcome{}, fmt.Errorf(format, args...)
}

// NeedArgs returns a misuse error unless exactly want arguments were
// supplied.
func NeedArgs(name string, want int, args []any) error {
	if len(args) != want {
		return fmt.Errorf("%s: takes %d argument(s), got %d", name, want, len(args))
	}
	return nil
}

// NeedAtLeast returns a misuse error unless at least want arguments were
// supplied.
func NeedAtLeast(name string, want int, args []any) error {
	if len(args) < want {
		return fmt.Errorf("%s: takes at least %d argument(s), got %d", name, want, len(args))
	}
	return nil
}
