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

package matchers

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/expectlib/expect/comparison"
	"github.com/expectlib/expect/failure"
)

// matchRegexp asserts a string subject is matched by the argument
// pattern. A pattern that does not compile is matcher misuse, not a
// failed expectation.
func matchRegexp(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("match", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	s, err := stringSubject(subject)
	if err != nil {
		return comparison.Outcome{}, err
	}
	pattern, ok := args[0].(string)
	if !ok {
		return comparison.Misusef("match: expected a string pattern, got %T", args[0])
	}
	re, compileErr := regexp.Compile(pattern)
	if compileErr != nil {
		return comparison.Outcome{}, fmt.Errorf("match: bad pattern %q: %w", pattern, compileErr)
	}
	return comparison.Resultf(re.MatchString(s), "to be matched by regexp %q", pattern)
}

// matchStartWith asserts a string subject has the given prefix.
func matchStartWith(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("start_with", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	s, err := stringSubject(subject)
	if err != nil {
		return comparison.Outcome{}, err
	}
	prefix, ok := args[0].(string)
	if !ok {
		return comparison.Misusef("start_with: expected a string argument, got %T", args[0])
	}
	return comparison.Resultf(strings.HasPrefix(s, prefix), "to start with %q", prefix)
}

// matchEndWith asserts a string subject has the given suffix.
func matchEndWith(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("end_with", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	s, err := stringSubject(subject)
	if err != nil {
		return comparison.Outcome{}, err
	}
	suffix, ok := args[0].(string)
	if !ok {
		return comparison.Misusef("end_with: expected a string argument, got %T", args[0])
	}
	return comparison.Resultf(strings.HasSuffix(s, suffix), "to end with %q", suffix)
}

// stringSubject narrows the subject to a string. A non-string subject is
// reported as an inner expectation failure so its message explains the
// shape mismatch directly.
func stringSubject(subject any) (string, error) {
	if s, ok := subject.(string); ok {
		return s, nil
	}
	return "", failure.New(
		failure.Compose(subject, false, fmt.Sprintf("to be a string, but it is of type %T", subject)))
}
