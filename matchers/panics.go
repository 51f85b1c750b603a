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
	"errors"
	"fmt"
	"reflect"
	"regexp"

	"github.com/expectlib/expect/comparison"
	"github.com/expectlib/expect/failure"
)

// matchPanic calls the no-argument function under test and asserts it
// panics, optionally with an expected payload.
//
// Arguments:
//
//	()                  any panic passes
//	(expected)          the payload must match expected: a reflect.Type
//	                    matches by dynamic type, an error by errors.Is or
//	                    deep equality, a string is a regexp over the
//	                    payload's text, anything else compares deeply
//	(type, regexp)      both the type and the text must match
//
// The recovered payload is handed back as the outcome's derived value, so
// a raising-mode call returns it for further inspection.
func matchPanic(subject any, args []any) (comparison.Outcome, error) {
	if len(args) > 2 {
		return comparison.Misusef("panic: takes at most 2 arguments, got %d", len(args))
	}

	fn, err := callableSubject(subject)
	if err != nil {
		return comparison.Outcome{}, err
	}

	panicked, recovered := capturePanic(fn)

	expectation := "to panic"
	matched := panicked
	switch len(args) {
	case 1:
		ok, desc, err := payloadMatches(recovered, args[0])
		if err != nil {
			return comparison.Outcome{}, err
		}
		matched = panicked && ok
		expectation += " with " + desc
	case 2:
		t, ok := args[0].(reflect.Type)
		if !ok {
			if t, ok = typeArg(args[0]); !ok {
				return comparison.Misusef("panic: first argument must be a type or sample value, got %T", args[0])
			}
		}
		pattern, ok := args[1].(string)
		if !ok {
			return comparison.Misusef("panic: second argument must be a regexp string, got %T", args[1])
		}
		re, compileErr := regexp.Compile(pattern)
		if compileErr != nil {
			return comparison.Outcome{}, fmt.Errorf("panic: bad pattern %q: %w", pattern, compileErr)
		}
		matched = panicked &&
			recovered != nil && reflect.TypeOf(recovered) == t &&
			re.MatchString(fmt.Sprint(recovered))
		expectation += fmt.Sprintf(" with %s matching %q", t, pattern)
	}

	if panicked {
		expectation += fmt.Sprintf(" but it panicked with:\n\t%s", failure.Repr(recovered))
	} else {
		expectation += " but it did not panic"
	}

	return comparison.Outcome{Ok: matched, Fragment: expectation, Value: recovered}, nil
}

func capturePanic(fn func()) (panicked bool, recovered any) {
	defer func() {
		recovered = recover()
	}()
	panicked = true
	fn()
	panicked = false
	return
}

func payloadMatches(recovered, expected any) (ok bool, desc string, err error) {
	switch want := expected.(type) {
	case reflect.Type:
		return recovered != nil && reflect.TypeOf(recovered) == want, want.String(), nil
	case string:
		re, compileErr := regexp.Compile(want)
		if compileErr != nil {
			return false, "", fmt.Errorf("panic: bad pattern %q: %w", want, compileErr)
		}
		return recovered != nil && re.MatchString(fmt.Sprint(recovered)), fmt.Sprintf("message matching %q", want), nil
	case error:
		got, isErr := recovered.(error)
		matched := (isErr && errors.Is(got, want)) || deepEqual(recovered, expected)
		return matched, failure.Repr(expected), nil
	default:
		return deepEqual(recovered, expected), failure.Repr(expected), nil
	}
}

// callableSubject narrows the subject to a no-argument function. A
// non-callable subject is an inner expectation failure.
func callableSubject(subject any) (func(), error) {
	if fn, ok := subject.(func()); ok {
		return fn, nil
	}
	rv := reflect.ValueOf(subject)
	if subject != nil && rv.Kind() == reflect.Func && rv.Type().NumIn() == 0 {
		return func() { rv.Call(nil) }, nil
	}
	return nil, failure.New(
		failure.Compose(subject, false, fmt.Sprintf("to be callable without arguments, but it is of type %T", subject)))
}
