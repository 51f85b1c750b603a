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
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/expectlib/expect/comparison"
	"github.com/expectlib/expect/failure"
)

// matchGreaterThan asserts subject > argument.
func matchGreaterThan(subject any, args []any) (comparison.Outcome, error) {
	return ordered("greater_than", "to be greater than", subject, args, func(c int) bool { return c > 0 })
}

// matchGreaterOrEqual asserts subject >= argument.
func matchGreaterOrEqual(subject any, args []any) (comparison.Outcome, error) {
	return ordered("greater_or_equal", "to be greater or equal than", subject, args, func(c int) bool { return c >= 0 })
}

// matchLessThan asserts subject < argument.
func matchLessThan(subject any, args []any) (comparison.Outcome, error) {
	return ordered("less_than", "to be less than", subject, args, func(c int) bool { return c < 0 })
}

// matchLessOrEqual asserts subject <= argument.
func matchLessOrEqual(subject any, args []any) (comparison.Outcome, error) {
	return ordered("less_or_equal", "to be less or equal than", subject, args, func(c int) bool { return c <= 0 })
}

// matchBetween asserts lower <= subject <= higher, bounds included.
func matchBetween(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("between", 2, args); err != nil {
		return comparison.Outcome{}, err
	}
	low, err := compareOrdered("between", subject, args[0])
	if err != nil {
		return comparison.Outcome{}, err
	}
	high, err := compareOrdered("between", subject, args[1])
	if err != nil {
		return comparison.Outcome{}, err
	}
	return comparison.Resultf(low >= 0 && high <= 0,
		"to be between %s and %s", failure.Repr(args[0]), failure.Repr(args[1]))
}

// matchCloseTo asserts the subject is within maxDelta of expected.
func matchCloseTo(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("close_to", 2, args); err != nil {
		return comparison.Outcome{}, err
	}
	got, ok := toFloat(subject)
	if !ok {
		return comparison.Misusef("close_to: subject %T is not a number", subject)
	}
	want, ok := toFloat(args[0])
	if !ok {
		return comparison.Misusef("close_to: expected value %T is not a number", args[0])
	}
	delta, ok := toFloat(args[1])
	if !ok || delta < 0 {
		return comparison.Misusef("close_to: max delta must be a non-negative number, got %v", args[1])
	}
	inDelta := cmp.Equal(got, want, cmpopts.EquateApprox(0, delta))
	return comparison.Resultf(inDelta,
		"to be close to %s with max delta %s", failure.Repr(args[0]), failure.Repr(args[1]))
}

func ordered(name, phrase string, subject any, args []any, pass func(int) bool) (comparison.Outcome, error) {
	if err := comparison.NeedArgs(name, 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	c, err := compareOrdered(name, subject, args[0])
	if err != nil {
		return comparison.Outcome{}, err
	}
	return comparison.Resultf(pass(c), "%s %s", phrase, failure.Repr(args[0]))
}

// compareOrdered returns -1, 0 or 1 for subject relative to other.
// Numbers order across integer and float kinds; strings order
// lexicographically. Anything else is matcher misuse.
func compareOrdered(name string, subject, other any) (int, error) {
	if a, aok := subject.(string); aok {
		b, bok := other.(string)
		if !bok {
			return 0, fmt.Errorf("%s: cannot order string against %T", name, other)
		}
		switch {
		case a < b:
			return -1, nil
		case a > b:
			return 1, nil
		}
		return 0, nil
	}

	a, aok := toFloat(subject)
	b, bok := toFloat(other)
	if !aok || !bok {
		return 0, fmt.Errorf("%s: cannot order %T against %T", name, subject, other)
	}
	switch {
	case a < b:
		return -1, nil
	case a > b:
		return 1, nil
	}
	return 0, nil
}

func toFloat(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
