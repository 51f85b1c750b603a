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
	"math"
	"reflect"
	"strings"

	"github.com/expectlib/expect/comparison"
	"github.com/expectlib/expect/failure"
)

// matchInclude asserts the subject contains every needle: a substring of
// a string subject, an element of a slice or array, or a key of a map.
func matchInclude(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedAtLeast("include", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	all := true
	for _, needle := range args {
		ok, err := contains("include", subject, needle)
		if err != nil {
			return comparison.Outcome{}, err
		}
		all = all && ok
	}
	return comparison.Resultf(all, "to include %s", failure.ReprAll(args))
}

// matchWithin asserts the subject is an element of the given sequence, or
// of the argument list itself when several atoms are supplied.
func matchWithin(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedAtLeast("within", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	sequence := args[0]
	if len(args) > 1 {
		sequence = args
	}
	ok, err := contains("within", sequence, subject)
	if err != nil {
		return comparison.Outcome{}, err
	}
	return comparison.Resultf(ok, "to be included in %s", failure.Repr(sequence))
}

// matchSubMap asserts that every key of the expected map is present in
// the subject map with a deeply equal value. Extra keys in the subject
// are allowed.
func matchSubMap(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("sub_map", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	sv := reflect.ValueOf(subject)
	if subject == nil || sv.Kind() != reflect.Map {
		// An inner expectation failure, not misuse: the subject is the
		// wrong shape, which is exactly what the assertion reports.
		return comparison.Outcome{}, failure.New(
			failure.Compose(subject, false, fmt.Sprintf("to be a map, but it is of type %T", subject)))
	}
	ev := reflect.ValueOf(args[0])
	if args[0] == nil || ev.Kind() != reflect.Map {
		return comparison.Misusef("sub_map: expected a map argument, got %T", args[0])
	}

	ok := true
	iter := ev.MapRange()
	for iter.Next() {
		if !iter.Key().Type().AssignableTo(sv.Type().Key()) {
			ok = false
			break
		}
		got := sv.MapIndex(iter.Key())
		if !got.IsValid() || !deepEqual(got.Interface(), iter.Value().Interface()) {
			ok = false
			break
		}
	}
	return comparison.Resultf(ok, "to contain map %s", failure.Repr(args[0]))
}

// matchEmpty asserts the subject has length zero.
func matchEmpty(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("empty", 0, args); err != nil {
		return comparison.Outcome{}, err
	}
	n, err := lengthOf("empty", subject)
	if err != nil {
		return comparison.Outcome{}, err
	}
	return comparison.Resultf(n == 0, "to be empty")
}

// matchLength asserts the subject's length.
func matchLength(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("length", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	want, ok := toInt(args[0])
	if !ok {
		return comparison.Misusef("length: expected an integer argument, got %T", args[0])
	}
	n, err := lengthOf("length", subject)
	if err != nil {
		return comparison.Outcome{}, err
	}
	return comparison.Resultf(n == want, "to have length %d, but found length %d", want, n)
}

// contains reports whether haystack holds needle: substring, slice or
// array element, or map key. Misuse errors carry the calling matcher's
// name.
func contains(name string, haystack, needle any) (bool, error) {
	if haystack == nil {
		return false, fmt.Errorf("%s: cannot search inside nil", name)
	}
	hv := reflect.ValueOf(haystack)
	switch hv.Kind() {
	case reflect.String:
		s, ok := needle.(string)
		if !ok {
			return false, fmt.Errorf("%s: cannot search for %T inside a string", name, needle)
		}
		return strings.Contains(hv.String(), s), nil
	case reflect.Slice, reflect.Array:
		for i := 0; i < hv.Len(); i++ {
			if deepEqual(hv.Index(i).Interface(), needle) {
				return true, nil
			}
		}
		return false, nil
	case reflect.Map:
		iter := hv.MapRange()
		for iter.Next() {
			if deepEqual(iter.Key().Interface(), needle) {
				return true, nil
			}
		}
		return false, nil
	}
	return false, fmt.Errorf("%s: cannot search inside %T", name, haystack)
}

func lengthOf(name string, v any) (int, error) {
	if v == nil {
		return 0, fmt.Errorf("%s: nil has no length", name)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len(), nil
	}
	return 0, fmt.Errorf("%s: %T has no length", name, v)
}

func toInt(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	}
	return 0, false
}
