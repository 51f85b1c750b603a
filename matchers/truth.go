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
	"reflect"

	"github.com/expectlib/expect/comparison"
)

// matchTrue asserts the subject is exactly the bool true.
func matchTrue(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("true", 0, args); err != nil {
		return comparison.Outcome{}, err
	}
	b, ok := subject.(bool)
	return comparison.Resultf(ok && b, "to be true")
}

// matchFalse asserts the subject is exactly the bool false.
func matchFalse(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("false", 0, args); err != nil {
		return comparison.Outcome{}, err
	}
	b, ok := subject.(bool)
	return comparison.Resultf(ok && !b, "to be false")
}

// matchNil asserts the subject is nil, either untyped or a nil value of
// a nillable kind. Non-nillable values are simply not nil.
func matchNil(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("nil", 0, args); err != nil {
		return comparison.Outcome{}, err
	}
	return comparison.Resultf(isNil(subject), "to be nil")
}

// matchExist asserts the subject is not nil.
func matchExist(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("exist", 0, args); err != nil {
		return comparison.Outcome{}, err
	}
	return comparison.Resultf(!isNil(subject), "to exist (not be nil)")
}

// matchTrueish asserts Go truthiness: non-nil, non-zero, and non-empty
// for types with a length.
func matchTrueish(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("trueish", 0, args); err != nil {
		return comparison.Outcome{}, err
	}
	return comparison.Resultf(isTrueish(subject), "to be trueish")
}

// matchFalseish is the complement of matchTrueish.
func matchFalseish(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("falseish", 0, args); err != nil {
		return comparison.Outcome{}, err
	}
	return comparison.Resultf(!isTrueish(subject), "to be falseish")
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// isTrueish mirrors the truth rules Go's template engine applies: the
// zero value of any type is false, as is an empty string, slice, map,
// array or channel.
func isTrueish(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Ptr, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return !rv.IsZero()
}
