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

	"github.com/google/go-cmp/cmp"

	"github.com/expectlib/expect/catalog"
	"github.com/expectlib/expect/comparison"
	"github.com/expectlib/expect/failure"
)

// deepEqual is the one deep comparison used across the catalog, always
// parameterized by the registered cmp options.
func deepEqual(a, b any) bool {
	return cmp.Equal(a, b, catalog.CmpOptions()...)
}

// matchEqual asserts deep equality between subject and the single
// expected argument.
func matchEqual(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("equal", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	return comparison.Resultf(deepEqual(subject, args[0]), "to equal %s", failure.Repr(args[0]))
}

// matchDifferent is the explicit inverse of matchEqual, for chains that
// read better without a negation word.
func matchDifferent(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("different", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	return comparison.Resultf(!deepEqual(subject, args[0]), "to differ from %s", failure.Repr(args[0]))
}

// matchBe asserts shallow identity: `==` for comparable values, pointer
// identity for reference kinds.
func matchBe(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("be", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	return comparison.Resultf(identical(subject, args[0]), "to be %s", failure.Repr(args[0]))
}

// matchResemble is matchEqual with a full diff in the failure message,
// for composite values where "to equal <blob>" is unreadable.
func matchResemble(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("resemble", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	opts := catalog.CmpOptions()
	if cmp.Equal(subject, args[0], opts...) {
		return comparison.Outcome{Ok: true, Fragment: "to resemble " + failure.Repr(args[0])}, nil
	}
	diff := cmp.Diff(args[0], subject, opts...)
	return comparison.Resultf(false,
		"to resemble %s\ndiff (-want +got):\n%s", failure.Repr(args[0]), diff)
}

func identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	// Uncomparable kinds (slices, maps, funcs): identity means sharing
	// the same referenced data.
	switch va, vb := reflect.ValueOf(a), reflect.ValueOf(b); va.Kind() {
	case reflect.Slice:
		return va.Len() == vb.Len() && va.UnsafePointer() == vb.UnsafePointer()
	case reflect.Map, reflect.Func:
		return va.UnsafePointer() == vb.UnsafePointer()
	}
	return false
}
