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
	"sync"

	"github.com/expectlib/expect/catalog"
)

// Default returns the process-wide default catalog, built once.
//
// Matcher names double as chain words, so each entry carries the alias
// spellings that keep an assertion readable with or without sentence
// glue in front of it: `equals` for direct calls, `to_equal` for chains.
// The trailing-underscore variants (`is_`, `in_`) exist for words that
// would otherwise be unusable as identifiers in other hosts; lookup also
// retries with the underscore appended, so the chain word `is` resolves
// to `is_`.
var Default = sync.OnceValue(func() *catalog.Registry {
	return catalog.New().
		Register(matchTrue, "true", "is_true").
		Register(matchFalse, "false", "is_false").
		Register(matchNil, "nil", "nil_", "none", "is_none", "is_nil", "be_nil").
		Register(matchExist, "exist", "exists", "to_exist").
		Register(matchEqual, "equal", "equals", "to_equal", "is_equal", "eq").
		Register(matchDifferent, "different", "is_different", "differs", "ne").
		Register(matchBe, "be", "same", "identical", "is_",
			"be_same", "is_same", "be_identical", "is_identical", "to_be").
		Register(matchResemble, "resemble", "resembles", "to_resemble", "deep_equal").
		Register(matchTrueish, "trueish", "truthy", "truish", "is_trueish", "is_truthy").
		Register(matchFalseish, "falseish", "falsy", "falsish", "is_falseish", "is_falsy").
		Register(matchInclude, "include", "includes", "contain", "contains",
			"to_contain", "does_include", "to_include", "has_key").
		Register(matchWithin, "within", "in_", "included_in", "is_within", "is_included_in").
		Register(matchSubMap, "sub_map", "submap", "includes_map", "contains_map",
			"has_submap", "have_submap", "to_have_submap").
		Register(matchHaveField, "have_field", "has_field", "has_attribute",
			"has_attr", "have_attribute", "have_attr").
		Register(matchRegexp, "match", "matching", "matches", "to_match", "is_matching").
		Register(matchStartWith, "start_with", "starts_with", "startswith", "to_start_with").
		Register(matchEndWith, "end_with", "ends_with", "endswith", "to_end_with").
		Register(matchPanic, "panic", "panics", "to_panic", "panicking", "is_panicking",
			"raise_", "raises", "raising", "to_raise", "throw", "throws", "to_throw").
		Register(matchErrLike, "err_like", "error_like", "to_err_like").
		Register(matchEmpty, "empty", "is_empty").
		Register(matchInstanceOf, "instance_of", "instanceof", "is_instance",
			"is_instance_of", "is_a", "kind_of").
		Register(matchImplement, "implement", "implements", "is_implementing").
		Register(matchCallable, "callable", "is_callable").
		Register(matchLength, "length", "len", "count", "have_length", "has_length", "has_count").
		Register(matchGreaterThan, "greater_than", "greater", "bigger", "larger",
			"larger_than", "is_greater_than", "is_greater", "gt").
		Register(matchGreaterOrEqual, "greater_or_equal", "greater_or_equal_than",
			"is_greater_or_equal", "is_greater_or_equal_than", "at_least", "ge").
		Register(matchLessThan, "less_than", "less", "smaller", "smaller_than",
			"lesser", "lesser_than", "is_less_than", "is_smaller_than", "lt").
		Register(matchLessOrEqual, "less_or_equal", "less_or_equal_than",
			"smaller_or_equal", "lesser_or_equal", "is_less_or_equal", "at_most", "le").
		Register(matchBetween, "between", "within_range", "is_between", "is_within_range").
		Register(matchCloseTo, "close_to", "close", "about", "about_equal", "about_equals",
			"almost_equal", "almost_equals", "is_close_to", "is_about", "is_almost_equal").
		Build()
})
