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

// Typed terminal methods for the default catalog. Each one is a thin
// wrapper selecting a matcher word and invoking it through the same
// dispatch path as Call and Test, so failures carry identical messages
// and identically sanitized stacks whichever spelling was used.
//
// These methods always use the error-return shape: nil on success, the
// *failure.Failure on a failed expectation, matcher misuse verbatim.
// Non-raising callers wanting the tuple use Test or Call instead.

// run selects name and invokes it, discarding any derived value.
func (e *Expectation) run(name string, args ...any) error {
	_, fail, err := e.Word(name).invoke(args)
	if err != nil {
		return err
	}
	if fail != nil {
		return fail
	}
	return nil
}

// Equal asserts deep equality with expected.
func (e *Expectation) Equal(expected any) error { return e.run("equal", expected) }

// Resemble asserts deep equality and reports a diff on failure.
func (e *Expectation) Resemble(expected any) error { return e.run("resemble", expected) }

// Differ asserts the subject is not deeply equal to expected.
func (e *Expectation) Differ(expected any) error { return e.run("different", expected) }

// ToBe asserts shallow identity with expected.
func (e *Expectation) ToBe(expected any) error { return e.run("be", expected) }

// BeTrue asserts the subject is the bool true.
func (e *Expectation) BeTrue() error { return e.run("true") }

// BeFalse asserts the subject is the bool false.
func (e *Expectation) BeFalse() error { return e.run("false") }

// BeNil asserts the subject is nil.
func (e *Expectation) BeNil() error { return e.run("nil") }

// Exist asserts the subject is not nil.
func (e *Expectation) Exist() error { return e.run("exist") }

// BeTrueish asserts Go truthiness (non-zero, non-empty).
func (e *Expectation) BeTrueish() error { return e.run("trueish") }

// BeFalseish asserts the subject is zero or empty.
func (e *Expectation) BeFalseish() error { return e.run("falseish") }

// Contain asserts every needle is contained in the subject.
func (e *Expectation) Contain(needles ...any) error { return e.run("include", needles...) }

// BeWithin asserts the subject is an element of the given sequence or
// atom list.
func (e *Expectation) BeWithin(sequenceOrAtoms ...any) error {
	return e.run("within", sequenceOrAtoms...)
}

// ContainSubMap asserts every key of expected is present in the subject
// map with a deeply equal value.
func (e *Expectation) ContainSubMap(expected any) error { return e.run("sub_map", expected) }

// HaveField asserts a struct subject has every named field or method.
func (e *Expectation) HaveField(names ...any) error { return e.run("have_field", names...) }

// MatchRegexp asserts a string subject matches pattern.
func (e *Expectation) MatchRegexp(pattern string) error { return e.run("match", pattern) }

// StartWith asserts a string subject has the prefix.
func (e *Expectation) StartWith(prefix string) error { return e.run("start_with", prefix) }

// EndWith asserts a string subject has the suffix.
func (e *Expectation) EndWith(suffix string) error { return e.run("end_with", suffix) }

// BeEmpty asserts the subject has length zero.
func (e *Expectation) BeEmpty() error { return e.run("empty") }

// BeInstanceOf asserts the subject's dynamic type matches one of the
// samples or reflect.Types.
func (e *Expectation) BeInstanceOf(types ...any) error { return e.run("instance_of", types...) }

// Implement asserts the subject satisfies every argument interface.
func (e *Expectation) Implement(ifaces ...any) error { return e.run("implement", ifaces...) }

// BeCallable asserts the subject is a function.
func (e *Expectation) BeCallable() error { return e.run("callable") }

// HaveLength asserts the subject's length.
func (e *Expectation) HaveLength(n int) error { return e.run("length", n) }

// BeGreaterThan asserts subject > v.
func (e *Expectation) BeGreaterThan(v any) error { return e.run("greater_than", v) }

// BeAtLeast asserts subject >= v.
func (e *Expectation) BeAtLeast(v any) error { return e.run("greater_or_equal", v) }

// BeLessThan asserts subject < v.
func (e *Expectation) BeLessThan(v any) error { return e.run("less_than", v) }

// BeAtMost asserts subject <= v.
func (e *Expectation) BeAtMost(v any) error { return e.run("less_or_equal", v) }

// BeBetween asserts lower <= subject <= higher.
func (e *Expectation) BeBetween(lower, higher any) error { return e.run("between", lower, higher) }

// BeCloseTo asserts the subject is within maxDelta of expected.
func (e *Expectation) BeCloseTo(expected, maxDelta any) error {
	return e.run("close_to", expected, maxDelta)
}

// ErrLike asserts an error subject against a nil, string or error target.
func (e *Expectation) ErrLike(target any) error { return e.run("err_like", target) }

// Panic asserts a callable subject panics, optionally with an expected
// payload, and returns the recovered payload for further inspection.
func (e *Expectation) Panic(expected ...any) (any, error) {
	value, fail, err := e.Word("panic").invoke(expected)
	if err != nil {
		return nil, err
	}
	if fail != nil {
		return nil, fail
	}
	return value, nil
}

// Operator-style shorthand. Comparison operators cannot be overloaded,
// so these carry the spellings tests reach for when an assertion reads
// like an expression. They share the dispatch path with everything else
// and add no extra frames to sanitized stacks.

// Eq is shorthand for Equal.
func (e *Expectation) Eq(expected any) error { return e.run("equal", expected) }

// Ne is shorthand for Differ.
func (e *Expectation) Ne(expected any) error { return e.run("different", expected) }

// Gt is shorthand for BeGreaterThan.
func (e *Expectation) Gt(v any) error { return e.run("greater_than", v) }

// Ge is shorthand for BeAtLeast.
func (e *Expectation) Ge(v any) error { return e.run("greater_or_equal", v) }

// Lt is shorthand for BeLessThan.
func (e *Expectation) Lt(v any) error { return e.run("less_than", v) }

// Le is shorthand for BeAtMost.
func (e *Expectation) Le(v any) error { return e.run("less_or_equal", v) }
