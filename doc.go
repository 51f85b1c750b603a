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

// Package expect implements the expect pattern: a fluent wrapper around a
// value under test whose chained words select a matcher, optionally negate
// it, and produce readable failure messages.
//
//	err := expect.Value(23).To().Equal(42)
//	// err.Error() == `Expect 23 to equal 42`
//
//	err = expect.Value(23).Not().ToBe(23)
//	// err.Error() == `Expect 23 not to be 23`
//
// A chain is any number of words followed by one terminal invocation. The
// fluent glue methods (To, Is, Not, ...) and the generic Word method both
// advance the chain; only the last word before the terminal call has to
// name a matcher. Any word containing "not" on an underscore boundary
// negates the whole expectation:
//
//	ok, msg := expect.Returning("fnord").Word("not_to_contain").Test("q")
//
// Failed expectations become *failure.Failure errors whose message is the
// composed sentence and whose retained stack points at the assertion's
// call site rather than at this package's internals. Unknown matcher
// names are programmer errors and panic with *MatcherNotFoundError in
// every mode; errors a matcher reports about its own arguments (wrong
// count, wrong type) propagate verbatim and are never dressed up as
// failed expectations.
//
// The matcher catalog is extensible: derive from matchers.Default(),
// register new comparison.Funcs or alias batches, and hand the registry
// to WithCatalog.
package expect
