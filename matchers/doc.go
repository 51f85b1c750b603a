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

// Package matchers is the default matcher catalog.
//
// Every matcher is a comparison.Func: it evaluates a predicate over the
// subject and returns a message fragment completing the sentence
// "Expect <subject> [not] ...". Matchers never apply negation and never
// raise failed expectations themselves; the dispatch engine in the root
// package owns both.
//
// Matchers are registered under a canonical name plus aliases so a chain
// can read naturally whichever way it is written: `equal`, `equals` and
// `to_equal` all resolve to the same function. Custom catalogs derive
// from Default():
//
//	reg := matchers.Default().Derive().
//	    Register(myMatcher, "frobnicate", "frobnicates").
//	    Build()
//	expect.Value(v, expect.WithCatalog(reg)).Word("frobnicates").Call()
package matchers
