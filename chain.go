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

import (
	"strings"
)

// Word advances the chain by one identifier and returns the wrapper so
// chains can run as long as they like. Each call re-resolves the matcher
// selection: only the final word before the terminal invocation must
// name a catalog entry, everything before it is sentence glue.
//
// A word requests negation when it contains "not" as a whole,
// underscore-delimited word: "not", "not_to", "to_not_be", "an_not".
// Substrings never trigger it — "annotation" and "nothing" are glue.
func (e *Expectation) Word(name string) *Expectation {
	if negates(name) {
		e.negated = true
	}
	e.selectedName = name
	e.selected = nil

	lookup := strings.TrimPrefix(name, "not_")
	if fn, ok := e.registry.Lookup(lookup); ok {
		e.selected = fn
	} else if fn, ok := e.registry.Lookup(lookup + "_"); ok {
		// Reserved-word disambiguation: the catalog spells matchers that
		// collide with keywords with a trailing underscore (is_, in_).
		e.selected = fn
	}
	return e
}

// negates applies the word-boundary rule for negation markers.
func negates(name string) bool {
	return name == "not" ||
		strings.HasPrefix(name, "not_") ||
		strings.HasSuffix(name, "_not") ||
		strings.Contains(name, "_not_")
}

// Sentence glue. Each method reads as one chain word; all of them defer
// to Word, so a glue word that happens to name a matcher (Be, Is) also
// selects it and can be invoked directly.

// To is sentence glue.
func (e *Expectation) To() *Expectation { return e.Word("to") }

// Be selects the identity matcher and reads as glue before it.
func (e *Expectation) Be() *Expectation { return e.Word("be") }

// Is selects the identity matcher via its reserved-word alias.
func (e *Expectation) Is() *Expectation { return e.Word("is") }

// Has is sentence glue.
func (e *Expectation) Has() *Expectation { return e.Word("has") }

// Have is sentence glue.
func (e *Expectation) Have() *Expectation { return e.Word("have") }

// A is sentence glue.
func (e *Expectation) A() *Expectation { return e.Word("a") }

// An is sentence glue.
func (e *Expectation) An() *Expectation { return e.Word("an") }

// Of is sentence glue.
func (e *Expectation) Of() *Expectation { return e.Word("of") }

// And is sentence glue.
func (e *Expectation) And() *Expectation { return e.Word("and") }

// Then is sentence glue.
func (e *Expectation) Then() *Expectation { return e.Word("then") }

// That is sentence glue.
func (e *Expectation) That() *Expectation { return e.Word("that") }

// Which is sentence glue.
func (e *Expectation) Which() *Expectation { return e.Word("which") }

// Does is sentence glue.
func (e *Expectation) Does() *Expectation { return e.Word("does") }

// Not negates the expectation for the rest of the chain.
func (e *Expectation) Not() *Expectation { return e.Word("not") }

// NotTo negates the expectation; reads before a bare matcher word.
func (e *Expectation) NotTo() *Expectation { return e.Word("not_to") }

// ToNot negates the expectation; alternative spelling of NotTo.
func (e *Expectation) ToNot() *Expectation { return e.Word("to_not") }
