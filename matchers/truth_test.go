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
	"testing"
)

func TestTrueFalse(t *testing.T) {
	t.Parallel()

	if out := mustOutcome(t, matchTrue, true); !out.Ok {
		t.Fatal("true is true")
	}
	if out := mustOutcome(t, matchTrue, false); out.Ok {
		t.Fatal("false is not true")
	}
	if out := mustOutcome(t, matchTrue, 1); out.Ok {
		t.Fatal("1 is not the bool true")
	}
	if out := mustOutcome(t, matchFalse, false); !out.Ok {
		t.Fatal("false is false")
	}
	if out := mustOutcome(t, matchFalse, 0); out.Ok {
		t.Fatal("0 is not the bool false")
	}
	if _, err := matchTrue(true, []any{1}); err == nil {
		t.Fatal("true takes no arguments")
	}
}

func TestNilAndExist(t *testing.T) {
	t.Parallel()

	var typedNil *int
	var nilMap map[string]int

	for _, v := range []any{nil, typedNil, nilMap} {
		if out := mustOutcome(t, matchNil, v); !out.Ok {
			t.Fatalf("%#v should be nil", v)
		}
		if out := mustOutcome(t, matchExist, v); out.Ok {
			t.Fatalf("%#v should not exist", v)
		}
	}

	for _, v := range []any{0, "", false, new(int), []int{}} {
		if out := mustOutcome(t, matchNil, v); out.Ok {
			t.Fatalf("%#v should not be nil", v)
		}
		if out := mustOutcome(t, matchExist, v); !out.Ok {
			t.Fatalf("%#v should exist", v)
		}
	}
}

func TestTrueishFalseish(t *testing.T) {
	t.Parallel()

	trueish := []any{true, 1, -1, 0.5, "x", []int{0}, map[string]int{"a": 1}, new(int)}
	falseish := []any{nil, false, 0, 0.0, "", []int{}, map[string]int{}, (*int)(nil)}

	for _, v := range trueish {
		if out := mustOutcome(t, matchTrueish, v); !out.Ok {
			t.Errorf("%#v should be trueish", v)
		}
		if out := mustOutcome(t, matchFalseish, v); out.Ok {
			t.Errorf("%#v should not be falseish", v)
		}
	}
	for _, v := range falseish {
		if out := mustOutcome(t, matchTrueish, v); out.Ok {
			t.Errorf("%#v should not be trueish", v)
		}
		if out := mustOutcome(t, matchFalseish, v); !out.Ok {
			t.Errorf("%#v should be falseish", v)
		}
	}
}
