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
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/expectlib/expect/failure"
)

func TestPanic(t *testing.T) {
	t.Parallel()

	boom := func() { panic("boom") }
	calm := func() {}

	t.Run("any panic", func(t *testing.T) {
		out := mustOutcome(t, matchPanic, boom)
		if !out.Ok {
			t.Fatal("panicking function should match")
		}
		if out.Value != "boom" {
			t.Fatalf("recovered payload not surfaced: %v", out.Value)
		}
	})

	t.Run("no panic", func(t *testing.T) {
		out := mustOutcome(t, matchPanic, calm)
		if out.Ok {
			t.Fatal("calm function should not match")
		}
		if !strings.Contains(out.Fragment, "but it did not panic") {
			t.Fatalf("unexpected fragment: %q", out.Fragment)
		}
	})

	t.Run("regexp over payload text", func(t *testing.T) {
		if out := mustOutcome(t, matchPanic, boom, "bo+m"); !out.Ok {
			t.Fatal("payload text should match the pattern")
		}
		out := mustOutcome(t, matchPanic, boom, "qux")
		if out.Ok {
			t.Fatal("payload text should not match")
		}
		if !strings.Contains(out.Fragment, "but it panicked with:") {
			t.Fatalf("actual payload missing from fragment: %q", out.Fragment)
		}
	})

	t.Run("error payload via errors.Is", func(t *testing.T) {
		sentinel := errors.New("sentinel")
		thrower := func() { panic(fmt.Errorf("wrapped: %w", sentinel)) }
		if out := mustOutcome(t, matchPanic, thrower, sentinel); !out.Ok {
			t.Fatal("wrapped error payload should match the sentinel")
		}
	})

	t.Run("equal but distinct error payload", func(t *testing.T) {
		thrower := func() { panic(errors.New("boom")) }
		if out := mustOutcome(t, matchPanic, thrower, errors.New("boom")); !out.Ok {
			t.Fatal("payload with same type and text should match")
		}
		if out := mustOutcome(t, matchPanic, thrower, errors.New("fnord")); out.Ok {
			t.Fatal("payload with different text should not match")
		}
	})

	t.Run("type and regexp", func(t *testing.T) {
		thrower := func() { panic(errors.New("boom")) }
		errType := reflect.TypeOf(errors.New(""))
		if out := mustOutcome(t, matchPanic, thrower, errType, "bo+m"); !out.Ok {
			t.Fatal("type and text should both match")
		}
		if out := mustOutcome(t, matchPanic, thrower, errType, "qux"); out.Ok {
			t.Fatal("text should not match")
		}
	})

	t.Run("nil panic payload still counts as a panic", func(t *testing.T) {
		thrower := func() { panic(nil) }
		if out := mustOutcome(t, matchPanic, thrower); !out.Ok {
			t.Fatal("panic(nil) is a panic")
		}
	})

	t.Run("non-callable subject is an inner failure", func(t *testing.T) {
		_, err := matchPanic(42, nil)
		var inner *failure.Failure
		if !errors.As(err, &inner) {
			t.Fatalf("want *failure.Failure, got %T: %v", err, err)
		}
		if !strings.Contains(inner.Error(), "to be callable without arguments") {
			t.Fatalf("inner failure message: %q", inner.Error())
		}
	})

	t.Run("too many arguments is misuse", func(t *testing.T) {
		if _, err := matchPanic(boom, []any{1, 2, 3}); err == nil {
			t.Fatal("want misuse error")
		}
	})
}
