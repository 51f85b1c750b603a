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
	"strings"
	"testing"

	"github.com/expectlib/expect/failure"
)

func TestRegexp(t *testing.T) {
	t.Parallel()

	if out := mustOutcome(t, matchRegexp, "fnord fnord", `^fno\w+`); !out.Ok {
		t.Fatal("pattern should match")
	}
	out := mustOutcome(t, matchRegexp, "fnord", `^qux$`)
	if out.Ok {
		t.Fatal("pattern should not match")
	}
	if out.Fragment != `to be matched by regexp "^qux$"` {
		t.Fatalf("unexpected fragment: %q", out.Fragment)
	}

	t.Run("bad pattern is misuse", func(t *testing.T) {
		_, err := matchRegexp("fnord", []any{"("})
		if err == nil {
			t.Fatal("uncompilable pattern should be misuse")
		}
		var inner *failure.Failure
		if errors.As(err, &inner) {
			t.Fatal("a bad pattern is not an expectation failure")
		}
	})

	t.Run("non-string subject is an inner failure", func(t *testing.T) {
		_, err := matchRegexp(42, []any{"x"})
		var inner *failure.Failure
		if !errors.As(err, &inner) {
			t.Fatalf("want *failure.Failure, got %T: %v", err, err)
		}
		if !strings.Contains(inner.Error(), "to be a string, but it is of type int") {
			t.Fatalf("inner failure message: %q", inner.Error())
		}
	})
}

func TestStartEndWith(t *testing.T) {
	t.Parallel()

	if out := mustOutcome(t, matchStartWith, "fnord", "fno"); !out.Ok {
		t.Fatal("fnord starts with fno")
	}
	out := mustOutcome(t, matchStartWith, "fnord", "ord")
	if out.Ok {
		t.Fatal("fnord does not start with ord")
	}
	if out.Fragment != `to start with "ord"` {
		t.Fatalf("unexpected fragment: %q", out.Fragment)
	}

	if out := mustOutcome(t, matchEndWith, "fnord", "ord"); !out.Ok {
		t.Fatal("fnord ends with ord")
	}
	if out := mustOutcome(t, matchEndWith, "fnord", "fno"); out.Ok {
		t.Fatal("fnord does not end with fno")
	}

	if _, err := matchStartWith("fnord", []any{42}); err == nil {
		t.Fatal("non-string prefix is misuse")
	}
	if _, err := matchEndWith("fnord", []any{}); err == nil {
		t.Fatal("missing suffix is misuse")
	}
}
