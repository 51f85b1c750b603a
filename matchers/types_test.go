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
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestInstanceOf(t *testing.T) {
	t.Parallel()

	if out := mustOutcome(t, matchInstanceOf, 23, 0); !out.Ok {
		t.Fatal("23 is an int, same as the sample 0")
	}
	if out := mustOutcome(t, matchInstanceOf, 23, ""); out.Ok {
		t.Fatal("23 is not a string")
	}
	if out := mustOutcome(t, matchInstanceOf, 23, "", 0); !out.Ok {
		t.Fatal("several candidate types are a union")
	}

	t.Run("interface samples match implementations", func(t *testing.T) {
		var buf bytes.Buffer
		readerType := interfaceType(t, (*io.Reader)(nil))
		if out := mustOutcome(t, matchInstanceOf, &buf, readerType); !out.Ok {
			t.Fatal("*bytes.Buffer implements io.Reader")
		}
	})

	if _, err := matchInstanceOf(23, []any{nil}); err == nil {
		t.Fatal("nil type argument is misuse")
	}
}

func TestImplement(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if out := mustOutcome(t, matchImplement, &buf, (*io.Reader)(nil)); !out.Ok {
		t.Fatal("*bytes.Buffer implements io.Reader")
	}
	out := mustOutcome(t, matchImplement, &buf, (*io.Reader)(nil), (*io.Writer)(nil))
	if !out.Ok {
		t.Fatal("*bytes.Buffer implements both")
	}
	if !strings.Contains(out.Fragment, "io.Reader and io.Writer") {
		t.Fatalf("unexpected fragment: %q", out.Fragment)
	}
	if out := mustOutcome(t, matchImplement, 42, (*io.Reader)(nil)); out.Ok {
		t.Fatal("an int does not implement io.Reader")
	}

	if _, err := matchImplement(&buf, []any{42}); err == nil {
		t.Fatal("non-interface argument is misuse")
	}
}

func TestCallable(t *testing.T) {
	t.Parallel()

	if out := mustOutcome(t, matchCallable, func() {}); !out.Ok {
		t.Fatal("a func is callable")
	}
	if out := mustOutcome(t, matchCallable, func(int) string { return "" }); !out.Ok {
		t.Fatal("arity does not matter for callable")
	}
	if out := mustOutcome(t, matchCallable, 42); out.Ok {
		t.Fatal("an int is not callable")
	}
	if out := mustOutcome(t, matchCallable, nil); out.Ok {
		t.Fatal("nil is not callable")
	}
}

func TestHaveField(t *testing.T) {
	t.Parallel()

	type widget struct {
		Name string
	}

	if out := mustOutcome(t, matchHaveField, widget{}, "Name"); !out.Ok {
		t.Fatal("widget has a Name field")
	}
	if out := mustOutcome(t, matchHaveField, &widget{}, "Name"); !out.Ok {
		t.Fatal("field lookup follows pointers")
	}
	if out := mustOutcome(t, matchHaveField, widget{}, "Size"); out.Ok {
		t.Fatal("widget has no Size field")
	}
	if out := mustOutcome(t, matchHaveField, widget{}, "Name", "Size"); out.Ok {
		t.Fatal("all names must resolve")
	}

	t.Run("methods count as fields", func(t *testing.T) {
		var buf bytes.Buffer
		if out := mustOutcome(t, matchHaveField, &buf, "WriteString"); !out.Ok {
			t.Fatal("*bytes.Buffer has a WriteString method")
		}
	})

	if _, err := matchHaveField(widget{}, []any{42}); err == nil {
		t.Fatal("non-string field name is misuse")
	}
}

// interfaceType extracts the interface type from a pointer-to-interface
// sample, mirroring how callers name interfaces as values.
func interfaceType(t *testing.T, sample any) any {
	t.Helper()
	typ, ok := interfaceArg(sample)
	if !ok {
		t.Fatalf("not an interface sample: %T", sample)
	}
	return typ
}
