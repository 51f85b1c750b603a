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
	"errors"
	"strings"
	"testing"

	"github.com/expectlib/expect/failure"
)

// These tests flip process-wide sanitization state, so none of them run
// in parallel.

func failedStack(t *testing.T, err error) []failure.Frame {
	t.Helper()
	var f *failure.Failure
	if !errors.As(err, &f) {
		t.Fatalf("want *failure.Failure, got %T: %v", err, err)
	}
	if len(f.Stack()) == 0 {
		t.Fatal("failure carries no stack")
	}
	return f.Stack()
}

func countInternal(frames []failure.Frame) int {
	n := 0
	for _, fr := range frames {
		if strings.HasPrefix(fr.Function, modulePrefix) && !strings.HasSuffix(fr.Filename, "_test.go") {
			n++
		}
	}
	return n
}

func TestSanitizedStackShape(t *testing.T) {
	stack := failedStack(t, Value(23).To().Equal(42))

	if n := countInternal(stack); n != 1 {
		t.Fatalf("sanitized stack should retain exactly one library frame, got %d:\n%+v", n, stack)
	}
	if !strings.HasPrefix(stack[0].Function, modulePrefix) {
		t.Fatalf("innermost retained frame should be the library entry point, got %q", stack[0].Function)
	}
	if !strings.HasSuffix(stack[1].Filename, "backtrace_test.go") {
		t.Fatalf("first caller frame should be this test, got %q", stack[1].Filename)
	}
}

func TestSanitizationIsUniformAcrossEntryPoints(t *testing.T) {
	stacks := map[string][]failure.Frame{}

	stacks["sugar"] = failedStack(t, Value(23).To().Equal(42))
	stacks["shorthand"] = failedStack(t, Value(23).Eq(42))

	_, err := Value(23).To().Word("equal").Call(42)
	stacks["named call"] = failedStack(t, err)

	for name, stack := range stacks {
		if n := countInternal(stack); n != 1 {
			t.Errorf("%s: retained %d library frames, want 1:\n%+v", name, n, stack)
		}
		if !strings.HasSuffix(stack[1].Filename, "backtrace_test.go") {
			t.Errorf("%s: caller frame is %q, want this test file", name, stack[1].Filename)
		}
	}
}

func TestWithFullBacktraces(t *testing.T) {
	var stack []failure.Frame
	WithFullBacktraces(func() {
		stack = failedStack(t, Value(23).To().Equal(42))
	})

	if n := countInternal(stack); n < 2 {
		t.Fatalf("full stack should retain the dispatch frames, got %d:\n%+v", n, stack)
	}
	if !sanitizeBacktraces {
		t.Fatal("sanitization not restored")
	}

	t.Run("restored after a panic", func(t *testing.T) {
		func() {
			defer func() { recover() }()
			WithFullBacktraces(func() { panic("boom") })
		}()
		if !sanitizeBacktraces {
			t.Fatal("sanitization not restored after a panic")
		}
	})
}

func TestNestedFailureKeepsInnerStack(t *testing.T) {
	// The inner failure raised inside the matcher already captured its
	// stack; the outer dispatch must not replace it.
	err := Value(42).To().ContainSubMap(map[string]int{})
	stack := failedStack(t, err)

	if n := countInternal(stack); n != 1 {
		t.Fatalf("nested failure stack should still be sanitized once, got %d library frames:\n%+v", n, stack)
	}
	if !strings.HasSuffix(stack[1].Filename, "backtrace_test.go") {
		t.Fatalf("caller frame is %q, want this test file", stack[1].Filename)
	}
}
