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
	"runtime"
	"strings"

	"github.com/expectlib/expect/failure"
)

// modulePrefix identifies this library's own frames in captured stacks.
const modulePrefix = "github.com/expectlib/expect"

// sanitizeBacktraces controls whether captured stacks elide this
// library's internal frames. On by default; see WithFullBacktraces.
var sanitizeBacktraces = true

// WithFullBacktraces runs fn with backtrace sanitization disabled, so
// failures raised inside it retain every frame of the dispatch and
// matcher machinery. For debugging the library or a custom matcher.
//
// The previous setting is restored on every exit path, including a panic
// in fn. Like the rendering toggles, this flips process-wide state and
// must not run concurrently with other expectations.
func WithFullBacktraces(fn func()) {
	prev := sanitizeBacktraces
	sanitizeBacktraces = false
	defer func() { sanitizeBacktraces = prev }()
	fn()
}

// captureStack records the stack of the failure being raised.
//
// Sanitized form: a single library entry frame (the terminal call the
// user actually wrote, whichever alias or shorthand it was) followed by
// the caller's frames. Frames are innermost first. Filtering is by
// function-name prefix rather than frame counting, so every entry point
// sanitizes identically at whatever depth it sits.
func captureStack() []failure.Frame {
	var pcs [64]uintptr
	n := runtime.Callers(2, pcs[:])
	iter := runtime.CallersFrames(pcs[:n])

	var out []failure.Frame
	var entry *failure.Frame
	inUser := false
	for {
		fr, more := iter.Next()
		keep := failure.Frame{Function: fr.Function, Filename: fr.File, Lineno: fr.Line}

		switch {
		case !sanitizeBacktraces:
			out = append(out, keep)
		case inUser || !internalFrame(fr):
			if !inUser {
				inUser = true
				if entry != nil {
					out = append(out, *entry)
				}
			}
			out = append(out, keep)
		default:
			// Still inside the library: remember only the outermost
			// internal frame, the entry point adjacent to user code.
			frame := keep
			entry = &frame
		}

		if !more {
			break
		}
	}
	return out
}

// internalFrame reports whether a frame belongs to the library itself.
// Test files under this module count as user code, so the library's own
// test suite sees the same stacks users do.
func internalFrame(fr runtime.Frame) bool {
	return strings.HasPrefix(fr.Function, modulePrefix) &&
		!strings.HasSuffix(fr.File, "_test.go")
}
