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
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/expectlib/expect/failure"
)

// Rendering toggles for Report. Process-wide; set them from TestMain or
// an init function, not concurrently with running tests.
var (
	// Colorize enables ANSI colors in reported failures. The default
	// follows the color package's own terminal and NO_COLOR detection.
	Colorize = !color.NoColor

	// Verbose appends the failure's retained stack to the report.
	Verbose = false

	// FullBacktracePaths keeps absolute file paths in reported call
	// sites instead of trimming to the base name.
	FullBacktracePaths = false
)

// Report logs a failed expectation against tb and marks the test failed.
// A nil err is a no-op. Non-failure errors (matcher misuse) end the test
// immediately and verbatim — they are bugs, not failed expectations.
//
//	expect.Report(t, expect.Value(got).To().Equal(want))
func Report(tb testing.TB, err error) {
	if err == nil {
		return
	}
	tb.Helper()

	var f *failure.Failure
	if !errors.As(err, &f) {
		tb.Fatal(err)
		return
	}
	tb.Log(renderFailure(f))
	tb.Fail()
}

func renderFailure(f *failure.Failure) string {
	head := "Expectation FAILED"
	site := callSite(f)

	if Colorize {
		head = color.New(color.FgRed, color.Bold).Sprint(head)
		site = color.New(color.FgCyan).Sprint(site)
	}

	var b strings.Builder
	b.WriteString(head)
	if site != "" {
		b.WriteString("\nat ")
		b.WriteString(site)
	}
	for _, line := range strings.Split(f.Error(), "\n") {
		b.WriteString("\n  ")
		b.WriteString(line)
	}
	if Verbose {
		for _, fr := range f.Stack() {
			fmt.Fprintf(&b, "\n    %s (%s:%d)", fr.Function, trimPath(fr.Filename), fr.Lineno)
		}
	}
	return b.String()
}

// callSite picks the first retained frame outside the library: the line
// the user wrote the assertion on.
func callSite(f *failure.Failure) string {
	for _, fr := range f.Stack() {
		if strings.HasPrefix(fr.Function, modulePrefix) && !strings.HasSuffix(fr.Filename, "_test.go") {
			continue
		}
		return fmt.Sprintf("%s:%d", trimPath(fr.Filename), fr.Lineno)
	}
	return ""
}

func trimPath(path string) string {
	if FullBacktracePaths {
		return path
	}
	return filepath.Base(path)
}
