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

	"github.com/expectlib/expect/comparison"
	"github.com/expectlib/expect/failure"
)

// matchErrLike asserts an error subject against a target:
//
//	nil      the subject must be a nil error
//	string   the subject's text must contain the target as a substring
//	error    errors.Is must relate subject and target, or they must be
//	         deeply equal
func matchErrLike(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("err_like", 1, args); err != nil {
		return comparison.Outcome{}, err
	}

	subjectErr, isErr := subject.(error)
	if subject != nil && !isErr {
		return comparison.Misusef("err_like: subject must be an error or nil, got %T", subject)
	}

	switch target := args[0].(type) {
	case nil:
		return comparison.Resultf(subjectErr == nil, "to be a nil error")
	case string:
		ok := subjectErr != nil && strings.Contains(subjectErr.Error(), target)
		return comparison.Resultf(ok, "to error like %q", target)
	case error:
		ok := subjectErr != nil && (errors.Is(subjectErr, target) || deepEqual(subjectErr, target))
		return comparison.Resultf(ok, "to error like %s", failure.Repr(target))
	default:
		return comparison.Misusef("err_like: target must be nil, a string or an error, got %T", args[0])
	}
}
