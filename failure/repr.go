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

package failure

import (
	"fmt"
	"reflect"
	"strconv"
)

// Repr renders a subject or argument for a failure message.
//
// Strings are quoted so that whitespace and empty values stay visible;
// funcs render as their type (their pointer value is noise in a message);
// everything else goes through fmt's %v, which handles non-ASCII text and
// arbitrary user types.
func Repr(v any) string {
	if v == nil {
		return "nil"
	}
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case error:
		return fmt.Sprintf("%v", x)
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Func:
		return fmt.Sprintf("<%T>", v)
	case reflect.Chan:
		return fmt.Sprintf("<%T>", v)
	}
	return fmt.Sprintf("%v", v)
}

// Plain renders a value without quoting, for custom message templates
// where the author controls the surrounding text.
func Plain(v any) string {
	if v == nil {
		return "nil"
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Func {
		return fmt.Sprintf("<%T>", v)
	}
	return fmt.Sprintf("%v", v)
}

// ReprAll renders a list of matcher arguments, comma separated.
func ReprAll(vs []any) string {
	out := ""
	for i, v := range vs {
		if i > 0 {
			out += ", "
		}
		out += Repr(v)
	}
	return out
}
