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
	"reflect"
	"strings"

	"github.com/expectlib/expect/comparison"
)

// matchInstanceOf asserts the subject's dynamic type is one of the
// argument types. Arguments may be sample values or reflect.Type values;
// an interface type matches any implementation.
func matchInstanceOf(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedAtLeast("instance_of", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	types := make([]reflect.Type, len(args))
	names := make([]string, len(args))
	for i, arg := range args {
		t, ok := typeArg(arg)
		if !ok {
			return comparison.Misusef("instance_of: argument %d is nil, not a type or sample value", i)
		}
		types[i] = t
		names[i] = t.String()
	}

	st := reflect.TypeOf(subject)
	ok := false
	for _, t := range types {
		if st == t || (t.Kind() == reflect.Interface && st != nil && st.Implements(t)) {
			ok = true
			break
		}
	}
	return comparison.Resultf(ok, "to be an instance of %s", strings.Join(names, " or "))
}

// matchImplement asserts the subject's type satisfies every argument
// interface. Arguments are pointer-to-interface samples, the usual Go
// spelling for naming an interface as a value: (*io.Reader)(nil).
func matchImplement(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedAtLeast("implement", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	ifaces := make([]reflect.Type, len(args))
	names := make([]string, len(args))
	for i, arg := range args {
		t, ok := interfaceArg(arg)
		if !ok {
			return comparison.Misusef(
				"implement: argument %d must name an interface, e.g. (*io.Reader)(nil); got %T", i, arg)
		}
		ifaces[i] = t
		names[i] = t.String()
	}

	st := reflect.TypeOf(subject)
	ok := st != nil
	for _, iface := range ifaces {
		ok = ok && st.Implements(iface)
	}
	return comparison.Resultf(ok, "to implement %s", strings.Join(names, " and "))
}

// matchCallable asserts the subject is a function.
func matchCallable(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedArgs("callable", 0, args); err != nil {
		return comparison.Outcome{}, err
	}
	ok := subject != nil && reflect.TypeOf(subject).Kind() == reflect.Func
	return comparison.Resultf(ok, "to be callable")
}

// matchHaveField asserts a struct subject (or pointer to one) has every
// named field or method.
func matchHaveField(subject any, args []any) (comparison.Outcome, error) {
	if err := comparison.NeedAtLeast("have_field", 1, args); err != nil {
		return comparison.Outcome{}, err
	}
	names := make([]string, len(args))
	for i, arg := range args {
		name, ok := arg.(string)
		if !ok {
			return comparison.Misusef("have_field: expected string field names, got %T", arg)
		}
		names[i] = name
	}

	ok := true
	for _, name := range names {
		ok = ok && hasField(subject, name)
	}
	return comparison.Resultf(ok, "to have field %s", strings.Join(names, ", "))
}

func hasField(subject any, name string) bool {
	if subject == nil {
		return false
	}
	t := reflect.TypeOf(subject)
	if _, ok := t.MethodByName(name); ok {
		return true
	}
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return false
	}
	_, ok := t.FieldByName(name)
	return ok
}

func typeArg(arg any) (reflect.Type, bool) {
	if t, ok := arg.(reflect.Type); ok {
		return t, true
	}
	if arg == nil {
		return nil, false
	}
	return reflect.TypeOf(arg), true
}

func interfaceArg(arg any) (reflect.Type, bool) {
	if t, ok := arg.(reflect.Type); ok && t.Kind() == reflect.Interface {
		return t, true
	}
	t := reflect.TypeOf(arg)
	if t != nil && t.Kind() == reflect.Ptr && t.Elem().Kind() == reflect.Interface {
		return t.Elem(), true
	}
	return nil, false
}
