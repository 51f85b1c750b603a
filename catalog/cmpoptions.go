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

package catalog

import (
	"errors"
	"reflect"
	"slices"
	"sync"

	"github.com/google/go-cmp/cmp"
)

// cmpOptionsMutex governs cmpOptions.
var cmpOptionsMutex sync.Mutex

// cmpOptions are the options handed to every deep comparison performed by
// the catalog's matchers (equal, resemble, sub_map, within, ...).
//
// By default this includes:
//   - A direct comparison of reflect.Type interfaces. They are documented
//     as comparable with `==`, but cmp would recurse into their guts.
//   - Functions compared by their function pointer; cmp refuses them
//     outright otherwise.
//   - Errors related by errors.Is (either direction) or carrying the same
//     dynamic type and text; cmp would otherwise panic on the unexported
//     fields of stdlib error types.
var cmpOptions = []cmp.Option{
	cmp.FilterValues(func(a, b error) bool {
		return a != nil && b != nil
	}, cmp.Comparer(func(a, b error) bool {
		return errors.Is(a, b) || errors.Is(b, a) ||
			(reflect.TypeOf(a) == reflect.TypeOf(b) && a.Error() == b.Error())
	})),
	cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().Type() == reflect.TypeOf((*reflect.Type)(nil)).Elem()
	}, cmp.Comparer(func(a, b any) bool {
		return a == b
	})),
	cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().Type().Kind() == reflect.Func
	}, cmp.Transformer("func.pointer", func(f any) uintptr {
		if f == nil {
			return 0
		}
		return reflect.ValueOf(f).Pointer()
	})),
}

// RegisterCmpOption adds an option used by all deep-comparing matchers.
//
// Panics on a nil option. Call this from init-time code only: registration
// is not synchronized against in-flight expectations by anything stronger
// than this package's mutex.
func RegisterCmpOption(opt cmp.Option) {
	if opt == nil {
		panic("catalog: cannot register nil cmp option")
	}
	cmpOptionsMutex.Lock()
	defer cmpOptionsMutex.Unlock()
	cmpOptions = append(cmpOptions, opt)
}

// CmpOptions returns a copy of the registered options at call time.
func CmpOptions() []cmp.Option {
	cmpOptionsMutex.Lock()
	defer cmpOptionsMutex.Unlock()
	return slices.Clone(cmpOptions)
}
