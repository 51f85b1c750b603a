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

// Package catalog holds the matcher registry.
//
// A Registry is immutable once built. Extension happens by derivation:
// Derive returns a Builder layered over the parent registry, and Build
// produces a new Registry that resolves its own entries first and falls
// back to the parent chain. Two registries derived from the same parent
// never observe each other's entries.
//
// This replaces "subclass the wrapper and assign public methods" from
// dynamic expect-pattern libraries: registration is explicit, lookups are
// read-only, and concurrent use of built registries needs no locking.
package catalog

import (
	"fmt"

	"github.com/expectlib/expect/comparison"
)

// Registry maps matcher names (canonical names and aliases alike) to
// their implementations.
type Registry struct {
	parent  *Registry
	entries map[string]comparison.Func
}

// Lookup resolves name, consulting the parent chain on a miss.
func (r *Registry) Lookup(name string) (comparison.Func, bool) {
	for cur := r; cur != nil; cur = cur.parent {
		if fn, ok := cur.entries[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// Names returns every name resolvable through this registry, including
// inherited ones. Intended for diagnostics and tests; order is undefined.
func (r *Registry) Names() []string {
	seen := map[string]struct{}{}
	for cur := r; cur != nil; cur = cur.parent {
		for name := range cur.entries {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	return names
}

// Derive starts a new registry layered on top of r. A nil receiver is
// allowed and yields a root registry.
func (r *Registry) Derive() *Builder {
	return &Builder{parent: r, entries: map[string]comparison.Func{}}
}

// New starts a root registry with no parent.
func New() *Builder {
	return (*Registry)(nil).Derive()
}

// Builder accumulates registrations for one derived Registry.
//
// Builders are write-only and single-goroutine; the Registry produced by
// Build is safe for concurrent lookups.
type Builder struct {
	parent  *Registry
	entries map[string]comparison.Func
}

// Register binds fn to name and any number of aliases.
//
// Registering a name that already exists in this builder panics: within
// one catalog an alias collision is a programming error. Shadowing a
// parent entry is allowed — that is how derived catalogs override.
func (b *Builder) Register(fn comparison.Func, name string, aliases ...string) *Builder {
	if fn == nil {
		panic(fmt.Sprintf("catalog: nil matcher registered as %q", name))
	}
	b.put(name, fn)
	for _, alias := range aliases {
		b.put(alias, fn)
	}
	return b
}

// Alias makes newName resolve to the matcher already registered (in this
// builder or the parent chain) under existing.
func (b *Builder) Alias(newName, existing string) *Builder {
	fn, ok := b.lookup(existing)
	if !ok {
		panic(fmt.Sprintf("catalog: alias %q targets unknown matcher %q", newName, existing))
	}
	b.put(newName, fn)
	return b
}

// AliasAll installs a batch of aliases, mapping each key to the matcher
// registered under its value. This is the hook used to graft one naming
// convention's matcher names onto an existing catalog.
func (b *Builder) AliasAll(aliases map[string]string) *Builder {
	for newName, existing := range aliases {
		b.Alias(newName, existing)
	}
	return b
}

// Build finalizes the derived registry.
func (b *Builder) Build() *Registry {
	entries := make(map[string]comparison.Func, len(b.entries))
	for name, fn := range b.entries {
		entries[name] = fn
	}
	return &Registry{parent: b.parent, entries: entries}
}

func (b *Builder) put(name string, fn comparison.Func) {
	if name == "" {
		panic("catalog: empty matcher name")
	}
	if _, dup := b.entries[name]; dup {
		panic(fmt.Sprintf("catalog: duplicate matcher name %q", name))
	}
	b.entries[name] = fn
}

func (b *Builder) lookup(name string) (comparison.Func, bool) {
	if fn, ok := b.entries[name]; ok {
		return fn, true
	}
	if b.parent != nil {
		return b.parent.Lookup(name)
	}
	return nil, false
}
