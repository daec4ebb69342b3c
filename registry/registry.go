// Package registry implements the encoder's type-dispatch table: an
// ordered list of (type matcher) -> encode function pairs, consulted
// first-match-wins, the way spec §5 describes "the default dispatcher"
// plus user-registered extensions.
//
// Grounded on the teacher's compress.CreateCodec/GetCodec pair: a small,
// fixed lookup keyed by an enum there, keyed by reflect.Type here because
// the set of encodable Go types is open-ended rather than a four-member
// enum.
package registry

import (
	"fmt"
	"reflect"
)

// EncodeFunc serializes v, given an already-type-matched registry Entry.
// Implementations are expected to type-assert v back to their expected
// concrete type; Entry guarantees that assertion won't fail.
type EncodeFunc func(v any) ([]byte, error)

// Entry is one registered type -> encoder binding. A type can be supplied
// directly (Type) when the package defining it is already imported, or
// deferred by module path and type name (Module, Name) when it isn't --
// resolved lazily the first time a value of an unresolved entry's
// candidate type is looked up, mirroring how spec §5 describes "a type
// named by (module, qualified name) resolved without importing the
// defining package."
type Entry struct {
	Type   reflect.Type
	Module string
	Name   string
	Encode EncodeFunc

	resolved bool
}

// Registry is an ordered, first-match-wins table of Entry. Among deferred
// entries, earlier ones in the list take priority over later ones. A direct
// Register entry (or a deferred one already resolved) for a type is matched
// before any still-deferred entry, wherever it sits in the list. The
// SetDefault fallback is kept apart from the list and consulted only when
// nothing else matches, giving it the lowest priority.
type Registry struct {
	entries []*Entry
	byType  map[reflect.Type]*Entry
	def     *Entry
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byType: make(map[reflect.Type]*Entry),
	}
}

// Register adds an entry for a concrete, already-known reflect.Type at the
// highest priority (front of the list).
func (r *Registry) Register(t reflect.Type, fn EncodeFunc) {
	e := &Entry{Type: t, Encode: fn, resolved: true}
	r.entries = append([]*Entry{e}, r.entries...)
	r.byType[t] = e
}

// RegisterName adds an entry for a type named by its defining module path
// and type name, without requiring that package to be imported. Resolution
// is deferred until Lookup first sees a reflect.Type whose PkgPath+Name
// matches, at which point it's cached like a direct Register.
func (r *Registry) RegisterName(module, name string, fn EncodeFunc) {
	e := &Entry{Module: module, Name: name, Encode: fn}
	r.entries = append([]*Entry{e}, r.entries...)
}

// SetDefault installs a fallback encoder consulted when no entry matches.
func (r *Registry) SetDefault(fn EncodeFunc) {
	r.def = &Entry{Encode: fn, resolved: true}
}

// Lookup finds the encoder registered for t, resolving any deferred
// (module, name) entries against t along the way and caching the result
// for subsequent lookups of the same type. Returns the registry's default
// encoder (if any) when nothing matches.
func (r *Registry) Lookup(t reflect.Type) (EncodeFunc, bool) {
	if e, ok := r.byType[t]; ok {
		return e.Encode, true
	}

	for _, e := range r.entries {
		if e.resolved {
			continue
		}
		if matchesDeferred(e, t) {
			e.Type = t
			e.resolved = true
			r.byType[t] = e
			return e.Encode, true
		}
	}

	if r.def != nil {
		return r.def.Encode, true
	}

	return nil, false
}

func matchesDeferred(e *Entry, t reflect.Type) bool {
	if t.Name() != e.Name {
		return false
	}
	return t.PkgPath() == e.Module || pkgPathSuffix(t.PkgPath(), e.Module)
}

func pkgPathSuffix(pkgPath, module string) bool {
	if len(pkgPath) < len(module) {
		return false
	}
	return pkgPath[len(pkgPath)-len(module):] == module
}

// Describe renders a human-readable label for an entry, useful in error
// messages about unresolvable deferred entries (spec's
// ErrDeferredTypeSpecMalformed).
func (e *Entry) Describe() string {
	if e.resolved {
		return fmt.Sprintf("%s.%s", e.Type.PkgPath(), e.Type.Name())
	}
	return fmt.Sprintf("%s.%s (deferred)", e.Module, e.Name)
}
