package mockgen

import (
	"sort"
	"strings"

	"github.com/mockbot/go-slackmock/pkg/stub"
)

// Entry is one member of a generated Object: a stand-in, a copied primitive,
// or a nested child Object, depending on its Kind.
type Entry struct {
	kind  Kind
	stub  *stub.Stub
	value any
	child *Object
}

// Kind returns the member's classification.
func (e Entry) Kind() Kind { return e.kind }

// Stub returns the stand-in for callable entries, nil otherwise.
func (e Entry) Stub() *stub.Stub { return e.stub }

// Value returns the copied value for primitive entries, nil otherwise.
func (e Entry) Value() any { return e.value }

// Child returns the nested Object for nested entries, nil otherwise.
func (e Entry) Child() *Object { return e.child }

// Object is the structurally congruent mock produced by Generate.
type Object struct {
	path    string
	entries map[string]Entry
}

// Path returns the dotted member path from the generation root ("" at the
// root itself).
func (o *Object) Path() string { return o.path }

// Keys returns every member name, sorted.
func (o *Object) Keys() []string {
	keys := make([]string, 0, len(o.entries))
	for k := range o.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether the object has a member with the given name.
func (o *Object) Has(key string) bool {
	_, ok := o.entries[key]
	return ok
}

// Entry returns the member with the given name.
func (o *Object) Entry(key string) (Entry, bool) {
	e, ok := o.entries[key]
	return e, ok
}

// Value returns the copied value of a primitive member, or nil.
func (o *Object) Value(key string) any {
	return o.entries[key].value
}

// Child returns the nested Object of a nested member, or nil.
func (o *Object) Child(key string) *Object {
	return o.entries[key].child
}

// Stub resolves a stand-in by member path. The path may be a direct member
// name or a dotted traversal through nested objects; a direct match wins, so
// member names that themselves contain dots still resolve. Returns nil when
// the path does not lead to a callable member.
func (o *Object) Stub(path string) *stub.Stub {
	if e, ok := o.entries[path]; ok {
		return e.stub
	}
	head, rest, found := strings.Cut(path, ".")
	if !found {
		return nil
	}
	child := o.Child(head)
	if child == nil {
		return nil
	}
	return child.Stub(rest)
}

// Stubs returns every stand-in in the object, at any depth, sorted by member
// path. Useful for bulk reconfiguration in tests.
func (o *Object) Stubs() []*stub.Stub {
	var out []*stub.Stub
	for _, key := range o.Keys() {
		e := o.entries[key]
		switch e.kind {
		case KindCallable:
			out = append(out, e.stub)
		case KindNested:
			out = append(out, e.child.Stubs()...)
		}
	}
	return out
}
