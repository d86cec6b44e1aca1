package mockgen

import (
	"fmt"
	"io"
	"log/slog"
	"reflect"

	"github.com/mockbot/go-slackmock/pkg/stub"
)

// DefaultMaxDepth bounds the recursive walk. The real client graphs this
// package targets are two or three levels deep; hitting the bound means the
// input violates the finite/acyclic precondition.
const DefaultMaxDepth = 32

type generator struct {
	maxDepth int
	logger   *slog.Logger
	namer    func(path string) string
}

// Option configures a generation pass.
type Option func(*generator)

// WithMaxDepth overrides the recursion depth guard.
func WithMaxDepth(n int) Option {
	return func(g *generator) {
		if n > 0 {
			g.maxDepth = n
		}
	}
}

// WithLogger makes the walk and every derived stand-in log at debug level.
func WithLogger(logger *slog.Logger) Option {
	return func(g *generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithNamer maps a member path to the name of its stand-in. The default is
// the member path itself. pkg/slackmock uses this to name stubs after Slack
// Web API paths ("PostMessage" -> "chat.postMessage").
func WithNamer(namer func(path string) string) Option {
	return func(g *generator) {
		if namer != nil {
			g.namer = namer
		}
	}
}

// Generate derives a structurally congruent mock from source. Every callable
// member becomes a fresh stand-in, primitives are copied, nested objects are
// walked recursively. The source is read-only and is never aliased by the
// result.
//
// The only failure mode is exceeding the depth guard, which indicates a
// cyclic or absurdly deep source graph.
func Generate(source any, opts ...Option) (*Object, error) {
	g := &generator{
		maxDepth: DefaultMaxDepth,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		namer:    func(path string) string { return path },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g.walk(reflect.ValueOf(source), "", 0)
}

// MustGenerate is Generate for sources statically known to be well-formed,
// such as a freshly constructed client instance.
func MustGenerate(source any, opts ...Option) *Object {
	obj, err := Generate(source, opts...)
	if err != nil {
		panic(fmt.Sprintf("mockgen: %v", err))
	}
	return obj
}

func (g *generator) walk(v reflect.Value, path string, depth int) (*Object, error) {
	if depth > g.maxDepth {
		return nil, &Error{
			Code:    "max_depth_exceeded",
			Message: fmt.Sprintf("mock generation exceeded depth %d at %q; source graph must be finite and acyclic", g.maxDepth, path),
			Type:    "validation_error",
		}
	}

	obj := &Object{path: path, entries: make(map[string]Entry)}

	// The method set first. This covers promoted methods of embedded types,
	// which is how the real client exposes most of its surface.
	if v.IsValid() {
		t := v.Type()
		for i := 0; i < t.NumMethod(); i++ {
			g.addCallable(obj, path, t.Method(i).Name)
		}
	}

	elem := v
	for elem.IsValid() && (elem.Kind() == reflect.Pointer || elem.Kind() == reflect.Interface) {
		if elem.IsNil() {
			return obj, nil
		}
		elem = elem.Elem()
	}
	if !elem.IsValid() {
		return obj, nil
	}

	switch elem.Kind() {
	case reflect.Struct:
		t := elem.Type()
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.IsExported() {
				continue
			}
			if err := g.addMember(obj, path, field.Name, elem.Field(i), depth); err != nil {
				return nil, err
			}
		}
	case reflect.Map:
		iter := elem.MapRange()
		for iter.Next() {
			if err := g.addMember(obj, path, iter.Key().String(), iter.Value(), depth); err != nil {
				return nil, err
			}
		}
	}

	return obj, nil
}

func (g *generator) addMember(obj *Object, path, name string, v reflect.Value, depth int) error {
	memberPath := join(path, name)
	switch classify(v) {
	case KindCallable:
		g.addCallable(obj, path, name)
	case KindPrimitive:
		var copied any
		if v.IsValid() && v.CanInterface() {
			copied = v.Interface()
		}
		obj.entries[name] = Entry{kind: KindPrimitive, value: copied}
	case KindNested:
		child, err := g.walk(v, memberPath, depth+1)
		if err != nil {
			return err
		}
		obj.entries[name] = Entry{kind: KindNested, child: child}
	}
	return nil
}

func (g *generator) addCallable(obj *Object, path, name string) {
	memberPath := join(path, name)
	stubName := g.namer(memberPath)
	g.logger.Debug("derived stand-in", "member", memberPath, "stub", stubName)
	obj.entries[name] = Entry{
		kind: KindCallable,
		stub: stub.New(stubName, stub.WithLogger(g.logger)),
	}
}

func join(path, name string) string {
	if path == "" {
		return name
	}
	return path + "." + name
}
