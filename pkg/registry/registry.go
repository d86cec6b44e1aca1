package registry

import (
	"sort"
	"sync"
)

// Operation describes one Slack Web API operation exposed by the client.
type Operation struct {
	// Method is the Go method name on the client, e.g. "PostMessage".
	Method string
	// Path is the Web API operation path, e.g. "chat.postMessage".
	Path string
	// Group is the API namespace, e.g. "chat".
	Group string
}

// operationRegistry holds all registered operations
type operationRegistry struct {
	mu       sync.RWMutex
	byMethod map[string]Operation
	byPath   map[string][]Operation
}

var globalRegistry = &operationRegistry{
	byMethod: make(map[string]Operation),
	byPath:   make(map[string][]Operation),
}

// Register adds an operation to the registry. Later registrations for the
// same Go method name replace earlier ones.
func Register(op Operation) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.byMethod[op.Method] = op
	globalRegistry.byPath[op.Path] = append(globalRegistry.byPath[op.Path], op)
}

// Lookup returns the operation for a Go method name.
func Lookup(method string) (Operation, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	op, ok := globalRegistry.byMethod[method]
	return op, ok
}

// LookupPath returns the operations registered under a Web API path. A path
// usually carries two: the plain and the Context-suffixed method variant.
func LookupPath(path string) ([]Operation, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	ops, ok := globalRegistry.byPath[path]
	if !ok {
		return nil, false
	}
	out := make([]Operation, len(ops))
	copy(out, ops)
	return out, true
}

// MethodsFor returns every Go method name registered under a Web API path.
func MethodsFor(path string) []string {
	ops, ok := LookupPath(path)
	if !ok {
		return nil
	}
	methods := make([]string, 0, len(ops))
	for _, op := range ops {
		methods = append(methods, op.Method)
	}
	return methods
}

// PathFor returns the Web API path for a Go method name, falling back to the
// method name itself when the method is not registered.
func PathFor(method string) string {
	if op, ok := Lookup(method); ok {
		return op.Path
	}
	return method
}

// All returns every registered operation, sorted by path then method.
func All() []Operation {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	ops := make([]Operation, 0, len(globalRegistry.byMethod))
	for _, op := range globalRegistry.byMethod {
		ops = append(ops, op)
	}
	sort.Slice(ops, func(i, j int) bool {
		if ops[i].Path != ops[j].Path {
			return ops[i].Path < ops[j].Path
		}
		return ops[i].Method < ops[j].Method
	})
	return ops
}

// Groups returns every distinct API namespace, sorted.
func Groups() []string {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, op := range globalRegistry.byMethod {
		seen[op.Group] = struct{}{}
	}
	groups := make([]string, 0, len(seen))
	for g := range seen {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	return groups
}
