package typereg

import "sync"

// entry is the registry's record for one registered type.
type entry struct {
	name    string
	parents []TypeHandle
}

// Registry maps type names to handles and handles to their parent sets.
// One process-wide default registry backs the package-level functions;
// New builds isolated registries, which tests use to avoid cross-talk.
//
// Registration is serialized by a mutex held only while the tables are
// mutated. Queries take the read side, which is uncontended once the
// (typically init-time) registration phase is over.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]TypeHandle
	entries []entry // entries[h-1] is the record for handle h
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{byName: make(map[string]TypeHandle)}
}

// Register registers name with the given parent handles and returns its
// handle. Re-registering an existing name returns the existing handle and
// leaves its parent set untouched; duplicate calls are the documented usage
// pattern (every class registers at every first-use path), not an error.
//
// An empty name returns ErrEmptyName. A parent handle that was never
// registered returns ErrUnknownType: parents must be registered before
// their descendants.
func (r *Registry) Register(name string, parents ...TypeHandle) (TypeHandle, error) {
	if name == "" {
		return HandleNone, ErrEmptyName
	}

	r.mu.RLock()
	h, ok := r.byName[name]
	r.mu.RUnlock()
	if ok {
		return h, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock: another goroutine may have won the
	// race to register the same name.
	if h, ok := r.byName[name]; ok {
		return h, nil
	}
	for _, p := range parents {
		if !r.knownLocked(p) {
			return HandleNone, ErrUnknownType
		}
	}

	e := entry{name: name}
	if len(parents) > 0 {
		e.parents = make([]TypeHandle, len(parents))
		copy(e.parents, parents)
	}
	r.entries = append(r.entries, e)
	h = TypeHandle(len(r.entries))
	r.byName[name] = h
	return h, nil
}

// MustRegister is Register but panics on error. It is the normal form for
// package-level class registration, where a failure is a programming
// defect that should stop the process.
func (r *Registry) MustRegister(name string, parents ...TypeHandle) TypeHandle {
	h, err := r.Register(name, parents...)
	if err != nil {
		panic("typereg: register " + name + ": " + err.Error())
	}
	return h
}

// IsDerivedFrom reports whether h is ancestor, or ancestor is reachable by
// following parent links from h. It is reflexive for any handle value.
// Termination relies on the parent graph being acyclic; a cycle is a
// registration defect (see Verify), not a condition handled here.
func (r *Registry) IsDerivedFrom(h, ancestor TypeHandle) bool {
	if h == ancestor {
		return true
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stack := []TypeHandle{h}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !r.knownLocked(cur) {
			continue
		}
		for _, p := range r.entries[cur-1].parents {
			if p == ancestor {
				return true
			}
			stack = append(stack, p)
		}
	}
	return false
}

// Name returns the display name h was registered under, or ErrUnknownType.
func (r *Registry) Name(h TypeHandle) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.knownLocked(h) {
		return "", ErrUnknownType
	}
	return r.entries[h-1].name, nil
}

// Parents returns the ordered parent handles declared when h was
// registered, or ErrUnknownType. The returned slice is a copy.
func (r *Registry) Parents(h TypeHandle) ([]TypeHandle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.knownLocked(h) {
		return nil, ErrUnknownType
	}
	parents := r.entries[h-1].parents
	if len(parents) == 0 {
		return nil, nil
	}
	out := make([]TypeHandle, len(parents))
	copy(out, parents)
	return out, nil
}

// Children returns the handles whose parent set names h directly, in
// registration order, or ErrUnknownType. Intended for tooling; the
// registry keeps no reverse index, so this scans the table.
func (r *Registry) Children(h TypeHandle) ([]TypeHandle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if !r.knownLocked(h) {
		return nil, ErrUnknownType
	}
	var out []TypeHandle
	for i := range r.entries {
		for _, p := range r.entries[i].parents {
			if p == h {
				out = append(out, TypeHandle(i+1))
				break
			}
		}
	}
	return out, nil
}

// Roots returns the handles registered with no parents, in registration
// order.
func (r *Registry) Roots() []TypeHandle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []TypeHandle
	for i := range r.entries {
		if len(r.entries[i].parents) == 0 {
			out = append(out, TypeHandle(i+1))
		}
	}
	return out
}

// Handles returns every registered handle in registration order.
func (r *Registry) Handles() []TypeHandle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]TypeHandle, len(r.entries))
	for i := range out {
		out[i] = TypeHandle(i + 1)
	}
	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// knownLocked reports whether h refers to a registered entry. Callers must
// hold r.mu (either side).
func (r *Registry) knownLocked(h TypeHandle) bool {
	return h != HandleNone && int(h) <= len(r.entries)
}

// defaultRegistry is the process-wide registry behind the package-level
// functions. Node classes register here during package initialization and
// the entries live until process exit.
var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry { return defaultRegistry }

// Register registers name in the default registry. See Registry.Register.
func Register(name string, parents ...TypeHandle) (TypeHandle, error) {
	return defaultRegistry.Register(name, parents...)
}

// MustRegister registers name in the default registry, panicking on error.
func MustRegister(name string, parents ...TypeHandle) TypeHandle {
	return defaultRegistry.MustRegister(name, parents...)
}

// IsDerivedFrom queries the default registry. See Registry.IsDerivedFrom.
func IsDerivedFrom(h, ancestor TypeHandle) bool {
	return defaultRegistry.IsDerivedFrom(h, ancestor)
}

// Name queries the default registry. See Registry.Name.
func Name(h TypeHandle) (string, error) { return defaultRegistry.Name(h) }

// Parents queries the default registry. See Registry.Parents.
func Parents(h TypeHandle) ([]TypeHandle, error) { return defaultRegistry.Parents(h) }
