package validators

import (
	"fmt"
	"sort"
	"sync"

	"github.com/Matey2010/ultimate-form/pkg/model"
)

// CustomFunc is a named custom validator. It returns a failure message, or
// the empty string when the value passes. A non-empty message replaces the
// configuration's Message on the reported failure.
type CustomFunc func(value any, v model.Validator, ctx model.Context) string

// Registry stores named custom validators referenced by custom-kind
// configurations through Params["name"]. It is an explicit object with
// controlled lifetime rather than process-wide state: construct one per host
// application and hand it to the engine, which also makes Clear safe to use
// between tests.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]CustomFunc
}

// NewRegistry creates an empty custom validator registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[string]CustomFunc),
	}
}

// Register adds a named validator. Duplicate names return an error; use
// Unregister first to replace an entry.
func (r *Registry) Register(name string, fn CustomFunc) error {
	if name == "" {
		return fmt.Errorf("validators: custom validator name is required")
	}
	if fn == nil {
		return fmt.Errorf("validators: custom validator %q: function is required", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.funcs[name]; exists {
		return fmt.Errorf("validators: custom validator %q already registered", name)
	}
	r.funcs[name] = fn
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(name string, fn CustomFunc) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

// Unregister removes a named validator. Removing an unknown name is a no-op.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.funcs, name)
}

// Has reports whether a validator is registered under the name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.funcs[name]
	return ok
}

// List returns the sorted names of all registered validators.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear removes every registered validator.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs = make(map[string]CustomFunc)
}

func (r *Registry) lookup(name string) (CustomFunc, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	return fn, ok
}
