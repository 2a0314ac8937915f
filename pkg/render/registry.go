package render

import (
	"fmt"
	"sort"
	"sync"
)

// Registry stores field renderers keyed by field type tag. The tag space is
// open: callers extend forms with their own tags by registering a renderer
// under the same string. Lookups for unregistered tags fall back to the
// conspicuous placeholder rather than failing the whole form.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]FieldRenderer
}

// NewRegistry creates an empty field renderer registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]FieldRenderer),
	}
}

// Register adds a renderer for a field type tag. Duplicate tags return an
// error.
func (r *Registry) Register(typeTag string, renderer FieldRenderer) error {
	if typeTag == "" {
		return fmt.Errorf("render: field type tag is required")
	}
	if renderer == nil {
		return fmt.Errorf("render: renderer for %q is required", typeTag)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[typeTag]; exists {
		return fmt.Errorf("render: renderer for %q already registered", typeTag)
	}
	r.renderers[typeTag] = renderer
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(typeTag string, renderer FieldRenderer) {
	if err := r.Register(typeTag, renderer); err != nil {
		panic(err)
	}
}

// Get retrieves the renderer for a field type tag.
func (r *Registry) Get(typeTag string) (FieldRenderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	renderer, ok := r.renderers[typeTag]
	return renderer, ok
}

// Has reports whether a renderer is registered for the tag.
func (r *Registry) Has(typeTag string) bool {
	_, ok := r.Get(typeTag)
	return ok
}

// List returns the sorted list of registered type tags.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.renderers))
	for tag := range r.renderers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
