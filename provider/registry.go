package provider

import "fmt"

// Registry holds the configured providers and allows lookup by name. It
// performs no auth logic itself.
type Registry struct {
	providers map[string]Provider
}

// NewRegistry registers the given providers by name. Names must be unique;
// a later provider with a duplicate name replaces the earlier one.
func NewRegistry(list ...Provider) *Registry {
	m := make(map[string]Provider, len(list))
	for _, p := range list {
		m[p.Name()] = p
	}
	return &Registry{providers: m}
}

// Get returns the provider by name or an error if not registered.
func (r *Registry) Get(name string) (Provider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("unknown oauth provider: %s", name)
	}
	return p, nil
}

// Names lists the registered provider identifiers.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}
