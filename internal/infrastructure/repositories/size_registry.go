package repositories

import (
	"fmt"

	domainRepos "github.com/rios0rios0/depscope/internal/domain/repositories"
)

// SizeFactory is a constructor function that creates a SizeRepository.
type SizeFactory func() domainRepos.SizeRepository

// SizeRegistry manages all registered artifact size resolver implementations.
type SizeRegistry struct {
	resolvers map[string]SizeFactory
}

// NewSizeRegistry creates an empty size resolver registry.
func NewSizeRegistry() *SizeRegistry {
	return &SizeRegistry{
		resolvers: make(map[string]SizeFactory),
	}
}

// Register adds a resolver factory under the given name (e.g. "none").
func (r *SizeRegistry) Register(name string, factory SizeFactory) {
	r.resolvers[name] = factory
}

// Get returns a configured resolver instance for the given name.
func (r *SizeRegistry) Get(name string) (domainRepos.SizeRepository, error) {
	factory, ok := r.resolvers[name]
	if !ok {
		return nil, fmt.Errorf("unknown size resolver: %q", name)
	}
	return factory(), nil
}

// Names returns the list of registered resolver names.
func (r *SizeRegistry) Names() []string {
	names := make([]string, 0, len(r.resolvers))
	for name := range r.resolvers {
		names = append(names, name)
	}
	return names
}
