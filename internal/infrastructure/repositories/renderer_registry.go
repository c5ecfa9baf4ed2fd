package repositories

import (
	"fmt"
	"sort"
	"strings"

	domainRepos "github.com/rios0rios0/depscope/internal/domain/repositories"
)

// RendererRegistry manages all registered report renderer implementations.
type RendererRegistry struct {
	renderers map[string]domainRepos.RendererRepository
}

// NewRendererRegistry creates an empty renderer registry.
func NewRendererRegistry() *RendererRegistry {
	return &RendererRegistry{
		renderers: make(map[string]domainRepos.RendererRepository),
	}
}

// Register adds a renderer under its name.
func (r *RendererRegistry) Register(renderer domainRepos.RendererRepository) {
	r.renderers[renderer.Name()] = renderer
}

// Get returns the renderer for the given format name.
func (r *RendererRegistry) Get(name string) (domainRepos.RendererRepository, error) {
	renderer, ok := r.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown report format: %q (registered: %s)",
			name, strings.Join(r.Names(), ", "))
	}
	return renderer, nil
}

// All returns every registered renderer.
func (r *RendererRegistry) All() []domainRepos.RendererRepository {
	result := make([]domainRepos.RendererRepository, 0, len(r.renderers))
	for _, renderer := range r.renderers {
		result = append(result, renderer)
	}
	return result
}

// Names returns the registered format names in sorted order.
func (r *RendererRegistry) Names() []string {
	names := make([]string, 0, len(r.renderers))
	for name := range r.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
