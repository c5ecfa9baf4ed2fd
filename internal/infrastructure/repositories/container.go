package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/depscope/internal/domain/repositories"
	dotRepo "github.com/rios0rios0/depscope/internal/infrastructure/repositories/dot"
	jsonRepo "github.com/rios0rios0/depscope/internal/infrastructure/repositories/json"
	noopRepo "github.com/rios0rios0/depscope/internal/infrastructure/repositories/noop"
	textRepo "github.com/rios0rios0/depscope/internal/infrastructure/repositories/text"
)

// DefaultSizeResolver is the resolver bound when nothing else is configured.
const DefaultSizeResolver = "none"

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register renderer registry with all renderer implementations
	if err := container.Provide(func() *RendererRegistry {
		reg := NewRendererRegistry()
		reg.Register(textRepo.NewRendererRepository())
		reg.Register(jsonRepo.NewRendererRepository())
		reg.Register(dotRepo.NewRendererRepository())
		return reg
	}); err != nil {
		return err
	}

	// Register size resolver registry with all resolver factories
	if err := container.Provide(func() *SizeRegistry {
		reg := NewSizeRegistry()
		reg.Register(DefaultSizeResolver, noopRepo.NewSizeRepository)
		return reg
	}); err != nil {
		return err
	}

	// Bind the domain size port to the default resolver behind the cache
	if err := container.Provide(func(reg *SizeRegistry) (domainRepos.SizeRepository, error) {
		resolver, err := reg.Get(DefaultSizeResolver)
		if err != nil {
			return nil, err
		}
		return NewCachedSizeRepository(resolver, DefaultSizeCacheEntries)
	}); err != nil {
		return err
	}

	return nil
}
