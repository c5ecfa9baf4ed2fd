package noop

import (
	"context"

	domainRepos "github.com/rios0rios0/depscope/internal/domain/repositories"
)

// NoopSizeRepository is the default size resolver. It reports every size as
// unknown, keeping the analysis free of disk and network access; callers
// plug real resolvers through the registry.
type NoopSizeRepository struct{}

// NewSizeRepository creates the no-op resolver.
func NewSizeRepository() domainRepos.SizeRepository {
	return &NoopSizeRepository{}
}

// ArtifactSize always reports unknown.
func (r *NoopSizeRepository) ArtifactSize(
	_ context.Context, _, _, _ string,
) (int64, error) {
	return 0, nil
}
