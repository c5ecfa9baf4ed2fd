package repositories

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	domainRepos "github.com/rios0rios0/depscope/internal/domain/repositories"
)

// DefaultSizeCacheEntries bounds the memoization cache. Trees repeat the
// same artifact many times, so even a small cache removes most lookups.
const DefaultSizeCacheEntries = 1024

// CachedSizeRepository memoizes another SizeRepository by artifact
// coordinates. The same group:artifact:version triple is resolved at most
// once per process; failed lookups are not cached so transient errors can
// recover on the next occurrence.
type CachedSizeRepository struct {
	inner domainRepos.SizeRepository
	cache *lru.Cache[string, int64]
}

// NewCachedSizeRepository wraps the given resolver with an LRU cache of the
// given capacity.
func NewCachedSizeRepository(
	inner domainRepos.SizeRepository, entries int,
) (*CachedSizeRepository, error) {
	cache, err := lru.New[string, int64](entries)
	if err != nil {
		return nil, fmt.Errorf("failed to create size cache: %w", err)
	}
	return &CachedSizeRepository{inner: inner, cache: cache}, nil
}

// ArtifactSize returns the cached size when present, delegating to the
// wrapped resolver otherwise.
func (it *CachedSizeRepository) ArtifactSize(
	ctx context.Context, groupID, artifactID, version string,
) (int64, error) {
	key := groupID + ":" + artifactID + ":" + version
	if size, ok := it.cache.Get(key); ok {
		return size, nil
	}

	size, err := it.inner.ArtifactSize(ctx, groupID, artifactID, version)
	if err != nil {
		return 0, err
	}

	it.cache.Add(key, size)
	return size, nil
}
