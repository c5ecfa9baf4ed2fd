//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depscope/internal/domain/repositories"
)

// SpySizeRepository implements repositories.SizeRepository as a configurable spy.
type SpySizeRepository struct {
	// Sizes maps "group:artifact:version" to the size to report.
	Sizes   map[string]int64
	SizeErr error

	// Requests records every lookup in call order.
	Requests []string
}

var _ repositories.SizeRepository = (*SpySizeRepository)(nil)

func (s *SpySizeRepository) ArtifactSize(
	_ context.Context, groupID, artifactID, version string,
) (int64, error) {
	key := groupID + ":" + artifactID + ":" + version
	s.Requests = append(s.Requests, key)
	if s.SizeErr != nil {
		return 0, s.SizeErr
	}
	return s.Sizes[key], nil
}

// DummySizeRepository is a no-op implementation of repositories.SizeRepository.
type DummySizeRepository struct{}

var _ repositories.SizeRepository = (*DummySizeRepository)(nil)

func (d *DummySizeRepository) ArtifactSize(
	_ context.Context, _, _, _ string,
) (int64, error) {
	return 0, nil
}
