package repositories

import (
	"context"
)

// SizeRepository abstracts whoever knows how big artifacts are. The
// analyzer never goes looking for sizes itself — it asks this collaborator
// and treats 0 as "unknown". Implementations must be safe for concurrent
// use; duplicate lookups for the same triple are acceptable as long as
// they are idempotent.
type SizeRepository interface {
	// ArtifactSize returns the artifact's size in bytes, or 0 when the
	// collaborator cannot tell.
	ArtifactSize(ctx context.Context, groupID, artifactID, version string) (int64, error)
}
