//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/depscope/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// DependencyNodeBuilder helps create test tree nodes with a fluent interface.
type DependencyNodeBuilder struct {
	*testkit.BaseBuilder
	groupID       string
	artifactID    string
	version       string
	packaging     string
	scope         string
	optional      bool
	omitted       bool
	omittedReason string
	sizeBytes     int64
}

// NewDependencyNodeBuilder creates a new node builder with sensible defaults.
func NewDependencyNodeBuilder() *DependencyNodeBuilder {
	return &DependencyNodeBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		groupID:     "com.example",
		artifactID:  "test-artifact",
		version:     "1.0.0",
		packaging:   entities.DefaultPackaging,
		scope:       entities.DefaultScope,
	}
}

// WithGroupID sets the group identifier.
func (b *DependencyNodeBuilder) WithGroupID(groupID string) *DependencyNodeBuilder {
	b.groupID = groupID
	return b
}

// WithArtifactID sets the artifact identifier.
func (b *DependencyNodeBuilder) WithArtifactID(artifactID string) *DependencyNodeBuilder {
	b.artifactID = artifactID
	return b
}

// WithVersion sets the version.
func (b *DependencyNodeBuilder) WithVersion(version string) *DependencyNodeBuilder {
	b.version = version
	return b
}

// WithPackaging sets the packaging.
func (b *DependencyNodeBuilder) WithPackaging(packaging string) *DependencyNodeBuilder {
	b.packaging = packaging
	return b
}

// WithScope sets the scope.
func (b *DependencyNodeBuilder) WithScope(scope string) *DependencyNodeBuilder {
	b.scope = scope
	return b
}

// Optional marks the node optional.
func (b *DependencyNodeBuilder) Optional() *DependencyNodeBuilder {
	b.optional = true
	return b
}

// OmittedFor marks the node omitted with the given reason.
func (b *DependencyNodeBuilder) OmittedFor(reason string) *DependencyNodeBuilder {
	b.omitted = true
	b.omittedReason = reason
	return b
}

// WithSizeBytes sets the artifact's own size.
func (b *DependencyNodeBuilder) WithSizeBytes(size int64) *DependencyNodeBuilder {
	b.sizeBytes = size
	return b
}

// Build creates the node (satisfies testkit.Builder interface).
func (b *DependencyNodeBuilder) Build() interface{} {
	return b.BuildNode()
}

// BuildNode creates the node with a concrete return type.
func (b *DependencyNodeBuilder) BuildNode() *entities.DependencyNode {
	node := entities.NewDependencyNode(b.groupID, b.artifactID, b.version)
	node.Packaging = b.packaging
	node.Scope = b.scope
	node.Optional = b.optional
	node.Omitted = b.omitted
	node.OmittedReason = b.omittedReason
	node.SizeBytes = b.sizeBytes
	return node
}

// Reset clears the builder state, allowing it to be reused.
func (b *DependencyNodeBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.groupID = "com.example"
	b.artifactID = "test-artifact"
	b.version = "1.0.0"
	b.packaging = entities.DefaultPackaging
	b.scope = entities.DefaultScope
	b.optional = false
	b.omitted = false
	b.omittedReason = ""
	b.sizeBytes = 0
	return b
}

// Clone creates a deep copy of the DependencyNodeBuilder.
func (b *DependencyNodeBuilder) Clone() testkit.Builder {
	return &DependencyNodeBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		groupID:       b.groupID,
		artifactID:    b.artifactID,
		version:       b.version,
		packaging:     b.packaging,
		scope:         b.scope,
		optional:      b.optional,
		omitted:       b.omitted,
		omittedReason: b.omittedReason,
		sizeBytes:     b.sizeBytes,
	}
}
