//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depscope/internal/domain/entities"
)

func TestApplyAnnotationText(t *testing.T) {
	t.Parallel()

	t.Run("should mark optional dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		node := newNode("lib")

		// when
		entities.ApplyAnnotationText(node, "optional")

		// then
		assert.True(t, node.Optional)
		assert.False(t, node.Omitted)
		assert.Empty(t, node.Annotations)
	})

	t.Run("should capture the omission reason without the phrase", func(t *testing.T) {
		t.Parallel()

		// given
		node := newNode("lib")

		// when
		entities.ApplyAnnotationText(node, "omitted for conflict with 4.0")

		// then
		assert.True(t, node.Omitted)
		assert.Equal(t, "conflict with 4.0", node.OmittedReason)
	})

	t.Run("should cut the omission reason at the next note", func(t *testing.T) {
		t.Parallel()

		// given
		node := newNode("lib")

		// when
		entities.ApplyAnnotationText(node, "omitted for duplicate; version managed from 2.0")

		// then
		assert.Equal(t, "duplicate", node.OmittedReason)
		require.Len(t, node.Annotations, 1)
		assert.Equal(t, entities.AnnotationVersionManaged, node.Annotations[0].Kind)
		assert.Equal(t, "2.0", node.Annotations[0].Value)
	})

	t.Run("should record managed version and scope as typed notes", func(t *testing.T) {
		t.Parallel()

		// given
		node := newNode("lib")

		// when
		entities.ApplyAnnotationText(node, "version managed from 1.1; scope managed from runtime")

		// then
		require.Len(t, node.Annotations, 2)
		assert.Equal(t, entities.Annotation{
			Kind: entities.AnnotationVersionManaged, Value: "1.1",
		}, node.Annotations[0])
		assert.Equal(t, entities.Annotation{
			Kind: entities.AnnotationScopeManaged, Value: "runtime",
		}, node.Annotations[1])
	})

	t.Run("should leave the node unchanged when reapplied", func(t *testing.T) {
		t.Parallel()

		// given
		node := newNode("lib")
		annotation := "optional; version managed from 1.1"
		entities.ApplyAnnotationText(node, annotation)

		// when
		entities.ApplyAnnotationText(node, annotation)

		// then
		assert.True(t, node.Optional)
		require.Len(t, node.Annotations, 1)
		assert.Equal(t, "1.1", node.Annotations[0].Value)
	})

	t.Run("should ignore empty and unknown annotations", func(t *testing.T) {
		t.Parallel()

		// given
		node := newNode("lib")

		// when
		entities.ApplyAnnotationText(node, "")
		entities.ApplyAnnotationText(node, "selected for scope")

		// then
		assert.False(t, node.Optional)
		assert.False(t, node.Omitted)
		assert.Empty(t, node.Annotations)
	})
}

func TestAnnotationString(t *testing.T) {
	t.Parallel()

	t.Run("should render the note the way it was printed", func(t *testing.T) {
		t.Parallel()

		version := entities.Annotation{Kind: entities.AnnotationVersionManaged, Value: "1.1"}
		scope := entities.Annotation{Kind: entities.AnnotationScopeManaged, Value: "runtime"}

		assert.Equal(t, "version managed from 1.1", version.String())
		assert.Equal(t, "scope managed from runtime", scope.String())
	})
}
