//go:build unit

package repositories_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainRepos "github.com/rios0rios0/depscope/internal/domain/repositories"
	"github.com/rios0rios0/depscope/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/depscope/test/infrastructure/repositorydoubles"
)

func TestSizeRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should build a resolver from its registered factory", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewSizeRegistry()
		reg.Register("spy", func() domainRepos.SizeRepository {
			return &doubles.SpySizeRepository{}
		})

		// when
		resolver, err := reg.Get("spy")

		// then
		require.NoError(t, err)
		assert.NotNil(t, resolver)
	})

	t.Run("should fail for an unknown resolver", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewSizeRegistry()

		// when
		resolver, err := reg.Get("maven-central")

		// then
		require.Error(t, err)
		assert.Nil(t, resolver)
		assert.Contains(t, err.Error(), `unknown size resolver: "maven-central"`)
	})

	t.Run("should list registered resolver names", func(t *testing.T) {
		t.Parallel()

		// given
		reg := repositories.NewSizeRegistry()
		reg.Register("none", func() domainRepos.SizeRepository {
			return &doubles.DummySizeRepository{}
		})
		reg.Register("spy", func() domainRepos.SizeRepository {
			return &doubles.SpySizeRepository{}
		})

		// when
		names := reg.Names()

		// then
		assert.ElementsMatch(t, []string{"none", "spy"}, names)
	})
}
