//go:build unit

package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depscope/internal/domain/commands"
	"github.com/rios0rios0/depscope/internal/domain/entities"
	infraRepos "github.com/rios0rios0/depscope/internal/infrastructure/repositories"
	doubles "github.com/rios0rios0/depscope/test/infrastructure/repositorydoubles"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tree.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestAnalyzeCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should render the parsed report through the requested format", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := &doubles.SpyRendererRepository{RendererName: "spy", Payload: "rendered"}
		registry := infraRepos.NewRendererRegistry()
		registry.Register(renderer)

		cmd := commands.NewAnalyzeCommand(registry, &doubles.DummySizeRepository{})

		output := filepath.Join(t.TempDir(), "report.out")
		opts := commands.AnalyzeOptions{
			InputPath: writeInput(t, verboseTree),
			Format:    "spy",
			Output:    output,
		}

		// when
		err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		require.Len(t, renderer.Rendered, 1)
		assert.Len(t, renderer.Rendered[0].Modules, 1)

		written, readErr := os.ReadFile(output)
		require.NoError(t, readErr)
		assert.Equal(t, "rendered", string(written))
	})

	t.Run("should fail for an unknown report format", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewAnalyzeCommand(
			infraRepos.NewRendererRegistry(), &doubles.DummySizeRepository{},
		)
		opts := commands.AnalyzeOptions{
			InputPath: writeInput(t, verboseTree),
			Format:    "hologram",
		}

		// when
		err := cmd.Execute(context.Background(), opts)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown report format")
	})

	t.Run("should resolve sizes through the collaborator when enabled", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := &doubles.SpyRendererRepository{RendererName: "spy"}
		registry := infraRepos.NewRendererRegistry()
		registry.Register(renderer)

		sizes := &doubles.SpySizeRepository{
			Sizes: map[string]int64{"com.baz:qux:2.0": 2048},
		}
		cmd := commands.NewAnalyzeCommand(registry, sizes)

		opts := commands.AnalyzeOptions{
			InputPath: writeInput(t, verboseTree),
			Format:    "spy",
			Output:    filepath.Join(t.TempDir(), "report.out"),
			ShowSizes: true,
		}

		// when
		err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		assert.True(t, renderer.LastOpts.ShowSizes)
		assert.Contains(t, sizes.Requests, "com.foo:bar:1.0")
		assert.Contains(t, sizes.Requests, "com.baz:qux:2.0")

		qux := renderer.Rendered[0].Modules[0].Children[0]
		assert.Equal(t, int64(2048), qux.SizeBytes)
	})

	t.Run("should not touch the size collaborator when disabled", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := &doubles.SpyRendererRepository{RendererName: "spy"}
		registry := infraRepos.NewRendererRegistry()
		registry.Register(renderer)

		sizes := &doubles.SpySizeRepository{}
		cmd := commands.NewAnalyzeCommand(registry, sizes)

		opts := commands.AnalyzeOptions{
			InputPath: writeInput(t, verboseTree),
			Format:    "spy",
			Output:    filepath.Join(t.TempDir(), "report.out"),
		}

		// when
		err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		assert.Empty(t, sizes.Requests)
	})

	t.Run("should propagate declared scopes when requested", func(t *testing.T) {
		t.Parallel()

		// given
		input := `[INFO] com.foo:bar:jar:1.0
[INFO] +- com.corge:another:jar:3.3:test
[INFO] |  \- com.baz:deep:jar:1.0:compile
[INFO] \- com.baz:qux:jar:2.0:compile
`
		renderer := &doubles.SpyRendererRepository{RendererName: "spy"}
		registry := infraRepos.NewRendererRegistry()
		registry.Register(renderer)

		cmd := commands.NewAnalyzeCommand(registry, &doubles.DummySizeRepository{})
		opts := commands.AnalyzeOptions{
			InputPath:      writeInput(t, input),
			Format:         "spy",
			Output:         filepath.Join(t.TempDir(), "report.out"),
			DeclaredScopes: true,
		}

		// when
		err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		deep := renderer.Rendered[0].Modules[0].Children[0].Children[0]
		assert.Equal(t, "deep", deep.ArtifactID)
		assert.Equal(t, "test", deep.Scope)
	})

	t.Run("should keep the scopes exactly as printed by default", func(t *testing.T) {
		t.Parallel()

		// given
		input := `[INFO] com.foo:bar:jar:1.0
[INFO] +- com.corge:another:jar:3.3:test
[INFO] |  \- com.baz:deep:jar:1.0:compile
[INFO] \- com.baz:qux:jar:2.0:compile
`
		renderer := &doubles.SpyRendererRepository{RendererName: "spy"}
		registry := infraRepos.NewRendererRegistry()
		registry.Register(renderer)

		cmd := commands.NewAnalyzeCommand(registry, &doubles.DummySizeRepository{})
		opts := commands.AnalyzeOptions{
			InputPath: writeInput(t, input),
			Format:    "spy",
			Output:    filepath.Join(t.TempDir(), "report.out"),
		}

		// when
		err := cmd.Execute(context.Background(), opts)

		// then
		require.NoError(t, err)
		deep := renderer.Rendered[0].Modules[0].Children[0].Children[0]
		assert.Equal(t, "deep", deep.ArtifactID)
		assert.Equal(t, "compile", deep.Scope)
	})

	t.Run("should surface fatal parse errors and never render", func(t *testing.T) {
		t.Parallel()

		// given
		renderer := &doubles.SpyRendererRepository{RendererName: "spy"}
		registry := infraRepos.NewRendererRegistry()
		registry.Register(renderer)

		cmd := commands.NewAnalyzeCommand(registry, &doubles.DummySizeRepository{})
		opts := commands.AnalyzeOptions{
			InputPath: writeInput(t, "[INFO] BUILD SUCCESS\n"),
			Format:    "spy",
		}

		// when
		err := cmd.Execute(context.Background(), opts)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrNoDependencyTree)
		assert.Empty(t, renderer.Rendered)
	})

	t.Run("should fail for an unreadable input file", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewAnalyzeCommand(
			infraRepos.NewRendererRegistry(), &doubles.DummySizeRepository{},
		)
		opts := commands.AnalyzeOptions{
			InputPath: filepath.Join(t.TempDir(), "missing.txt"),
			Format:    "text",
		}

		// when
		err := cmd.Execute(context.Background(), opts)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read build output")
	})
}
