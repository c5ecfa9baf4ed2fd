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
	doubles "github.com/rios0rios0/depscope/test/infrastructure/repositorydoubles"
)

func runSummary(t *testing.T, opts commands.SummaryOptions, sizes *doubles.SpySizeRepository) string {
	t.Helper()

	if sizes == nil {
		sizes = &doubles.SpySizeRepository{}
	}
	opts.Output = filepath.Join(t.TempDir(), "summary.out")

	cmd := commands.NewSummaryCommand(sizes)
	require.NoError(t, cmd.Execute(context.Background(), opts))

	written, err := os.ReadFile(opts.Output)
	require.NoError(t, err)
	return string(written)
}

func TestSummaryCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should write the aggregate counts", func(t *testing.T) {
		t.Parallel()

		// given
		opts := commands.SummaryOptions{InputPath: writeInput(t, verboseTree)}

		// when
		written := runSummary(t, opts, nil)

		// then
		assert.Contains(t, written, "Modules:        1")
		assert.Contains(t, written, "Dependencies:   2")
		assert.Contains(t, written, "compile:")
		assert.Contains(t, written, "test:")
		assert.Contains(t, written, "Optional:       1")
		assert.Contains(t, written, "Omitted:        1 conflicts, 0 duplicates")
		assert.Contains(t, written, "mediation:    1 upgrades, 0 downgrades")
		assert.NotContains(t, written, "provided:")
		assert.NotContains(t, written, "Total size:")
		assert.NotContains(t, written, "Conflicts:")
	})

	t.Run("should separate duplicate and conflict omissions", func(t *testing.T) {
		t.Parallel()

		// given
		input := `[INFO] com.foo:app:jar:1.0
[INFO] +- com.a:lib:jar:1.0:compile
[INFO] |  \- (com.b:dup:jar:2.0:compile - omitted for duplicate)
[INFO] \- (com.c:conf:jar:5.0:compile - omitted for conflict with 4.0)
`
		opts := commands.SummaryOptions{InputPath: writeInput(t, input)}

		// when
		written := runSummary(t, opts, nil)

		// then
		assert.Contains(t, written, "Dependencies:   1")
		assert.Contains(t, written, "Omitted:        1 conflicts, 1 duplicates")
		assert.Contains(t, written, "mediation:    0 upgrades, 1 downgrades")
	})

	t.Run("should list conflicts with their introduction path when requested", func(t *testing.T) {
		t.Parallel()

		// given
		opts := commands.SummaryOptions{
			InputPath:     writeInput(t, verboseTree),
			ShowConflicts: true,
		}

		// when
		written := runSummary(t, opts, nil)

		// then
		assert.Contains(t, written, "Conflicts:")
		assert.Contains(t, written, "com.baz:other:3.0 lost to 4.0 (upgrade)")
		assert.Contains(t, written, "brought in by com.foo:bar:1.0 > com.baz:qux:2.0")
	})

	t.Run("should exclude omitted subtrees from the sizes", func(t *testing.T) {
		t.Parallel()

		// given
		sizes := &doubles.SpySizeRepository{Sizes: map[string]int64{
			"com.foo:bar:1.0":     100,
			"com.baz:qux:2.0":     2048,
			"com.baz:another:5.0": 50,
			"com.baz:other:3.0":   1000,
		}}
		opts := commands.SummaryOptions{
			InputPath: writeInput(t, verboseTree),
			ShowSizes: true,
		}

		// when
		written := runSummary(t, opts, sizes)

		// then
		assert.Contains(t, written, "Size (compile): 2.0 KB")
		assert.Contains(t, written, "Size (test): 50 B")
		// 100 + 2048 + 50; the omitted 1000 must not count.
		assert.Contains(t, written, "Total size:     2.1 KB")
	})

	t.Run("should count recovered parse issues", func(t *testing.T) {
		t.Parallel()

		// given
		input := `[INFO] com.foo:app:jar:1.0
[INFO] +- garbage:stuff
[INFO] \- com.a:lib:jar:1.0:compile
`
		opts := commands.SummaryOptions{InputPath: writeInput(t, input)}

		// when
		written := runSummary(t, opts, nil)

		// then
		assert.Contains(t, written, "Parse issues:   1")
	})

	t.Run("should surface upstream build failures", func(t *testing.T) {
		t.Parallel()

		// given
		cmd := commands.NewSummaryCommand(&doubles.DummySizeRepository{})
		opts := commands.SummaryOptions{
			InputPath: writeInput(t, "[ERROR] broken pom\n[INFO] BUILD FAILURE\n"),
		}

		// when
		err := cmd.Execute(context.Background(), opts)

		// then
		require.Error(t, err)
		assert.ErrorIs(t, err, entities.ErrUpstreamFailure)
	})
}
