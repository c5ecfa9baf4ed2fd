//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depscope/internal/domain/commands"
)

// StubSummaryCommand is a stub implementation of commands.Summary.
type StubSummaryCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	LastOpts         commands.SummaryOptions
}

var _ commands.Summary = (*StubSummaryCommand)(nil)

func (s *StubSummaryCommand) Execute(
	_ context.Context,
	opts commands.SummaryOptions,
) error {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.ExecuteErr
}
