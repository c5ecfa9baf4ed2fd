//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"io"

	"github.com/rios0rios0/depscope/internal/domain/entities"
	"github.com/rios0rios0/depscope/internal/domain/repositories"
)

// SpyRendererRepository implements repositories.RendererRepository as a
// configurable spy.
type SpyRendererRepository struct {
	// --- identity ---
	RendererName string

	// --- Render ---
	RenderErr error
	Payload   string // written to the destination on every render

	Rendered []*entities.AnalysisReport
	LastOpts entities.RenderOptions
}

var _ repositories.RendererRepository = (*SpyRendererRepository)(nil)

func (s *SpyRendererRepository) Name() string { return s.RendererName }

func (s *SpyRendererRepository) Render(
	w io.Writer, report *entities.AnalysisReport, opts entities.RenderOptions,
) error {
	s.Rendered = append(s.Rendered, report)
	s.LastOpts = opts
	if s.RenderErr != nil {
		return s.RenderErr
	}
	if s.Payload != "" {
		if _, err := io.WriteString(w, s.Payload); err != nil {
			return err
		}
	}
	return nil
}
