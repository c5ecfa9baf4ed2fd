package repositories

import (
	"io"

	"github.com/rios0rios0/depscope/internal/domain/entities"
)

// RendererRepository abstracts one output format for an analysis report.
// Each implementation owns its full surface: the tree layout, what omitted
// and optional nodes look like, and how sizes are shown.
type RendererRepository interface {
	// Name returns the format identifier (e.g. "text", "json", "dot").
	Name() string

	// Render writes the report to the writer.
	Render(w io.Writer, report *entities.AnalysisReport, opts entities.RenderOptions) error
}
