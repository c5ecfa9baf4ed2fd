package dot

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rios0rios0/depscope/internal/domain/entities"
	domainRepos "github.com/rios0rios0/depscope/internal/domain/repositories"
)

const (
	rendererName   = "dot"
	defaultRankDir = "LR"
)

// DotRendererRepository renders the dependency graph in Graphviz DOT form.
// Artifacts repeated across the tree collapse into one vertex; omitted
// occurrences are drawn dashed, optional ones dotted.
type DotRendererRepository struct{}

// NewRendererRepository creates the DOT renderer.
func NewRendererRepository() domainRepos.RendererRepository {
	return &DotRendererRepository{}
}

func (r *DotRendererRepository) Name() string { return rendererName }

// Render writes one digraph covering every module tree in the report.
func (r *DotRendererRepository) Render(
	w io.Writer, report *entities.AnalysisReport, opts entities.RenderOptions,
) error {
	rankDir := opts.RankDir
	if rankDir == "" {
		rankDir = defaultRankDir
	}

	var sb strings.Builder
	sb.WriteString("digraph dependencies {\n")
	sb.WriteString("  rankdir=" + rankDir + ";\n")
	sb.WriteString("  node [shape=box];\n\n")

	vertices, order := collectVertices(report)
	for _, id := range order {
		writeVertex(&sb, id, vertices[id], opts)
	}

	sb.WriteString("\n")
	writeEdges(&sb, report)

	sb.WriteString("}\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write DOT report: %w", err)
	}
	return nil
}

// collectVertices dedups nodes by coordinates. When the same artifact shows
// up both included and omitted, the included occurrence decides the styling.
func collectVertices(
	report *entities.AnalysisReport,
) (map[string]*entities.DependencyNode, []string) {
	vertices := make(map[string]*entities.DependencyNode)
	order := make([]string, 0)

	for _, root := range report.Modules {
		root.Walk(func(node *entities.DependencyNode) bool {
			id := node.Coordinates()
			existing, seen := vertices[id]
			if !seen {
				vertices[id] = node
				order = append(order, id)
				return true
			}
			if existing.Omitted && !node.Omitted {
				vertices[id] = node
			}
			return true
		})
	}

	return vertices, order
}

func writeVertex(
	sb *strings.Builder, id string, node *entities.DependencyNode, opts entities.RenderOptions,
) {
	label := node.String()
	if opts.ShowSizes && node.SizeBytes > 0 {
		label += "\\n" + entities.FormatSize(node.SizeBytes)
	}

	attrs := []string{"label=" + strconv.Quote(label)}
	switch {
	case node.Omitted:
		attrs = append(attrs, "style=dashed")
	case node.Optional:
		attrs = append(attrs, "style=dotted")
	}

	sb.WriteString("  ")
	sb.WriteString(strconv.Quote(id))
	sb.WriteString(" [")
	sb.WriteString(strings.Join(attrs, ", "))
	sb.WriteString("];\n")
}

// writeEdges emits one edge per distinct parent/child pair. Edges into an
// omitted occurrence are dashed, mirroring the vertex styling.
func writeEdges(sb *strings.Builder, report *entities.AnalysisReport) {
	seen := make(map[string]bool)

	for _, root := range report.Modules {
		root.Walk(func(node *entities.DependencyNode) bool {
			if node.Parent == nil {
				return true
			}

			from := node.Parent.Coordinates()
			to := node.Coordinates()
			key := from + " -> " + to
			if seen[key] {
				return true
			}
			seen[key] = true

			sb.WriteString("  ")
			sb.WriteString(strconv.Quote(from))
			sb.WriteString(" -> ")
			sb.WriteString(strconv.Quote(to))
			if node.Omitted {
				sb.WriteString(" [style=dashed]")
			}
			sb.WriteString(";\n")
			return true
		})
	}
}
