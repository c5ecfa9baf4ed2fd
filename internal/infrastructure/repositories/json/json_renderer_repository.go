package json

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rios0rios0/depscope/internal/domain/entities"
	domainRepos "github.com/rios0rios0/depscope/internal/domain/repositories"
)

const (
	rendererName  = "json"
	defaultIndent = "  "
)

// reportDTO is the serialized shape of one analysis report.
type reportDTO struct {
	Modules []*nodeDTO  `json:"modules"`
	Issues  []*issueDTO `json:"issues,omitempty"`
}

type nodeDTO struct {
	GroupID       string     `json:"groupId"`
	ArtifactID    string     `json:"artifactId"`
	Packaging     string     `json:"packaging"`
	Version       string     `json:"version"`
	Scope         string     `json:"scope"`
	Optional      bool       `json:"optional,omitempty"`
	Omitted       bool       `json:"omitted,omitempty"`
	OmittedReason string     `json:"omittedReason,omitempty"`
	Notes         []string   `json:"notes,omitempty"`
	SizeBytes     int64      `json:"sizeBytes,omitempty"`
	SubtreeBytes  int64      `json:"subtreeBytes,omitempty"`
	Children      []*nodeDTO `json:"children,omitempty"`
}

type issueDTO struct {
	Line int    `json:"line"`
	Text string `json:"text"`
}

// JSONRendererRepository renders the annotated tree as indented JSON with
// the same nesting as the parsed hierarchy.
type JSONRendererRepository struct{}

// NewRendererRepository creates the JSON renderer.
func NewRendererRepository() domainRepos.RendererRepository {
	return &JSONRendererRepository{}
}

func (r *JSONRendererRepository) Name() string { return rendererName }

// Render writes the whole report as one JSON document.
func (r *JSONRendererRepository) Render(
	w io.Writer, report *entities.AnalysisReport, opts entities.RenderOptions,
) error {
	dto := &reportDTO{Modules: make([]*nodeDTO, 0, len(report.Modules))}

	for _, root := range report.Modules {
		dto.Modules = append(dto.Modules, convertModule(root, opts))
	}
	for _, issue := range report.Issues {
		dto.Issues = append(dto.Issues, &issueDTO{
			Line: issue.LineNumber,
			Text: issue.Line,
		})
	}

	indent := opts.Indent
	if indent == "" {
		indent = defaultIndent
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", indent)
	if err := encoder.Encode(dto); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	return nil
}

// convertModule maps one module tree onto DTOs without recursion, pairing
// each source node with its destination parent on an explicit stack.
func convertModule(root *entities.DependencyNode, opts entities.RenderOptions) *nodeDTO {
	var totals map[*entities.DependencyNode]int64
	if opts.ShowSizes {
		totals = root.SubtreeSizes()
	}

	type pair struct {
		source *entities.DependencyNode
		target *nodeDTO
	}

	rootDTO := convertNode(root, totals)
	stack := []pair{{source: root, target: rootDTO}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, child := range current.source.Children {
			childDTO := convertNode(child, totals)
			current.target.Children = append(current.target.Children, childDTO)
			stack = append(stack, pair{source: child, target: childDTO})
		}
	}

	return rootDTO
}

func convertNode(
	node *entities.DependencyNode, totals map[*entities.DependencyNode]int64,
) *nodeDTO {
	dto := &nodeDTO{
		GroupID:       node.GroupID,
		ArtifactID:    node.ArtifactID,
		Packaging:     node.Packaging,
		Version:       node.Version,
		Scope:         node.Scope,
		Optional:      node.Optional,
		Omitted:       node.Omitted,
		OmittedReason: node.OmittedReason,
	}

	for _, annotation := range node.Annotations {
		dto.Notes = append(dto.Notes, annotation.String())
	}

	if totals != nil {
		dto.SizeBytes = node.SizeBytes
		dto.SubtreeBytes = totals[node]
	}

	return dto
}
