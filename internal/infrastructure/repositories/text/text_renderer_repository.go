package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/rios0rios0/depscope/internal/domain/entities"
	domainRepos "github.com/rios0rios0/depscope/internal/domain/repositories"
)

const (
	rendererName = "text"

	midConnector  = "+- "
	lastConnector = "\\- "
	midContinue   = "|  "
	lastContinue  = "   "
)

// TextRendererRepository renders the annotated tree the way Maven prints it,
// with omission reasons and managed-version notes spelled out per node.
type TextRendererRepository struct{}

// NewRendererRepository creates the plain-text renderer.
func NewRendererRepository() domainRepos.RendererRepository {
	return &TextRendererRepository{}
}

func (r *TextRendererRepository) Name() string { return rendererName }

// Render writes one glyph tree per module, separated by a blank line.
func (r *TextRendererRepository) Render(
	w io.Writer, report *entities.AnalysisReport, opts entities.RenderOptions,
) error {
	var sb strings.Builder

	for i, root := range report.Modules {
		if i > 0 {
			sb.WriteString("\n")
		}
		r.renderModule(&sb, root, opts)
	}

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("failed to write text report: %w", err)
	}
	return nil
}

type textFrame struct {
	node   *entities.DependencyNode
	prefix string
	last   bool
}

func (r *TextRendererRepository) renderModule(
	sb *strings.Builder, root *entities.DependencyNode, opts entities.RenderOptions,
) {
	var totals map[*entities.DependencyNode]int64
	if opts.ShowSizes {
		totals = root.SubtreeSizes()
	}

	sb.WriteString(describeNode(root, totals))
	sb.WriteString("\n")

	var stack []textFrame
	for i := len(root.Children) - 1; i >= 0; i-- {
		stack = append(stack, textFrame{
			node: root.Children[i],
			last: i == len(root.Children)-1,
		})
	}

	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		connector := midConnector
		childPrefix := frame.prefix + midContinue
		if frame.last {
			connector = lastConnector
			childPrefix = frame.prefix + lastContinue
		}

		sb.WriteString(frame.prefix)
		sb.WriteString(connector)
		sb.WriteString(describeNode(frame.node, totals))
		sb.WriteString("\n")

		for i := len(frame.node.Children) - 1; i >= 0; i-- {
			stack = append(stack, textFrame{
				node:   frame.node.Children[i],
				prefix: childPrefix,
				last:   i == len(frame.node.Children)-1,
			})
		}
	}
}

// describeNode renders one line: coordinates, omission reason, managed
// notes, and the subtree size when requested.
func describeNode(
	node *entities.DependencyNode, totals map[*entities.DependencyNode]int64,
) string {
	var sb strings.Builder
	sb.WriteString(node.String())

	if node.Omitted {
		if node.OmittedReason != "" {
			sb.WriteString(" (omitted for ")
			sb.WriteString(node.OmittedReason)
			sb.WriteString(")")
		} else {
			sb.WriteString(" (omitted)")
		}
	}

	if notes := node.NotesText(); notes != "" {
		sb.WriteString(" (")
		sb.WriteString(notes)
		sb.WriteString(")")
	}

	if totals != nil {
		sb.WriteString(" [")
		sb.WriteString(entities.FormatSize(totals[node]))
		sb.WriteString("]")
	}

	return sb.String()
}
