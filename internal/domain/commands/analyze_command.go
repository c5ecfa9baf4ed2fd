package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depscope/internal/domain/entities"
	domainRepos "github.com/rios0rios0/depscope/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/depscope/internal/infrastructure/repositories"
)

const stdinPath = "-"

// Analyze is the interface for the analyze command.
type Analyze interface {
	Execute(ctx context.Context, opts AnalyzeOptions) error
}

// AnalyzeOptions holds runtime options for a single analysis.
type AnalyzeOptions struct {
	InputPath string // build output file, or "-" for stdin
	Format    string // renderer name (text, json, dot)
	Output    string // destination file; empty writes to stdout
	ShowSizes bool
	Verbose   bool

	// DeclaredScopes treats the input scopes as declarations and pushes
	// them down onto transitive children. A verbose reactor report
	// already carries effective scopes on every line, so this stays off
	// unless the input came from per-dependency resolution.
	DeclaredScopes bool

	// Renderer tuning, straight from the per-renderer configuration.
	Indent  string
	RankDir string
}

// AnalyzeCommand turns one build-output blob into a rendered dependency
// tree: locate the tree windows, assemble the module trees, enrich
// sizes through the collaborator, render.
type AnalyzeCommand struct {
	rendererRegistry *infraRepos.RendererRegistry
	sizeRepository   domainRepos.SizeRepository
}

// NewAnalyzeCommand creates a new AnalyzeCommand.
func NewAnalyzeCommand(
	rendererRegistry *infraRepos.RendererRegistry,
	sizeRepository domainRepos.SizeRepository,
) *AnalyzeCommand {
	return &AnalyzeCommand{
		rendererRegistry: rendererRegistry,
		sizeRepository:   sizeRepository,
	}
}

// Execute runs the full analysis for the given options.
func (it *AnalyzeCommand) Execute(ctx context.Context, opts AnalyzeOptions) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	report, err := runAnalysis(ctx, opts.InputPath, opts.ShowSizes, opts.DeclaredScopes, it.sizeRepository)
	if err != nil {
		return err
	}

	renderer, rendererErr := it.rendererRegistry.Get(opts.Format)
	if rendererErr != nil {
		return rendererErr
	}

	writer, closeWriter, writerErr := openOutput(opts.Output)
	if writerErr != nil {
		return writerErr
	}
	defer closeWriter()

	if renderErr := renderer.Render(writer, report, entities.RenderOptions{
		ShowSizes: opts.ShowSizes,
		Indent:    opts.Indent,
		RankDir:   opts.RankDir,
	}); renderErr != nil {
		return fmt.Errorf("failed to render %q report: %w", opts.Format, renderErr)
	}

	return nil
}

// runAnalysis is the shared pipeline behind analyze and summary: read,
// parse all module windows, optionally propagate declared scopes,
// enrich sizes.
func runAnalysis(
	ctx context.Context,
	inputPath string,
	withSizes bool,
	declaredScopes bool,
	sizeRepository domainRepos.SizeRepository,
) (*entities.AnalysisReport, error) {
	output, readErr := readBuildOutput(inputPath)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read build output: %w", readErr)
	}

	report, parseErr := parseBuildOutput(output)
	if parseErr != nil {
		return nil, parseErr
	}

	if declaredScopes {
		propagateDeclaredScopes(report)
	}

	logger.Infof(
		"Parsed %d module tree(s), %d nodes, %d recovered lines",
		len(report.Modules), report.NodeCount(), len(report.Issues),
	)

	if withSizes {
		enrichSizes(ctx, report, sizeRepository)
	}

	return report, nil
}

// enrichSizes asks the size collaborator for every node's artifact size.
// Lookup failures degrade to "unknown" with a warning; the analysis keeps
// going.
func enrichSizes(
	ctx context.Context,
	report *entities.AnalysisReport,
	sizeRepository domainRepos.SizeRepository,
) {
	for _, root := range report.Modules {
		root.Walk(func(node *entities.DependencyNode) bool {
			size, sizeErr := sizeRepository.ArtifactSize(
				ctx, node.GroupID, node.ArtifactID, node.Version,
			)
			if sizeErr != nil {
				logger.Warnf("Size lookup failed for %s: %v", node.Coordinates(), sizeErr)
				return true
			}
			node.SizeBytes = size
			return true
		})
	}
}

// readBuildOutput buffers the whole blob up front; the parser never
// streams.
func readBuildOutput(path string) (string, error) {
	if path == stdinPath {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	return string(data), nil
}

// openOutput returns the destination writer and a close function. An empty
// path means stdout, which must not be closed.
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	return file, func() { _ = file.Close() }, nil
}
