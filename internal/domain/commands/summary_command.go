package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depscope/internal/domain/entities"
	domainRepos "github.com/rios0rios0/depscope/internal/domain/repositories"
)

// Summary is the interface for the summary command.
type Summary interface {
	Execute(ctx context.Context, opts SummaryOptions) error
}

// SummaryOptions holds runtime options for a summary run.
type SummaryOptions struct {
	InputPath     string // build output file, or "-" for stdin
	Output        string // destination file; empty writes to stdout
	ShowSizes     bool
	ShowConflicts bool // list every conflict with its introduction path
	Verbose       bool

	// DeclaredScopes pushes root-level scopes onto transitive children,
	// for inputs built from per-dependency resolution rather than a
	// verbose reactor report.
	DeclaredScopes bool
}

// SummaryCommand condenses one build-output blob into the statistics the
// original summary panel shows: counts per scope, optional and omitted
// totals, and sizes with omitted subtrees excluded.
type SummaryCommand struct {
	sizeRepository domainRepos.SizeRepository
}

// NewSummaryCommand creates a new SummaryCommand.
func NewSummaryCommand(sizeRepository domainRepos.SizeRepository) *SummaryCommand {
	return &SummaryCommand{sizeRepository: sizeRepository}
}

// Execute runs the analysis and writes the summary report.
func (it *SummaryCommand) Execute(ctx context.Context, opts SummaryOptions) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	report, err := runAnalysis(ctx, opts.InputPath, opts.ShowSizes, opts.DeclaredScopes, it.sizeRepository)
	if err != nil {
		return err
	}

	summary := entities.BuildSummary(report)

	writer, closeWriter, writerErr := openOutput(opts.Output)
	if writerErr != nil {
		return writerErr
	}
	defer closeWriter()

	if writeErr := writeSummary(writer, summary, opts); writeErr != nil {
		return fmt.Errorf("failed to write summary: %w", writeErr)
	}

	return nil
}

// writeSummary renders the summary as aligned key/value lines. Provided and
// system rows only appear when non-zero, like the original panel.
func writeSummary(w io.Writer, summary *entities.Summary, opts SummaryOptions) error {
	lines := []string{
		fmt.Sprintf("Modules:        %d", summary.Modules),
		fmt.Sprintf("Dependencies:   %d", summary.TotalIncluded),
	}

	for _, scope := range entities.ScopeOrder {
		count := summary.CountByScope[scope]
		if count == 0 && (scope == "provided" || scope == "system") {
			continue
		}
		lines = append(lines, fmt.Sprintf("  %-13s %d", scope+":", count))
	}

	lines = append(lines,
		fmt.Sprintf("Optional:       %d", summary.OptionalCount),
		fmt.Sprintf("Omitted:        %d conflicts, %d duplicates",
			summary.OmittedConflicts, summary.OmittedDuplicates),
	)
	if summary.OmittedOther > 0 {
		lines = append(lines, fmt.Sprintf("  other:        %d", summary.OmittedOther))
	}

	if upgrades, downgrades := countDirections(summary.Conflicts); upgrades+downgrades > 0 {
		lines = append(lines, fmt.Sprintf("  mediation:    %d upgrades, %d downgrades",
			upgrades, downgrades))
	}

	if opts.ShowSizes {
		for _, scope := range entities.ScopeOrder {
			size := summary.SizeByScope[scope]
			if size == 0 {
				continue
			}
			lines = append(lines, fmt.Sprintf("Size (%s): %s", scope, entities.FormatSize(size)))
		}
		lines = append(lines, fmt.Sprintf("Total size:     %s", entities.FormatSize(summary.TotalSizeBytes)))
	}

	if summary.IssueCount > 0 {
		lines = append(lines, fmt.Sprintf("Parse issues:   %d", summary.IssueCount))
	}

	if opts.ShowConflicts {
		lines = append(lines, conflictLines(summary.Conflicts)...)
	}

	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}

// conflictLines lists each conflict with the version mediation kept and the
// path that dragged the loser in.
func conflictLines(conflicts []entities.Conflict) []string {
	if len(conflicts) == 0 {
		return nil
	}

	lines := []string{"", "Conflicts:"}
	for _, conflict := range conflicts {
		direction := ""
		if conflict.Direction != entities.ConflictUnclassified {
			direction = fmt.Sprintf(" (%s)", conflict.Direction)
		}
		lines = append(lines, fmt.Sprintf("  %s lost to %s%s",
			conflict.Node.Coordinates(), conflict.WinnerVersion, direction))

		if path := conflict.Node.Path(); len(path) > 1 {
			lines = append(lines, fmt.Sprintf("    brought in by %s",
				strings.Join(path[:len(path)-1], " > ")))
		}
	}
	return lines
}

func countDirections(conflicts []entities.Conflict) (int, int) {
	upgrades, downgrades := 0, 0
	for _, conflict := range conflicts {
		switch conflict.Direction {
		case entities.ConflictUpgrade:
			upgrades++
		case entities.ConflictDowngrade:
			downgrades++
		case entities.ConflictUnclassified:
		}
	}
	return upgrades, downgrades
}
