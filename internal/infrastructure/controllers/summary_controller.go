package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depscope/internal/domain/commands"
	"github.com/rios0rios0/depscope/internal/domain/entities"
)

// SummaryController handles the "summary" subcommand.
type SummaryController struct {
	command commands.Summary
}

// NewSummaryController creates a new SummaryController.
func NewSummaryController(command commands.Summary) *SummaryController {
	return &SummaryController{command: command}
}

// GetBind returns the Cobra command metadata for the summary controller.
func (it *SummaryController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "summary [file]",
		Short: "Summarize a verbose dependency tree",
		Long: `Parse the output of "mvn dependency:tree -Dverbose" and report the
totals: dependencies per scope, optional and omitted counts, version
conflicts with their mediation direction, and sizes when enabled.`,
	}
}

// Execute runs one summary.
func (it *SummaryController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	output, _ := cmd.Flags().GetString("output")
	noSizes, _ := cmd.Flags().GetBool("no-sizes")
	showConflicts, _ := cmd.Flags().GetBool("conflicts")
	declaredScopes, _ := cmd.Flags().GetBool("declared-scopes")

	cfg, err := resolveConfig(configPath)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	if output == "" {
		output = cfg.Reports.Output
	}

	if execErr := it.command.Execute(ctx, commands.SummaryOptions{
		InputPath:      inputPath(args),
		Output:         output,
		ShowSizes:      cfg.Reports.ShowSizes && !noSizes,
		ShowConflicts:  showConflicts,
		Verbose:        verbose,
		DeclaredScopes: declaredScopes,
	}); execErr != nil {
		logger.Errorf("Summary failed: %v", execErr)
	}
}

// AddFlags adds the summary-specific flags to the given Cobra command.
func (it *SummaryController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().Bool("no-sizes", false, "Skip artifact size resolution")
	cmd.Flags().Bool("conflicts", false, "List every version conflict with its path")
	cmd.Flags().Bool("declared-scopes", false,
		"Propagate root-level scopes onto transitive children (for non-verbose input)")
}
