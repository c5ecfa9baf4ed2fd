package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depscope/config"
	"github.com/rios0rios0/depscope/internal/domain/commands"
	"github.com/rios0rios0/depscope/internal/domain/entities"
)

// AnalyzeController handles the "analyze" subcommand and the root command
// with a file argument.
type AnalyzeController struct {
	command commands.Analyze
}

// NewAnalyzeController creates a new AnalyzeController.
func NewAnalyzeController(command commands.Analyze) *AnalyzeController {
	return &AnalyzeController{command: command}
}

// GetBind returns the Cobra command metadata for the analyze controller.
func (it *AnalyzeController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "analyze [file]",
		Short: "Parse a verbose dependency tree and render it",
		Long: `Parse the output of "mvn dependency:tree -Dverbose" and render the
annotated tree.

Reads the given file, or stdin when the argument is "-" or absent.
Recovers line-level problems where possible; conflicts, duplicates,
managed versions and scope propagation are spelled out per node.`,
	}
}

// Execute runs one analysis.
func (it *AnalyzeController) Execute(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	format, _ := cmd.Flags().GetString("format")
	output, _ := cmd.Flags().GetString("output")
	noSizes, _ := cmd.Flags().GetBool("no-sizes")
	declaredScopes, _ := cmd.Flags().GetBool("declared-scopes")

	cfg, err := resolveConfig(configPath)
	if err != nil {
		logger.Errorf("failed to load config: %v", err)
		return
	}

	if format == "" {
		format = cfg.Reports.Format
	}
	if output == "" {
		output = cfg.Reports.Output
	}

	rendererCfg, configured := cfg.Renderers[format]
	if configured && !rendererCfg.Enabled {
		logger.Errorf("report format %q is disabled in the configuration", format)
		return
	}

	if execErr := it.command.Execute(ctx, commands.AnalyzeOptions{
		InputPath:      inputPath(args),
		Format:         format,
		Output:         output,
		ShowSizes:      cfg.Reports.ShowSizes && !noSizes,
		Verbose:        verbose,
		DeclaredScopes: declaredScopes,
		Indent:         rendererCfg.Indent,
		RankDir:        rendererCfg.RankDir,
	}); execErr != nil {
		logger.Errorf("Analysis failed: %v", execErr)
	}
}

// AddFlags adds the analyze-specific flags to the given Cobra command.
func (it *AnalyzeController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("format", "f", "", "Report format (text, json, dot)")
	cmd.Flags().StringP("output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().Bool("no-sizes", false, "Skip artifact size resolution")
	cmd.Flags().Bool("declared-scopes", false,
		"Propagate root-level scopes onto transitive children (for non-verbose input)")
}

// inputPath maps the optional positional argument onto the reader
// convention: absent means stdin.
func inputPath(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

// resolveConfig loads the given config file, auto-detects one when the
// path is empty, and falls back to defaults when none exists.
func resolveConfig(path string) (*config.Config, error) {
	if path == "" {
		detected, findErr := config.FindConfigFile()
		if findErr != nil {
			logger.Debugf("No config file found, using defaults")
			return config.Default(), nil
		}
		path = detected
	}

	logger.Debugf("Using config file: %s", path)
	return config.Load(path)
}
