package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/layerlint/layerlint/app"
	"github.com/layerlint/layerlint/domain"
	"github.com/layerlint/layerlint/internal/config"
	"github.com/layerlint/layerlint/service"
	"github.com/spf13/cobra"
)

// CheckCommand analyzes a declarative import graph against configured
// layering contracts and reports illegal dependencies and cycles.
type CheckCommand struct {
	json       bool
	yaml       bool
	csv        bool
	dot        bool
	html       bool
	noOpen     bool
	configFile string
	quiet      bool
}

// NewCheckCommand creates a new check command.
func NewCheckCommand() *CheckCommand {
	return &CheckCommand{}
}

// CreateCobraCommand creates the cobra command for layer checking.
func (c *CheckCommand) CreateCobraCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <graph-file>",
		Short: "Check a module graph against configured layering rules",
		Long: `Check loads a declarative graph descriptor (JSON/YAML/TOML) describing
modules and their imports, and reports every illegal dependency against the
layer contracts configured in .layerlint.toml, plus any import cycles.

Exit codes:
• 0: No issues found
• 1: Layer violations or cycles found (see output for details)
• 2: Analysis failed (invalid input, missing files, etc.)

Examples:
  layerlint check graph.json
  layerlint check --html graph.yaml
  layerlint check --dot graph.json
  layerlint check --json graph.toml

Report formats other than text are written to a timestamped file under the
configured output directory (.layerlint/reports by default), not to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: c.run,
	}

	cmd.Flags().BoolVar(&c.json, "json", false, "Generate JSON report file")
	cmd.Flags().BoolVar(&c.yaml, "yaml", false, "Generate YAML report file")
	cmd.Flags().BoolVar(&c.csv, "csv", false, "Generate CSV report file (illegal dependencies)")
	cmd.Flags().BoolVar(&c.dot, "dot", false, "Generate DOT graph file")
	cmd.Flags().BoolVar(&c.html, "html", false, "Generate HTML report file")
	cmd.Flags().BoolVar(&c.noOpen, "no-open", false, "Don't auto-open HTML in browser")
	cmd.Flags().StringVarP(&c.configFile, "config", "c", "", "Configuration file path (.layerlint.toml)")
	cmd.Flags().BoolVarP(&c.quiet, "quiet", "q", false, "Suppress the status summary line on stderr")

	return cmd
}

func (c *CheckCommand) run(cmd *cobra.Command, args []string) error {
	graphPath, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", args[0], err)
	}
	if _, err := os.Stat(graphPath); err != nil {
		return fmt.Errorf("graph file does not exist: %s", args[0])
	}

	cfg, err := config.LoadConfigWithTarget(c.configFile, graphPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	req := domain.AnalysisRequest{
		GraphPath:       graphPath,
		Contracts:       contractsFromConfig(cfg),
		ExcludePatterns: cfg.Exclude,
		OutputWriter:    cmd.OutOrStdout(),
		OutputFormat:    domain.OutputFormatText,
	}

	resolver := service.NewOutputFormatResolver()
	format, ext, err := resolver.Determine(c.html, c.json, c.csv, c.yaml, c.dot)
	if err != nil {
		return err
	}
	req.OutputFormat = format

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	useCase, err := c.createUseCase(cmd)
	if err != nil {
		return err
	}

	if format != domain.OutputFormatText {
		targetPath := getTargetPathFromArgs(args)
		req.OutputPath, err = generateOutputFilePath("check", ext, targetPath)
		if err != nil {
			return err
		}
		req.NoOpen = c.noOpen
	}

	response, err := useCase.Execute(ctx, req)
	if err != nil {
		return err
	}

	if response.Summary.IllegalDependencies > 0 || response.Summary.Cycles > 0 {
		if !c.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "found %d illegal dependenc(y/ies) and %d cycle(s)\n",
				response.Summary.IllegalDependencies, response.Summary.Cycles)
		}
		os.Exit(1)
	}

	if !c.quiet && format == domain.OutputFormatText {
		fmt.Fprintf(cmd.ErrOrStderr(), "no layer violations or cycles found\n")
	}

	return nil
}

func contractsFromConfig(cfg *config.Config) []domain.LayerContract {
	if cfg == nil {
		return nil
	}
	contracts := make([]domain.LayerContract, 0, len(cfg.Contracts))
	for _, ct := range cfg.Contracts {
		contracts = append(contracts, domain.LayerContract{
			Containers: ct.Containers,
			Layers:     ct.Layers,
		})
	}
	return contracts
}

func (c *CheckCommand) createUseCase(cmd *cobra.Command) (*app.AnalyzeUseCase, error) {
	depSvc := service.NewDependencyServiceWithStatus(cmd.ErrOrStderr())
	formatter := service.NewAnalysisFormatter()
	return app.NewAnalyzeUseCaseBuilder().
		WithService(depSvc).
		WithFormatter(formatter).
		WithOutputWriter(service.NewFileOutputWriter(cmd.ErrOrStderr())).
		Build()
}

// NewCheckCmd creates and returns the check cobra command.
func NewCheckCmd() *cobra.Command {
	checkCommand := NewCheckCommand()
	return checkCommand.CreateCobraCommand()
}
