package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blydeben/sankey-app/pkg/diagram"
	"github.com/blydeben/sankey-app/pkg/flow"
	flowio "github.com/blydeben/sankey-app/pkg/io"
	"github.com/blydeben/sankey-app/pkg/pipeline"
)

// layoutCommand creates the layout command for computing diagram layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		configPath string
		noCache    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "layout [edges.csv|edges.json]",
		Short: "Compute a Sankey diagram layout from an edge list",
		Long: `Compute a Sankey diagram layout from an edge list.

The layout command reads weighted source→target edges from a CSV file
(source,target,value columns) or a JSON file ({"edges": [...]}) and computes
node tiers, positions, aggregated values, labels, and colors. The output is
a diagram.json file ready for any Sankey renderer.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if configPath != "" {
				fileOpts, err := loadConfig(configPath)
				if err != nil {
					return err
				}
				applyConfig(cmd.Flags(), &opts, fileOpts)
			}
			return c.runLayout(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.diagram.json)")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML file with layout defaults")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "recompute even when cached")

	// Layout flags
	cmd.Flags().StringVar(&opts.Title, "title", "", "diagram title")
	cmd.Flags().StringVar(&opts.Units, "units", "", "unit suffix for value labels")
	cmd.Flags().StringVar(&opts.Mode, "mode", "", "label mode: values (default), percentages")
	cmd.Flags().IntVar(&opts.RoundFactor, "round-factor", 0, "round values to the nearest 1, 10, 100, 1000, or 10000")
	cmd.Flags().IntVar(&opts.Decimals, "decimals", 0, "decimal places for percentages (0-3)")
	cmd.Flags().StringVar(&opts.Palette, "palette", "", "built-in palette: default, high-contrast, earthy")
	cmd.Flags().StringSliceVar(&opts.Colors, "colors", nil, "custom #rrggbb colors (overrides --palette)")

	return cmd
}

// runLayout loads the edges, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	edges, err := readEdges(input)
	if err != nil {
		return fmt.Errorf("load edges %s: %w", input, err)
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Computing layout...")
	spinner.Start()

	prog := newProgress(c.Logger)
	result, err := runner.Execute(ctx, edges, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return err
	}
	spinner.Stop()
	prog.done("Computed layout")

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".diagram.json"
	}

	if err := diagram.WriteFile(result.Diagram, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheHit)
	printNewline()
	printNextStep("Serve", "sankey serve")

	return nil
}

// readEdges loads an edge list from CSV or JSON, chosen by extension.
func readEdges(path string) ([]flow.Edge, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return flowio.ImportJSON(path)
	case ".csv":
		return flowio.ImportCSV(path)
	default:
		return nil, fmt.Errorf("unsupported input format %q (want .csv or .json)", filepath.Ext(path))
	}
}
