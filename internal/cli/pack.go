package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridkit/pkg/board"
	"github.com/matzehuels/gridkit/pkg/grid"
	"github.com/matzehuels/gridkit/pkg/observability"
)

// packCommand creates the pack command for repacking board files.
func (c *CLI) packCommand() *cobra.Command {
	var (
		configPath string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "pack <board.json>",
		Short: "Repack a board file onto the grid",
		Long: `Repack a board file onto the grid.

The pack command reads a board from a JSON or YAML file, lays its tiles
out in sequence order, and writes the packed board back out. Grid metrics
come from the board file itself unless a TOML config is given with -c.

When no output path is given the packed board is printed to stdout as JSON.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPack(cmd.Context(), args[0], configPath, output)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "grid metrics TOML file (overrides board metrics)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json, .yaml); stdout when omitted")

	return cmd
}

// runPack loads the board, packs it, and writes output.
func (c *CLI) runPack(ctx context.Context, input, configPath, output string) error {
	b, err := board.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load board %s: %w", input, err)
	}

	cfg, err := resolveConfig(configPath, b)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	eng := grid.New(cfg)
	items := b.Items()

	p := newProgress(c.Logger)
	start := time.Now()
	observability.Layout().OnPackStart(ctx, len(items))
	packed := eng.Pack(items)
	observability.Layout().OnPackComplete(ctx, len(packed), time.Since(start))
	p.done(fmt.Sprintf("Packed %d tiles", len(packed)))

	out := board.FromItems(cfg, packed)
	height := eng.ContentHeight(packed)
	rows := 0
	for _, it := range packed {
		if r := it.GridRow + eng.Config().RowSpan(it.Height); r > rows {
			rows = r
		}
	}

	if output == "" {
		data, err := board.Marshal(out)
		if err != nil {
			return fmt.Errorf("encode board: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if err := board.WriteFile(out, output); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Pack complete")
	printFile(output)
	printStats(len(packed), rows, height)
	printDetail("%d columns · %.0fx%.0f cells · %.0f margin", cfg.Columns, cfg.CellWidth, cfg.CellHeight, cfg.Margin)

	return nil
}
