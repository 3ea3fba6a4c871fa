// Package generate implements the command that writes synthetic sales files.
package generate

import (
	"fmt"

	"fjacquet/sales-report/cmd/root"
	"fjacquet/sales-report/internal/generator"
	"fjacquet/sales-report/internal/validation"

	"github.com/spf13/cobra"
)

// Options are the generate command flags.
type Options struct {
	Output string
	Rows   int
	Seed   uint64
}

// Opts holds the parsed flag values.
var Opts = Options{}

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic sales CSV file",
	Long: `Write a headerless sales CSV file with random purchases drawn from a fixed
product catalogue, in the format the report command reads.

Row count, quantity range and date range come from the generator section of the
configuration. A non-zero --seed makes the output reproducible.

Example:
  sales-report generate -o data/data_100.csv --rows 1000 --seed 42`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&Opts.Output, "output", "o", "", "Output CSV file (default from generator.output)")
	Cmd.Flags().IntVar(&Opts.Rows, "rows", 0, "Number of rows (default from generator.rows)")
	Cmd.Flags().Uint64Var(&Opts.Seed, "seed", 0, "Random seed, 0 for a time-based seed (default from generator.seed)")
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.Container()
	if err != nil {
		return err
	}

	cfg, err := c.GeneratorConfig()
	if err != nil {
		return fmt.Errorf("invalid generator configuration: %w", err)
	}
	if Opts.Output != "" {
		cfg.OutputPath = Opts.Output
	}
	if cmd.Flags().Changed("rows") {
		cfg.Rows = Opts.Rows
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = Opts.Seed
	}
	if err := validation.IsValidOutputPath(cfg.OutputPath); err != nil {
		return err
	}

	records, err := generator.WriteFile(cfg, c.GetLogger())
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d records to %s\n", len(records), cfg.OutputPath)
	return err
}
