// Package report implements the command that charts revenue from a sales file.
package report

import (
	"bytes"
	"os"

	"fjacquet/sales-report/cmd/root"
	"fjacquet/sales-report/internal/chart"
	"fjacquet/sales-report/internal/logging"
	salesreport "fjacquet/sales-report/internal/report"
	"fjacquet/sales-report/internal/validation"

	"github.com/spf13/cobra"
)

// Options are the report command flags. Empty values fall back to configuration.
type Options struct {
	Input         string
	XLSX          string
	Summary       string
	SummaryFormat string
}

// Opts holds the parsed flag values.
var Opts = Options{}

// Cmd represents the report command
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Chart revenue per product and per day from a sales CSV file",
	Long: `Load a headerless sales CSV file, sum the price column per product and per
calendar day, and draw both totals as bar charts together with the best product
and the best day.

Charts are printed to standard output. --xlsx also writes them as native column
charts to an Excel workbook, and --summary writes the totals as YAML or JSON
("-" prints the summary to standard output).

Example:
  sales-report report -i data/data_10.csv --xlsx out/report.xlsx --summary out/summary.yaml`,
	RunE: run,
}

func init() {
	Cmd.Flags().StringVarP(&Opts.Input, "input", "i", "", "Sales CSV file (default from input.path)")
	Cmd.Flags().StringVar(&Opts.XLSX, "xlsx", "", "Also write the charts to this .xlsx workbook")
	Cmd.Flags().StringVar(&Opts.Summary, "summary", "", "Write a totals summary to this file, or - for stdout")
	Cmd.Flags().StringVar(&Opts.SummaryFormat, "summary-format", "", "Summary format: yaml or json (default from report.summary_format)")
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.Container()
	if err != nil {
		return err
	}
	cfg := c.GetConfig()
	log := c.GetLogger()

	input := valueOr(Opts.Input, cfg.Input.Path)
	xlsxPath := valueOr(Opts.XLSX, cfg.Chart.XLSXPath)
	summaryPath := valueOr(Opts.Summary, cfg.Report.SummaryPath)
	format := valueOr(Opts.SummaryFormat, cfg.Report.SummaryFormat)

	if summaryPath != "" {
		if err := validation.IsValidOutputFormat(format); err != nil {
			return err
		}
		if summaryPath != "-" {
			if err := validation.IsValidOutputPath(summaryPath); err != nil {
				return err
			}
		}
	}
	if xlsxPath != "" {
		if err := validation.IsValidOutputPath(xlsxPath, ".xlsx", ".xlsm"); err != nil {
			return err
		}
	}

	// Charts are buffered so a failed file output leaves stdout empty.
	var text bytes.Buffer
	renderers := []chart.Renderer{c.NewTextRenderer(&text)}
	var workbook *chart.WorkbookRenderer
	if xlsxPath != "" {
		workbook, err = c.NewWorkbookRenderer(xlsxPath)
		if err != nil {
			return err
		}
		renderers = append(renderers, workbook)
	}
	discard := func(err error) error {
		if workbook != nil {
			_ = workbook.Discard()
		}
		return err
	}

	result, err := c.NewPipeline(renderers...).Run(input)
	if err != nil {
		return discard(err)
	}

	if summaryPath != "" {
		writer := c.GetSummaryWriter()
		summary := salesreport.NewSummary(result)
		if summaryPath == "-" {
			data, err := writer.Marshal(summary, format)
			if err != nil {
				return discard(err)
			}
			text.Write(data)
		} else if err := writer.WriteFile(summary, format, summaryPath); err != nil {
			return discard(err)
		}
	}

	if workbook != nil {
		if err := workbook.Close(); err != nil {
			if summaryPath != "" && summaryPath != "-" {
				_ = os.Remove(summaryPath)
			}
			return err
		}
		log.Info("Wrote workbook", logging.F(logging.FieldOutputFile, xlsxPath))
	}

	_, err = text.WriteTo(cmd.OutOrStdout())
	return err
}

func valueOr(v, fallback string) string {
	if v != "" {
		return v
	}
	return fallback
}
