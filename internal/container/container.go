// Package container provides dependency injection for the sales-report application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"

	"fjacquet/sales-report/internal/chart"
	"fjacquet/sales-report/internal/config"
	"fjacquet/sales-report/internal/dateutils"
	"fjacquet/sales-report/internal/generator"
	"fjacquet/sales-report/internal/loader"
	"fjacquet/sales-report/internal/logging"
	"fjacquet/sales-report/internal/report"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger        logging.Logger
	config        *config.Config
	loader        *loader.Loader
	labels        report.Labels
	summaryWriter *report.SummaryWriter
}

// NewContainer creates and wires all application dependencies.
// Logs go to stderr so chart output on stdout stays clean.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.NewLogger()))
}

// NewContainerWithLogger is NewContainer with a caller-supplied logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	labels, err := report.LabelsFor(cfg.Chart.Locale)
	if err != nil {
		return nil, err
	}

	c := &Container{
		logger:        logger,
		config:        cfg,
		loader:        loader.NewLoader(logger, loader.WithDelimiter(cfg.Input.DelimiterRune())),
		labels:        labels,
		summaryWriter: report.NewSummaryWriter(logger),
	}

	logger.Debug("Container initialized",
		logging.F(logging.FieldInputFile, cfg.Input.Path),
		logging.F("locale", cfg.Chart.Locale))
	return c, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLabels returns the chart captions for the configured locale.
func (c *Container) GetLabels() report.Labels {
	return c.labels
}

// GetSummaryWriter returns the YAML/JSON summary writer.
func (c *Container) GetSummaryWriter() *report.SummaryWriter {
	return c.summaryWriter
}

// NewTextRenderer returns a terminal chart renderer writing to out.
func (c *Container) NewTextRenderer(out io.Writer) *chart.TextRenderer {
	return chart.NewTextRenderer(out, c.config.Chart.Width, c.config.Chart.Currency)
}

// NewWorkbookRenderer returns an .xlsx renderer for path. The caller must Close it.
func (c *Container) NewWorkbookRenderer(path string) (*chart.WorkbookRenderer, error) {
	return chart.NewWorkbookRenderer(path, c.config.Chart.Currency)
}

// NewPipeline wires the loader, logger and labels to the given renderers.
func (c *Container) NewPipeline(renderers ...chart.Renderer) *report.Pipeline {
	return report.NewPipeline(c.loader, c.logger, c.labels, renderers...)
}

// GeneratorConfig converts the generator section into a generator.Config
// using the default product catalogue.
func (c *Container) GeneratorConfig() (generator.Config, error) {
	g := c.config.Generator
	gc := generator.DefaultConfig()

	start, _, err := dateutils.ParseISODate(g.StartDate)
	if err != nil {
		return generator.Config{}, fmt.Errorf("generator.start_date: %w", err)
	}
	end, _, err := dateutils.ParseISODate(g.EndDate)
	if err != nil {
		return generator.Config{}, fmt.Errorf("generator.end_date: %w", err)
	}

	gc.OutputPath = g.Output
	gc.Rows = g.Rows
	gc.Seed = g.Seed
	gc.MinQuantity = g.MinQuantity
	gc.MaxQuantity = g.MaxQuantity
	gc.StartDate = start
	gc.EndDate = end
	return gc, gc.Validate()
}
