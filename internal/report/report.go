// Package report runs the load → aggregate → render pipeline and serialises
// its summary.
package report

import (
	"fmt"
	"time"

	"fjacquet/sales-report/internal/aggregator"
	"fjacquet/sales-report/internal/chart"
	"fjacquet/sales-report/internal/dateutils"
	"fjacquet/sales-report/internal/logging"
	"fjacquet/sales-report/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Result holds both aggregations and their extrema.
type Result struct {
	RunID      string
	Source     string
	Records    int
	Total      decimal.Decimal
	ByProduct  *aggregator.Totals[string]
	ByDay      *aggregator.Totals[time.Time]
	TopProduct aggregator.Entry[string]
	TopDay     aggregator.Entry[time.Time]
}

// Build aggregates records. Zero records yield an error matching
// parsererror.ErrEmptyInput since no extremum exists.
func Build(records []models.Record, opts ...aggregator.Option) (*Result, error) {
	byProduct := aggregator.SumByProduct(records, opts...)
	byDay := aggregator.SumByDate(records, opts...)

	topProduct, err := aggregator.ArgMaxByValue(byProduct)
	if err != nil {
		return nil, fmt.Errorf("top product: %w", err)
	}
	topDay, err := aggregator.ArgMaxByValue(byDay)
	if err != nil {
		return nil, fmt.Errorf("top day: %w", err)
	}

	return &Result{
		Records:    len(records),
		Total:      models.TotalPrice(records),
		ByProduct:  byProduct,
		ByDay:      byDay,
		TopProduct: topProduct,
		TopDay:     topDay,
	}, nil
}

// ProductChart returns revenue per product, bars ascending by value.
func (r *Result) ProductChart(l Labels) chart.BarChart {
	c := chart.BarChart{Title: l.ProductTitle, XLabel: l.ProductAxis, YLabel: l.ValueAxis}
	for _, e := range r.ByProduct.SortedByValue() {
		c.Bars = append(c.Bars, chart.Bar{Label: e.Key, Value: e.Value})
	}
	return c
}

// DayChart returns revenue per day, bars in chronological order.
func (r *Result) DayChart(l Labels) chart.BarChart {
	c := chart.BarChart{Title: l.DayTitle, XLabel: l.DayAxis, YLabel: l.ValueAxis}
	for _, e := range aggregator.SortedByDay(r.ByDay) {
		c.Bars = append(c.Bars, chart.Bar{Label: dateutils.ToISODate(e.Key), Value: e.Value})
	}
	return c
}

// SummaryPanel returns the extrema panel.
func (r *Result) SummaryPanel(l Labels) chart.Summary {
	return chart.Summary{
		Title: l.SummaryTitle,
		Items: []chart.SummaryItem{
			{Label: l.TopProduct, Key: r.TopProduct.Key, Value: r.TopProduct.Value},
			{Label: l.TopDay, Key: dateutils.ToISODate(r.TopDay.Key), Value: r.TopDay.Value},
		},
	}
}

// Render draws both charts and the summary panel on renderer.
func Render(r *Result, renderer chart.Renderer, l Labels) error {
	if err := renderer.BarChart(r.ProductChart(l)); err != nil {
		return fmt.Errorf("rendering product chart: %w", err)
	}
	if err := renderer.BarChart(r.DayChart(l)); err != nil {
		return fmt.Errorf("rendering day chart: %w", err)
	}
	if err := renderer.Summary(r.SummaryPanel(l)); err != nil {
		return fmt.Errorf("rendering summary: %w", err)
	}
	return nil
}

// Loader is the part of loader.Loader the pipeline needs.
type Loader interface {
	Load(filePath string) ([]models.Record, error)
}

// Pipeline loads a file, aggregates it and hands the result to renderers.
type Pipeline struct {
	loader    Loader
	logger    logging.Logger
	labels    Labels
	renderers []chart.Renderer
}

// NewPipeline wires a pipeline. A nil logger discards log output.
func NewPipeline(l Loader, logger logging.Logger, labels Labels, renderers ...chart.Renderer) *Pipeline {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &Pipeline{
		loader:    l,
		logger:    logger,
		labels:    labels,
		renderers: renderers,
	}
}

// Run processes filePath. Nothing is rendered unless loading and
// aggregation both succeed. Every run gets a fresh ID carried by its log
// entries and its Result.
func (p *Pipeline) Run(filePath string) (*Result, error) {
	runID := uuid.NewString()
	logger := p.logger.WithField(logging.FieldRunID, runID)

	records, err := p.loader.Load(filePath)
	if err != nil {
		return nil, err
	}

	result, err := Build(records, aggregator.WithObserver(NewLogObserver(logger)))
	if err != nil {
		logger.WithError(err).Error("Aggregation failed", logging.F(logging.FieldFile, filePath))
		return nil, fmt.Errorf("aggregating %s: %w", filePath, err)
	}
	result.RunID = runID
	result.Source = filePath

	logger.Info("Aggregated sales",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, result.Records),
		logging.F(logging.FieldTotal, result.Total.String()),
		logging.F(logging.FieldProduct, result.TopProduct.Key),
		logging.F(logging.FieldDate, dateutils.ToISODate(result.TopDay.Key)))

	for _, renderer := range p.renderers {
		logger.Debug("Rendering report", logging.F(logging.FieldRenderer, fmt.Sprintf("%T", renderer)))
		if err := Render(result, renderer, p.labels); err != nil {
			return nil, err
		}
	}
	return result, nil
}
