package report

import (
	"encoding/json"
	"fmt"

	"fjacquet/sales-report/internal/aggregator"
	"fjacquet/sales-report/internal/dateutils"
	"fjacquet/sales-report/internal/fileutils"
	"fjacquet/sales-report/internal/logging"
	"fjacquet/sales-report/internal/validation"

	"gopkg.in/yaml.v3"
)

// Supported summary formats.
const (
	FormatYAML = validation.FormatYAML
	FormatJSON = validation.FormatJSON
)

// KeyTotal is a serialisable key/total pair. Totals are exact decimal strings.
type KeyTotal struct {
	Key   string `json:"key" yaml:"key"`
	Total string `json:"total" yaml:"total"`
}

// Summary is the machine-readable form of a Result.
type Summary struct {
	RunID      string     `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Source     string     `json:"source,omitempty" yaml:"source,omitempty"`
	Records    int        `json:"records" yaml:"records"`
	Total      string     `json:"total" yaml:"total"`
	TopProduct KeyTotal   `json:"top_product" yaml:"top_product"`
	TopDay     KeyTotal   `json:"top_day" yaml:"top_day"`
	Products   []KeyTotal `json:"products" yaml:"products"`
	Days       []KeyTotal `json:"days" yaml:"days"`
}

// NewSummary converts r. Products are listed by ascending revenue and days
// chronologically, matching the chart axes.
func NewSummary(r *Result) Summary {
	s := Summary{
		RunID:      r.RunID,
		Source:     r.Source,
		Records:    r.Records,
		Total:      r.Total.String(),
		TopProduct: KeyTotal{Key: r.TopProduct.Key, Total: r.TopProduct.Value.String()},
		TopDay:     KeyTotal{Key: dateutils.ToISODate(r.TopDay.Key), Total: r.TopDay.Value.String()},
		Products:   []KeyTotal{},
		Days:       []KeyTotal{},
	}
	for _, e := range r.ByProduct.SortedByValue() {
		s.Products = append(s.Products, KeyTotal{Key: e.Key, Total: e.Value.String()})
	}
	for _, e := range aggregator.SortedByDay(r.ByDay) {
		s.Days = append(s.Days, KeyTotal{Key: dateutils.ToISODate(e.Key), Total: e.Value.String()})
	}
	return s
}

// SummaryWriter serialises summaries in various formats.
type SummaryWriter struct {
	logger logging.Logger
}

// NewSummaryWriter creates a new instance of SummaryWriter.
func NewSummaryWriter(logger logging.Logger) *SummaryWriter {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &SummaryWriter{
		logger: logger.WithField("component", "SummaryWriter"),
	}
}

// Marshal renders the summary in the given format (yaml or json).
func (w *SummaryWriter) Marshal(s Summary, format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		return w.marshalYAML(s)
	case FormatJSON:
		return w.marshalJSON(s)
	default:
		return nil, validation.IsValidOutputFormat(format)
	}
}

// WriteFile marshals s and writes it to path.
func (w *SummaryWriter) WriteFile(s Summary, format, path string) error {
	data, err := w.Marshal(s, format)
	if err != nil {
		return err
	}
	if err := fileutils.WriteFile(path, data, 0600); err != nil {
		w.logger.WithError(err).Error("Failed to write summary", logging.F(logging.FieldOutputFile, path))
		return err
	}
	w.logger.Info("Wrote summary",
		logging.F(logging.FieldOutputFile, path),
		logging.F(logging.FieldFormat, format))
	return nil
}

func (w *SummaryWriter) marshalJSON(s Summary) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		w.logger.WithError(err).Error("Failed to marshal JSON summary")
		return nil, fmt.Errorf("failed to marshal JSON summary: %w", err)
	}
	return append(data, '\n'), nil
}

func (w *SummaryWriter) marshalYAML(s Summary) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		w.logger.WithError(err).Error("Failed to marshal YAML summary")
		return nil, fmt.Errorf("failed to marshal YAML summary: %w", err)
	}
	return data, nil
}
