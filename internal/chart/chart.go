// Package chart renders revenue bar charts and the extrema summary panel.
// Callers pass bars already sorted along the axis they want.
package chart

import (
	"github.com/shopspring/decimal"
)

// Bar is one labelled value on a chart.
type Bar struct {
	Label string
	Value decimal.Decimal
}

// BarChart describes a single chart.
type BarChart struct {
	Title  string
	XLabel string
	YLabel string
	Bars   []Bar
}

// SummaryItem is one highlighted extremum, e.g. "Best product: apple 15.00".
type SummaryItem struct {
	Label string
	Key   string
	Value decimal.Decimal
}

// Summary is the panel listing extrema.
type Summary struct {
	Title string
	Items []SummaryItem
}

// Renderer draws charts and summary panels.
type Renderer interface {
	BarChart(c BarChart) error
	Summary(s Summary) error
}

// MaxValue returns the greatest bar value, or zero when there are no bars.
func (c BarChart) MaxValue() decimal.Decimal {
	max := decimal.Zero
	for i, b := range c.Bars {
		if i == 0 || b.Value.GreaterThan(max) {
			max = b.Value
		}
	}
	return max
}
