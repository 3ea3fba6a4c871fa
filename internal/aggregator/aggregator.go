// Package aggregator reduces sales records into keyed revenue totals and
// finds the largest total.
//
// Revenue is the sum of each record's Price field. Quantity does not take part
// in the sum: a record priced 5.00 with quantity 2 contributes 5.00. This
// mirrors the behaviour of the system these reports replace and is kept as is.
package aggregator

import (
	"time"

	"fjacquet/sales-report/internal/dateutils"
	"fjacquet/sales-report/internal/models"
	"fjacquet/sales-report/internal/parsererror"

	"github.com/shopspring/decimal"
)

// Operation names reported to observers and in errors.
const (
	OperationSumByProduct = "sum_by_product"
	OperationSumByDate    = "sum_by_date"
	OperationArgMax       = "argmax_by_value"
)

// Observer is notified while a reduction runs. Implementations must not
// retain or modify the records.
type Observer interface {
	// RecordAccumulated is called after each record is added to its key.
	RecordAccumulated(operation string, key any, amount, running decimal.Decimal)
	// ReductionFinished is called once with the number of keys and the grand total.
	ReductionFinished(operation string, keys int, total decimal.Decimal)
}

// Reduction names a grouping and extracts the grouping key from a record.
type Reduction[K comparable] struct {
	Name string
	Key  func(models.Record) K
}

// ByProduct groups by product name.
var ByProduct = Reduction[string]{
	Name: OperationSumByProduct,
	Key:  func(r models.Record) string { return r.ProductName },
}

// ByDay groups by calendar day; see dateutils.StartOfDay.
var ByDay = Reduction[time.Time]{
	Name: OperationSumByDate,
	Key:  func(r models.Record) time.Time { return dateutils.StartOfDay(r.Date) },
}

type options struct {
	observer Observer
}

// Option configures a reduction.
type Option func(*options)

// WithObserver attaches an observer. A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// SumBy adds up the price of every record under the key the reduction
// extracts. records is only read.
func SumBy[K comparable](records []models.Record, red Reduction[K], opts ...Option) *Totals[K] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	totals := NewTotals[K]()
	for _, r := range records {
		key := red.Key(r)
		running := totals.Add(key, r.Price)
		if o.observer != nil {
			o.observer.RecordAccumulated(red.Name, key, r.Price, running)
		}
	}

	if o.observer != nil {
		o.observer.ReductionFinished(red.Name, totals.Len(), totals.Sum())
	}
	return totals
}

// SumByProduct returns total revenue per product name.
func SumByProduct(records []models.Record, opts ...Option) *Totals[string] {
	return SumBy(records, ByProduct, opts...)
}

// SumByDate returns total revenue per calendar day.
func SumByDate(records []models.Record, opts ...Option) *Totals[time.Time] {
	return SumBy(records, ByDay, opts...)
}

// ArgMaxByValue returns the entry with the greatest total. When several keys
// share the maximum, the one added first wins. An empty or nil mapping yields
// a *parsererror.EmptyInputError.
func ArgMaxByValue[K comparable](t *Totals[K]) (Entry[K], error) {
	if t.Len() == 0 {
		return Entry[K]{}, &parsererror.EmptyInputError{Operation: OperationArgMax}
	}

	entries := t.Entries()
	best := entries[0]
	for _, e := range entries[1:] {
		if e.Value.GreaterThan(best.Value) {
			best = e
		}
	}
	return best, nil
}
