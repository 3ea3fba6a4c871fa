package report

import (
	"fmt"
	"time"

	"fjacquet/sales-report/internal/aggregator"
	"fjacquet/sales-report/internal/dateutils"
	"fjacquet/sales-report/internal/logging"

	"github.com/shopspring/decimal"
)

// LogObserver forwards aggregation progress to a Logger.
type LogObserver struct {
	logger logging.Logger
}

var _ aggregator.Observer = (*LogObserver)(nil)

// NewLogObserver returns an observer logging through logger.
func NewLogObserver(logger logging.Logger) *LogObserver {
	return &LogObserver{logger: logger}
}

// RecordAccumulated logs each accumulation at debug level.
func (o *LogObserver) RecordAccumulated(operation string, key any, amount, running decimal.Decimal) {
	o.logger.Debug("Accumulated record",
		logging.F(logging.FieldOperation, operation),
		logging.F("key", keyString(key)),
		logging.F(logging.FieldAmount, amount.String()),
		logging.F(logging.FieldTotal, running.String()))
}

// ReductionFinished logs the outcome of a reduction.
func (o *LogObserver) ReductionFinished(operation string, keys int, total decimal.Decimal) {
	o.logger.Info("Aggregation finished",
		logging.F(logging.FieldOperation, operation),
		logging.F(logging.FieldKeys, keys),
		logging.F(logging.FieldTotal, total.String()))
}

func keyString(key any) string {
	switch k := key.(type) {
	case string:
		return k
	case time.Time:
		return dateutils.ToISODate(k)
	default:
		return fmt.Sprint(k)
	}
}
