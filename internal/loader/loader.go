// Package loader parses headerless sales CSV files into typed records.
//
// Each line carries exactly four fields: product name, quantity, price and
// date. A malformed line aborts the whole load with a *parsererror.ParseError;
// there is no best-effort import.
package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fjacquet/sales-report/internal/dateutils"
	"fjacquet/sales-report/internal/fileutils"
	"fjacquet/sales-report/internal/logging"
	"fjacquet/sales-report/internal/models"
	"fjacquet/sales-report/internal/parsererror"

	"github.com/gocarina/gocsv"
)

// FieldsPerLine is the fixed number of columns in an input line.
const FieldsPerLine = 4

// Field names used in parse errors.
const (
	FieldRecord      = "record"
	FieldProductName = "product_name"
	FieldQuantity    = "quantity"
	FieldPrice       = "price"
	FieldDate        = "date"
)

// SalesCSVRow is the raw, untrimmed form of one input line.
// Columns are mapped by position since the input has no header.
type SalesCSVRow struct {
	ProductName string `csv:"product_name"`
	Quantity    string `csv:"quantity"`
	Price       string `csv:"price"`
	Date        string `csv:"date"`
}

// Loader reads sales files.
type Loader struct {
	logger    logging.Logger
	delimiter rune
}

// Option configures a Loader.
type Option func(*Loader)

// WithDelimiter overrides the default comma separator.
func WithDelimiter(delim rune) Option {
	return func(l *Loader) {
		if delim != 0 {
			l.delimiter = delim
		}
	}
}

// NewLoader creates a Loader. A nil logger discards log output.
func NewLoader(logger logging.Logger, opts ...Option) *Loader {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	l := &Loader{
		logger:    logger,
		delimiter: ',',
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load opens filePath and parses every line into a Record. The file is closed
// before Load returns. A missing file yields *parsererror.FileNotFoundError.
func (l *Loader) Load(filePath string) ([]models.Record, error) {
	l.logger.Info("Reading sales file", logging.F(logging.FieldFile, filePath))

	file, err := fileutils.OpenInput(filePath)
	if err != nil {
		l.logger.WithError(err).Error("Failed to open sales file")
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			l.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	records, err := l.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", filePath, err)
	}

	l.logger.Info("Successfully read sales data",
		logging.F(logging.FieldFile, filePath),
		logging.F(logging.FieldCount, len(records)))
	return records, nil
}

// Parse reads all lines from r. An input with no non-blank line yields an
// empty, non-nil slice.
func (l *Loader) Parse(r io.Reader) ([]models.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Record{}, nil
	}
	lines := strings.Split(string(data), "\n")

	csvReader := csv.NewReader(bytes.NewReader(data))
	csvReader.Comma = l.delimiter
	csvReader.FieldsPerRecord = FieldsPerLine
	csvReader.LazyQuotes = true
	tracker := &lineTrackingReader{reader: csvReader}

	var rows []SalesCSVRow
	if err := gocsv.UnmarshalCSVWithoutHeaders(tracker, &rows); err != nil {
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []models.Record{}, nil
		}
		var csvErr *csv.ParseError
		if errors.As(err, &csvErr) {
			lineNo := csvErr.Line
			if idx := csvErr.Line - 1; csvErr.StartLine == 0 && idx >= 0 && idx < len(tracker.lines) {
				lineNo = tracker.lines[idx]
			}
			perr := &parsererror.ParseError{
				Line:  lineNo,
				Raw:   rawLine(lines, lineNo),
				Field: FieldRecord,
				Err:   csvErr.Err,
			}
			l.logger.WithError(perr).Error("Malformed sales line", logging.F(logging.FieldLine, lineNo))
			return nil, perr
		}
		return nil, fmt.Errorf("error decoding CSV: %w", err)
	}

	records := make([]models.Record, 0, len(rows))
	for i, row := range rows {
		lineNo := tracker.lines[i]
		rec, err := convertRow(row, lineNo, rawLine(lines, lineNo))
		if err != nil {
			l.logger.WithError(err).Error("Malformed sales line", logging.F(logging.FieldLine, lineNo))
			return nil, err
		}
		records = append(records, rec)
	}

	l.logger.Debug("Parsed sales lines", logging.F(logging.FieldCount, len(records)))
	return records, nil
}

// convertRow trims and coerces each field of row, then applies the
// Record invariants.
func convertRow(row SalesCSVRow, lineNo int, raw string) (models.Record, error) {
	fail := func(field, value string, err error) (models.Record, error) {
		return models.Record{}, &parsererror.ParseError{
			Line:  lineNo,
			Raw:   raw,
			Field: field,
			Value: value,
			Err:   err,
		}
	}

	qtyStr := strings.TrimSpace(row.Quantity)
	quantity, err := strconv.Atoi(qtyStr)
	if err != nil {
		return fail(FieldQuantity, qtyStr, err)
	}

	priceStr := strings.TrimSpace(row.Price)
	price, err := models.ParseAmount(priceStr)
	if err != nil {
		return fail(FieldPrice, priceStr, err)
	}

	dateStr := strings.TrimSpace(row.Date)
	date, _, err := dateutils.ParseISODate(dateStr)
	if err != nil {
		return fail(FieldDate, dateStr, err)
	}

	rec, err := models.NewRecord(strings.TrimSpace(row.ProductName), quantity, price, date)
	switch {
	case errors.Is(err, models.ErrEmptyProductName):
		return fail(FieldProductName, row.ProductName, err)
	case errors.Is(err, models.ErrNegativeQuantity):
		return fail(FieldQuantity, qtyStr, err)
	case errors.Is(err, models.ErrZeroDate):
		return fail(FieldDate, dateStr, err)
	case err != nil:
		return fail(FieldRecord, "", err)
	}
	return rec, nil
}

func rawLine(lines []string, lineNo int) string {
	if lineNo < 1 || lineNo > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[lineNo-1], "\r")
}

// lineTrackingReader remembers the input line each CSV record started on,
// since encoding/csv skips blank lines.
type lineTrackingReader struct {
	reader *csv.Reader
	lines  []int
}

func (t *lineTrackingReader) Read() ([]string, error) {
	record, err := t.reader.Read()
	if err != nil {
		return nil, err
	}
	line, _ := t.reader.FieldPos(0)
	t.lines = append(t.lines, line)
	return record, nil
}

func (t *lineTrackingReader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		record, err := t.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
}
