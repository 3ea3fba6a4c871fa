// Package generator writes synthetic sales files in the loader's input format.
package generator

import (
	"encoding/csv"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"fjacquet/sales-report/internal/dateutils"
	"fjacquet/sales-report/internal/fileutils"
	"fjacquet/sales-report/internal/loader"
	"fjacquet/sales-report/internal/logging"
	"fjacquet/sales-report/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// Config controls what Generate produces.
type Config struct {
	OutputPath  string
	Rows        int
	Products    map[string]decimal.Decimal // product name -> unit price
	MinQuantity int
	MaxQuantity int
	StartDate   time.Time // inclusive
	EndDate     time.Time // exclusive
	Seed        uint64    // 0 picks a time-based seed
}

// DefaultConfig returns the stock catalogue of five products over June 2024.
func DefaultConfig() Config {
	return Config{
		OutputPath: "data/data_100.csv",
		Rows:       1000,
		Products: map[string]decimal.Decimal{
			"яблоко":  decimal.NewFromInt(15),
			"груша":   decimal.NewFromInt(11),
			"слива":   decimal.NewFromInt(15),
			"печенье": decimal.NewFromInt(23),
			"конфета": decimal.NewFromInt(22),
		},
		MinQuantity: 1,
		MaxQuantity: 20,
		StartDate:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

// Validate checks that the ranges can be sampled.
func (c Config) Validate() error {
	if c.Rows < 0 {
		return fmt.Errorf("rows cannot be negative, got %d", c.Rows)
	}
	if len(c.Products) == 0 {
		return errors.New("at least one product is required")
	}
	for name, price := range c.Products {
		if name == "" {
			return errors.New("product name cannot be empty")
		}
		if price.IsNegative() {
			return fmt.Errorf("price of %s cannot be negative", name)
		}
	}
	if c.MinQuantity < 0 || c.MaxQuantity < c.MinQuantity {
		return fmt.Errorf("invalid quantity range %d..%d", c.MinQuantity, c.MaxQuantity)
	}
	if !c.EndDate.After(c.StartDate) {
		return fmt.Errorf("end date %s must be after start date %s",
			dateutils.ToISODate(c.EndDate), dateutils.ToISODate(c.StartDate))
	}
	return nil
}

// Generator produces random records from a Config.
type Generator struct {
	cfg    Config
	rng    *rand.Rand
	names  []string
	logger logging.Logger
}

// New validates cfg and returns a Generator. A nil logger discards log output.
func New(cfg Config, logger logging.Logger) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	names := make([]string, 0, len(cfg.Products))
	for name := range cfg.Products {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Generator{
		cfg:    cfg,
		rng:    rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		names:  names,
		logger: logger,
	}, nil
}

// Record draws one purchase: a random product at its catalogue price,
// a quantity in [MinQuantity, MaxQuantity] and a day in [StartDate, EndDate).
func (g *Generator) Record() models.Record {
	name := g.names[g.rng.IntN(len(g.names))]
	days := dateutils.DaysBetween(g.cfg.StartDate, g.cfg.EndDate)
	if days < 1 {
		days = 1
	}

	return models.Record{
		ProductName: name,
		Quantity:    g.cfg.MinQuantity + g.rng.IntN(g.cfg.MaxQuantity-g.cfg.MinQuantity+1),
		Price:       g.cfg.Products[name],
		Date:        dateutils.StartOfDay(g.cfg.StartDate).AddDate(0, 0, g.rng.IntN(days)),
	}
}

// Generate draws cfg.Rows records.
func (g *Generator) Generate() []models.Record {
	records := make([]models.Record, g.cfg.Rows)
	for i := range records {
		records[i] = g.Record()
	}
	return records
}

// WriteFile generates cfg.Rows records and writes them, without a header,
// to cfg.OutputPath. It returns the written records.
func (g *Generator) WriteFile() ([]models.Record, error) {
	records := g.Generate()

	file, err := fileutils.CreateFile(g.cfg.OutputPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			g.logger.WithError(err).Warn("Failed to close file")
		}
	}()

	rows := make([]loader.SalesCSVRow, len(records))
	for i, r := range records {
		rows[i] = ToRow(r)
	}

	writer := csv.NewWriter(file)
	if err := gocsv.MarshalCSVWithoutHeaders(rows, gocsv.NewSafeCSVWriter(writer)); err != nil {
		g.logger.WithError(err).Error("Failed to write generated rows")
		return nil, fmt.Errorf("error writing CSV data: %w", err)
	}

	g.logger.Info("Generated sales file",
		logging.F(logging.FieldOutputFile, g.cfg.OutputPath),
		logging.F(logging.FieldCount, len(records)))
	return records, nil
}

// ToRow formats a record in the loader's column layout.
func ToRow(r models.Record) loader.SalesCSVRow {
	return loader.SalesCSVRow{
		ProductName: r.ProductName,
		Quantity:    fmt.Sprintf("%d", r.Quantity),
		Price:       r.Price.String(),
		Date:        dateutils.ToISODate(r.Date),
	}
}

// Generate draws cfg.Rows records from a fresh Generator.
func Generate(cfg Config) ([]models.Record, error) {
	g, err := New(cfg, nil)
	if err != nil {
		return nil, err
	}
	return g.Generate(), nil
}

// WriteFile draws cfg.Rows records and writes them to cfg.OutputPath.
func WriteFile(cfg Config, logger logging.Logger) ([]models.Record, error) {
	g, err := New(cfg, logger)
	if err != nil {
		return nil, err
	}
	return g.WriteFile()
}
