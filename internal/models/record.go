// Package models contains the data types shared by the loader, the aggregator
// and the report pipeline.
package models

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Validation failures reported by Record.Validate.
var (
	ErrEmptyProductName = errors.New("product name cannot be empty")
	ErrNegativeQuantity = errors.New("quantity cannot be negative")
	ErrZeroDate         = errors.New("date cannot be zero")
)

// Record is one parsed sales line. It is passed by value and never modified
// after the loader builds it.
type Record struct {
	ProductName string
	Quantity    int
	Price       decimal.Decimal
	Date        time.Time
}

// NewRecord builds a Record, rejecting an empty product name or a negative quantity.
func NewRecord(productName string, quantity int, price decimal.Decimal, date time.Time) (Record, error) {
	r := Record{
		ProductName: productName,
		Quantity:    quantity,
		Price:       price,
		Date:        date,
	}
	if err := r.Validate(); err != nil {
		return Record{}, err
	}
	return r, nil
}

// Validate checks the invariants a loaded record must hold.
func (r Record) Validate() error {
	if r.ProductName == "" {
		return ErrEmptyProductName
	}
	if r.Quantity < 0 {
		return fmt.Errorf("%w, got %d", ErrNegativeQuantity, r.Quantity)
	}
	if r.Date.IsZero() {
		return ErrZeroDate
	}
	return nil
}

// String renders the record in its input field order.
func (r Record) String() string {
	return fmt.Sprintf("%s,%d,%s,%s", r.ProductName, r.Quantity, r.Price.String(), r.Date.Format(time.RFC3339))
}

// TotalPrice returns the sum of Price over records.
func TotalPrice(records []Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Price)
	}
	return total
}
