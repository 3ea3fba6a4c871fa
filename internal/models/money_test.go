package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{name: "plain", input: "10.00", expected: "10.00"},
		{name: "padded", input: "  5.5 ", expected: "5.50"},
		{name: "integer", input: "15", expected: "15.00"},
		{name: "negative", input: "-3.25", expected: "-3.25"},
		{name: "empty", input: "   ", wantErr: true},
		{name: "garbage", input: "ten", wantErr: true},
		{name: "comma decimal", input: "10,50", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got.StringFixed(2))
		})
	}
}

func TestParseAmount_KeepsPrecision(t *testing.T) {
	a, err := ParseAmount("123.456789")
	assert.NoError(t, err)
	b, err := ParseAmount("0.000001")
	assert.NoError(t, err)

	assert.Equal(t, "123.45679", a.Add(b).String())
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "15.00₽", FormatAmount(decimal.RequireFromString("15"), DefaultCurrencySymbol))
	assert.Equal(t, "0.30 CHF", FormatAmount(decimal.RequireFromString("0.3"), " CHF"))
}
