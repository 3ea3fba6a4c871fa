package loader

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"fjacquet/sales-report/internal/logging"
	"fjacquet/sales-report/internal/models"
	"fjacquet/sales-report/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sales.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_ValidFile(t *testing.T) {
	path := writeFile(t, "apple,1,10.00,2024-06-01\n"+
		"apple, 2 , 5.00 ,2024-06-01\n"+
		"  pear ,1,11.00,2024-06-02T09:15:00\n")

	logger := logging.NewMockLogger()
	records, err := NewLoader(logger).Load(path)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "apple", records[0].ProductName)
	assert.Equal(t, 1, records[0].Quantity)
	assert.True(t, records[0].Price.Equal(decimal.RequireFromString("10.00")))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), records[0].Date)

	assert.Equal(t, 2, records[1].Quantity)
	assert.True(t, records[1].Price.Equal(decimal.RequireFromString("5")))

	assert.Equal(t, "pear", records[2].ProductName)
	assert.Equal(t, time.Date(2024, 6, 2, 9, 15, 0, 0, time.UTC), records[2].Date)

	assert.True(t, logger.HasEntry("INFO", "Successfully read sales data"))
}

func TestLoad_PreservesInputOrder(t *testing.T) {
	path := writeFile(t, "c,1,1,2024-06-03\nb,1,2,2024-06-02\na,1,3,2024-06-01\n")

	records, err := NewLoader(nil).Load(path)
	require.NoError(t, err)

	var names []string
	for _, r := range records {
		names = append(names, r.ProductName)
	}
	assert.Equal(t, []string{"c", "b", "a"}, names)
}

func TestLoad_EmptyFile(t *testing.T) {
	for name, content := range map[string]string{
		"zero bytes":  "",
		"blank lines": "\n\n  \n",
	} {
		t.Run(name, func(t *testing.T) {
			records, err := NewLoader(nil).Load(writeFile(t, content))
			require.NoError(t, err)
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")

	_, err := NewLoader(nil).Load(missing)
	require.Error(t, err)

	var notFound *parsererror.FileNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, missing, notFound.Path)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantLine  int
		wantField string
		wantValue string
		wantRaw   string
	}{
		{
			name:      "non-numeric quantity",
			input:     "apple,1,10.00,2024-06-01\napple,two,5.00,2024-06-01\n",
			wantLine:  2,
			wantField: FieldQuantity,
			wantValue: "two",
			wantRaw:   "apple,two,5.00,2024-06-01",
		},
		{
			name:      "non-numeric price",
			input:     "pear,1,eleven,2024-06-02\n",
			wantLine:  1,
			wantField: FieldPrice,
			wantValue: "eleven",
			wantRaw:   "pear,1,eleven,2024-06-02",
		},
		{
			name:      "negative quantity",
			input:     "pear,-1,11.00,2024-06-02\n",
			wantLine:  1,
			wantField: FieldQuantity,
			wantValue: "-1",
			wantRaw:   "pear,-1,11.00,2024-06-02",
		},
		{
			name:      "unparseable date",
			input:     "pear,1,11.00,02.06.2024\n",
			wantLine:  1,
			wantField: FieldDate,
			wantValue: "02.06.2024",
			wantRaw:   "pear,1,11.00,02.06.2024",
		},
		{
			name:      "empty product name",
			input:     "apple,1,1,2024-06-01\n  ,1,11.00,2024-06-02\n",
			wantLine:  2,
			wantField: FieldProductName,
			wantValue: "  ",
			wantRaw:   "  ,1,11.00,2024-06-02",
		},
		{
			name:      "line number counts blank lines",
			input:     "apple,1,1,2024-06-01\n\n\npear,1,x,2024-06-02\n",
			wantLine:  4,
			wantField: FieldPrice,
			wantValue: "x",
			wantRaw:   "pear,1,x,2024-06-02",
		},
		{
			name:      "too few fields",
			input:     "apple,1,10.00,2024-06-01\npear,1,11.00\n",
			wantLine:  2,
			wantField: FieldRecord,
			wantRaw:   "pear,1,11.00",
		},
		{
			name:      "too many fields",
			input:     "apple,1,10.00,2024-06-01,extra\n",
			wantLine:  1,
			wantField: FieldRecord,
			wantRaw:   "apple,1,10.00,2024-06-01,extra",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := NewLoader(nil).Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, records, "no partial import")

			var parseErr *parsererror.ParseError
			require.True(t, errors.As(err, &parseErr), "got %T: %v", err, err)
			assert.Equal(t, tt.wantLine, parseErr.Line)
			assert.Equal(t, tt.wantField, parseErr.Field)
			assert.Equal(t, tt.wantValue, parseErr.Value)
			assert.Equal(t, tt.wantRaw, parseErr.Raw)
		})
	}
}

func TestLoad_ParseErrorNamesFile(t *testing.T) {
	path := writeFile(t, "apple,x,10.00,2024-06-01\n")

	_, err := NewLoader(nil).Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.Contains(t, err.Error(), "line 1")

	var parseErr *parsererror.ParseError
	assert.True(t, errors.As(err, &parseErr))
}

func TestParse_DecimalExactness(t *testing.T) {
	records, err := NewLoader(nil).Parse(strings.NewReader(
		"a,1,0.10,2024-06-01\na,1,0.10,2024-06-01\na,1,0.10,2024-06-01\n"))
	require.NoError(t, err)

	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Price)
	}
	assert.Equal(t, "0.3", total.String())
}

func TestParse_WindowsLineEndings(t *testing.T) {
	records, err := NewLoader(nil).Parse(strings.NewReader("apple,1,10.00,2024-06-01\r\npear,1,11.00,2024-06-02\r\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC), records[1].Date)
}

func TestParse_QuotedProductName(t *testing.T) {
	records, err := NewLoader(nil).Parse(strings.NewReader(`"cookies, oat",3,23.00,2024-06-05` + "\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "cookies, oat", records[0].ProductName)
}

func TestParse_RecordInvariantErrors(t *testing.T) {
	_, err := NewLoader(nil).Parse(strings.NewReader("pear,-3,11.00,2024-06-02\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrNegativeQuantity)
	assert.EqualError(t, err, `line 1: failed to parse quantity='-3' in "pear,-3,11.00,2024-06-02": quantity cannot be negative, got -3`)

	_, err = NewLoader(nil).Parse(strings.NewReader(" ,1,11.00,2024-06-02\n"))
	assert.ErrorIs(t, err, models.ErrEmptyProductName)
}

func TestParse_BareQuoteInProductName(t *testing.T) {
	records, err := NewLoader(nil).Parse(strings.NewReader(`12" pizza,1,5.00,2024-06-01` + "\n" + `pear,1,11.00,2024-06-02` + "\n"))
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, `12" pizza`, records[0].ProductName)
	assert.Equal(t, "5", records[0].Price.String())
	assert.Equal(t, "pear", records[1].ProductName)
}

func TestWithDelimiter(t *testing.T) {
	l := NewLoader(nil, WithDelimiter(';'))

	records, err := l.Parse(strings.NewReader("apple;1;10.00;2024-06-01\n"))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "apple", records[0].ProductName)

	// zero rune keeps the default
	assert.Equal(t, ',', NewLoader(nil, WithDelimiter(0)).delimiter)
}
