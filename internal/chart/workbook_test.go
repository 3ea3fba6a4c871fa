package chart

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWorkbookRenderer_WritesChartsAndSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "sales.xlsx")

	w, err := NewWorkbookRenderer(path, "₽")
	require.NoError(t, err)

	require.NoError(t, w.BarChart(productChart()))
	require.NoError(t, w.BarChart(BarChart{
		Title:  "Revenue per day",
		XLabel: "Date",
		YLabel: "Revenue",
		Bars: []Bar{
			{Label: "2024-06-01", Value: decimal.RequireFromString("15.00")},
			{Label: "2024-06-02", Value: decimal.RequireFromString("11.00")},
		},
	}))
	require.NoError(t, w.Summary(Summary{
		Title: "Summary",
		Items: []SummaryItem{{Label: "Top product", Key: "apple", Value: decimal.RequireFromString("15")}},
	}))
	require.NoError(t, w.Close())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Revenue per product", "Revenue per day", "Summary"}, f.GetSheetList())

	raw := excelize.Options{RawCellValue: true}
	label, err := f.GetCellValue("Revenue per product", "A3", raw)
	require.NoError(t, err)
	assert.Equal(t, "apple", label)
	value, err := f.GetCellValue("Revenue per product", "B3", raw)
	require.NoError(t, err)
	assert.Equal(t, "15", value)

	header, err := f.GetCellValue("Revenue per day", "A1", raw)
	require.NoError(t, err)
	assert.Equal(t, "Date", header)

	key, err := f.GetCellValue("Summary", "B2", raw)
	require.NoError(t, err)
	assert.Equal(t, "apple", key)
}

func TestWorkbookRenderer_DuplicateTitles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dup.xlsx")

	w, err := NewWorkbookRenderer(path, "₽")
	require.NoError(t, err)
	require.NoError(t, w.BarChart(productChart()))
	require.NoError(t, w.BarChart(productChart()))
	require.NoError(t, w.Close())

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Revenue per product", "2 Revenue per product"}, f.GetSheetList())
}

func TestWorkbookRenderer_NothingRendered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")

	w, err := NewWorkbookRenderer(path, "₽")
	require.NoError(t, err)
	require.NoError(t, w.Close())

	assert.NoFileExists(t, path)
}

func TestWorkbookRenderer_Discard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "dropped.xlsx")

	w, err := NewWorkbookRenderer(path, "₽")
	require.NoError(t, err)
	require.NoError(t, w.BarChart(productChart()))
	require.NoError(t, w.Discard())

	assert.NoFileExists(t, path)
	assert.NoDirExists(t, filepath.Dir(path))
}

func TestSanitizeSheetName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Revenue per day", "Revenue per day"},
		{"a/b:c", "a_b_c"},
		{"   ", "Chart"},
		{"График общей суммы продаж по каждому продукту", "График общей суммы продаж по ка"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeSheetName(tt.in))
		})
	}
}
