package chart

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"fjacquet/sales-report/internal/fileutils"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet   = "Sheet1"
	maxSheetName   = 31
	chartAnchorCol = 4 // column D
)

// WorkbookRenderer writes every chart to its own worksheet of an .xlsx file,
// with the data in columns A:B and a native column chart next to it.
// Call Close to save the workbook, or Discard to drop it.
type WorkbookRenderer struct {
	file     *excelize.File
	path     string
	sheets   int
	valueFmt int
}

// NewWorkbookRenderer prepares a workbook that Close will save to path.
func NewWorkbookRenderer(path, currency string) (*WorkbookRenderer, error) {
	f := excelize.NewFile()

	numFmt := fmt.Sprintf(`0.00"%s"`, strings.ReplaceAll(currency, `"`, ""))
	styleID, err := f.NewStyle(&excelize.Style{CustomNumFmt: &numFmt})
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to create number style: %w", err)
	}

	return &WorkbookRenderer{
		file:     f,
		path:     path,
		valueFmt: styleID,
	}, nil
}

// BarChart adds a worksheet named after the chart title.
func (w *WorkbookRenderer) BarChart(c BarChart) error {
	sheet, err := w.addSheet(c.Title)
	if err != nil {
		return err
	}

	if err := w.file.SetSheetRow(sheet, "A1", &[]interface{}{c.XLabel, c.YLabel}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, b := range c.Bars {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		// chart cells are numeric; the exact decimal goes to the text and summary outputs
		if err := w.file.SetSheetRow(sheet, cell, &[]interface{}{b.Label, b.Value.InexactFloat64()}); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}
	if len(c.Bars) == 0 {
		return nil
	}

	last := len(c.Bars) + 1
	if err := w.file.SetCellStyle(sheet, "B2", fmt.Sprintf("B%d", last), w.valueFmt); err != nil {
		return fmt.Errorf("failed to style values: %w", err)
	}

	ref := quoteSheet(sheet)
	anchor, err := excelize.CoordinatesToCellName(chartAnchorCol, 2)
	if err != nil {
		return err
	}
	err = w.file.AddChart(sheet, anchor, &excelize.Chart{
		Type: excelize.Col,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("%s!$B$1", ref),
			Categories: fmt.Sprintf("%s!$A$2:$A$%d", ref, last),
			Values:     fmt.Sprintf("%s!$B$2:$B$%d", ref, last),
		}},
		Title:    []excelize.RichTextRun{{Text: c.Title}},
		XAxis:    excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: c.XLabel}}},
		YAxis:    excelize.ChartAxis{Title: []excelize.RichTextRun{{Text: c.YLabel}}},
		PlotArea: excelize.ChartPlotArea{ShowVal: true},
		Legend:   excelize.ChartLegend{Position: "none"},
		Dimension: excelize.ChartDimension{
			Width:  960,
			Height: 480,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to add chart %q: %w", c.Title, err)
	}
	return nil
}

// Summary adds a worksheet listing the extrema.
func (w *WorkbookRenderer) Summary(s Summary) error {
	sheet, err := w.addSheet(s.Title)
	if err != nil {
		return err
	}

	if err := w.file.SetSheetRow(sheet, "A1", &[]interface{}{"Metric", "Key", "Value"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for i, item := range s.Items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := w.file.SetSheetRow(sheet, cell, &[]interface{}{item.Label, item.Key, item.Value.InexactFloat64()}); err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}
	if len(s.Items) > 0 {
		if err := w.file.SetCellStyle(sheet, "C2", fmt.Sprintf("C%d", len(s.Items)+1), w.valueFmt); err != nil {
			return fmt.Errorf("failed to style values: %w", err)
		}
	}
	return nil
}

// Close saves the workbook to its path and releases it. A workbook
// without any rendered sheet is not written.
func (w *WorkbookRenderer) Close() error {
	defer func() { _ = w.file.Close() }()

	if w.sheets == 0 {
		return nil
	}
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(w.path)); err != nil {
		return err
	}
	if err := w.file.SaveAs(w.path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", w.path, err)
	}
	return nil
}

// Discard releases the workbook without writing anything to its path.
func (w *WorkbookRenderer) Discard() error {
	return w.file.Close()
}

// addSheet creates a uniquely named worksheet. The first sheet replaces
// the default one excelize creates.
func (w *WorkbookRenderer) addSheet(title string) (string, error) {
	name := sanitizeSheetName(title)
	if w.sheets > 0 {
		if idx, _ := w.file.GetSheetIndex(name); idx >= 0 {
			name = sanitizeSheetName(fmt.Sprintf("%d %s", w.sheets+1, title))
		}
	}

	if w.sheets == 0 {
		if err := w.file.SetSheetName(defaultSheet, name); err != nil {
			return "", fmt.Errorf("failed to name sheet %q: %w", name, err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return "", fmt.Errorf("failed to create sheet %q: %w", name, err)
	}
	w.sheets++
	return name, nil
}

func sanitizeSheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']', '\'':
			return '_'
		}
		return r
	}, strings.TrimSpace(title))
	if name == "" {
		name = "Chart"
	}
	if utf8.RuneCountInString(name) > maxSheetName {
		name = string([]rune(name)[:maxSheetName])
	}
	return name
}

func quoteSheet(name string) string {
	return "'" + name + "'"
}
