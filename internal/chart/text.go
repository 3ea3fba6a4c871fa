package chart

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"fjacquet/sales-report/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultBarWidth is the character width of the longest bar.
const DefaultBarWidth = 40

const barGlyph = "█"

// TextRenderer draws horizontal bars to a writer.
type TextRenderer struct {
	out      io.Writer
	width    int
	currency string
}

// NewTextRenderer creates a TextRenderer. A width below 1 uses DefaultBarWidth.
func NewTextRenderer(out io.Writer, width int, currency string) *TextRenderer {
	if width < 1 {
		width = DefaultBarWidth
	}
	return &TextRenderer{out: out, width: width, currency: currency}
}

// BarChart writes c as a block of labelled bars. Each bar is annotated
// with its value; bars are scaled to the largest positive value.
func (r *TextRenderer) BarChart(c BarChart) error {
	var sb strings.Builder

	sb.WriteString(c.Title + "\n")
	sb.WriteString(strings.Repeat("=", utf8.RuneCountInString(c.Title)) + "\n")

	labelWidth := utf8.RuneCountInString(c.XLabel)
	for _, b := range c.Bars {
		if n := utf8.RuneCountInString(b.Label); n > labelWidth {
			labelWidth = n
		}
	}

	fmt.Fprintf(&sb, "%-*s | %s\n", labelWidth, c.XLabel, c.YLabel)
	sb.WriteString(strings.Repeat("-", labelWidth) + "-+-" + strings.Repeat("-", r.width) + "\n")

	max := c.MaxValue()
	for _, b := range c.Bars {
		bar := strings.Repeat(barGlyph, r.barLength(b.Value, max))
		pad := strings.Repeat(" ", r.width-utf8.RuneCountInString(bar))
		fmt.Fprintf(&sb, "%-*s | %s%s %s\n", labelWidth, b.Label, bar, pad, models.FormatAmount(b.Value, r.currency))
	}
	if len(c.Bars) == 0 {
		sb.WriteString("(no data)\n")
	}
	sb.WriteString("\n")

	_, err := io.WriteString(r.out, sb.String())
	return err
}

// Summary writes the extrema panel.
func (r *TextRenderer) Summary(s Summary) error {
	var sb strings.Builder

	sb.WriteString(s.Title + "\n")
	sb.WriteString(strings.Repeat("=", utf8.RuneCountInString(s.Title)) + "\n")
	for _, item := range s.Items {
		fmt.Fprintf(&sb, "%s: %s (%s)\n", item.Label, item.Key, models.FormatAmount(item.Value, r.currency))
	}
	sb.WriteString("\n")

	_, err := io.WriteString(r.out, sb.String())
	return err
}

func (r *TextRenderer) barLength(v, max decimal.Decimal) int {
	if !max.IsPositive() || !v.IsPositive() {
		return 0
	}
	n := int(v.Mul(decimal.NewFromInt(int64(r.width))).Div(max).Round(0).IntPart())
	if n < 1 {
		n = 1
	}
	if n > r.width {
		n = r.width
	}
	return n
}
