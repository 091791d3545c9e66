package panels

import (
	"strings"

	"github.com/betbot/heliterm/internal/domain"
	"github.com/betbot/heliterm/internal/markup"
	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// PortfolioTotal 持仓总值 = 各行市值之和
func PortfolioTotal(rows []domain.PortfolioRow) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Value)
	}
	return total
}

// Portfolio 持仓表：每个资产一行，最后是加粗的合计；占比按合计计算。
// 列宽按内容计算；一行放不下时先去掉数量列，保证市值和占比完整显示。
func Portfolio(rows []domain.PortfolioRow, width int) markup.Block {
	total := PortfolioTotal(rows)
	table := [][]string{{"Asset", "Amount", "Value", "%"}}
	for _, r := range rows {
		pct := "-"
		if total.IsPositive() {
			pct = r.Value.Div(total).Mul(hundred).Round(0).String() + "%"
		}
		table = append(table, []string{r.Asset, r.Amount, dollars(r.Value), pct})
	}

	cols := []int{0, 1, 2, 3}
	widths := columnWidths(table)
	if rowWidth(widths, cols) > width {
		cols = []int{0, 2, 3}
	}

	lines := make([]string, 0, len(table)+3)
	rule := make([]string, len(table[0]))
	for i, w := range widths {
		rule[i] = strings.Repeat("─", w)
	}
	lines = append(lines,
		markup.Paint(markup.Cyan, joinColumns(table[0], widths, cols)),
		markup.Paint(markup.Cyan, joinColumns(rule, widths, cols)),
	)
	for _, row := range table[1:] {
		lines = append(lines, joinColumns(row, widths, cols))
	}
	lines = append(lines, "", markup.Tag(markup.Green)+markup.Bold+"TOTAL: "+dollars(total)+markup.Reset)
	return fit(lines, width)
}

func columnWidths(table [][]string) []int {
	widths := make([]int, len(table[0]))
	for _, row := range table {
		for i, cell := range row {
			widths[i] = max(widths[i], markup.Width(cell))
		}
	}
	return widths
}

func rowWidth(widths, cols []int) int {
	w := len(cols) - 1
	for _, c := range cols {
		w += widths[c]
	}
	return w
}

// joinColumns 最后一列（占比）右对齐，其余左对齐
func joinColumns(row []string, widths, cols []int) string {
	parts := make([]string, 0, len(cols))
	for i, c := range cols {
		if i == len(cols)-1 {
			parts = append(parts, markup.PadLeft(row[c], widths[c]))
		} else {
			parts = append(parts, markup.PadRight(row[c], widths[c]))
		}
	}
	return strings.Join(parts, " ")
}

func dollars(v decimal.Decimal) string {
	return "$" + humanize.Comma(v.Round(0).IntPart())
}
