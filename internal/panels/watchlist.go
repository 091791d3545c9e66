package panels

import (
	"github.com/betbot/heliterm/internal/domain"
	"github.com/betbot/heliterm/internal/markup"
)

// 80 列终端下自选面板内宽为 24：5 + 1 + 9 + 2 + 箭头 + "+2.34%"
const (
	symbolCol = 5
	priceCol  = 9
)

// Watchlist 每个自选项一行：代码左对齐，价格与带箭头的涨跌幅按方向着色（涨绿跌红）
func Watchlist(entries []domain.WatchlistEntry, width int) markup.Block {
	if len(entries) == 0 {
		return fit([]string{noData}, width)
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		color := markup.Green
		if e.Direction == domain.DirectionDown {
			color = markup.Red
		}
		line := markup.Paint(markup.Cyan, markup.PadRight(e.Symbol, symbolCol)) + " " +
			markup.Paint(color, markup.PadLeft(e.Price, priceCol)) + "  " +
			markup.Paint(color, e.Direction.Glyph()+e.ChangeString())
		lines = append(lines, line)
	}
	return fit(lines, width)
}
