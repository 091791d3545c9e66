package panels

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/betbot/heliterm/internal/domain"
	"github.com/betbot/heliterm/internal/markup"
	"github.com/dustin/go-humanize"
)

// OrderBookOptions 合成订单薄参数
type OrderBookOptions struct {
	Depth     int     // 每一侧的档数
	BasePrice int64   // 第一档买价，卖价 = 买价 + 1
	MaxVolume float64 // 挂单量上限（不含），保留一位小数
}

// DefaultOrderBookOptions 8 档，买一 67000，挂单量 [0, 5)
func DefaultOrderBookOptions() OrderBookOptions {
	return OrderBookOptions{Depth: 8, BasePrice: 67000, MaxVolume: 5}
}

// SyntheticOrderBook 生成合成订单薄。
// 注意：挂单量每次调用都会重新随机，结果只在 rng 使用固定种子时可复现。
func SyntheticOrderBook(rng *rand.Rand, opts OrderBookOptions) []domain.OrderBookRow {
	rows := make([]domain.OrderBookRow, 0, opts.Depth)
	for i := 0; i < opts.Depth; i++ {
		bid := opts.BasePrice + int64(i)
		rows = append(rows, domain.OrderBookRow{
			BidPrice: bid,
			BidSize:  volume(rng, opts.MaxVolume),
			AskPrice: bid + 1,
			AskSize:  volume(rng, opts.MaxVolume),
		})
	}
	return rows
}

func volume(rng *rand.Rand, max float64) float64 {
	return math.Floor(rng.Float64()*max*10) / 10
}

// OrderBook 订单薄面板：左列买单（绿），右列卖单（红），两列对齐。
// 非确定性：内部调用 SyntheticOrderBook，每次调用挂单量都不同。
func OrderBook(rng *rand.Rand, opts OrderBookOptions, width int) markup.Block {
	return FormatOrderBook(SyntheticOrderBook(rng, opts), width)
}

// FormatOrderBook 只负责格式化，给定行就是确定性的
func FormatOrderBook(rows []domain.OrderBookRow, width int) markup.Block {
	if len(rows) == 0 {
		return fit([]string{noData}, width)
	}
	// 价格列按最宽的价格对齐，两列之间只留 " │ "，最窄的面板也能放下卖单量
	priceCol := 0
	for _, r := range rows {
		priceCol = max(priceCol, markup.Width(humanize.Comma(r.BidPrice)), markup.Width(humanize.Comma(r.AskPrice)))
	}
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%s %4.1f │ %s %4.1f",
			markup.Paint(markup.Green, markup.PadRight(humanize.Comma(r.BidPrice), priceCol)), r.BidSize,
			markup.Paint(markup.Red, markup.PadRight(humanize.Comma(r.AskPrice), priceCol)), r.AskSize,
		))
	}
	return fit(lines, width)
}
