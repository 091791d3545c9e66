package marketstate

import (
	"time"

	"github.com/betbot/heliterm/internal/domain"
	"github.com/shopspring/decimal"
)

// 示例数据：真实行情/新闻/持仓数据源不在本项目范围内

func sampleWatchlist() []domain.WatchlistEntry {
	rows := []struct {
		symbol, price, change string
	}{
		{"BTC", "67,234", "2.34"},
		{"ETH", "3,456", "1.12"},
		{"SOL", "142.33", "-0.89"},
		{"NVDA", "892.45", "4.56"},
		{"AAPL", "178.32", "0.23"},
	}
	out := make([]domain.WatchlistEntry, 0, len(rows))
	for _, r := range rows {
		change := decimal.RequireFromString(r.change)
		out = append(out, domain.WatchlistEntry{
			Symbol:    r.symbol,
			Price:     r.price,
			ChangePct: change,
			Direction: domain.DirectionOf(change),
		})
	}
	return out
}

func sampleChart() domain.ChartSeries {
	return domain.ChartSeries{67, 68, 66, 69, 70, 68, 71, 69, 72, 70, 73, 71, 74, 72, 75}
}

func samplePortfolio() []domain.PortfolioRow {
	return []domain.PortfolioRow{
		{Asset: "BTC", Amount: "1.25", Value: decimal.NewFromInt(120917)},
		{Asset: "ETH", Amount: "8.5", Value: decimal.NewFromInt(29376)},
		{Asset: "SOL", Amount: "150", Value: decimal.NewFromInt(21349)},
		{Asset: "NVDA", Amount: "25", Value: decimal.NewFromInt(22311)},
		{Asset: "USDC", Amount: "58,000", Value: decimal.NewFromInt(58000)},
	}
}

func sampleNews() []domain.NewsItem {
	return []domain.NewsItem{
		{Headline: "Fed signals rate cut"},
		{Headline: "BTC ETF inflows: $420M"},
		{Headline: "SEC approves ETH ETF"},
		{Headline: "MicroStrategy buys 1K"},
	}
}

func sampleSystem(startedAt time.Time) domain.SystemInfo {
	return domain.SystemInfo{
		Services: []domain.ServiceStatus{
			{Name: "Polygon", Connected: true},
			{Name: "Binance", Connected: true},
		},
		MemUsed:   2_400_000_000,
		MemTotal:  8_000_000_000,
		Active:    true,
		StartedAt: startedAt,
	}
}
