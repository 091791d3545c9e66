package panels

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/betbot/heliterm/internal/domain"
	"github.com/betbot/heliterm/internal/markup"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(symbol, change string) domain.WatchlistEntry {
	c := decimal.RequireFromString(change)
	return domain.WatchlistEntry{Symbol: symbol, Price: "100.00", ChangePct: c, Direction: domain.DirectionOf(c)}
}

func TestWatchlist_UpAndDown(t *testing.T) {
	block := Watchlist([]domain.WatchlistEntry{entry("BTC", "1.5"), entry("SOL", "-0.89"), entry("ETH", "0")}, 40)
	require.Len(t, block, 3)

	up := block[0]
	assert.Contains(t, up, markup.Tag(markup.Green))
	assert.Contains(t, up, "▲+1.50%")
	assert.NotContains(t, up, markup.Tag(markup.Red))
	assert.True(t, strings.HasPrefix(markup.Strip(up), "BTC"), "代码左对齐")

	down := block[1]
	assert.Contains(t, down, markup.Tag(markup.Red))
	assert.Contains(t, down, "▼-0.89%")
	assert.NotContains(t, down, markup.Tag(markup.Green))

	assert.Contains(t, block[2], "▲+0.00%", "非负数带显式正号")
}

func TestWatchlist_TruncatedToWidth(t *testing.T) {
	for _, line := range Watchlist([]domain.WatchlistEntry{entry("NVDA", "4.56")}, 10) {
		assert.LessOrEqual(t, markup.Width(line), 10)
	}
	assert.Equal(t, "no data", markup.Strip(Watchlist(nil, 40)[0]))
}

// 80 列终端下自选面板内宽为 24，涨跌幅的 "%" 不能被截掉
func TestWatchlist_FitsNarrowestPanel(t *testing.T) {
	e := entry("NVDA", "-0.89")
	e.Price = "67,234.50"
	block := Watchlist([]domain.WatchlistEntry{e, entry("BTC", "2.34")}, 24)
	require.Len(t, block, 2)
	assert.Equal(t, "NVDA  67,234.50  ▼-0.89%", markup.Strip(block[0]))
	assert.True(t, strings.HasSuffix(markup.Strip(block[1]), "▲+2.34%"))
}

// chartCells 去掉刻度后按样本拆分一行
func chartCells(line string) []markup.Span {
	var cells []markup.Span
	for _, sp := range markup.Parse(line) {
		for _, r := range sp.Text {
			cells = append(cells, markup.Span{Text: string(r), Style: sp.Style})
		}
	}
	return cells[chartGutter:]
}

func TestChart_TopRowBand(t *testing.T) {
	series := domain.ChartSeries{67, 68, 66, 69, 70, 68, 71, 69, 72, 70, 73, 71, 74, 72, 75}
	block := Chart(series, DefaultChartOptions(), 60)
	require.Len(t, block, 12, "10 行 + 坐标轴 + 时间轴")

	top := block[0]
	assert.True(t, strings.HasPrefix(markup.Strip(top), "    75 │"))
	cells := chartCells(top)
	require.Len(t, cells, len(series))
	for i, p := range series {
		if p >= 73 {
			assert.Equal(t, "█", cells[i].Text, "sample %d=%v", i, p)
			want := markup.Green
			if p < series[i-1] {
				want = markup.Red
			}
			assert.Equal(t, want, cells[i].Style.Fg, "sample %d", i)
		} else {
			assert.Equal(t, " ", cells[i].Text, "sample %d=%v", i, p)
		}
	}
}

func TestChart_ColorFollowsPreviousSample(t *testing.T) {
	series := domain.ChartSeries{70, 69, 69, 71}
	opts := DefaultChartOptions()
	opts.Ceiling = 70
	opts.Rows = 1
	cells := chartCells(Chart(series, opts, 40)[0])

	assert.Equal(t, markup.Green, cells[0].Style.Fg, "第一个样本默认绿色")
	assert.Equal(t, markup.Red, cells[1].Style.Fg)
	assert.Equal(t, markup.Green, cells[2].Style.Fg, "持平算上涨")
	assert.Equal(t, markup.Green, cells[3].Style.Fg)
}

func TestChart_LabelsAndAxis(t *testing.T) {
	block := Chart(domain.ChartSeries{67, 68}, DefaultChartOptions(), 60)
	assert.True(t, strings.HasPrefix(block[9], "    57 │"))
	assert.Equal(t, "       └───", block[10])
	assert.Equal(t, "       09  10  11  12  13  14  15  16  17  18  19", block[11])
}

func TestChart_NarrowWidthShowsLatestSamples(t *testing.T) {
	series := domain.ChartSeries{60, 61, 62, 63, 64, 75}
	block := Chart(series, DefaultChartOptions(), chartGutter+2)
	cells := chartCells(block[0])
	require.Len(t, cells, 2)
	assert.Equal(t, "█", cells[1].Text)
}

func TestChart_AutoCeiling(t *testing.T) {
	opts := DefaultChartOptions()
	opts.AutoCeiling = true
	block := Chart(domain.ChartSeries{101.2, 99}, opts, 40)
	assert.True(t, strings.HasPrefix(block[0], "   102 │"))
}

func TestOrderBook_SeededIsDeterministic(t *testing.T) {
	opts := DefaultOrderBookOptions()
	a := OrderBook(rand.New(rand.NewSource(42)), opts, 60)
	b := OrderBook(rand.New(rand.NewSource(42)), opts, 60)
	assert.Equal(t, a, b)
	require.Len(t, a, 8)
	assert.Contains(t, markup.Strip(a[0]), "67,000")
	assert.Contains(t, markup.Strip(a[0]), "67,001")
	assert.Contains(t, a[0], markup.Tag(markup.Green))
	assert.Contains(t, a[0], markup.Tag(markup.Red))
}

// 订单薄的挂单量每次调用重新随机：同一个 rng 连续两次调用结果不同
func TestOrderBook_NonDeterministicAcrossCalls(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	opts := DefaultOrderBookOptions()
	assert.NotEqual(t, SyntheticOrderBook(rng, opts), SyntheticOrderBook(rng, opts))
}

// 80 列终端下订单薄内宽为 26，卖单量必须完整显示
func TestFormatOrderBook_FitsNarrowestPanel(t *testing.T) {
	rows := []domain.OrderBookRow{
		{BidPrice: 67000, BidSize: 4.9, AskPrice: 67001, AskSize: 0.2},
		{BidPrice: 999, BidSize: 1, AskPrice: 1000, AskSize: 3.5},
	}
	block := FormatOrderBook(rows, 26)
	require.Len(t, block, 2)
	assert.Equal(t, "67,000  4.9 │ 67,001  0.2", markup.Strip(block[0]))
	assert.Equal(t, "999     1.0 │ 1,000   3.5", markup.Strip(block[1]))
}

func TestSyntheticOrderBook_Ranges(t *testing.T) {
	rows := SyntheticOrderBook(rand.New(rand.NewSource(3)), DefaultOrderBookOptions())
	for i, r := range rows {
		assert.EqualValues(t, 67000+i, r.BidPrice)
		assert.Equal(t, r.BidPrice+1, r.AskPrice)
		for _, v := range []float64{r.BidSize, r.AskSize} {
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Less(t, v, 5.0)
		}
	}
}

func TestPortfolio_TotalIsSum(t *testing.T) {
	rows := []domain.PortfolioRow{
		{Asset: "BTC", Amount: "1", Value: decimal.NewFromInt(750)},
		{Asset: "USDC", Amount: "250", Value: decimal.NewFromInt(250)},
	}
	assert.True(t, PortfolioTotal(rows).Equal(decimal.NewFromInt(1000)))

	block := Portfolio(rows, 60)
	last := block[len(block)-1]
	assert.Equal(t, "TOTAL: $1,000", markup.Strip(last))
	assert.Contains(t, last, markup.Bold)
	assert.Contains(t, markup.Strip(block[2]), "75%")
	assert.Contains(t, markup.Strip(block[3]), "25%")
}

// 放不下完整表格时去掉数量列，市值和占比保持完整
func TestPortfolio_NarrowDropsAmount(t *testing.T) {
	rows := []domain.PortfolioRow{
		{Asset: "BTC", Amount: "1.25", Value: decimal.NewFromInt(120917)},
		{Asset: "USDC", Amount: "58,000", Value: decimal.NewFromInt(58000)},
	}
	wide := Portfolio(rows, 40)
	assert.Equal(t, "Asset Amount Value      %", markup.Strip(wide[0]))
	assert.Equal(t, "BTC   1.25   $120,917 68%", markup.Strip(wide[2]))

	narrow := Portfolio(rows, 24)
	assert.Equal(t, "Asset Value      %", markup.Strip(narrow[0]))
	assert.Equal(t, "BTC   $120,917 68%", markup.Strip(narrow[2]))
	assert.Equal(t, "USDC  $58,000  32%", markup.Strip(narrow[3]))
	for _, line := range narrow {
		assert.LessOrEqual(t, markup.Width(line), 24)
	}
}

func TestPortfolio_Empty(t *testing.T) {
	block := Portfolio(nil, 60)
	assert.Equal(t, "TOTAL: $0", markup.Strip(block[len(block)-1]))
}

func TestNews(t *testing.T) {
	block := News([]domain.NewsItem{{Headline: "Fed signals rate cut"}}, 40)
	require.Len(t, block, 1)
	assert.Equal(t, "● Fed signals rate cut", markup.Strip(block[0]))
	assert.Contains(t, block[0], markup.Tag(markup.Yellow))
}

func TestSystem(t *testing.T) {
	start := time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC)
	info := domain.SystemInfo{
		Services:  []domain.ServiceStatus{{Name: "Polygon", Connected: true}, {Name: "Binance", Connected: false}},
		MemUsed:   2_400_000_000,
		MemTotal:  8_000_000_000,
		Active:    true,
		StartedAt: start,
	}
	block := System(info, start.Add(4*time.Hour+23*time.Minute), 40)
	text := make([]string, 0, len(block))
	for _, l := range block {
		text = append(text, markup.Strip(l))
	}
	joined := strings.Join(text, "\n")
	assert.Contains(t, joined, "✓ Polygon   Connected")
	assert.Contains(t, joined, "✗ Binance   Disconnected")
	assert.Contains(t, joined, "RAM: 2.4 GB / 8.0 GB")
	assert.Contains(t, joined, "Status: DEGRADED")
	assert.Equal(t, "Uptime: 4h 23m", text[len(text)-1])
}

func TestOverallStatus(t *testing.T) {
	assert.Equal(t, StatusOffline, OverallStatus(domain.SystemInfo{}))
	assert.Equal(t, StatusActive, OverallStatus(domain.SystemInfo{Active: true}))
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "0h 0m", FormatUptime(-time.Second))
	assert.Equal(t, "1d 2h 5m", FormatUptime(26*time.Hour+5*time.Minute))
}
