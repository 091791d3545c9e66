package dashboard

import (
	"strings"

	"github.com/betbot/heliterm/internal/layout"
	"github.com/betbot/heliterm/internal/panels"
)

// Options 控制 dashboard 的外观和渲染方式。
type Options struct {
	// Title header 左侧标题
	Title string
	// UseNativeTUI 为 true 时用 tcell 直接画屏，否则走 Bubble Tea
	UseNativeTUI bool
	// Seed 订单薄合成数据的随机种子，0 表示按启动时间取种子
	Seed int64

	Layout    layout.Config
	Chart     panels.ChartOptions
	OrderBook panels.OrderBookOptions
}

// DefaultOptions 默认选项
func DefaultOptions() Options {
	return Options{
		Title:     "HELI TERMINAL",
		Layout:    layout.DefaultConfig(),
		Chart:     panels.DefaultChartOptions(),
		OrderBook: panels.DefaultOrderBookOptions(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if strings.TrimSpace(o.Title) == "" {
		o.Title = def.Title
	}
	if o.Layout == (layout.Config{}) {
		o.Layout = def.Layout
	}
	if o.Chart.Rows <= 0 {
		o.Chart = def.Chart
	}
	if o.OrderBook.Depth <= 0 {
		o.OrderBook = def.OrderBook
	}
	return o
}
