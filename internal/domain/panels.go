package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChartSeries 图表价格序列（定长，本范围内静态）
type ChartSeries []float64

// OrderBookRow 订单薄一档（买/卖各一列）
type OrderBookRow struct {
	BidPrice int64
	BidSize  float64
	AskPrice int64
	AskSize  float64
}

// PortfolioRow 持仓一行
type PortfolioRow struct {
	Asset  string
	Amount string
	Value  decimal.Decimal
}

// NewsItem 新闻条目
type NewsItem struct {
	Headline string
}

// ServiceStatus 上游服务连接状态
type ServiceStatus struct {
	Name      string
	Connected bool
}

// SystemInfo 系统面板数据
type SystemInfo struct {
	Services  []ServiceStatus
	MemUsed   uint64 // bytes
	MemTotal  uint64 // bytes
	Active    bool
	StartedAt time.Time
}
