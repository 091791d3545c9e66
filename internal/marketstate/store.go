package marketstate

import (
	"math/rand"
	"time"

	"github.com/betbot/heliterm/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var storeLog = logrus.WithField("module", "marketstate")

// TickInterval 周期刷新间隔（固定 3s，不对外暴露配置）
const TickInterval = 3 * time.Second

// changeRange 每次 tick 随机涨跌幅的范围 [-changeRange, +changeRange]
const changeRange = 2.0

// Snapshot 面板数据的只读快照（深拷贝，内容提供者可以随意持有）
type Snapshot struct {
	Watchlist []domain.WatchlistEntry
	Chart     domain.ChartSeries
	Portfolio []domain.PortfolioRow
	News      []domain.NewsItem
	System    domain.SystemInfo
	UpdatedAt time.Time
	Ticks     int64
}

// Store 进程内唯一的数据模型持有者。
//
// 只有 Tick 会修改数据；调用方（事件循环）保证 Tick 与 Snapshot 串行执行，
// 所以这里不加锁。以后接入真实数据源时，数据也必须作为事件投递到同一个事件循环。
type Store struct {
	watchlist []domain.WatchlistEntry
	chart     domain.ChartSeries
	portfolio []domain.PortfolioRow
	news      []domain.NewsItem
	system    domain.SystemInfo

	updatedAt time.Time
	ticks     int64
	now       func() time.Time
}

// Option Store 构造选项
type Option func(*Store)

// WithClock 替换时钟（测试用）
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// NewStore 创建带示例数据的 Store
func NewStore(opts ...Option) *Store {
	s := &Store{now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	now := s.now()
	s.watchlist = sampleWatchlist()
	s.chart = sampleChart()
	s.portfolio = samplePortfolio()
	s.news = sampleNews()
	s.system = sampleSystem(now)
	s.updatedAt = now
	return s
}

// Tick 刷新数据：每个自选项的涨跌幅重新随机到 [-2, +2]，方向由符号决定。
// 这是唯一的写入口，定时器和手动刷新都走这里。
func (s *Store) Tick(rng *rand.Rand) {
	for i := range s.watchlist {
		v := rng.Float64()*2*changeRange - changeRange
		change := decimal.NewFromFloat(v).Round(2)
		s.watchlist[i].ChangePct = change
		s.watchlist[i].Direction = domain.DirectionOf(change)
	}
	s.ticks++
	s.updatedAt = s.now()
	storeLog.WithField("ticks", s.ticks).Debug("数据模型已刷新")
}

// Snapshot 返回当前数据的深拷贝
func (s *Store) Snapshot() Snapshot {
	snap := Snapshot{
		Watchlist: append([]domain.WatchlistEntry(nil), s.watchlist...),
		Chart:     append(domain.ChartSeries(nil), s.chart...),
		Portfolio: append([]domain.PortfolioRow(nil), s.portfolio...),
		News:      append([]domain.NewsItem(nil), s.news...),
		System:    s.system,
		UpdatedAt: s.updatedAt,
		Ticks:     s.ticks,
	}
	snap.System.Services = append([]domain.ServiceStatus(nil), s.system.Services...)
	return snap
}
