package dashboard

import (
	"math/rand"
	"time"

	"github.com/betbot/heliterm/internal/layout"
	"github.com/betbot/heliterm/internal/marketstate"
	"github.com/betbot/heliterm/internal/metrics"
	"github.com/sirupsen/logrus"
)

var engineLog = logrus.WithField("module", "dashboard.engine")

// Engine 渲染引擎：持有数据模型和随机源，负责把一帧画到 Surface 上。
// 不是并发安全的，只能在事件循环的 goroutine 里调用。
type Engine struct {
	composer Composer
	store    *marketstate.Store
	rng      *rand.Rand
	now      func() time.Time

	lastSize layout.Size
}

func NewEngine(store *marketstate.Store, composer Composer, rng *rand.Rand) *Engine {
	return &Engine{
		composer: composer,
		store:    store,
		rng:      rng,
		now:      time.Now,
	}
}

// Tick 周期刷新
func (e *Engine) Tick() {
	e.store.Tick(e.rng)
	metrics.Ticks.Add(1)
}

// Refresh 用户手动刷新，和 Tick 走同一个写入口
func (e *Engine) Refresh() {
	e.store.Tick(e.rng)
	metrics.ManualRefreshes.Add(1)
}

// RenderFrame 重新读取 Surface 尺寸并整帧重画。
// 终端过小时什么都不做（不清屏、不提交），Surface 保持上一帧；返回是否提交了新帧。
func (e *Engine) RenderFrame(s Surface) bool {
	start := time.Now()
	w, h := s.Size()
	size := layout.Size{Width: w, Height: h}
	if size != e.lastSize {
		engineLog.WithFields(logrus.Fields{"width": w, "height": h}).Debug("终端尺寸变化")
		e.lastSize = size
	}

	frame, ok := e.composer.Compose(size, e.store.Snapshot(), e.rng, e.now())
	if !ok {
		metrics.FramesSkipped.Add(1)
		engineLog.WithFields(logrus.Fields{"width": w, "height": h}).Debug("终端过小，跳过本帧")
		return false
	}

	s.Clear()
	Paint(s, frame)
	s.Show()

	us := time.Since(start).Microseconds()
	metrics.FramesRendered.Add(1)
	metrics.RenderLastUs.Set(us)
	metrics.RenderTotalUs.Add(us)
	return true
}
