package dashboard

import (
	"math/rand"
	"time"

	"github.com/betbot/heliterm/internal/layout"
	"github.com/betbot/heliterm/internal/marketstate"
	"github.com/betbot/heliterm/internal/markup"
	"github.com/betbot/heliterm/internal/panels"
)

// PanelView 一个面板在本帧的位置与内容
type PanelView struct {
	Kind    layout.PanelKind
	Rect    layout.Rect
	Content markup.Block
}

// Frame 一帧完整画面：布局 + 每个区域的内容。
// 每帧从零生成，不复用上一帧的任何面板。
type Frame struct {
	Layout layout.Layout
	Header markup.Block
	Footer markup.Block
	Panels [layout.PanelCount]PanelView
}

// Composer 根据尺寸和数据快照生成 Frame
type Composer struct {
	Title     string
	Help      string
	Layout    layout.Config
	Chart     panels.ChartOptions
	OrderBook panels.OrderBookOptions
}

// Compose 生成一帧。终端过小时返回 false，此时不生成任何内容。
// 订单薄每帧重新合成，会消耗 rng。
func (c Composer) Compose(size layout.Size, snap marketstate.Snapshot, rng *rand.Rand, now time.Time) (Frame, bool) {
	res := layout.Compute(c.Layout, size.Width, size.Height)
	if res.TooSmall {
		return Frame{}, false
	}

	l := res.Layout
	f := Frame{
		Layout: l,
		Header: panels.Header(c.Title, now, l.Header.Width),
		Footer: panels.Footer(c.Help, snap.UpdatedAt, l.Footer.Width),
	}
	for i, r := range l.Panels {
		kind := layout.PanelKind(i)
		f.Panels[i] = PanelView{
			Kind:    kind,
			Rect:    r,
			Content: c.content(kind, r.Inner().Width, snap, rng, now),
		}
	}
	return f, true
}

func (c Composer) content(kind layout.PanelKind, width int, snap marketstate.Snapshot, rng *rand.Rand, now time.Time) markup.Block {
	switch kind {
	case layout.PanelWatchlist:
		return panels.Watchlist(snap.Watchlist, width)
	case layout.PanelChart:
		return panels.Chart(snap.Chart, c.Chart, width)
	case layout.PanelOrderBook:
		return panels.OrderBook(rng, c.OrderBook, width)
	case layout.PanelPortfolio:
		return panels.Portfolio(snap.Portfolio, width)
	case layout.PanelNews:
		return panels.News(snap.News, width)
	case layout.PanelSystem:
		return panels.System(snap.System, now, width)
	}
	return nil
}
