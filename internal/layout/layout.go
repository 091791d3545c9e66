package layout

// Color 面板边框颜色
type Color string

const (
	ColorDefault Color = ""
	ColorCyan    Color = "cyan"
	ColorYellow  Color = "yellow"
	ColorMagenta Color = "magenta"
	ColorGreen   Color = "green"
	ColorRed     Color = "red"
	ColorWhite   Color = "white"
	ColorGray    Color = "gray"
)

// PanelKind 面板种类（同时也是 Layout.Panels 的下标）
type PanelKind int

const (
	PanelWatchlist PanelKind = iota
	PanelChart
	PanelOrderBook
	PanelPortfolio
	PanelNews
	PanelSystem

	panelCount
)

// PanelCount 内容面板数量（上三下三）
const PanelCount = int(panelCount)

func (k PanelKind) String() string {
	switch k {
	case PanelWatchlist:
		return "watchlist"
	case PanelChart:
		return "chart"
	case PanelOrderBook:
		return "orderbook"
	case PanelPortfolio:
		return "portfolio"
	case PanelNews:
		return "news"
	case PanelSystem:
		return "system"
	}
	return "unknown"
}

// panelStyle 每个面板固定的标题和边框颜色
var panelStyle = [PanelCount]struct {
	title  string
	border Color
}{
	PanelWatchlist: {" 📋 WATCHLIST ", ColorCyan},
	PanelChart:     {" 📊 CHART ", ColorYellow},
	PanelOrderBook: {" 📋 ORDER BOOK ", ColorMagenta},
	PanelPortfolio: {" 💼 PORTFOLIO ", ColorGreen},
	PanelNews:      {" 📰 NEWS ", ColorYellow},
	PanelSystem:    {" ⚡ SYSTEM ", ColorCyan},
}

// Size 终端尺寸（每帧重新读取，不缓存）
type Size struct {
	Width  int
	Height int
}

// Rect 面板矩形，坐标以终端左上角为原点
type Rect struct {
	Top    int
	Left   int
	Width  int
	Height int
	Title  string
	Border Color
}

// Bottom 返回矩形下边界（不含）
func (r Rect) Bottom() int { return r.Top + r.Height }

// Right 返回矩形右边界（不含）
func (r Rect) Right() int { return r.Left + r.Width }

// Empty 宽或高为 0 的矩形不占任何单元格
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Inner 去掉 1 格边框后的内容区域
func (r Rect) Inner() Rect {
	in := Rect{Top: r.Top + 1, Left: r.Left + 1, Width: r.Width - 2, Height: r.Height - 2}
	if in.Width < 0 {
		in.Width = 0
	}
	if in.Height < 0 {
		in.Height = 0
	}
	return in
}

// Contains 判断 r 是否完整落在 outer 内
func (r Rect) Contains(outer Rect) bool {
	if r.Empty() {
		return true
	}
	return r.Top >= outer.Top && r.Left >= outer.Left &&
		r.Bottom() <= outer.Bottom() && r.Right() <= outer.Right()
}

// Overlaps 判断两个矩形是否共享至少一个单元格
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.Left < o.Right() && o.Left < r.Right() &&
		r.Top < o.Bottom() && o.Top < r.Bottom()
}

// Layout 一帧的完整几何布局
type Layout struct {
	Size   Size
	Header Rect
	Footer Rect
	Panels [PanelCount]Rect
}

// Panel 按种类取面板矩形
func (l Layout) Panel(k PanelKind) Rect { return l.Panels[k] }

// Rects 返回 header/footer 与全部面板（用于遍历校验）
func (l Layout) Rects() []Rect {
	out := make([]Rect, 0, PanelCount+2)
	out = append(out, l.Header, l.Footer)
	out = append(out, l.Panels[:]...)
	return out
}

// Result 布局计算结果：要么 TooSmall，要么是完整 Layout
type Result struct {
	TooSmall bool
	Layout   Layout
}
