package layout

import "math"

// Config 布局参数。阈值是配置常量而不是写死的策略。
type Config struct {
	MinWidth      int
	MinHeight     int
	MainRatio     float64 // 上半区占终端高度的比例
	HeaderRows    int
	FooterRows    int
	SeparatorRows int // 下半区与 footer 之间的空行
}

// DefaultConfig 默认布局：80x20 起步，上半区 55%，3 行 header，2 行 footer，1 行分隔
func DefaultConfig() Config {
	return Config{
		MinWidth:      80,
		MinHeight:     20,
		MainRatio:     0.55,
		HeaderRows:    3,
		FooterRows:    2,
		SeparatorRows: 1,
	}
}

// Reserve header+footer 预留的总行数
func (c Config) Reserve() int { return c.HeaderRows + c.FooterRows }

// Compute 根据终端尺寸计算全部面板矩形。
// 纯函数：同样的输入永远得到同样的输出；尺寸不足时返回 TooSmall，没有其它失败路径。
func Compute(cfg Config, width, height int) Result {
	if width < cfg.MinWidth || height < cfg.MinHeight || width <= 0 || height <= 0 {
		return Result{TooSmall: true}
	}

	colWidth := width / 3
	lastWidth := width - 2*colWidth // 最右列吸收余数，三列宽度之和恰好等于 width
	lefts := [3]int{0, colWidth, 2 * colWidth}
	widths := [3]int{colWidth, colWidth, lastWidth}

	headerRows := clamp(cfg.HeaderRows, 0, height)
	footerRows := clamp(cfg.FooterRows, 0, height-headerRows)
	footerTop := height - footerRows

	mainHeight := int(math.Floor(float64(height) * cfg.MainRatio))
	// 上半区不能压到 footer
	mainHeight = clamp(mainHeight, 0, footerTop-headerRows)

	bottomBand := height - mainHeight - cfg.Reserve()
	bottomHeight := bottomBand - cfg.SeparatorRows
	bottomTop := headerRows + mainHeight
	bottomHeight = clamp(bottomHeight, 0, footerTop-bottomTop)

	l := Layout{
		Size:   Size{Width: width, Height: height},
		Header: Rect{Top: 0, Left: 0, Width: width, Height: headerRows},
		Footer: Rect{Top: footerTop, Left: 0, Width: width, Height: footerRows},
	}
	for col := 0; col < 3; col++ {
		upper := PanelKind(col)
		lower := PanelKind(col + 3)
		l.Panels[upper] = Rect{
			Top:    headerRows,
			Left:   lefts[col],
			Width:  widths[col],
			Height: mainHeight,
			Title:  panelStyle[upper].title,
			Border: panelStyle[upper].border,
		}
		l.Panels[lower] = Rect{
			Top:    bottomTop,
			Left:   lefts[col],
			Width:  widths[col],
			Height: bottomHeight,
			Title:  panelStyle[lower].title,
			Border: panelStyle[lower].border,
		}
	}
	return Result{Layout: l}
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
