package domain

import "github.com/shopspring/decimal"

// Direction 涨跌方向
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
)

// DirectionOf 根据涨跌幅符号得到方向（0 视为上涨）
func DirectionOf(changePct decimal.Decimal) Direction {
	if changePct.IsNegative() {
		return DirectionDown
	}
	return DirectionUp
}

// Glyph 方向箭头
func (d Direction) Glyph() string {
	if d == DirectionDown {
		return "▼"
	}
	return "▲"
}

// WatchlistEntry 自选列表中的一行
type WatchlistEntry struct {
	Symbol    string
	Price     string          // 展示用价格字符串，本范围内静态
	ChangePct decimal.Decimal // 涨跌幅（百分比数值，例如 2.34 表示 +2.34%）
	Direction Direction
}

// ChangeString 带显式正负号的涨跌幅，例如 "+2.34%" / "-0.89%"
func (e WatchlistEntry) ChangeString() string {
	s := e.ChangePct.StringFixed(2)
	if !e.ChangePct.IsNegative() {
		s = "+" + s
	}
	return s + "%"
}
