package dashboard

import (
	"github.com/betbot/heliterm/internal/layout"
	"github.com/betbot/heliterm/internal/markup"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Surface 一块可绘制的字符网格。
// tcell.Screen 直接满足该接口；Bubble Tea 模式下由 Grid 实现。
// Show 是唯一的"提交"动作：每次 RenderFrame 最多调用一次。
type Surface interface {
	Size() (width, height int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Clear()
	Show()
}

var tcellColors = map[markup.Color]tcell.Color{
	markup.Default: tcell.ColorDefault,
	markup.Red:     tcell.ColorRed,
	markup.Green:   tcell.ColorGreen,
	markup.Yellow:  tcell.ColorYellow,
	markup.Cyan:    tcell.ColorAqua,
	markup.Magenta: tcell.ColorFuchsia,
	markup.White:   tcell.ColorWhite,
	markup.Gray:    tcell.ColorGray,
	markup.Blue:    tcell.ColorNavy,
}

func colorOf(c markup.Color) tcell.Color {
	if tc, ok := tcellColors[c]; ok {
		return tc
	}
	return tcell.ColorDefault
}

var (
	headerStyle = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	footerStyle = tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorSilver)
)

// Paint 把一帧画到 Surface 上（不调用 Show）
func Paint(s Surface, f Frame) {
	fillRect(s, f.Layout.Header, headerStyle)
	drawBlock(s, f.Layout.Header, f.Header, headerStyle)

	for _, p := range f.Panels {
		drawPanel(s, p)
	}

	fillRect(s, f.Layout.Footer, footerStyle)
	drawBlock(s, f.Layout.Footer, f.Footer, footerStyle)
}

func drawPanel(s Surface, p PanelView) {
	r := p.Rect
	if r.Empty() {
		return
	}
	border := tcell.StyleDefault.Foreground(colorOf(markup.Color(r.Border)))
	drawBorder(s, r, border)
	if r.Title != "" && r.Width > 4 {
		drawText(s, r.Left+2, r.Top, r.Width-4, markup.Parse(markup.Bold+r.Title), border)
	}
	drawBlock(s, r.Inner(), p.Content, tcell.StyleDefault)
}

func fillRect(s Surface, r layout.Rect, style tcell.Style) {
	for y := r.Top; y < r.Bottom(); y++ {
		for x := r.Left; x < r.Right(); x++ {
			s.SetContent(x, y, ' ', nil, style)
		}
	}
}

func drawBorder(s Surface, r layout.Rect, style tcell.Style) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	top, bottom := r.Top, r.Bottom()-1
	left, right := r.Left, r.Right()-1
	for x := left + 1; x < right; x++ {
		s.SetContent(x, top, '─', nil, style)
		s.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		s.SetContent(left, y, '│', nil, style)
		s.SetContent(right, y, '│', nil, style)
	}
	s.SetContent(left, top, '┌', nil, style)
	s.SetContent(right, top, '┐', nil, style)
	s.SetContent(left, bottom, '└', nil, style)
	s.SetContent(right, bottom, '┘', nil, style)
}

// drawBlock 在矩形内逐行绘制内容，超出部分裁掉
func drawBlock(s Surface, r layout.Rect, block markup.Block, base tcell.Style) {
	for i, line := range block {
		if i >= r.Height {
			return
		}
		drawText(s, r.Left, r.Top+i, r.Width, markup.Parse(line), base)
	}
}

// drawText 按显示宽度绘制一行，返回占用的列数。
// 宽字符只写首列，第二列交给 Surface 处理；零宽字符并入前一个字符。
func drawText(s Surface, x, y, maxWidth int, line markup.Line, base tcell.Style) int {
	pos := 0
	lastX := -1
	var (
		lastRune  rune
		lastStyle tcell.Style
		combining []rune
	)
	for _, sp := range line {
		style := spanStyle(base, sp.Style)
		for _, r := range sp.Text {
			w := runewidth.RuneWidth(r)
			if w == 0 {
				if lastX >= 0 {
					combining = append(combining, r)
					s.SetContent(lastX, y, lastRune, combining, lastStyle)
				}
				continue
			}
			if pos+w > maxWidth {
				return pos
			}
			lastX, lastRune, lastStyle = x+pos, r, style
			combining = combining[:0]
			s.SetContent(lastX, y, r, nil, style)
			pos += w
		}
	}
	return pos
}

func spanStyle(base tcell.Style, st markup.Style) tcell.Style {
	style := base
	if st.Fg != markup.Default {
		style = style.Foreground(colorOf(st.Fg))
	}
	if st.Bold {
		style = style.Bold(true)
	}
	return style
}
