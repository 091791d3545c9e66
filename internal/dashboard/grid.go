package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	r     rune
	comb  []rune
	style tcell.Style
	cont  bool // 宽字符占用的第二列
}

// Grid Bubble Tea 模式下的 Surface：在内存里画，Show 时用 lipgloss 生成整屏字符串。
// View 永远返回最近一次 Show 的结果，所以跳过的帧（终端过小）保持上一帧不变。
type Grid struct {
	width  int
	height int
	cells  []cell
	styles map[tcell.Style]lipgloss.Style

	view  string
	plain string
}

func NewGrid(width, height int) *Grid {
	g := &Grid{styles: make(map[tcell.Style]lipgloss.Style)}
	g.Resize(width, height)
	return g
}

// Resize 调整网格尺寸并清空内容（不影响已提交的 View）
func (g *Grid) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g.width, g.height = width, height
	g.cells = make([]cell, width*height)
	g.Clear()
}

func (g *Grid) Size() (int, int) { return g.width, g.height }

func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', style: tcell.StyleDefault}
	}
}

func (g *Grid) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	i := y*g.width + x
	g.cells[i] = cell{r: primary, comb: append([]rune(nil), combining...), style: style}
	if runewidth.RuneWidth(primary) == 2 {
		if x+1 < g.width {
			g.cells[i+1] = cell{cont: true, style: style}
		} else {
			// 最后一列放不下宽字符
			g.cells[i] = cell{r: ' ', style: style}
		}
	}
}

// Show 提交当前网格
func (g *Grid) Show() {
	var styled, plain strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			styled.WriteByte('\n')
			plain.WriteByte('\n')
		}
		row := g.cells[y*g.width : (y+1)*g.width]
		var run strings.Builder
		var runStyle tcell.Style
		flush := func() {
			if run.Len() == 0 {
				return
			}
			styled.WriteString(g.lipglossStyle(runStyle).Render(run.String()))
			run.Reset()
		}
		for x, c := range row {
			if c.cont {
				continue
			}
			if x == 0 || c.style != runStyle {
				flush()
				runStyle = c.style
			}
			run.WriteRune(c.r)
			plain.WriteRune(c.r)
			for _, r := range c.comb {
				run.WriteRune(r)
				plain.WriteRune(r)
			}
		}
		flush()
	}
	g.view = styled.String()
	g.plain = plain.String()
}

// View 最近一次提交的整屏字符串（带终端样式）
func (g *Grid) View() string { return g.view }

// Text 最近一次提交的纯文本，每行一个终端行
func (g *Grid) Text() string { return g.plain }

func (g *Grid) lipglossStyle(st tcell.Style) lipgloss.Style {
	if ls, ok := g.styles[st]; ok {
		return ls
	}
	fg, bg, attrs := st.Decompose()
	ls := lipgloss.NewStyle()
	if c, ok := lipglossColor(fg); ok {
		ls = ls.Foreground(c)
	}
	if c, ok := lipglossColor(bg); ok {
		ls = ls.Background(c)
	}
	if attrs&tcell.AttrBold != 0 {
		ls = ls.Bold(true)
	}
	g.styles[st] = ls
	return ls
}

func lipglossColor(c tcell.Color) (lipgloss.Color, bool) {
	if c == tcell.ColorDefault {
		return "", false
	}
	hex := c.Hex()
	if hex < 0 {
		return "", false
	}
	return lipgloss.Color(fmt.Sprintf("#%06X", hex)), true
}
