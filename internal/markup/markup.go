// Package markup 定义面板内容使用的内嵌样式标记。
//
// 内容提供者只输出带标记的纯文本（例如 "{green}▲+1.20%{/}"），
// 由具体的渲染层（lipgloss / tcell）把标记解释成颜色与粗体。
//
//	{red} {green} {yellow} {cyan} {magenta} {white} {gray} {blue}  设置前景色
//	{bold}                                                 开启粗体
//	{/}                                                    恢复默认样式
//
// 无法识别的 {xxx} 按普通文本输出。
package markup

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Color 标记颜色名
type Color string

const (
	Default Color = ""
	Red     Color = "red"
	Green   Color = "green"
	Yellow  Color = "yellow"
	Cyan    Color = "cyan"
	Magenta Color = "magenta"
	White   Color = "white"
	Gray    Color = "gray"
	Blue    Color = "blue"
)

var knownColors = map[string]Color{
	string(Red):     Red,
	string(Green):   Green,
	string(Yellow):  Yellow,
	string(Cyan):    Cyan,
	string(Magenta): Magenta,
	string(White):   White,
	string(Gray):    Gray,
	string(Blue):    Blue,
}

// Reset 恢复默认样式的标记
const Reset = "{/}"

// Bold 粗体标记
const Bold = "{bold}"

// Style 一段文本的样式
type Style struct {
	Fg   Color
	Bold bool
}

// Span 样式相同的一段连续文本
type Span struct {
	Text  string
	Style Style
}

// Line 一行解析后的文本
type Line []Span

// Block 一个面板的内容：每个元素是一行带标记的文本
type Block []string

// Tag 返回颜色的开启标记，例如 Tag(Green) == "{green}"
func Tag(c Color) string {
	if c == Default {
		return Reset
	}
	return "{" + string(c) + "}"
}

// Paint 用颜色包裹文本，结尾恢复默认样式
func Paint(c Color, s string) string {
	return Tag(c) + s + Reset
}

// Parse 把一行带标记的文本拆成样式段
func Parse(s string) Line {
	var (
		line Line
		cur  Style
		buf  strings.Builder
	)
	flush := func() {
		if buf.Len() == 0 {
			return
		}
		line = append(line, Span{Text: buf.String(), Style: cur})
		buf.Reset()
	}

	for i := 0; i < len(s); {
		if s[i] != '{' {
			j := strings.IndexByte(s[i:], '{')
			if j < 0 {
				buf.WriteString(s[i:])
				break
			}
			buf.WriteString(s[i : i+j])
			i += j
			continue
		}
		end := strings.IndexByte(s[i:], '}')
		if end < 0 {
			buf.WriteString(s[i:])
			break
		}
		tag := s[i+1 : i+end]
		next, ok := apply(cur, tag)
		if !ok {
			buf.WriteString(s[i : i+end+1])
			i += end + 1
			continue
		}
		if next != cur {
			flush()
			cur = next
		}
		i += end + 1
	}
	flush()
	return line
}

func apply(cur Style, tag string) (Style, bool) {
	switch tag {
	case "/":
		return Style{}, true
	case "bold":
		cur.Bold = true
		return cur, true
	case "/bold":
		cur.Bold = false
		return cur, true
	}
	if strings.HasPrefix(tag, "/") {
		if _, ok := knownColors[tag[1:]]; ok {
			cur.Fg = Default
			return cur, true
		}
		return cur, false
	}
	if c, ok := knownColors[tag]; ok {
		cur.Fg = c
		return cur, true
	}
	return cur, false
}

// Strip 去掉所有标记，只保留可见文本
func Strip(s string) string {
	var b strings.Builder
	for _, sp := range Parse(s) {
		b.WriteString(sp.Text)
	}
	return b.String()
}

// Width 可见文本的显示宽度（CJK/emoji 按 runewidth 计算）
func Width(s string) int {
	return runewidth.StringWidth(Strip(s))
}

// Truncate 把一行截断到 maxWidth 个显示单元，保留标记
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	var b strings.Builder
	used := 0
	for _, sp := range Parse(s) {
		b.WriteString(openTags(sp.Style))
		for _, r := range sp.Text {
			w := runewidth.RuneWidth(r)
			if used+w > maxWidth {
				b.WriteString(Reset)
				return b.String()
			}
			b.WriteRune(r)
			used += w
		}
		b.WriteString(Reset)
	}
	return b.String()
}

func openTags(st Style) string {
	var s string
	if st.Fg != Default {
		s += Tag(st.Fg)
	}
	if st.Bold {
		s += Bold
	}
	return s
}

// PadRight 按显示宽度右侧补空格
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// PadLeft 按显示宽度左侧补空格
func PadLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}
