// Package panels 面板内容提供者。
//
// 每个提供者都是纯函数：输入数据快照和可用宽度，输出带样式标记的文本块，
// 互不依赖、可以任意顺序调用，也从不直接写终端。
package panels

import (
	"github.com/betbot/heliterm/internal/markup"
)

// noData 输入为空时的占位行
var noData = markup.Paint(markup.Gray, "no data")

// fit 把每一行截断到 width
func fit(lines []string, width int) markup.Block {
	out := make(markup.Block, 0, len(lines))
	for _, l := range lines {
		out = append(out, markup.Truncate(l, width))
	}
	return out
}
