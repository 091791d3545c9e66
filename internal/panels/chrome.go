package panels

import (
	"time"

	"github.com/betbot/heliterm/internal/markup"
)

// Header 顶部标题栏内容
func Header(title string, now time.Time, width int) markup.Block {
	return fit([]string{
		" " + markup.Bold + "🚁 " + title + markup.Reset + "  " + markup.Paint(markup.Green, "● LIVE"),
		" " + markup.Paint(markup.Gray, now.Format("2006-01-02 15:04:05")),
	}, width)
}

// Footer 底部帮助栏内容
func Footer(help string, updatedAt time.Time, width int) markup.Block {
	return fit([]string{
		" " + help,
		" " + markup.Paint(markup.Gray, "Updated: "+updatedAt.Format("15:04:05")),
	}, width)
}
