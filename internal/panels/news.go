package panels

import (
	"github.com/betbot/heliterm/internal/domain"
	"github.com/betbot/heliterm/internal/markup"
)

const newsBullet = "●"

// News 新闻列表，每条前面一个黄色圆点
func News(items []domain.NewsItem, width int) markup.Block {
	if len(items) == 0 {
		return fit([]string{noData}, width)
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, markup.Paint(markup.Yellow, newsBullet)+" "+it.Headline)
	}
	return fit(lines, width)
}
