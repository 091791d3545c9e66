package panels

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/betbot/heliterm/internal/domain"
	"github.com/betbot/heliterm/internal/markup"
)

// chartGutter 左侧价格刻度占用的宽度：" " + 5 位价格 + " │"
const chartGutter = 8

// ChartOptions 分带图参数
type ChartOptions struct {
	Ceiling     float64 // 顶部一行的价格刻度
	Rows        int     // 行数
	Step        float64 // 相邻两行刻度的差，同时是每行价格带的半宽
	AutoCeiling bool    // 按序列最大值向上取整作为顶部刻度
	TimeAxis    string  // 底部时间轴
}

// DefaultChartOptions 10 行、每行 2 个价格单位，顶部 75
func DefaultChartOptions() ChartOptions {
	return ChartOptions{
		Ceiling:  75,
		Rows:     10,
		Step:     2,
		TimeAxis: "09  10  11  12  13  14  15  16  17  18  19",
	}
}

// Chart 渲染固定行数的价格分带图。
// 第 r 行的刻度为 ceiling-step*r，价格带为 [刻度-step, 刻度+step]；
// 样本落在带内时画实心块，不低于前一个样本为绿色，否则红色（第一个样本默认绿色），带外留空。
func Chart(series domain.ChartSeries, opts ChartOptions, width int) markup.Block {
	if len(series) == 0 || opts.Rows <= 0 {
		return fit([]string{noData}, width)
	}

	ceiling := opts.Ceiling
	if opts.AutoCeiling {
		ceiling = math.Ceil(maxOf(series))
	}

	// 宽度不够时只显示最近的样本
	start := 0
	if avail := width - chartGutter; avail < len(series) {
		if avail < 0 {
			avail = 0
		}
		start = len(series) - avail
	}

	lines := make([]string, 0, opts.Rows+2)
	for row := 0; row < opts.Rows; row++ {
		label := ceiling - float64(row)*opts.Step
		lo, hi := label-opts.Step, label+opts.Step

		var b strings.Builder
		b.WriteString(fmt.Sprintf(" %5s │", strconv.FormatFloat(label, 'f', -1, 64)))
		for i := start; i < len(series); i++ {
			p := series[i]
			if p < lo || p > hi {
				b.WriteByte(' ')
				continue
			}
			color := markup.Green
			if i > 0 && p < series[i-1] {
				color = markup.Red
			}
			b.WriteString(markup.Paint(color, "█"))
		}
		lines = append(lines, b.String())
	}

	shown := len(series) - start
	lines = append(lines, strings.Repeat(" ", chartGutter-1)+"└"+strings.Repeat("─", shown+1))
	if opts.TimeAxis != "" {
		lines = append(lines, strings.Repeat(" ", chartGutter-1)+opts.TimeAxis)
	}
	return fit(lines, width)
}

func maxOf(series domain.ChartSeries) float64 {
	m := series[0]
	for _, v := range series[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
