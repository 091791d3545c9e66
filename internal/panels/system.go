package panels

import (
	"fmt"
	"time"

	"github.com/betbot/heliterm/internal/domain"
	"github.com/betbot/heliterm/internal/markup"
	"github.com/dustin/go-humanize"
)

// 整体状态
const (
	StatusActive   = "ACTIVE"
	StatusDegraded = "DEGRADED"
	StatusOffline  = "OFFLINE"
)

// OverallStatus 全部服务已连接为 ACTIVE，部分断开为 DEGRADED，未运行为 OFFLINE
func OverallStatus(info domain.SystemInfo) string {
	if !info.Active {
		return StatusOffline
	}
	for _, s := range info.Services {
		if !s.Connected {
			return StatusDegraded
		}
	}
	return StatusActive
}

// System 系统面板：上游连接、内存、整体状态和运行时长
func System(info domain.SystemInfo, now time.Time, width int) markup.Block {
	lines := []string{markup.Paint(markup.Cyan, "APIs:")}
	for _, s := range info.Services {
		if s.Connected {
			lines = append(lines, fmt.Sprintf("  %s %-9s Connected", markup.Paint(markup.Green, "✓"), s.Name))
		} else {
			lines = append(lines, fmt.Sprintf("  %s %-9s Disconnected", markup.Paint(markup.Red, "✗"), s.Name))
		}
	}
	lines = append(lines,
		"",
		markup.Paint(markup.Cyan, "Memory:"),
		fmt.Sprintf("  RAM: %s / %s", humanize.Bytes(info.MemUsed), humanize.Bytes(info.MemTotal)),
		"",
	)

	status := OverallStatus(info)
	color := markup.Green
	switch status {
	case StatusDegraded:
		color = markup.Yellow
	case StatusOffline:
		color = markup.Red
	}
	lines = append(lines,
		markup.Paint(markup.Cyan, "Status:")+" "+markup.Paint(color, status),
		"Uptime: "+FormatUptime(now.Sub(info.StartedAt)),
	)
	return fit(lines, width)
}

// FormatUptime 格式化运行时长，例如 "4h 23m"，超过一天为 "1d 2h 5m"
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d.Minutes())
	days := total / (24 * 60)
	hours := (total / 60) % 24
	minutes := total % 60
	if days > 0 {
		return fmt.Sprintf("%dd %dh %dm", days, hours, minutes)
	}
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
