package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/betbot/heliterm/pkg/config"
)

func TestDashboardOptions(t *testing.T) {
	cfg := config.Default()
	opts := dashboardOptions(cfg)
	assert.Equal(t, "HELI TERMINAL", opts.Title)
	assert.False(t, opts.UseNativeTUI)
	assert.False(t, opts.Chart.AutoCeiling)
	assert.EqualValues(t, 75, opts.Chart.Ceiling)

	cfg.Renderer = config.RendererNative
	cfg.Layout.MinWidth = 100
	cfg.Chart.AutoCeiling = true
	opts = dashboardOptions(cfg)
	assert.True(t, opts.UseNativeTUI)
	assert.Equal(t, 100, opts.Layout.MinWidth)
	assert.True(t, opts.Chart.AutoCeiling)
	assert.Equal(t, 10, opts.Chart.Rows, "其余图表选项保持默认")
}
