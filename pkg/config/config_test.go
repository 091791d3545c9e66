package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "heliterm.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "HELI TERMINAL", c.Title)
	assert.Equal(t, RendererBubbleTea, c.Renderer)
	assert.False(t, c.NativeTUI())
	assert.Equal(t, 80, c.Layout.MinWidth)
	assert.Equal(t, 20, c.Layout.MinHeight)
	assert.InDelta(t, 0.55, c.Layout.MainRatio, 1e-9)
	assert.Equal(t, "info", c.Log.Level)
	assert.Equal(t, "logs/heliterm.log", c.Log.File)
	assert.True(t, c.Log.Compress)
	assert.Equal(t, "@daily", c.Log.RotateSchedule)
	assert.False(t, c.Chart.AutoCeiling)
}

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
title: DESK 2
renderer: native
layout:
  min_width: 100
chart:
  auto_ceiling: true
log:
  level: debug
  compress: false
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "DESK 2", c.Title)
	assert.True(t, c.NativeTUI())
	assert.Equal(t, 100, c.Layout.MinWidth)
	assert.Equal(t, 20, c.Layout.MinHeight, "未写的字段保留默认值")
	assert.True(t, c.Chart.AutoCeiling)
	assert.Equal(t, "debug", c.Log.Level)
	assert.False(t, c.Log.Compress)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "renderer: native\n")
	t.Setenv(EnvRenderer, "BubbleTea")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogFile, "/tmp/x.log")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, RendererBubbleTea, c.Renderer)
	assert.Equal(t, "warn", c.Log.Level)
	assert.Equal(t, "/tmp/x.log", c.Log.File)
}

func TestLoad_ValidationErrors(t *testing.T) {
	cases := map[string]string{
		"未知前端":   "renderer: curses\n",
		"比例越界":   "layout:\n  main_ratio: 1.5\n",
		"最小宽度过小": "layout:\n  min_width: 5\n",
		"日志级别":   "log:\n  level: verbose\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFileAndBadYAML(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "title: [unterminated\n"))
	assert.Error(t, err)
}
