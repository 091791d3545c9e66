package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// 渲染前端
const (
	RendererBubbleTea = "bubbletea"
	RendererNative    = "native"
)

// 环境变量覆盖
const (
	EnvLogLevel = "HELITERM_LOG_LEVEL"
	EnvLogFile  = "HELITERM_LOG_FILE"
	EnvRenderer = "HELITERM_RENDERER"
)

// Config 程序配置。只影响外围行为（日志、前端选择、标题、最小尺寸、图表纵轴），不影响数据和刷新节奏。
type Config struct {
	Title    string `yaml:"title" default:"HELI TERMINAL" validate:"required,max=60"`
	Renderer string `yaml:"renderer" default:"bubbletea" validate:"oneof=bubbletea native"`
	// Seed 订单薄随机种子，0 表示每次启动随机
	Seed int64 `yaml:"seed"`

	Layout LayoutConfig `yaml:"layout"`
	Chart  ChartConfig  `yaml:"chart"`
	Log    LogConfig    `yaml:"log"`
}

// LayoutConfig 布局阈值
type LayoutConfig struct {
	MinWidth  int     `yaml:"min_width" default:"80" validate:"gte=20"`
	MinHeight int     `yaml:"min_height" default:"20" validate:"gte=10"`
	MainRatio float64 `yaml:"main_ratio" default:"0.55" validate:"gt=0,lt=1"`
}

// ChartConfig 图表面板
type ChartConfig struct {
	// AutoCeiling 按序列最大值取纵轴上限，关闭时固定为 75
	AutoCeiling bool `yaml:"auto_ceiling"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level          string `yaml:"level" default:"info" validate:"oneof=debug info warn error"`
	File           string `yaml:"file" default:"logs/heliterm.log"`
	MaxSize        int    `yaml:"max_size" default:"100" validate:"gte=1"` // MB
	MaxBackups     int    `yaml:"max_backups" default:"3" validate:"gte=0"`
	MaxAge         int    `yaml:"max_age" default:"7" validate:"gte=0"` // 天
	Compress       bool   `yaml:"compress" default:"true"`
	RotateSchedule string `yaml:"rotate_schedule" default:"@daily"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default 全部取默认值的配置
func Default() *Config {
	c := &Config{}
	if err := defaults.Set(c); err != nil {
		// 默认值写在 struct tag 里，出错说明 tag 写错了
		panic(err)
	}
	return c
}

// Load 加载配置：默认值 -> YAML 文件（可选）-> .env / 环境变量 -> 校验
func Load(filePath string) (*Config, error) {
	// .env 不存在是正常情况
	_ = godotenv.Load()

	c := Default()
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("解析 YAML 配置失败: %w", err)
		}
	}

	c.applyEnv()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("配置验证失败: %w", err)
	}
	return c, nil
}

func (c *Config) applyEnv() {
	c.Log.Level = getEnv(EnvLogLevel, c.Log.Level)
	c.Log.File = getEnv(EnvLogFile, c.Log.File)
	c.Renderer = getEnv(EnvRenderer, c.Renderer)
	c.Log.Level = strings.ToLower(c.Log.Level)
	c.Renderer = strings.ToLower(c.Renderer)
}

// Validate 校验配置
func (c *Config) Validate() error {
	return validate.Struct(c)
}

// NativeTUI 是否使用 tcell 前端
func (c *Config) NativeTUI() bool {
	return c.Renderer == RendererNative
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
