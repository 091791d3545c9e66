package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	// Logger 全局日志实例
	Logger *logrus.Logger
	// fileWriter 当前日志文件（未配置文件时为 nil）
	fileWriter *lumberjack.Logger
	// console 是否同时输出到终端
	console = true
	// savedConfig 保存的日志配置
	savedConfig Config
	// logMu 输出切换锁
	logMu sync.Mutex
)

// Config 日志配置
type Config struct {
	Level      string // 日志级别: debug, info, warn, error
	OutputFile string // 日志文件路径（可选，为空则只输出到控制台）
	MaxSize    int    // 日志文件最大大小（MB）
	MaxBackups int    // 保留的旧日志文件数量
	MaxAge     int    // 保留旧日志文件的天数
	Compress   bool   // 是否压缩旧日志文件
	// RotateSchedule 按 cron 表达式强制切分日志（例如 "@daily"），为空则只按大小切分
	RotateSchedule string
}

func newFormatter(colors bool) logrus.Formatter {
	return &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "06-01-02 15:04:05", // 格式: yy-mm-dd HH:MM:ss
		ForceColors:     colors,
		DisableColors:   !colors,
	}
}

// Init 初始化日志系统
func Init(config Config) error {
	logMu.Lock()
	defer logMu.Unlock()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	fileWriter = nil
	if config.OutputFile != "" {
		if err := os.MkdirAll(filepath.Dir(config.OutputFile), 0755); err != nil {
			return err
		}
		fileWriter = &lumberjack.Logger{
			Filename:   config.OutputFile,
			MaxSize:    config.MaxSize,
			MaxBackups: config.MaxBackups,
			MaxAge:     config.MaxAge,
			Compress:   config.Compress,
		}
	}
	savedConfig = config

	Logger = logrus.New()
	Logger.SetLevel(level)
	// 同时设置全局 logrus，各模块通过 logrus.WithField("module", ...) 打日志
	logrus.SetLevel(level)
	applyOutput()
	return nil
}

// SetConsole 开关终端输出。全屏界面运行期间关闭，日志只写文件。
func SetConsole(enabled bool) {
	logMu.Lock()
	defer logMu.Unlock()
	console = enabled
	applyOutput()
}

// applyOutput 按当前配置重建输出，调用方持有 logMu
func applyOutput() {
	var writers []io.Writer
	if console {
		writers = append(writers, os.Stdout)
	}
	if fileWriter != nil {
		writers = append(writers, fileWriter)
	}

	var out io.Writer = io.Discard
	if len(writers) > 0 {
		out = io.MultiWriter(writers...)
	}
	// 写文件时不带颜色
	colors := console && fileWriter == nil

	if Logger != nil {
		Logger.SetOutput(out)
		Logger.SetFormatter(newFormatter(colors))
	}
	logrus.SetOutput(out)
	logrus.SetFormatter(newFormatter(colors))
}

// Rotate 立即切分日志文件
func Rotate() error {
	logMu.Lock()
	defer logMu.Unlock()
	if fileWriter == nil {
		return nil
	}
	return fileWriter.Rotate()
}

// StartRotation 按 RotateSchedule 定时切分日志，返回停止函数
func StartRotation() (stop func(), err error) {
	logMu.Lock()
	spec := savedConfig.RotateSchedule
	hasFile := fileWriter != nil
	logMu.Unlock()

	if spec == "" || !hasFile {
		return func() {}, nil
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if err := Rotate(); err != nil {
			Errorf("日志切分失败: %v", err)
			return
		}
		Info("日志文件已切分")
	}); err != nil {
		return nil, err
	}
	c.Start()
	return func() { <-c.Stop().Done() }, nil
}

// sessionHook 给每条日志加上 session 字段
type sessionHook struct {
	id string
}

func (h sessionHook) Levels() []logrus.Level { return logrus.AllLevels }

func (h sessionHook) Fire(e *logrus.Entry) error {
	if _, ok := e.Data["session"]; !ok {
		e.Data["session"] = h.id
	}
	return nil
}

// SetSession 为之后的所有日志附加会话 ID，便于在同一个日志文件里区分多次运行
func SetSession(id string) {
	logMu.Lock()
	defer logMu.Unlock()
	hook := sessionHook{id: id}
	if Logger != nil {
		Logger.AddHook(hook)
	}
	logrus.AddHook(hook)
}

// Debugf 记录格式化的 DEBUG 级别日志
func Debugf(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Debugf(format, args...)
	}
}

// Info 记录 INFO 级别日志
func Info(args ...interface{}) {
	if Logger != nil {
		Logger.Info(args...)
	}
}

// Infof 记录格式化的 INFO 级别日志
func Infof(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Infof(format, args...)
	}
}

// Warn 记录 WARN 级别日志
func Warn(args ...interface{}) {
	if Logger != nil {
		Logger.Warn(args...)
	}
}

// Errorf 记录格式化的 ERROR 级别日志
func Errorf(format string, args ...interface{}) {
	if Logger != nil {
		Logger.Errorf(format, args...)
	}
}

// WithField 添加字段到日志上下文
func WithField(key string, value interface{}) *logrus.Entry {
	if Logger != nil {
		return Logger.WithField(key, value)
	}
	return logrus.NewEntry(logrus.New())
}

// GetCurrentLogFile 获取当前日志文件路径
func GetCurrentLogFile() string {
	logMu.Lock()
	defer logMu.Unlock()
	if fileWriter == nil {
		return ""
	}
	return fileWriter.Filename
}
