package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/betbot/heliterm/internal/dashboard"
	"github.com/betbot/heliterm/internal/layout"
	"github.com/betbot/heliterm/internal/marketstate"
	"github.com/betbot/heliterm/pkg/config"
	"github.com/betbot/heliterm/pkg/logger"
	"github.com/betbot/heliterm/pkg/shutdown"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "YAML 配置文件路径（可选）")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		return 1
	}

	if err := logger.Init(logger.Config{
		Level:          cfg.Log.Level,
		OutputFile:     cfg.Log.File,
		MaxSize:        cfg.Log.MaxSize,
		MaxBackups:     cfg.Log.MaxBackups,
		MaxAge:         cfg.Log.MaxAge,
		Compress:       cfg.Log.Compress,
		RotateSchedule: cfg.Log.RotateSchedule,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		return 1
	}
	session := uuid.New().String()
	logger.SetSession(session)

	shutdownMgr := shutdown.NewManager()
	stopRotation, err := logger.StartRotation()
	if err != nil {
		logger.Errorf("启动日志切分失败: %v", err)
		return 1
	}
	shutdownMgr.OnShutdown("log-rotation", func(ctx context.Context) { stopRotation() })

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debugf("配置: %+v", *cfg)
	d := dashboard.New(marketstate.NewStore(), dashboardOptions(cfg))

	// kill -USR1 <pid> 触发一次立即刷新
	refreshSig := make(chan os.Signal, 1)
	signal.Notify(refreshSig, syscall.SIGUSR1)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-refreshSig:
				d.RequestRefresh()
			}
		}
	}()
	shutdownMgr.OnShutdown("signals", func(ctx context.Context) { signal.Stop(refreshSig) })

	logger.Infof("heliterm 启动: renderer=%s session=%s", cfg.Renderer, session)
	runErr := d.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if !shutdownMgr.Shutdown(shutdownCtx) {
		logger.Warn("部分关闭回调超时")
	}

	if runErr != nil {
		logger.WithField("renderer", cfg.Renderer).Errorf("渲染失败: %+v", runErr)
		fmt.Fprintf(os.Stderr, "heliterm: %v\n", runErr)
		return 1
	}
	logger.Info("heliterm 已退出")
	return 0
}

// dashboardOptions 把配置文件里的外观选项映射到 dashboard.Options
func dashboardOptions(cfg *config.Config) dashboard.Options {
	opts := dashboard.DefaultOptions()
	opts.Title = cfg.Title
	opts.UseNativeTUI = cfg.NativeTUI()
	opts.Seed = cfg.Seed
	opts.Layout = layout.DefaultConfig()
	opts.Layout.MinWidth = cfg.Layout.MinWidth
	opts.Layout.MinHeight = cfg.Layout.MinHeight
	opts.Layout.MainRatio = cfg.Layout.MainRatio
	opts.Chart.AutoCeiling = cfg.Chart.AutoCeiling
	return opts
}
