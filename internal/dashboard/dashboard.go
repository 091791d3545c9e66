package dashboard

import (
	"context"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/betbot/heliterm/internal/marketstate"
	"github.com/betbot/heliterm/internal/metrics"
	"github.com/betbot/heliterm/pkg/logger"
	"github.com/betbot/heliterm/pkg/sigchan"
)

var log = logrus.WithField("module", "dashboard")

// ErrNotTerminal stdout 不是终端时无法启动全屏界面
var ErrNotTerminal = errors.New("stdout is not a terminal")

// Dashboard 全屏终端仪表板。
// 渲染方式由 Options.UseNativeTUI 决定：tcell 直接画屏，或 Bubble Tea + lipgloss。
type Dashboard struct {
	opts    Options
	keys    KeyMap
	engine  *Engine
	refresh *sigchan.Chan
}

// New 创建 Dashboard
func New(store *marketstate.Store, opts Options) *Dashboard {
	opts = opts.withDefaults()
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	keys := DefaultKeyMap()
	composer := Composer{
		Title:     opts.Title,
		Help:      keys.HelpLine(),
		Layout:    opts.Layout,
		Chart:     opts.Chart,
		OrderBook: opts.OrderBook,
	}
	return &Dashboard{
		opts:    opts,
		keys:    keys,
		engine:  NewEngine(store, composer, rand.New(rand.NewSource(seed))),
		refresh: sigchan.New(1),
	}
}

// RequestRefresh 请求一次立即刷新（可以在任意 goroutine 调用）。
// 刷新本身在事件循环里执行，多次请求会合并。
func (d *Dashboard) RequestRefresh() {
	d.refresh.Emit()
}

// Run 阻塞运行直到用户退出或 ctx 取消。
// 运行期间日志只写文件，避免打乱界面；返回的错误表示渲染失败。
func (d *Dashboard) Run(ctx context.Context) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ErrNotTerminal
	}

	logger.SetConsole(false)
	defer logger.SetConsole(true)

	log.WithFields(logrus.Fields{
		"native": d.opts.UseNativeTUI,
		"title":  d.opts.Title,
	}).Info("Dashboard 启动")

	var err error
	if d.opts.UseNativeTUI {
		err = d.runNative(ctx)
	} else {
		err = d.runBubbleTea(ctx)
	}
	log.WithFields(logrus.Fields{"metrics": metrics.Summary()}).Info("Dashboard 已退出")
	return err
}

func (d *Dashboard) runNative(ctx context.Context) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "创建 tcell screen 失败")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "初始化 tcell screen 失败")
	}
	defer screen.Fini()

	tui := newNativeTUI(screen, d.engine, d.keys, d.refresh, marketstate.TickInterval)
	return errors.Wrap(tui.Run(ctx), "原生TUI运行错误")
}

func (d *Dashboard) runBubbleTea(ctx context.Context) error {
	m := newModel(d.engine, d.keys, marketstate.TickInterval)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	fwdCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go d.forwardRefresh(fwdCtx, p)

	if _, err := p.Run(); err != nil {
		// ctx 取消（收到信号）属于正常退出
		if ctx.Err() != nil {
			return nil
		}
		return errors.Wrap(err, "Dashboard UI 运行错误")
	}
	return nil
}

// forwardRefresh 把外部刷新请求转成 Bubble Tea 消息投递到事件循环
func (d *Dashboard) forwardRefresh(ctx context.Context, p *tea.Program) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-d.refresh.C():
			p.Send(refreshMsg{})
		}
	}
}
