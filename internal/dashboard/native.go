package dashboard

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/betbot/heliterm/internal/metrics"
	"github.com/betbot/heliterm/pkg/sigchan"
)

var nativeLog = logrus.WithField("module", "dashboard.native")

// keyName 把 tcell 按键转换成与 Bubble Tea KeyMsg.String() 相同的名字，
// 这样两种前端共用一份 KeyMap。
type keyName string

func (k keyName) String() string { return string(k) }

func nameOf(ev *tcell.EventKey) keyName {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 && (ev.Rune() == 'c' || ev.Rune() == 'C') {
			return "ctrl+c"
		}
		return keyName(string(ev.Rune()))
	case tcell.KeyCtrlC:
		return "ctrl+c"
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	}
	return keyName(ev.Name())
}

// NativeTUI 原生TUI实现（使用 tcell）。
// 所有事件（按键、尺寸变化、定时刷新、外部刷新）都在 Run 的一个 goroutine 里串行处理。
type NativeTUI struct {
	screen    tcell.Screen
	engine    *Engine
	keys      KeyMap
	refresh   *sigchan.Chan
	tickEvery time.Duration
}

func newNativeTUI(screen tcell.Screen, engine *Engine, keys KeyMap, refresh *sigchan.Chan, tickEvery time.Duration) *NativeTUI {
	return &NativeTUI{
		screen:    screen,
		engine:    engine,
		keys:      keys,
		refresh:   refresh,
		tickEvery: tickEvery,
	}
}

// Run 事件循环，直到按下退出键或 ctx 取消。调用方负责 screen 的 Init/Fini。
func (t *NativeTUI) Run(ctx context.Context) error {
	ticker := time.NewTicker(t.tickEvery)
	defer ticker.Stop()

	eventCh := make(chan tcell.Event, 32)
	stopCh := make(chan struct{})
	defer close(stopCh)
	go t.screen.ChannelEvents(eventCh, stopCh)

	t.engine.RenderFrame(t.screen)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-eventCh:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch t.keys.Resolve(nameOf(ev)) {
				case ActionQuit:
					nativeLog.Info("收到退出按键")
					return nil
				case ActionRefresh:
					t.engine.Refresh()
					t.engine.RenderFrame(t.screen)
				}
			case *tcell.EventResize:
				metrics.Resizes.Add(1)
				t.screen.Sync()
				t.engine.RenderFrame(t.screen)
			}
		case <-t.refresh.C():
			t.engine.Refresh()
			t.engine.RenderFrame(t.screen)
		case <-ticker.C:
			t.engine.Tick()
			t.engine.RenderFrame(t.screen)
		}
	}
}
