package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/betbot/heliterm/internal/metrics"
)

var modelLog = logrus.WithField("module", "dashboard.model")

type tickMsg time.Time

// refreshMsg 外部请求的刷新（例如 SIGUSR1），投递到事件循环里执行
type refreshMsg struct{}

type model struct {
	engine    *Engine
	grid      *Grid
	keys      KeyMap
	tickEvery time.Duration
	quitting  bool
}

func newModel(engine *Engine, keys KeyMap, tickEvery time.Duration) *model {
	return &model{
		engine:    engine,
		grid:      NewGrid(0, 0),
		keys:      keys,
		tickEvery: tickEvery,
	}
}

func (m *model) tick() tea.Cmd {
	return tea.Tick(m.tickEvery, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *model) Init() tea.Cmd {
	return m.tick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.keys.Resolve(msg) {
		case ActionQuit:
			modelLog.Info("收到退出按键")
			m.quitting = true
			return m, tea.Quit
		case ActionRefresh:
			m.engine.Refresh()
			m.engine.RenderFrame(m.grid)
		}
	case tea.WindowSizeMsg:
		metrics.Resizes.Add(1)
		m.grid.Resize(msg.Width, msg.Height)
		m.engine.RenderFrame(m.grid)
	case refreshMsg:
		m.engine.Refresh()
		m.engine.RenderFrame(m.grid)
	case tickMsg:
		m.engine.Tick()
		m.engine.RenderFrame(m.grid)
		return m, m.tick()
	}
	return m, nil
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}
	return m.grid.View()
}
