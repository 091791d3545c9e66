package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
)

// Action 键盘输入对应的动作
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionRefresh
)

func (a Action) String() string {
	switch a {
	case ActionQuit:
		return "quit"
	case ActionRefresh:
		return "refresh"
	}
	return "none"
}

// KeyMap 两种前端共用的按键绑定
type KeyMap struct {
	Quit    key.Binding
	Refresh key.Binding
}

// DefaultKeyMap q / ctrl+c 退出，r / 空格 立即刷新
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r", " "),
			key.WithHelp("r/space", "refresh"),
		),
	}
}

// ShortHelp 实现 help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.Refresh}
}

// FullHelp 实现 help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Resolve 把按键名（Bubble Tea 的 KeyMsg 或 tcell 转换后的 keyName）映射成动作。
// 其它按键一律忽略。
func (k KeyMap) Resolve(msg fmt.Stringer) Action {
	switch {
	case key.Matches(msg, k.Quit):
		return ActionQuit
	case key.Matches(msg, k.Refresh):
		return ActionRefresh
	}
	return ActionNone
}

// HelpLine footer 上的按键说明（纯文本，样式由 footer 统一处理）
func (k KeyMap) HelpLine() string {
	h := help.New()
	h.ShortSeparator = " | "
	return ansi.Strip(h.ShortHelpView(k.ShortHelp()))
}
