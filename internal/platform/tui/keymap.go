package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// KeyMap holds the key bindings for every game action.
// It is built from the keys section of the configuration.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Rotate     key.Binding
	SoftDrop   key.Binding
	HardDrop   key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Quit       key.Binding
	Screenshot key.Binding
}

// NewKeyMap builds bindings from configured key names.
func NewKeyMap(keys config.KeysConfig) KeyMap {
	return KeyMap{
		Left:       binding(keys.Left, "move left"),
		Right:      binding(keys.Right, "move right"),
		Rotate:     binding(keys.Rotate, "rotate"),
		SoftDrop:   binding(keys.SoftDrop, "soft drop"),
		HardDrop:   binding(keys.HardDrop, "hard drop"),
		Pause:      binding(keys.Pause, "pause"),
		Restart:    binding(keys.Restart, "restart"),
		Quit:       binding(keys.Quit, "quit"),
		Screenshot: binding([]string{"ctrl+s"}, "screenshot"),
	}
}

// DefaultKeyMap returns the bindings of the default configuration.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultTetrisConfig().Keys)
}

func binding(keys []string, desc string) key.Binding {
	labels := make([]string, 0, len(keys))
	for _, k := range keys {
		labels = append(labels, keyLabel(k))
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(labels, "/"), desc),
	)
}

// keyLabel turns a key string into something readable in the help bar.
func keyLabel(k string) string {
	switch k {
	case " ":
		return "space"
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	default:
		return k
	}
}

// Action maps a key message to a game action. Keys bound to nothing, and
// the screenshot key, yield ActionNone.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	case key.Matches(msg, k.SoftDrop):
		return core.ActionSoftDrop
	case key.Matches(msg, k.HardDrop):
		return core.ActionHardDrop
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Rotate, k.SoftDrop, k.HardDrop, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Rotate},
		{k.SoftDrop, k.HardDrop},
		{k.Pause, k.Restart, k.Quit, k.Screenshot},
	}
}
