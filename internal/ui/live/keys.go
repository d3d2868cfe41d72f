package live

import (
	"github.com/charmbracelet/bubbles/key"

	"carnival/internal/session"
	"carnival/internal/shell"
)

// keyMap lists every binding of the carnival UI.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
	Choose  key.Binding
	Pass    key.Binding
	Reveal  key.Binding
	Next    key.Binding
	Close   key.Binding
	Back    key.Binding
	Reset   key.Binding
	Help    key.Binding
	Quit    key.Binding
	context keyContext
}

// keyContext selects which bindings the help line shows.
type keyContext int

const (
	contextLanding keyContext = iota
	contextSubjects
	contextBoard
	contextActive
	contextRevealed
)

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Enter:  key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "select")),
		Choose: key.NewBinding(key.WithKeys("a", "b", "c", "d", "e", "f"), key.WithHelp("a-f", "choose option")),
		Pass:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pass")),
		Reveal: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reveal")),
		Next:   key.NewBinding(key.WithKeys("n", "enter"), key.WithHelp("n", "next question")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close question")),
		Back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		Reset:  key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "new game")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// contextFor derives the key context from the shell.
func contextFor(sh *shell.Shell) keyContext {
	switch sh.Screen {
	case shell.ScreenSubjects:
		return contextSubjects
	case shell.ScreenQuiz:
		if sh.Session == nil {
			return contextBoard
		}
		switch sh.Session.State() {
		case session.StateActive:
			return contextActive
		case session.StateRevealed:
			return contextRevealed
		}
		return contextBoard
	default:
		return contextLanding
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	switch k.context {
	case contextSubjects:
		return []key.Binding{k.Enter, k.Back, k.Reset, k.Quit}
	case contextBoard:
		return []key.Binding{k.Enter, k.Back, k.Quit}
	case contextActive:
		return []key.Binding{k.Choose, k.Pass, k.Reveal, k.Close, k.Quit}
	case contextRevealed:
		return []key.Binding{k.Next, k.Close, k.Quit}
	default:
		return []key.Binding{k.Enter, k.Quit}
	}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		k.ShortHelp(),
		{k.Reset, k.Help},
	}
}
