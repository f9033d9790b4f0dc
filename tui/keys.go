package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the terminal key bindings.
type KeyMap struct {
	Toggle    key.Binding
	Restart   key.Binding
	Reset     key.Binding
	Commit    key.Binding
	MinuteUp  key.Binding
	MinuteDn  key.Binding
	SecondsUp key.Binding
	SecondsDn key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "resume/pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x", "backspace"),
			key.WithHelp("x", "reset"),
		),
		Commit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		MinuteUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑", "+1 min"),
		),
		MinuteDn: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓", "-1 min"),
		),
		SecondsUp: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "+5 s"),
		),
		SecondsDn: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "-5 s"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// setPaused enables the bindings that only apply to a paused dial.
func (k *KeyMap) setPaused(paused bool) {
	k.Restart.SetEnabled(paused)
	k.Reset.SetEnabled(paused)
	k.Commit.SetEnabled(paused)
	k.MinuteUp.SetEnabled(paused)
	k.MinuteDn.SetEnabled(paused)
	k.SecondsUp.SetEnabled(paused)
	k.SecondsDn.SetEnabled(paused)
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Restart, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Commit, k.Restart, k.Reset},
		{k.MinuteUp, k.MinuteDn, k.SecondsUp, k.SecondsDn},
		{k.Help, k.Quit},
	}
}
