package viz

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Toggle key.Binding
	Reset  key.Binding
	Next   key.Binding
	Inc    key.Binding
	Dec    key.Binding
	Edit   key.Binding
	Theme  key.Binding
	Record key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "p"), key.WithHelp("space", "play/pause")),
		Reset:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next control")),
		Inc:    key.NewBinding(key.WithKeys("right", "l", "+", "="), key.WithHelp("→/l", "increase")),
		Dec:    key.NewBinding(key.WithKeys("left", "h", "-", "_"), key.WithHelp("←/h", "decrease")),
		Edit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "type value")),
		Theme:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Record: key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "record gif")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Next, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset, k.Quit},
		{k.Next, k.Inc, k.Dec, k.Edit},
		{k.Theme, k.Record, k.Help},
	}
}
