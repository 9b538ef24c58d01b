package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Replay     key.Binding
	NextQuote  key.Binding
	PrevQuote  key.Binding
	PickQuote  key.Binding
	NextSkills key.Binding
	PrevSkills key.Binding
	Copy       key.Binding
	Scroll     key.Binding
	Help       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
		Replay:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "replay terminal")),
		NextQuote:  key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]", "next quote")),
		PrevQuote:  key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[", "prev quote")),
		PickQuote:  key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "pick quote")),
		NextSkills: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab", "next skills")),
		PrevSkills: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("shift+tab", "prev skills")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy email")),
		Scroll:     key.NewBinding(key.WithKeys("up", "down", "pgup", "pgdown", "j", "k"), key.WithHelp("↑/↓", "scroll details")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Scroll, k.NextSkills, k.NextQuote, k.Replay, k.Copy, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Scroll, k.NextSkills, k.PrevSkills},
		{k.NextQuote, k.PrevQuote, k.PickQuote},
		{k.Replay, k.Copy, k.Help, k.Quit},
	}
}
