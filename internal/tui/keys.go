package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit       key.Binding
	next       key.Binding
	prev       key.Binding
	tabLogin   key.Binding
	tabSignup  key.Binding
	tabProfile key.Binding
	submit     key.Binding
	edit       key.Binding
	cancel     key.Binding
	logout     key.Binding
	copyEmail  key.Binding
	about      key.Binding
}

var keys = keyMap{
	quit:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	next:       key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
	prev:       key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
	tabLogin:   key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "login")),
	tabSignup:  key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "signup")),
	tabProfile: key.NewBinding(key.WithKeys("ctrl+p"), key.WithHelp("ctrl+p", "profile")),
	submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
	edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	cancel:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	logout:     key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "logout")),
	copyEmail:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy e-mail")),
	about:      key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "about")),
}

func helpLine(bindings ...key.Binding) string {
	line := ""
	for i, b := range bindings {
		if i > 0 {
			line += " │ "
		}
		h := b.Help()
		line += h.Key + ": " + h.Desc
	}
	return line
}
