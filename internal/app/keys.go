package app

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	TabHome      key.Binding
	TabSongs     key.Binding
	TabGiving    key.Binding
	TabProfile   key.Binding
	About        key.Binding
	Quit         key.Binding
	Back         key.Binding
	SignOut      key.Binding
	OpenSongbook key.Binding
	OpenGiving   key.Binding
	OpenBible    key.Binding
	OpenCorps    key.Binding
	OpenProfile  key.Binding
	Search       key.Binding
	ClearSearch  key.Binding
	NextCategory key.Binding
	PrevCategory key.Binding
	Open         key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	Index        key.Binding
}

var keys = keyMap{
	TabHome:      key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "tabs")),
	TabSongs:     key.NewBinding(key.WithKeys("2")),
	TabGiving:    key.NewBinding(key.WithKeys("3")),
	TabProfile:   key.NewBinding(key.WithKeys("4")),
	About:        key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "about")),
	Quit:         key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	SignOut:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sign out")),
	OpenSongbook: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "song book")),
	OpenGiving:   key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "giving")),
	OpenBible:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "bible")),
	OpenCorps:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "corps info")),
	OpenProfile:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "profile")),
	Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	ClearSearch:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear search")),
	NextCategory: key.NewBinding(key.WithKeys("tab", "]"), key.WithHelp("tab", "next category")),
	PrevCategory: key.NewBinding(key.WithKeys("shift+tab", "["), key.WithHelp("shift+tab", "prev category")),
	Open:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	ZoomIn:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "A+")),
	ZoomOut:      key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "A-")),
	Index:        key.NewBinding(key.WithKeys("i", "backspace"), key.WithHelp("i", "index")),
}

// HelpKeys returns the bindings shown in the footer of a screen.
func HelpKeys(screen string) []key.Binding {
	switch screen {
	case "songbook":
		return []key.Binding{keys.Search, keys.NextCategory, keys.Open, keys.ClearSearch, keys.Back, keys.TabHome}
	case "detail":
		return []key.Binding{keys.ZoomIn, keys.ZoomOut, keys.Index, keys.TabHome}
	case "login":
		return nil
	default:
		return []key.Binding{keys.OpenSongbook, keys.OpenGiving, keys.TabHome, keys.SignOut, keys.About, keys.Quit}
	}
}
