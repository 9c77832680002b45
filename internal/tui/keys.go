package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Next       key.Binding
	Prev       key.Binding
	Open       key.Binding
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Like       key.Binding
	Search     key.Binding
	Category   key.Binding
	Source     key.Binding
	Clear      key.Binding
	Layout     key.Binding
	ZoomIn     key.Binding
	ZoomOut    key.Binding
	ZoomReset  key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Reload     key.Binding
	Info       key.Binding
	Back       key.Binding
	Save       key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	Confirm    key.Binding
	Cancel     key.Binding
	CopyItem   key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
}

var keys = keyMap{
	Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	Next:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next note")),
	Prev:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous note")),
	Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	New:        key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new")),
	Edit:       key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
	Delete:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Like:       key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "like")),
	Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	Category:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "category")),
	Source:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "source")),
	Clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
	Layout:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "grid/canvas")),
	ZoomIn:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "zoom in")),
	ZoomOut:    key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "zoom out")),
	ZoomReset:  key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset view")),
	Up:         key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	Down:       key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	Left:       key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
	Right:      key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
	Reload:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	Info:       key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "version")),
	Back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	Save:       key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
	FocusNext:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	FocusPrev:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	Confirm:    key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "yes")),
	Cancel:     key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n", "no")),
	CopyItem:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "copy item")),
	ScrollUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
	ScrollDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
}
