package ui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// SimpleItem implements list.Item for simple string lists
type SimpleItem struct {
	title  string
	desc   string
	filter string
}

func (i SimpleItem) Title() string       { return i.title }
func (i SimpleItem) Description() string { return i.desc }

// FilterValue matches against the full text when one was given, and the
// title otherwise.
func (i SimpleItem) FilterValue() string {
	if i.filter != "" {
		return i.filter
	}
	return i.title
}

// NewSimpleItem creates a new simple list item
func NewSimpleItem(title, desc string) SimpleItem {
	return SimpleItem{title: title, desc: desc}
}

// NewFilterableItem creates an item whose filter text differs from its title.
func NewFilterableItem(title, desc, filter string) SimpleItem {
	return SimpleItem{title: title, desc: desc, filter: filter}
}

// NewList creates a new list with the given items and title
func NewList(items []list.Item, title string, width, height int) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	return l
}

// StringsToItems converts a slice of strings to list items
func StringsToItems(strings []string) []list.Item {
	items := make([]list.Item, len(strings))
	for i, s := range strings {
		items[i] = NewSimpleItem(s, "")
	}
	return items
}

// UpdateList is a helper to update a list model
func UpdateList(l list.Model, msg tea.Msg) (list.Model, tea.Cmd) {
	newList, cmd := l.Update(msg)
	return newList, cmd
}
