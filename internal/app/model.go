package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/watiko/zsh-history-utils/internal/history"
	"github.com/watiko/zsh-history-utils/internal/ui"
	"github.com/watiko/zsh-history-utils/internal/zsh"
)

const timeLayout = "2006-01-02 15:04:05 MST"

// Options configures the browser
type Options struct {
	Theme Theme
	// MaxEntries limits the list to the newest entries; 0 shows all.
	MaxEntries int
	// Location is used to display timestamps; nil means time.Local.
	Location *time.Location
}

// Model represents the application state
type Model struct {
	store *history.Store

	currentScreen  Screen
	previousScreen Screen

	maxEntries int
	location   *time.Location
	theme      Theme

	// UI components
	list     list.Model
	viewport viewport.Model

	// Terminal dimensions
	width  int
	height int

	status string
	err    error
	// deleting is set while a confirmed deletion is being saved.
	deleting bool
}

// entryItem is a list row holding the entry it shows.
type entryItem struct {
	ui.SimpleItem
	entry zsh.Entry
}

// NewModel creates a browser over store
func NewModel(store *history.Store, opts Options) Model {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	m := Model{
		store:         store,
		currentScreen: HistoryListScreen,
		maxEntries:    opts.MaxEntries,
		location:      loc,
		theme:         opts.Theme,
		viewport:      ui.NewViewport(0, 0),
	}
	m.list = ui.NewList(m.entryItems(), m.listTitle(), 0, 0)
	return m
}

func (m Model) listTitle() string {
	return fmt.Sprintf("%s (%d entries)", m.store.Path(), len(m.store.List()))
}

func (m Model) entryItems() []list.Item {
	entries := m.store.List()
	if m.maxEntries > 0 && len(entries) > m.maxEntries {
		entries = entries[:m.maxEntries]
	}

	items := make([]list.Item, len(entries))
	for i, entry := range entries {
		items[i] = entryItem{
			SimpleItem: ui.NewFilterableItem(summaryLine(entry.Command), m.describe(entry), entry.Command),
			entry:      entry,
		}
	}
	return items
}

func (m Model) refreshList() Model {
	idx := m.list.Index()
	m.list.SetItems(m.entryItems())
	m.list.Title = m.listTitle()
	if n := len(m.list.Items()); idx >= n && n > 0 {
		idx = n - 1
	}
	m.list.Select(idx)
	return m
}

func (m Model) selectedEntry() (zsh.Entry, bool) {
	item, ok := m.list.SelectedItem().(entryItem)
	if !ok {
		return zsh.Entry{}, false
	}
	return item.entry, true
}

func (m Model) describe(entry zsh.Entry) string {
	started := time.Unix(int64(entry.StartTime), 0).In(m.location).Format(timeLayout)
	desc := fmt.Sprintf("%s · %s", started, formatDuration(entry.Duration()))
	if n := strings.Count(entry.Command, "\n"); n > 0 {
		desc += fmt.Sprintf(" · %d lines", n+1)
	}
	return desc
}

// summaryLine returns the first line of a command, marking elided lines.
func summaryLine(command string) string {
	first, rest, found := strings.Cut(command, "\n")
	if found && rest != "" {
		return first + " …"
	}
	if first == "" {
		return "(empty)"
	}
	return first
}

func formatDuration(seconds uint64) string {
	return (time.Duration(seconds) * time.Second).String()
}
