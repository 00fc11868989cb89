package app

import "github.com/watiko/zsh-history-utils/internal/ui"

// Screen represents different screens in the browser
type Screen int

const (
	// HistoryListScreen lists entries, newest first
	HistoryListScreen Screen = iota
	// EntryDetailScreen shows one entry and its on-disk form
	EntryDetailScreen
	// ConfirmDeleteScreen asks before removing an entry from the file
	ConfirmDeleteScreen
)

// String returns the display name of the screen
func (s Screen) String() string {
	switch s {
	case HistoryListScreen:
		return "History"
	case EntryDetailScreen:
		return "Entry"
	case ConfirmDeleteScreen:
		return "Delete Entry"
	default:
		return "Unknown"
	}
}

func (m Model) navigateToList() Model {
	m.currentScreen = HistoryListScreen
	return m
}

func (m Model) navigateToDetail() Model {
	entry, ok := m.selectedEntry()
	if !ok {
		return m
	}
	ui.SetViewportContent(&m.viewport, m.renderEntryDetail(entry))
	m.previousScreen = m.currentScreen
	m.currentScreen = EntryDetailScreen
	return m
}

func (m Model) navigateToConfirmDelete() Model {
	if _, ok := m.selectedEntry(); !ok {
		return m
	}
	m.previousScreen = m.currentScreen
	m.currentScreen = ConfirmDeleteScreen
	return m
}

func (m Model) navigateBack() Model {
	if m.currentScreen == ConfirmDeleteScreen && m.previousScreen == EntryDetailScreen {
		m.currentScreen = EntryDetailScreen
		return m
	}
	return m.navigateToList()
}
