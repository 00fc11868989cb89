package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/watiko/zsh-history-utils/internal/logger"
	"github.com/watiko/zsh-history-utils/internal/ui"
)

// Init initializes the model (required by Bubble Tea).
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model (required by Bubble Tea).
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// Update list dimensions
		m.list.SetSize(msg.Width, msg.Height-2)

		// Update viewport dimensions
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4

		return m, nil

	case entryDeletedMsg:
		m.deleting = false
		if msg.err != nil {
			logger.Error("delete failed: %v", msg.err)
			m.err = msg.err
			m.status = ""
		} else {
			logger.Info("deleted entry %q from %s", msg.command, m.store.Path())
			m.err = nil
			m.status = fmt.Sprintf("Deleted %q", summaryLine(msg.command))
		}
		m = m.refreshList()
		return m.navigateToList(), nil
	}

	return m.updateComponents(msg)
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.currentScreen {
	case HistoryListScreen:
		// Keys belong to the filter input while it is open.
		if m.list.FilterState() == list.Filtering {
			return m.updateComponents(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			return m.navigateToDetail(), nil
		case "d":
			if m.deleting {
				return m, nil
			}
			return m.navigateToConfirmDelete(), nil
		}

	case EntryDetailScreen:
		switch msg.String() {
		case "q", "esc", "backspace":
			return m.navigateBack(), nil
		case "d":
			if m.deleting {
				return m, nil
			}
			return m.navigateToConfirmDelete(), nil
		}

	case ConfirmDeleteScreen:
		switch msg.String() {
		case "y", "Y":
			return m.deleteSelected()
		case "n", "N", "esc", "q":
			return m.navigateBack(), nil
		}
		return m, nil
	}

	return m.updateComponents(msg)
}

func (m Model) updateComponents(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScreen {
	case HistoryListScreen:
		m.list, cmd = ui.UpdateList(m.list, msg)
	case EntryDetailScreen:
		m.viewport, cmd = ui.UpdateViewport(m.viewport, msg)
	}
	return m, cmd
}

// deleteSelected leaves the confirm screen and removes the selected entry in
// the background. Only one deletion runs at a time.
func (m Model) deleteSelected() (Model, tea.Cmd) {
	entry, ok := m.selectedEntry()
	if !ok || m.deleting {
		return m.navigateToList(), nil
	}

	m.deleting = true
	m.err = nil
	m.status = fmt.Sprintf("Deleting %q", summaryLine(entry.Command))
	store := m.store
	return m.navigateToList(), func() tea.Msg {
		return entryDeletedMsg{command: entry.Command, err: store.Remove(entry)}
	}
}
