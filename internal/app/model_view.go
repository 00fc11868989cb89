package app

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/watiko/zsh-history-utils/internal/zsh"
)

// View renders the UI (required by Bubble Tea).
func (m Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var s strings.Builder

	switch m.currentScreen {
	case EntryDetailScreen:
		s.WriteString(m.GetHeaderStyle().Render(m.currentScreen.String()) + "\n")
		s.WriteString(m.GetBorderStyle().Render(strings.Repeat("─", m.width)) + "\n")
		s.WriteString(m.viewport.View())
		s.WriteString("\n" + m.GetHelpStyle().Render("Esc back · d delete · ↑↓ scroll"))

	case ConfirmDeleteScreen:
		entry, _ := m.selectedEntry()
		s.WriteString(m.GetHeaderStyle().Render(m.currentScreen.String()) + "\n")
		s.WriteString(m.GetBorderStyle().Render(strings.Repeat("─", m.width)) + "\n")
		s.WriteString(entry.Command + "\n\n")
		s.WriteString(m.GetWarningStyle().Render(fmt.Sprintf("Remove this entry from %s?", m.store.Path())))
		s.WriteString("\n" + m.GetHelpStyle().Render("y delete · n cancel"))

	default:
		s.WriteString(m.list.View())
		s.WriteString("\n" + m.statusLine())
	}

	return s.String()
}

func (m Model) statusLine() string {
	switch {
	case m.err != nil:
		return m.GetErrorStyle().Render(fmt.Sprintf("Error: %v", m.err))
	case m.status != "":
		return m.GetSuccessStyle().Render(m.status)
	default:
		return m.GetHelpStyle().Render("enter details · d delete · / filter · q quit")
	}
}

func (m Model) renderEntryDetail(entry zsh.Entry) string {
	var s strings.Builder

	started := time.Unix(int64(entry.StartTime), 0).In(m.location)
	finished := time.Unix(int64(entry.FinishTime), 0).In(m.location)
	fmt.Fprintf(&s, "Started:  %s (%d)\n", started.Format(timeLayout), entry.StartTime)
	fmt.Fprintf(&s, "Finished: %s (%d)\n", finished.Format(timeLayout), entry.FinishTime)
	fmt.Fprintf(&s, "Duration: %s\n", formatDuration(entry.Duration()))
	fmt.Fprintf(&s, "Lines:    %d\n\n", strings.Count(entry.Command, "\n")+1)

	s.WriteString(entry.Command)
	s.WriteString("\n\nOn disk:\n")
	if b, err := entry.Bytes(); err != nil {
		s.WriteString(err.Error())
	} else {
		s.WriteString(strconv.Quote(string(b)))
	}
	return s.String()
}
