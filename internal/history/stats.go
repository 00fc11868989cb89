package history

import (
	"sort"
	"strings"
	"time"

	"github.com/watiko/zsh-history-utils/internal/zsh"
)

// CommandCount is how often a program appears as the first word of a command.
type CommandCount struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// Stats summarises a set of entries.
type Stats struct {
	Entries        int            `yaml:"entries"`
	UniqueCommands int            `yaml:"unique_commands"`
	MultiLine      int            `yaml:"multi_line"`
	First          time.Time      `yaml:"first,omitempty"`
	Last           time.Time      `yaml:"last,omitempty"`
	TotalSeconds   uint64         `yaml:"total_seconds"`
	Longest        zsh.Entry      `yaml:"longest_running"`
	Top            []CommandCount `yaml:"top"`
}

// Summarize computes Stats for entries, keeping the top most used programs.
func Summarize(entries []zsh.Entry, top int) Stats {
	var stats Stats
	stats.Entries = len(entries)

	unique := map[string]struct{}{}
	programs := map[string]int{}
	var first, last uint64
	for i, entry := range entries {
		if i == 0 || entry.StartTime < first {
			first = entry.StartTime
		}
		if i == 0 || entry.StartTime > last {
			last = entry.StartTime
		}
		if entry.Duration() > stats.Longest.Duration() || i == 0 {
			stats.Longest = entry
		}
		stats.TotalSeconds += entry.Duration()

		unique[entry.Command] = struct{}{}
		if strings.Contains(entry.Command, "\n") {
			stats.MultiLine++
		}
		if name := Program(entry.Command); name != "" {
			programs[name]++
		}
	}
	stats.UniqueCommands = len(unique)
	if len(entries) > 0 {
		stats.First = time.Unix(int64(first), 0).UTC()
		stats.Last = time.Unix(int64(last), 0).UTC()
	}

	for name, count := range programs {
		stats.Top = append(stats.Top, CommandCount{Name: name, Count: count})
	}
	sort.Slice(stats.Top, func(i, j int) bool {
		if stats.Top[i].Count != stats.Top[j].Count {
			return stats.Top[i].Count > stats.Top[j].Count
		}
		return stats.Top[i].Name < stats.Top[j].Name
	})
	if top >= 0 && len(stats.Top) > top {
		stats.Top = stats.Top[:top]
	}
	return stats
}

// Program returns the first word of command, skipping leading environment
// assignments such as FOO=bar.
func Program(command string) string {
	for _, field := range strings.Fields(command) {
		if strings.Contains(field, "=") && !strings.HasPrefix(field, "=") {
			continue
		}
		return field
	}
	return ""
}
