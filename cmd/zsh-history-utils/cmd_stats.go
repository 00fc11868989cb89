package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/watiko/zsh-history-utils/internal/history"
)

type statsOptions struct {
	top    int
	asYAML bool
}

func (c *cli) newStatsCmd() *cobra.Command {
	opts := &statsOptions{}
	cmd := &cobra.Command{
		Use:   "stats [path]...",
		Short: "Summarize one or more history files",
		Long: `Print entry counts, the covered time span, the longest running command
and the most used programs. Without a path the configured history file is read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd, args, opts)
		},
	}
	cmd.Flags().IntVar(&opts.top, "top", 10, "number of programs to list")
	cmd.Flags().BoolVar(&opts.asYAML, "yaml", false, "print YAML instead of text")
	return cmd
}

func (c *cli) runStats(cmd *cobra.Command, args []string, opts *statsOptions) error {
	timeline, err := history.Merge(opener(cmd), c.historyPaths(args)...)
	if err != nil {
		return err
	}
	stats := history.Summarize(timeline.Entries(), opts.top)

	out := cmd.OutOrStdout()
	if opts.asYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(stats); err != nil {
			return err
		}
		return enc.Close()
	}
	return writeStats(out, stats)
}

func writeStats(w io.Writer, stats history.Stats) error {
	var s strings.Builder
	fmt.Fprintf(&s, "Entries:         %d\n", stats.Entries)
	fmt.Fprintf(&s, "Unique commands: %d\n", stats.UniqueCommands)
	fmt.Fprintf(&s, "Multi-line:      %d\n", stats.MultiLine)
	if stats.Entries > 0 {
		fmt.Fprintf(&s, "First:           %s\n", stats.First.Format(time.RFC3339))
		fmt.Fprintf(&s, "Last:            %s\n", stats.Last.Format(time.RFC3339))
		fmt.Fprintf(&s, "Total time:      %s\n", time.Duration(stats.TotalSeconds)*time.Second)
		fmt.Fprintf(&s, "Longest:         %s (%q)\n",
			time.Duration(stats.Longest.Duration())*time.Second, stats.Longest.Command)
	}
	if len(stats.Top) > 0 {
		s.WriteString("\nTop programs:\n")
		for _, c := range stats.Top {
			fmt.Fprintf(&s, "  %6d  %s\n", c.Count, c.Name)
		}
	}
	_, err := io.WriteString(w, s.String())
	return err
}
