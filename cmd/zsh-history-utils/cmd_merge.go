package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watiko/zsh-history-utils/internal/history"
	"github.com/watiko/zsh-history-utils/internal/logger"
	"github.com/watiko/zsh-history-utils/internal/storage"
)

type mergeOptions struct {
	output string
	dedupe bool
}

func (c *cli) newMergeCmd() *cobra.Command {
	opts := &mergeOptions{}
	cmd := &cobra.Command{
		Use:   "merge <path>...",
		Short: "Merge multiple history files into a single history file",
		Long: `Merge history files into one, ordered by start time. Entries that
start in the same second keep the order of the files and lines they came from.
Nothing is written if any input fails to parse.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("dedupe") {
				opts.dedupe = c.cfg.Merge.Dedupe
			}
			return c.runMerge(cmd, args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to this file atomically instead of stdout")
	cmd.Flags().BoolVar(&opts.dedupe, "dedupe", false, "drop entries identical to an earlier one with the same start time")
	return cmd
}

func (c *cli) runMerge(cmd *cobra.Command, paths []string, opts *mergeOptions) error {
	timeline, err := history.Merge(opener(cmd), paths...)
	if err != nil {
		return err
	}
	if opts.dedupe {
		if n := timeline.Dedupe(); n > 0 {
			logger.Info("dropped %d duplicate entries", n)
		}
	}

	if opts.output == "" {
		out := historyOutput(cmd)
		if _, err := timeline.WriteTo(out); err != nil {
			return err
		}
		return out.Flush()
	}

	var buf bytes.Buffer
	if _, err := timeline.WriteTo(&buf); err != nil {
		return err
	}
	if c.cfg.Merge.Backup {
		backupPath, err := storage.Backup(opts.output)
		if err != nil {
			return err
		}
		if backupPath != "" {
			logger.Info("backed up %s to %s", opts.output, backupPath)
		}
	}
	if err := storage.WriteAtomic(opts.output, buf.Bytes()); err != nil {
		return fmt.Errorf("%s: %w", opts.output, err)
	}

	logger.Info("merged %d entries from %d files into %s", timeline.Len(), len(paths), opts.output)
	return nil
}
