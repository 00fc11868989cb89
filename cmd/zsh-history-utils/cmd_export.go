package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watiko/zsh-history-utils/internal/archive"
	"github.com/watiko/zsh-history-utils/internal/logger"
	"github.com/watiko/zsh-history-utils/internal/zsh"
)

func (c *cli) newExportCmd() *cobra.Command {
	var dbPath string
	cmd := &cobra.Command{
		Use:   "export --db <file> [path]...",
		Short: "Store history entries in an SQLite database",
		Long: `Parse history files and insert their entries into the history table of
an SQLite database, skipping entries that are already there. Without a path the
configured history file is read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(cmd, args, dbPath)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

func (c *cli) runExport(cmd *cobra.Command, args []string, dbPath string) error {
	paths := c.historyPaths(args)

	// Parse everything first so a malformed file leaves the database alone.
	sources := make([][]zsh.Entry, len(paths))
	for i, path := range paths {
		in, err := openInput(cmd, path)
		if err != nil {
			return err
		}
		entries, err := zsh.ReadAll(in)
		in.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		sources[i] = entries
	}

	repo, err := archive.NewRepository(dbPath)
	if err != nil {
		return fmt.Errorf("%s: %w", dbPath, err)
	}
	defer repo.Close()

	for i, path := range paths {
		added, err := repo.Import(path, sources[i])
		if err != nil {
			return err
		}
		logger.Info("exported %d of %d entries from %s", added, len(sources[i]), path)
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d new of %d entries\n", path, added, len(sources[i]))
	}
	return nil
}
