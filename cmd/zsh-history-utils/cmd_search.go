package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watiko/zsh-history-utils/internal/archive"
	"github.com/watiko/zsh-history-utils/internal/history"
	"github.com/watiko/zsh-history-utils/internal/logger"
)

func (c *cli) newSearchCmd() *cobra.Command {
	var (
		dbPath string
		limit  int
	)
	cmd := &cobra.Command{
		Use:   "search --db <file> <text>",
		Short: "Find exported entries whose command contains text",
		Long: `Search a database written by export for commands containing text and
print the matches as JSON Lines, oldest first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, dbPath, args[0], limit)
		},
	}
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database file")
	cmd.Flags().IntVarP(&limit, "limit", "n", 100, "maximum number of matches")
	_ = cmd.MarkFlagRequired("db")
	return cmd
}

func runSearch(cmd *cobra.Command, dbPath, text string, limit int) error {
	if limit <= 0 {
		return fmt.Errorf("--limit must be positive, got %d", limit)
	}

	repo, err := archive.Open(dbPath)
	if err != nil {
		return fmt.Errorf("%s: %w", dbPath, err)
	}
	defer repo.Close()

	records, err := repo.Search(text, limit)
	if err != nil {
		return err
	}
	total, err := repo.Count()
	if err != nil {
		return err
	}
	logger.Info("search %q matched %d of %d entries in %s", text, len(records), total, dbPath)

	out := bufio.NewWriter(cmd.OutOrStdout())
	w := history.NewJSONWriter(out)
	for _, rec := range records {
		if err := w.Write(rec.Entry); err != nil {
			return err
		}
	}
	return out.Flush()
}
