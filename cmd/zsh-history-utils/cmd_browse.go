package main

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/watiko/zsh-history-utils/internal/app"
	"github.com/watiko/zsh-history-utils/internal/history"
	"github.com/watiko/zsh-history-utils/internal/storage"
)

func (c *cli) newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse [path]",
		Short: "Browse and prune a history file interactively",
		Long: `Open an interactive list of history entries, newest first. Enter shows
an entry with its exact on-disk form; d deletes it from the file after
confirmation, keeping a .bak copy of the previous version.`,
		Args: cobra.MaximumNArgs(1),
		RunE: c.runBrowse,
	}
}

func (c *cli) runBrowse(cmd *cobra.Command, args []string) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return errors.New("browse needs an interactive terminal")
	}

	path := c.historyPaths(args)[0]
	if path == storage.StdinPath {
		return errors.New("browse cannot read from stdin")
	}

	store, err := history.NewStore(path, true)
	if err != nil {
		return err
	}

	theme, err := app.ParseTheme(c.cfg.Browse.Theme)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		app.NewModel(store, app.Options{Theme: theme, MaxEntries: c.cfg.Browse.MaxEntries}),
		tea.WithAltScreen(),
	)
	_, err = p.Run()
	return err
}
