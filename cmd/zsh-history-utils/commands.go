package main

import (
	"bufio"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/watiko/zsh-history-utils/internal/config"
	"github.com/watiko/zsh-history-utils/internal/logger"
	"github.com/watiko/zsh-history-utils/internal/storage"
)

// cli holds state shared by every subcommand of one invocation.
type cli struct {
	configPath string
	logLevel   string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	c := &cli{cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "zsh-history-utils",
		Short: "manipulate the history file of zsh",
		Long: `zsh-history-utils reads and writes the extended history file of zsh
(setopt EXTENDED_HISTORY), converting it to JSON Lines and back and merging
several history files into one.`,
		Version:           getDetailedVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.loadConfig,
	}
	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "path to config.yaml (default $XDG_CONFIG_HOME/zsh-history-utils/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		c.newDecodeCmd(),
		c.newEncodeCmd(),
		c.newMergeCmd(),
		c.newStatsCmd(),
		c.newExportCmd(),
		c.newSearchCmd(),
		c.newBrowseCmd(),
	)
	return rootCmd
}

func (c *cli) loadConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level := cfg.LogLevel
	if c.logLevel != "" {
		level = c.logLevel
	}
	if err := logger.SetLevel(level); err != nil {
		return err
	}
	logger.Debug("running %s with args %q", cmd.CommandPath(), args)
	return nil
}

// historyPaths returns args, or the configured history file when args is
// empty.
func (c *cli) historyPaths(args []string) []string {
	if len(args) > 0 {
		return args
	}
	return []string{c.cfg.HistoryFile}
}

// openInput opens path, reading the command's stdin for "-".
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == storage.StdinPath {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	return storage.Open(path)
}

func opener(cmd *cobra.Command) func(string) (io.ReadCloser, error) {
	return func(path string) (io.ReadCloser, error) {
		return openInput(cmd, path)
	}
}

// historyOutput buffers the command's stdout. Metafied history bytes are not
// meant for a terminal, so writing them to one is logged.
func historyOutput(cmd *cobra.Command) *bufio.Writer {
	out := cmd.OutOrStdout()
	if isTerminal(out) {
		logger.Warn("writing raw history bytes to a terminal")
	}
	return bufio.NewWriter(out)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
