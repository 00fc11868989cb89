package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/watiko/zsh-history-utils/internal/history"
	"github.com/watiko/zsh-history-utils/internal/logger"
)

func (c *cli) newDecodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <path>",
		Short: "Convert a history file to JSON Lines",
		Long: `Convert a history file to JSON Lines on stdout, one object with
start_time, finish_time and command per entry. Use - to read stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: runDecode,
	}
}

func runDecode(cmd *cobra.Command, args []string) error {
	path := args[0]
	in, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer in.Close()

	out := bufio.NewWriter(cmd.OutOrStdout())
	n, err := history.Decode(out, in)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := out.Flush(); err != nil {
		return err
	}

	logger.Info("decoded %d entries from %s", n, path)
	return nil
}

func (c *cli) newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <path>",
		Short: "Convert JSON Lines to a history file",
		Long: `Convert JSON Lines, as written by decode, back to the history file
format on stdout. Use - to read stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: runEncode,
	}
}

func runEncode(cmd *cobra.Command, args []string) error {
	path := args[0]
	in, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer in.Close()

	out := historyOutput(cmd)
	n, err := history.Encode(out, bufio.NewReader(in))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := out.Flush(); err != nil {
		return err
	}

	logger.Info("encoded %d entries from %s", n, path)
	return nil
}
