package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/bastiangx/wordindex/internal/cli"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func (a *app) newQueryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query [file]",
		Short: "Build the index and answer queries read from stdin",
		Long: `Build the index from file and answer whitespace separated queries read
from stdin until the sentinel word (default "0") or end of input.
Without a file argument the first word read from stdin is the file name.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runQuery,
	}
}

func (a *app) runQuery(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	interactive := isTerminal(in)

	words := cli.NewWordReader(in)

	var path string
	if len(args) == 1 {
		path = args[0]
	} else {
		if interactive {
			fmt.Fprint(cmd.ErrOrStderr(), "file: ")
		}
		word, err := words.Next()
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		// an empty name fails to open like any other missing file
		path = word
	}

	idx, err := a.buildIndex(path)
	if err != nil {
		reportFileError(out, err)
		return err
	}

	handler := cli.NewQueryHandler(idx, words, out, a.cfg.Query.Sentinel)
	if interactive {
		handler.SetPrompt(cmd.ErrOrStderr())
	}
	if err := handler.Start(); err != nil {
		return fmt.Errorf("query loop failed: %w", err)
	}
	log.Debugf("Answered %d queries", handler.Queries())
	return nil
}
