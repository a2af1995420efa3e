// Copyright 2025 The WordIndex Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordindex command.

WordIndex reads a text file, indexes every bracket delimited token in it and
answers prefix queries against the index. A token is the text between the
first '[' of a line and the first ']' after it:

	a[cat]bc     -> "cat" at offset 0, line length 8
	x[car]y      -> "car" at offset 9, line length 7

# Usage

Build the index and answer queries read from stdin until "0" or end of input:

	wordindex words.txt
	ca cat dog 0

prints

	ca is prefix of 2 words
	cat is prefix of 1 words
	cat is at (0,8)
	dog is not prefix

Without a file argument the first word read from stdin is the file name.
If the file cannot be opened "erro" is printed and the exit status is 1.

Serve queries as MessagePack over stdin/stdout, for editors and other tools:

	wordindex serve words.txt

List indexed entries under a prefix with their positions:

	wordindex list words.txt ca

# Configuration

Settings are read from $XDG_CONFIG_HOME/wordindex/config.toml, created with
defaults when missing, or from the file given with --config. The serve command
reloads the request limits periodically without restart.

# Flags

	--config string   config file path
	-d, --debug       debug logging
	--backend string  index backend (arena|patricia)
	--color string    colorize list output (auto|on|off)
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bastiangx/wordindex/internal/logger"
	"github.com/bastiangx/wordindex/pkg/config"
	"github.com/bastiangx/wordindex/pkg/dictionary"
	"github.com/bastiangx/wordindex/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const (
	Version = "0.3.0"
	AppName = "wordindex"
	gh      = "https://github.com/bastiangx/wordindex"
)

// app carries the state shared by all subcommands after flag parsing.
type app struct {
	configFlag string
	debug      bool
	backend    string
	color      string

	cfg        *config.Config
	configPath string
}

// main executes the root command; errors are logged once here.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   AppName + " [file]",
		Short: "Index bracketed tokens of a file and answer prefix queries",
		Long: `WordIndex indexes the [bracketed] token of every line in a file and
answers how many tokens share a prefix, and where complete tokens are defined.`,
		Version:           Version,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		RunE:              a.runQuery,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFlag, "config", "", "config file path")
	flags.BoolVarP(&a.debug, "debug", "d", false, "toggle debug logging")
	flags.StringVar(&a.backend, "backend", "", "index backend (arena|patricia)")
	flags.StringVar(&a.color, "color", "auto", "colorize output (auto|on|off)")

	rootCmd.AddCommand(a.newQueryCmd())
	rootCmd.AddCommand(a.newServeCmd())
	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// setup loads the config and applies flag overrides before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	// a warning during config loading should not be hidden by the default level
	logger.Setup("warn", a.debug)

	cfg, path, err := config.LoadConfigWithPriority(a.configFlag)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	a.cfg = cfg
	a.configPath = path

	level := logger.Setup(cfg.Log.Level, a.debug)
	log.Debug("Config loaded", "path", config.GetActiveConfigPath(path), "level", level)

	if cmd.Flags().Changed("backend") {
		a.cfg.Index.Backend = a.backend
	}
	if _, err := suggest.NewIndex(a.cfg.Index.Backend); err != nil {
		return err
	}
	switch strings.ToLower(a.color) {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("invalid --color value %q (want auto|on|off)", a.color)
	}
	return nil
}

// buildIndex creates the configured backend and fills it from path.
func (a *app) buildIndex(path string) (suggest.Index, error) {
	idx, err := suggest.NewIndex(a.cfg.Index.Backend)
	if err != nil {
		return nil, err
	}
	stats, err := dictionary.LoadFile(path, idx)
	if err != nil {
		return nil, err
	}
	log.Debug("Index built",
		"backend", suggest.BackendName(idx),
		"lines", stats.Lines,
		"tokens", stats.Tokens,
		"skipped", stats.Skipped,
		"entries", idx.Len(),
		"took", stats.Elapsed)
	return idx, nil
}

// reportFileError prints the short failure marker expected on stdout when
// the source file cannot be read.
func reportFileError(w io.Writer, err error) {
	var fileErr *dictionary.FileAccessError
	if errors.As(err, &fileErr) {
		fmt.Fprintln(w, "erro")
	}
}

// colorize resolves --color against the output stream.
func (a *app) colorize(w io.Writer) bool {
	switch strings.ToLower(a.color) {
	case "on":
		return true
	case "off":
		return false
	}
	return isTerminal(w)
}

// isTerminal reports whether v is a file attached to a terminal.
func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
