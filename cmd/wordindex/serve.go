package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bastiangx/wordindex/internal/logger"
	"github.com/bastiangx/wordindex/pkg/config"
	"github.com/bastiangx/wordindex/pkg/server"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func (a *app) newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve <file>",
		Short: "Build the index and serve MessagePack queries over stdin/stdout",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runServe,
	}
}

func (a *app) runServe(cmd *cobra.Command, args []string) error {
	idx, err := a.buildIndex(args[0])
	if err != nil {
		reportFileError(cmd.OutOrStdout(), err)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	srv := server.NewServer(idx, a.cfg, cmd.InOrStdin(), cmd.OutOrStdout())
	if isTerminal(os.Stderr) {
		showStartupInfo(args[0], idx.Len())
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// end of input stops the reloader too
		defer cancel()
		return srv.Start(gctx)
	})
	g.Go(func() error {
		a.reloadConfig(gctx, srv)
		return nil
	})
	return g.Wait()
}

// reloadConfig re-reads the config file every reload_interval seconds and
// applies the request limits to srv until ctx is done.
func (a *app) reloadConfig(ctx context.Context, srv *server.Server) {
	if a.configPath == "" || a.cfg.Server.ReloadInterval <= 0 {
		<-ctx.Done()
		return
	}

	ticker := time.NewTicker(time.Duration(a.cfg.Server.ReloadInterval) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cfg, err := config.LoadConfig(a.configPath)
			if err != nil {
				log.Warnf("Config reload failed: %v", err)
				continue
			}
			srv.ApplyConfig(cfg)
			log.Debug("Config reloaded", "max_list", cfg.Server.MaxList, "max_len", cfg.Query.MaxLen)
		}
	}
}

// showStartupInfo displays some basic info about the build on stderr.
func showStartupInfo(path string, entries int) {
	l := logger.New("serve")
	l.SetLevel(log.InfoLevel)

	l.Infof("Version: %s", Version)
	l.Infof("Process ID: [ %d ]", os.Getpid())
	l.Infof("source: ( %s )", path)
	l.Infof("entries: %d", entries)
	l.Info("status: ready")
	l.Print("Press Ctrl+C to exit")
}
