package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/tilekit/tilekit/internal/server"
	"github.com/tilekit/tilekit/pkg/config"
	"github.com/tilekit/tilekit/pkg/engine"
	"github.com/tilekit/tilekit/pkg/layout"
)

// newServeCmd creates the serve command running the HTTP control API.
func newServeCmd() *cobra.Command {
	var (
		addr    string
		cfgPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP control API",
		Long: `Serve runs the engine behind a local HTTP control API. The configuration
file is watched; edits are applied through the engine's debounced settings
retile.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			path := cfgPath
			if path == "" {
				var err error
				if path, err = configPath(); err != nil {
					return fmt.Errorf("resolving config path: %w", err)
				}
			}
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}

			registry := layout.NewRegistry(logger, layout.Builtins()...)
			eng := engine.New(registry, nil, cfg, logger)
			srv := server.New(eng, registry, logger)

			return runServer(cmd.Context(), logger, eng, srv.Handler(), addr, path)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:7420", "listen address")
	cmd.Flags().StringVar(&cfgPath, "config", "", "config file path (default: XDG config dir)")
	return cmd
}

// runServer serves the API until ctx is canceled, reloading the config file
// on change.
func runServer(ctx context.Context, logger *log.Logger, eng *engine.Engine, handler http.Handler, addr, cfgPath string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	watchDone := make(chan struct{})
	go func() {
		defer close(watchDone)
		if err := watchConfig(ctx, logger, eng, cfgPath); err != nil {
			logger.Warn("config watching disabled", "err", err)
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("control API listening", "addr", addr, "config", cfgPath)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-watchDone
		return ctx.Err()
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// watchConfig feeds config file edits into the engine. The parent directory
// is watched rather than the file itself because editors typically replace
// the file on save.
func watchConfig(ctx context.Context, logger *log.Logger, eng *engine.Engine, cfgPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(cfgPath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	logger.Debug("watching config", "path", cfgPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(cfgPath) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			cfg, err := config.Load(cfgPath)
			if err != nil {
				logger.Warn("ignoring unreadable config", "path", cfgPath, "err", err)
				continue
			}
			logger.Info("config changed, applying", "path", cfgPath)
			eng.ApplyConfig(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", "err", err)
		}
	}
}
