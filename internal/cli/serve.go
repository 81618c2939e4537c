package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/wpgtech/tech-events/internal/api"
	"github.com/wpgtech/tech-events/internal/config"
	"github.com/wpgtech/tech-events/internal/handler"
	"github.com/wpgtech/tech-events/internal/logger"
)

// newServeCmd builds the long-running server command. It exposes the HTTP
// surface and, when a cron schedule is configured, fires invocations on it.
func newServeCmd() *cobra.Command {
	var flagListen, flagSchedule string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API and run scheduled notifications",
		RunE: func(cmd *cobra.Command, args []string) error {
			if flagVerbose {
				logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
			}

			var loader *config.Loader
			var cfg config.Config

			if flagConfig != "" {
				var err error
				loader, err = config.NewLoader(flagConfig)
				if err != nil {
					return fmt.Errorf("loading configuration: %w", err)
				}
				cfg = loader.Config()

				stop, err := loader.Watch()
				if err != nil {
					logger.Warn("Config watcher unavailable, hot reload disabled", logger.Fields{
						"reason": err.Error(),
					})
				} else {
					defer stop()
				}
			} else {
				var err error
				cfg, err = config.Load("")
				if err != nil {
					return fmt.Errorf("loading configuration: %w", err)
				}
			}

			if flagListen != "" {
				cfg.Listen = flagListen
			}
			if flagSchedule != "" {
				cfg.Schedule = flagSchedule
			}

			provider := func() *handler.Handler {
				if loader != nil {
					return handler.New(loader.Config())
				}
				return handler.New(cfg)
			}

			var scheduler *cron.Cron
			if cfg.Schedule != "" {
				scheduler = cron.New()
				_, err := scheduler.AddFunc(cfg.Schedule, func() {
					resp := provider().Handle(context.Background(), handler.Trigger{Source: "cron"})
					logger.Info("Scheduled invocation finished", logger.Fields{
						"status": resp.StatusCode,
					})
				})
				if err != nil {
					return fmt.Errorf("invalid schedule %q: %w", cfg.Schedule, err)
				}
				scheduler.Start()
				defer scheduler.Stop()
				logger.Info("Scheduler started", logger.Fields{"schedule": cfg.Schedule})
			}

			server := &http.Server{
				Addr:    cfg.Listen,
				Handler: api.NewRouter(provider),
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("HTTP server listening", logger.Fields{"addr": cfg.Listen})
				errCh <- server.ListenAndServe()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			select {
			case err := <-errCh:
				return fmt.Errorf("http server: %w", err)
			case sig := <-sigCh:
				logger.Info("Shutting down", logger.Fields{"signal": sig.String()})
				return server.Shutdown(context.Background())
			}
		},
	}

	cmd.Flags().StringVar(&flagListen, "listen", "", "HTTP listen address (overrides config)")
	cmd.Flags().StringVar(&flagSchedule, "schedule", "", "Cron schedule for periodic runs (overrides config)")

	return cmd
}
