package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wpgtech/tech-events/internal/config"
	"github.com/wpgtech/tech-events/internal/handler"
	"github.com/wpgtech/tech-events/internal/logger"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagConfig  string
	flagVerbose bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tech-events-bot",
		Short: "Notify a Telegram chat about upcoming Winnipeg tech events",
		Long: `Fetches local tech events, groups them into a digest, and posts the
digest to a Telegram chat. Configuration comes from environment variables,
optionally seeded from a YAML file.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to YAML config file (optional)")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newPreviewCmd())
	cmd.AddCommand(newServeCmd())

	return cmd
}

// newRunCmd builds the one-shot invocation command.
func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run one notify invocation and print the structured result",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			resp := handler.New(cfg).Handle(context.Background(), handler.Trigger{Source: "cli"})
			fmt.Fprintln(cmd.OutOrStdout(), resp.Body)

			if resp.StatusCode != 200 {
				os.Exit(ExitError)
			}
			return nil
		},
	}
}

// newPreviewCmd builds the dry-run command: full pipeline, no delivery.
func newPreviewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Print the digest that would be sent, without delivering it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			events, digest := handler.New(cfg).Digest()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n\n(%d events, %d characters)\n",
				digest, len(events), len(digest))
			return nil
		},
	}
}

func loadConfig() (config.Config, error) {
	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, fmt.Errorf("loading configuration: %w", err)
	}

	logger.Info("Configuration loaded", logger.Fields{
		"city":       cfg.City,
		"categories": cfg.Categories,
		"test_mode":  cfg.TestMode,
		"configured": cfg.NotifyConfigured(),
	})

	return cfg, nil
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
