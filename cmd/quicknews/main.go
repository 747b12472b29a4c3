package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Adda-Baaj/quicknews/internal/app"
	"github.com/Adda-Baaj/quicknews/internal/config"
	"github.com/Adda-Baaj/quicknews/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "quicknews: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		sync     bool
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "quicknews",
		Short:         "Print today's top headlines",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), sync, logLevel)
		},
	}

	cmd.Flags().BoolVar(&sync, "sync", false, "fetch with a blocking request instead of the async path")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "override LOG_LEVEL (debug, info, warn, error)")
	return cmd
}

func run(parent context.Context, sync bool, logLevel string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if sync {
		cfg.FetchMode = config.FetchModeSync
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	log, err := logger.Init(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	logger.InfoObj("quicknews starting", "config", cfg)

	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reader, err := app.NewReader(ctx, cfg, log)
	if err != nil {
		logger.ErrorObj("failed to initialize reader", "error", err)
		return err
	}

	return reader.Run(ctx)
}
