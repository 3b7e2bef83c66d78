package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/triunfo/balanzas/internal/activitylog"
	"github.com/triunfo/balanzas/internal/auth"
	"github.com/triunfo/balanzas/internal/cli"
	"github.com/triunfo/balanzas/internal/config"
	"github.com/triunfo/balanzas/internal/iocli"
	"github.com/triunfo/balanzas/internal/resource"
	"github.com/triunfo/balanzas/internal/session"
	"github.com/triunfo/balanzas/internal/store/jsonfile"
	"github.com/triunfo/balanzas/pkg/logger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var showVersion bool

	cmd := &cobra.Command{
		Use:          "balanzas",
		Short:        "Product catalog and user administration for Balanzas Triunfo",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if showVersion {
				printVersion()
				return nil
			}
			return run(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	return cmd
}

func run(ctx context.Context) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	storage := jsonfile.New(cfg.DataPath(), log)
	if err := storage.LoadUsers(ctx); err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	if err := storage.LoadProducts(ctx); err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	sess := session.New()
	activity := activitylog.New(cfg.ActivityLogFile(), sess, log)
	activity.Initialize()
	activity.Record("Application Start", "version: "+Version)

	authSvc := auth.NewService(storage, log)
	opener := resource.NewOpener(cfg.ManualsPath(), activity, log)

	shell := cli.New(iocli.NewStdio(), storage, storage, authSvc, sess, activity, opener)
	runErr := shell.Run(ctx)

	activity.Record("Application Exit", "")
	if storage.SaveError() != nil {
		log.Warn().Err(storage.SaveError()).Msg("last save failed, on-disk data is behind memory")
	}
	return runErr
}

func printVersion() {
	fmt.Printf("balanzas %s (built %s, commit %s)\n", Version, BuildDate, GitCommit)
}
