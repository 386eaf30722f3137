package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/riskibarqy/statline/internal/app"
	"github.com/riskibarqy/statline/internal/config"
	"github.com/riskibarqy/statline/internal/observability"
	"github.com/riskibarqy/statline/internal/platform/logging"
	"github.com/riskibarqy/statline/internal/usecase"
)

type runner func(ctx context.Context, in usecase.IngestionInput) (usecase.IngestionReport, error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(runIngestion).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(run runner) *cobra.Command {
	var (
		season int
		week   int
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:           "pfr-scraper [--season N] [--week W] [--dry-run]",
		Short:         "Scrapes Pro-Football-Reference season tables into PostgreSQL.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.IngestionInput{Season: season, DryRun: dryRun}
			if cmd.Flags().Changed("week") {
				w := week
				in.Week = &w
			}
			_, err := run(cmd.Context(), in)
			return err
		},
	}

	cmd.Flags().IntVar(&season, "season", 0, "Season to scrape; defaults to the season in progress.")
	cmd.Flags().IntVar(&week, "week", 0, "Optional week (1-22) to tag the scraped lines with.")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Scrape and validate without writing to the database.")
	return cmd
}

func runIngestion(ctx context.Context, in usecase.IngestionInput) (usecase.IngestionReport, error) {
	cfg, err := config.Load()
	if err != nil {
		return usecase.IngestionReport{}, fmt.Errorf("load config: %w", err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownTracing, err := observability.InitUptrace(cfg, "pfr-scraper", logger)
	if err != nil {
		return usecase.IngestionReport{}, fmt.Errorf("init uptrace: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(flushCtx); err != nil {
			logger.Warn("shutdown uptrace", "error", err)
		}
	}()

	service, closeFn, err := app.NewIngestionService(ctx, cfg, logger, in.DryRun)
	if err != nil {
		logger.ErrorContext(ctx, "build ingestion service", "error", err)
		return usecase.IngestionReport{}, err
	}
	defer closeFn()

	ctx, span := observability.StartRun(ctx, "pfr-scraper.run")
	defer span.End()

	started := time.Now()
	report, err := service.Run(ctx, in)
	logger.InfoContext(ctx, "ingestion report",
		"report", report,
		"elapsed", time.Since(started),
	)
	if err != nil {
		logger.ErrorContext(ctx, "ingestion failed", "error", err)
		return report, err
	}
	return report, nil
}
