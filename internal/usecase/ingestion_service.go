package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/statline/internal/domain/weekly"
	"github.com/riskibarqy/statline/internal/platform/logging"
)

const (
	DatasetPlayerStats = "player_weekly_stats"
	DatasetDefense     = "defense_rankings"
	maxWeek            = 22
)

type IngestionInput struct {
	// Season defaults to the season in progress when zero.
	Season int
	Week   *int
	DryRun bool
}

type DatasetReport struct {
	Dataset  string `json:"dataset"`
	Scraped  int    `json:"scraped"`
	Rejected int    `json:"rejected"`
	Written  int    `json:"written"`
}

type IngestionReport struct {
	Season   int             `json:"season"`
	Week     *int            `json:"week,omitempty"`
	DryRun   bool            `json:"dryRun"`
	Datasets []DatasetReport `json:"datasets"`
}

// IngestionStores are the repositories one run writes to.
type IngestionStores struct {
	Players weekly.PlayerWeeklyRepository
	Defense weekly.DefenseRepository
}

type IngestionService struct {
	provider SeasonStatsProvider
	resolver IdentityResolver
	stores   IngestionStores
	dryRun   IngestionStores
	validate *validator.Validate
	logger   *logging.Logger
	now      func() time.Time
}

func NewIngestionService(
	provider SeasonStatsProvider,
	resolver IdentityResolver,
	stores IngestionStores,
	dryRun IngestionStores,
	logger *logging.Logger,
) *IngestionService {
	if resolver == nil {
		resolver = SourceIdentityResolver{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		provider: provider,
		resolver: resolver,
		stores:   stores,
		dryRun:   dryRun,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// Run scrapes the season's player and defense tables and upserts them. The
// returned report covers every dataset finished before an error.
func (s *IngestionService) Run(ctx context.Context, in IngestionInput) (report IngestionReport, err error) {
	season := in.Season
	if season == 0 {
		season = weekly.DefaultSeason(s.now())
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.Run",
		attribute.Int("statline.season", season),
		attribute.Bool("statline.dry_run", in.DryRun),
	)
	defer func() {
		recordSpanError(span, err)
		span.End()
	}()

	report = IngestionReport{Season: season, Week: in.Week, DryRun: in.DryRun}

	if season < 1920 {
		return report, invalidInputf("season %d is out of range", season)
	}
	if in.Week != nil && (*in.Week < 1 || *in.Week > maxWeek) {
		return report, invalidInputf("week must be between 1 and %d", maxWeek)
	}

	stores := s.stores
	if in.DryRun {
		stores = s.dryRun
	}
	if stores.Players == nil || stores.Defense == nil {
		return report, invalidInputf("ingestion stores are not configured (dry_run=%t)", in.DryRun)
	}

	s.logger.InfoContext(ctx, "ingestion started", "season", season, "week", weekLogValue(in.Week), "dry_run", in.DryRun)

	playerReport, err := s.ingestPlayers(ctx, stores.Players, season, in.Week)
	report.Datasets = append(report.Datasets, playerReport)
	if err != nil {
		return report, err
	}

	defenseReport, err := s.ingestDefense(ctx, stores.Defense, season)
	report.Datasets = append(report.Datasets, defenseReport)
	if err != nil {
		return report, err
	}

	s.logger.InfoContext(ctx, "ingestion finished", "season", season, "datasets", len(report.Datasets))
	return report, nil
}

func (s *IngestionService) ingestPlayers(ctx context.Context, repo weekly.PlayerWeeklyRepository, season int, week *int) (DatasetReport, error) {
	out := DatasetReport{Dataset: DatasetPlayerStats}

	lines, err := s.provider.ScrapePlayerStats(ctx, season, week)
	if err != nil {
		return out, unavailable("scrape player stats", err)
	}
	out.Scraped = len(lines)

	records, rejected := s.resolver.ResolvePlayers(ctx, lines)
	valid := make([]weekly.PlayerWeeklyRecord, 0, len(records))
	for _, record := range records {
		if err := s.validate.StructCtx(ctx, record); err != nil {
			rejected = append(rejected, RejectedRecord{Key: record.Key(), Reason: err.Error()})
			continue
		}
		valid = append(valid, record)
	}
	out.Rejected = len(rejected)
	s.logRejections(ctx, DatasetPlayerStats, rejected)

	written, err := repo.UpsertPlayerWeekly(ctx, valid)
	if err != nil {
		return out, fmt.Errorf("persist player stats: %w", err)
	}
	out.Written = written

	s.logger.InfoContext(ctx, "dataset ingested", "dataset", out.Dataset, "scraped", out.Scraped, "rejected", out.Rejected, "written", out.Written)
	return out, nil
}

func (s *IngestionService) ingestDefense(ctx context.Context, repo weekly.DefenseRepository, season int) (DatasetReport, error) {
	out := DatasetReport{Dataset: DatasetDefense}

	rows, err := s.provider.ScrapeTeamDefense(ctx, season)
	if err != nil {
		return out, unavailable("scrape team defense", err)
	}
	out.Scraped = len(rows)

	records, rejected := s.resolver.ResolveDefenses(ctx, rows)
	valid := make([]weekly.DefenseRecord, 0, len(records))
	for _, record := range records {
		if err := s.validate.StructCtx(ctx, record); err != nil {
			rejected = append(rejected, RejectedRecord{Key: record.Key(), Reason: err.Error()})
			continue
		}
		valid = append(valid, record)
	}
	out.Rejected = len(rejected)
	s.logRejections(ctx, DatasetDefense, rejected)

	written, err := repo.UpsertDefense(ctx, valid)
	if err != nil {
		return out, fmt.Errorf("persist team defense: %w", err)
	}
	out.Written = written

	s.logger.InfoContext(ctx, "dataset ingested", "dataset", out.Dataset, "scraped", out.Scraped, "rejected", out.Rejected, "written", out.Written)
	return out, nil
}

func (s *IngestionService) logRejections(ctx context.Context, dataset string, rejected []RejectedRecord) {
	for _, r := range rejected {
		s.logger.WarnContext(ctx, "record rejected", "dataset", dataset, "key", r.Key, "reason", r.Reason)
	}
}

func weekLogValue(week *int) any {
	if week == nil {
		return nil
	}
	return *week
}
