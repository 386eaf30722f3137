package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/riskibarqy/statline/internal/domain/gamelog"
	"github.com/riskibarqy/statline/internal/platform/logging"
)

const (
	MsgPlayerIDRequired      = "Player ID required as argument"
	lookupFailureSuggestion  = "Player ID may be incorrect, or ESPN page structure has changed."
	lookupFailureMessageTmpl = "Could not scrape ESPN game log page for player ID %s"
	unknownPlayerName        = "Unknown"
)

type PlayerStatsService struct {
	provider GameLogProvider
	logger   *logging.Logger
}

func NewPlayerStatsService(provider GameLogProvider, logger *logging.Logger) *PlayerStatsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerStatsService{provider: provider, logger: logger}
}

// Lookup never fails: problems are reported through the result's Success
// and Error fields.
func (s *PlayerStatsService) Lookup(ctx context.Context, playerID, playerName string) gamelog.PlayerStatsResult {
	playerID = strings.TrimSpace(playerID)
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.Lookup", attribute.String("statline.player_id", playerID))
	defer span.End()

	if playerID == "" {
		return gamelog.PlayerStatsResult{Success: false, Error: MsgPlayerIDRequired}
	}

	gameLog, err := s.provider.FetchGameLog(ctx, playerID, strings.TrimSpace(playerName))
	if err != nil {
		s.logger.WarnContext(ctx, "player game log lookup failed", "player_id", playerID, "error", err)
		recordSpanError(span, err)
		return gamelog.PlayerStatsResult{
			Success:    false,
			PlayerID:   playerID,
			Error:      fmt.Sprintf(lookupFailureMessageTmpl, playerID),
			Suggestion: lookupFailureSuggestion,
		}
	}

	name := strings.TrimSpace(gameLog.PlayerName)
	if name == "" {
		name = unknownPlayerName
	}

	result := gamelog.PlayerStatsResult{
		Success:     true,
		PlayerName:  name,
		PlayerID:    playerID,
		SeasonStats: &gamelog.SeasonStats{Rushing: gamelog.Reconcile(gameLog.Games, gameLog.Aggregate)},
		GamesPlayed: len(gameLog.Games),
		Source:      gamelog.SourceESPNGameLog,
	}
	if n := len(gameLog.Games); n > 0 {
		last := gameLog.Games[n-1]
		result.LastGame = &last
	}

	s.logger.InfoContext(ctx, "player game log lookup done",
		"player_id", playerID,
		"games", result.GamesPlayed,
		"has_aggregate", gameLog.Aggregate != nil,
	)
	return result
}
