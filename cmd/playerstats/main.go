package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/statline/internal/app"
	"github.com/riskibarqy/statline/internal/config"
	"github.com/riskibarqy/statline/internal/domain/gamelog"
	"github.com/riskibarqy/statline/internal/observability"
	"github.com/riskibarqy/statline/internal/platform/logging"
	"github.com/riskibarqy/statline/internal/usecase"
)

// exitMissingID is the only non-zero status; every other outcome,
// configuration failures included, is reported in the JSON object.
const exitMissingID = 1

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		writeResult(stdout, stderr, gamelog.PlayerStatsResult{Success: false, Error: usecase.MsgPlayerIDRequired})
		return exitMissingID
	}
	playerID := args[0]
	playerName := strings.Join(args[1:], " ")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "load config: %v\n", err)
		writeResult(stdout, stderr, gamelog.PlayerStatsResult{Success: false, PlayerID: playerID, Error: err.Error()})
		return 0
	}

	logger := logging.NewJSONTo(cfg.LogLevel, stderr)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.InitUptrace(cfg, "playerstats", logger)
	if err != nil {
		logger.Warn("init uptrace", "error", err)
	} else {
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracing(flushCtx); err != nil {
				logger.Warn("shutdown uptrace", "error", err)
			}
		}()
	}

	service, closeFn := app.NewPlayerStatsService(ctx, cfg, logger)
	defer closeFn()

	ctx, span := observability.StartRun(ctx, "playerstats.lookup")
	result := service.Lookup(ctx, playerID, playerName)
	span.End()

	writeResult(stdout, stderr, result)
	return 0
}

func writeResult(stdout, stderr io.Writer, result gamelog.PlayerStatsResult) {
	out, err := sonic.Marshal(result)
	if err != nil {
		fmt.Fprintf(stderr, "encode result: %v\n", err)
		return
	}
	fmt.Fprintln(stdout, string(out))
}
