package observability

import (
	"context"
	"io"
	"testing"

	"github.com/riskibarqy/statline/internal/config"
	"github.com/riskibarqy/statline/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "statline",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, "playerstats", logging.NewJSONTo(logging.LevelInfo, io.Discard))
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSN(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  "}

	shutdown, err := InitUptrace(cfg, "pfr-scraper", nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestStartRun_WithoutProviderIsNoop(t *testing.T) {
	ctx, span := StartRun(context.Background(), "pfr-scraper.run")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Fatalf("expected no-op span without a configured provider")
	}
	if ctx == nil {
		t.Fatalf("expected context")
	}
}
