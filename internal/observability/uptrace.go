package observability

import (
	"context"
	"strings"

	"github.com/uptrace/uptrace-go/uptrace"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/statline/internal/config"
	"github.com/riskibarqy/statline/internal/platform/logging"
)

type Shutdown func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// InitUptrace installs the global OpenTelemetry providers for one CLI run.
// component names the binary ("playerstats", "pfr-scraper") on every span.
// The returned Shutdown flushes pending spans and must run before exit.
func InitUptrace(cfg config.Config, component string, logger *logging.Logger) (Shutdown, error) {
	if logger == nil {
		logger = logging.Default()
	}

	switch {
	case !cfg.UptraceEnabled:
		logger.Debug("uptrace disabled", "reason", "UPTRACE_ENABLED=false")
		return noopShutdown, nil
	case strings.TrimSpace(cfg.UptraceDSN) == "":
		logger.Info("uptrace disabled", "reason", "UPTRACE_DSN empty")
		return noopShutdown, nil
	}

	uptrace.ConfigureOpentelemetry(
		uptrace.WithDSN(cfg.UptraceDSN),
		uptrace.WithServiceName(cfg.ServiceName),
		uptrace.WithServiceVersion(cfg.ServiceVersion),
		uptrace.WithDeploymentEnvironment(cfg.AppEnv),
		uptrace.WithResourceAttributes(attribute.String("statline.component", component)),
	)

	logger.Info("uptrace enabled",
		"service_name", cfg.ServiceName,
		"component", component,
		"environment", cfg.AppEnv,
	)
	return uptrace.Shutdown, nil
}

// StartRun opens the root span of a CLI invocation. With tracing disabled
// the global provider is a no-op and the usecase layer skips its spans.
func StartRun(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return otel.Tracer("statline/cmd").Start(ctx, name, trace.WithAttributes(attrs...))
}
