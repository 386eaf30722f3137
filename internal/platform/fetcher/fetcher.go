package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/statline/internal/platform/cache"
	"github.com/riskibarqy/statline/internal/platform/logging"
	"github.com/riskibarqy/statline/internal/platform/resilience"
)

const (
	DefaultUserAgent   = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	defaultTimeout     = 30 * time.Second
	defaultMaxRetries  = 3
	defaultBackoffBase = time.Second
	defaultPacing      = time.Second
	maxBodyBytes       = 8 << 20
)

// NoPacing turns off the pause after successful fetches.
const NoPacing time.Duration = -1

var (
	ErrTransportFailure = crerr.New("transport failure")
	ErrCircuitOpen      = resilience.ErrCircuitOpen
)

type Request struct {
	URL     string
	Headers map[string]string
	// Timeout bounds each attempt. Zero uses the fetcher default.
	Timeout time.Duration
	// MaxRetries is the total number of attempts. Zero uses the fetcher default.
	MaxRetries int
}

type Response struct {
	StatusCode int
	Body       []byte
}

// FailureError is returned once every attempt for a URL has failed.
type FailureError struct {
	URL        string
	StatusCode int
	Attempts   int
	Reason     string
}

func (e *FailureError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s failed after %d attempt(s): status=%d: %s", e.URL, e.Attempts, e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("fetch %s failed after %d attempt(s): %s", e.URL, e.Attempts, e.Reason)
}

func (e *FailureError) Is(target error) bool {
	return target == ErrTransportFailure
}

// PageCache short-circuits fetches of pages seen recently.
type PageCache interface {
	Load(ctx context.Context, url string, loader cache.PageLoader) ([]byte, error)
}

type Config struct {
	HTTPClient     *http.Client
	UserAgent      string
	Timeout        time.Duration
	MaxRetries     int
	BackoffBase    time.Duration
	// Pacing is the pause after each successful fetch. Zero means the 1s
	// default; NoPacing (any negative value) disables it.
	Pacing         time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
	Cache          PageCache
}

// Fetcher retrieves pages over HTTP with bounded retries and a fixed pause
// after every success. One Fetcher serves a whole run; it is not meant to
// issue concurrent requests against the same host.
type Fetcher struct {
	httpClient  *http.Client
	userAgent   string
	timeout     time.Duration
	maxRetries  int
	backoffBase time.Duration
	pacing      time.Duration
	logger      *logging.Logger
	breakers    *resilience.HostBreakers
	cache       PageCache
	sleep       func(ctx context.Context, d time.Duration) error
}

func New(cfg Config) *Fetcher {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport.(*http.Transport).Clone()),
		}
	}

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = defaultMaxRetries
	}
	backoffBase := cfg.BackoffBase
	if backoffBase <= 0 {
		backoffBase = defaultBackoffBase
	}
	pacing := cfg.Pacing
	switch {
	case pacing == 0:
		pacing = defaultPacing
	case pacing < 0:
		pacing = 0
	}

	return &Fetcher{
		httpClient:  httpClient,
		userAgent:   userAgent,
		timeout:     timeout,
		maxRetries:  maxRetries,
		backoffBase: backoffBase,
		pacing:      pacing,
		logger:      logger,
		breakers:    resilience.NewHostBreakers(cfg.CircuitBreaker),
		cache:       cfg.Cache,
		sleep:       sleepContext,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, req Request) (Response, error) {
	if strings.TrimSpace(req.URL) == "" {
		return Response{}, &FailureError{Reason: "url is required"}
	}

	if f.cache == nil {
		return f.fetchNetwork(ctx, req)
	}

	body, err := f.cache.Load(ctx, req.URL, func(ctx context.Context) ([]byte, error) {
		resp, err := f.fetchNetwork(ctx, req)
		if err != nil {
			return nil, err
		}
		return resp.Body, nil
	})
	if err != nil {
		return Response{}, err
	}
	return Response{StatusCode: http.StatusOK, Body: body}, nil
}

// Close releases idle keep-alive connections held by the client.
func (f *Fetcher) Close() {
	f.httpClient.CloseIdleConnections()
}

func (f *Fetcher) fetchNetwork(ctx context.Context, req Request) (Response, error) {
	breaker := f.breakers.For(req.URL)
	if err := breaker.Allow(); err != nil {
		f.logger.WarnContext(ctx, "fetch rejected by circuit breaker",
			"url", req.URL,
			"host", resilience.HostKey(req.URL),
			"state", breaker.State(),
		)
		return Response{}, crerr.Wrapf(ErrCircuitOpen, "fetch %s", req.URL)
	}

	resp, err := f.fetchWithRetry(ctx, req)
	if err != nil {
		if ctx.Err() == nil {
			breaker.RecordFailure()
		}
		return Response{}, err
	}
	breaker.RecordSuccess()
	return resp, nil
}

func (f *Fetcher) fetchWithRetry(ctx context.Context, req Request) (Response, error) {
	attempts := req.MaxRetries
	if attempts < 1 {
		attempts = f.maxRetries
	}
	timeout := req.Timeout
	if timeout <= 0 {
		timeout = f.timeout
	}

	failure := &FailureError{URL: req.URL}
	for attempt := 1; attempt <= attempts; attempt++ {
		failure.Attempts = attempt

		resp, status, reason, retryable := f.do(ctx, req, timeout)
		if reason == "" {
			// Pacing applies only to successes; a cancelled pause still
			// hands back the page that was already read.
			_ = f.sleep(ctx, f.pacing)
			return resp, nil
		}
		failure.StatusCode = status
		failure.Reason = reason

		f.logger.WarnContext(ctx, "fetch attempt failed",
			"url", req.URL,
			"attempt", attempt,
			"max_attempts", attempts,
			"status", status,
			"reason", reason,
		)

		if !retryable || ctx.Err() != nil || attempt == attempts {
			break
		}
		if err := f.sleep(ctx, f.backoffBase<<(attempt-1)); err != nil {
			failure.Reason = fmt.Sprintf("%s (retry aborted: %v)", reason, err)
			break
		}
	}

	f.logger.ErrorContext(ctx, "fetch failed", "url", req.URL, "attempts", failure.Attempts, "error", failure)
	return Response{}, failure
}

// do performs one attempt. An empty reason means success.
func (f *Fetcher) do(ctx context.Context, req Request, timeout time.Duration) (Response, int, string, bool) {
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, req.URL, nil)
	if err != nil {
		return Response{}, 0, fmt.Sprintf("build request: %v", err), false
	}
	httpReq.Header.Set("User-Agent", f.userAgent)
	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	resp, err := f.httpClient.Do(httpReq)
	if err != nil {
		return Response{}, 0, fmt.Sprintf("send request: %v", err), true
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Response{}, resp.StatusCode, fmt.Sprintf("unexpected status %d", resp.StatusCode), true
	}

	body, err := readBody(resp.Body)
	if err != nil {
		return Response{}, resp.StatusCode, fmt.Sprintf("read response body: %v", err), true
	}
	return Response{StatusCode: resp.StatusCode, Body: body}, resp.StatusCode, "", true
}

func readBody(r io.Reader) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	n, err := buf.ReadFrom(io.LimitReader(r, maxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if n > maxBodyBytes {
		return nil, fmt.Errorf("body exceeds %d bytes", maxBodyBytes)
	}
	return append([]byte(nil), buf.B...), nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	select {
	case <-ctx.Done():
		timer.Stop()
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
