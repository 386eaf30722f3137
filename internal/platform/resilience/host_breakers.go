package resilience

import (
	"net/url"
	"strings"
	"sync"
	"time"
)

// HostBreakers hands out one CircuitBreaker per remote host, so an outage
// on one stats site leaves requests to the other untouched. A nil
// *HostBreakers returns nil breakers.
type HostBreakers struct {
	cfg CircuitBreakerConfig
	now func() time.Time

	mu     sync.Mutex
	byHost map[string]*CircuitBreaker
}

// NewHostBreakers returns nil when cfg is disabled.
func NewHostBreakers(cfg CircuitBreakerConfig) *HostBreakers {
	if !cfg.Enabled {
		return nil
	}
	return &HostBreakers{
		cfg:    NormalizeCircuitBreakerConfig(cfg),
		now:    time.Now,
		byHost: make(map[string]*CircuitBreaker),
	}
}

// For returns the breaker guarding rawURL's host, creating it on first use.
// Unparseable URLs share a breaker keyed by the raw string.
func (h *HostBreakers) For(rawURL string) *CircuitBreaker {
	if h == nil {
		return nil
	}
	key := HostKey(rawURL)

	h.mu.Lock()
	defer h.mu.Unlock()
	b, ok := h.byHost[key]
	if !ok {
		b = NewCircuitBreaker(h.cfg)
		b.now = h.now
		h.byHost[key] = b
	}
	return b
}

// Open lists hosts whose breaker currently rejects requests.
func (h *HostBreakers) Open() []string {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	var out []string
	for host, b := range h.byHost {
		if b.State() == CircuitStateOpen {
			out = append(out, host)
		}
	}
	return out
}

// HostKey lowercases the host[:port] of rawURL.
func HostKey(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" {
		return rawURL
	}
	return strings.ToLower(u.Host)
}
