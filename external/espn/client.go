package espn

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/statline/internal/domain/gamelog"
	"github.com/riskibarqy/statline/internal/platform/fetcher"
	"github.com/riskibarqy/statline/internal/platform/htmltable"
	"github.com/riskibarqy/statline/internal/platform/logging"
)

const defaultTimeout = 15 * time.Second

type ClientConfig struct {
	Fetcher    *fetcher.Fetcher
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
	Logger     *logging.Logger
}

type Client struct {
	fetcher    *fetcher.Fetcher
	baseURL    string
	timeout    time.Duration
	maxRetries int
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	f := cfg.Fetcher
	if f == nil {
		f = fetcher.New(fetcher.Config{Logger: logger})
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		fetcher:    f,
		baseURL:    baseURL,
		timeout:    timeout,
		maxRetries: cfg.MaxRetries,
		logger:     logger,
	}
}

// FetchGameLog downloads and parses one player's game log. playerName only
// shapes the URL and overrides the page title name.
func (c *Client) FetchGameLog(ctx context.Context, playerID, playerName string) (gamelog.GameLog, error) {
	pageURL := GameLogURL(c.baseURL, playerID, playerName)

	resp, err := c.fetcher.Fetch(ctx, fetcher.Request{
		URL:        pageURL,
		Timeout:    c.timeout,
		MaxRetries: c.maxRetries,
	})
	if err != nil {
		return gamelog.GameLog{}, fmt.Errorf("fetch espn game log: %w", err)
	}

	doc, err := htmltable.ParseDocument(resp.Body)
	if err != nil {
		return gamelog.GameLog{}, fmt.Errorf("parse espn game log: %w", err)
	}

	out, err := ParseGameLog(doc, playerName)
	if err != nil {
		c.logger.WarnContext(ctx, "espn game log page has no table", "player_id", playerID, "url", pageURL)
		return gamelog.GameLog{}, err
	}

	c.logger.DebugContext(ctx, "espn game log parsed",
		"player_id", playerID,
		"games", len(out.Games),
		"has_aggregate", out.Aggregate != nil,
	)
	return out, nil
}
