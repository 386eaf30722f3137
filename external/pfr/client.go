package pfr

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/riskibarqy/statline/internal/platform/fetcher"
	"github.com/riskibarqy/statline/internal/platform/htmltable"
	"github.com/riskibarqy/statline/internal/platform/logging"
	"github.com/riskibarqy/statline/internal/usecase"
)

const (
	DefaultBaseURL = "https://www.pro-football-reference.com"
	defaultTimeout = 30 * time.Second
)

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

func (c *Client) ScrapePlayerStats(ctx context.Context, season int, week *int) ([]usecase.ExternalPlayerSeasonLine, error) {
	pageURL := fmt.Sprintf("%s/years/%d/fantasy.htm", c.baseURL, season)

	doc, err := c.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	table, ok := htmltable.Locate(doc, htmltable.ByID(fantasyTableID))
	if !ok {
		c.logger.WarnContext(ctx, "pfr fantasy table not found", "url", pageURL, "season", season)
		return []usecase.ExternalPlayerSeasonLine{}, nil
	}

	extraction := htmltable.ExtractRows(table, htmltable.ExtractOptions{
		CellSelector: dataCellSelector,
		CollectLinks: true,
	})

	out := make([]usecase.ExternalPlayerSeasonLine, 0, len(extraction.Rows))
	for i, raw := range extraction.Rows {
		row := raw.Pad(fantasyRowWidth)
		name := cleanPlayer(row.Cell(colName))
		out = append(out, usecase.ExternalPlayerSeasonLine{
			SourcePlayerID: playerID(extraction.Links[i].Cell(colName), name),
			PlayerName:     name,
			Team:           row.Cell(colTeam),
			Position:       row.Cell(colPosition),
			Season:         season,
			Week:           week,
			PassingYards:   htmltable.Int(row.Cell(colPassYards)),
			PassingTDs:     htmltable.Int(row.Cell(colPassTD)),
			PassingInt:     htmltable.Int(row.Cell(colPassInt)),
			RushingYards:   htmltable.Int(row.Cell(colRushYards)),
			RushingTDs:     htmltable.Int(row.Cell(colRushTD)),
			Receptions:     htmltable.Int(row.Cell(colReceptions)),
			ReceivingYards: htmltable.Int(row.Cell(colRecYards)),
			ReceivingTDs:   htmltable.Int(row.Cell(colRecTD)),
			FantasyPoints:  htmltable.Float(row.Cell(colFantasyPoints)),
		})
	}

	c.logger.InfoContext(ctx, "pfr player stats scraped", "season", season, "rows", len(out))
	return out, nil
}

func (c *Client) ScrapeTeamDefense(ctx context.Context, season int) ([]usecase.ExternalTeamDefense, error) {
	pageURL := fmt.Sprintf("%s/years/%d/opp.htm", c.baseURL, season)

	doc, err := c.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	table, ok := htmltable.Locate(doc, htmltable.ByID(teamStatsTableID))
	if !ok {
		c.logger.WarnContext(ctx, "pfr team stats table not found", "url", pageURL, "season", season)
		return []usecase.ExternalTeamDefense{}, nil
	}

	extraction := htmltable.ExtractRows(table, htmltable.ExtractOptions{CellSelector: dataCellSelector})

	out := make([]usecase.ExternalTeamDefense, 0, len(extraction.Rows))
	for _, raw := range extraction.Rows {
		row := raw.Pad(defenseRowWidth)
		out = append(out, usecase.ExternalTeamDefense{
			Team:          row.Cell(colDefenseTeam),
			Season:        season,
			PointsAllowed: htmltable.Float(row.Cell(colPointsAllowed)),
			YardsAllowed:  htmltable.Float(row.Cell(colYardsAllowed)),
		})
	}

	c.logger.InfoContext(ctx, "pfr team defense scraped", "season", season, "rows", len(out))
	return out, nil
}

func (c *Client) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	resp, err := c.fetcher.Fetch(ctx, fetcher.Request{
		URL:        pageURL,
		Timeout:    c.timeout,
		MaxRetries: c.maxRetries,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch pfr page: %w", err)
	}

	doc, err := htmltable.ParseDocument(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse pfr page: %w", err)
	}
	return doc, nil
}
