package nepse

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/guttosm/nepsepulse/internal/domain/models"
)

// Upstream endpoint paths under the exchange's /api/nots surface.
const (
	summaryPath        = "/api/nots/market-summary/"
	indexPath          = "/api/nots/nepse-index"
	subIndicesPath     = "/api/nots/index"
	topTradePath       = "/api/nots/top-ten/trade"
	topTurnoverPath    = "/api/nots/top-ten/turnover"
	topTransactionPath = "/api/nots/top-ten/transaction"
	topGainerPath      = "/api/nots/top-ten/top-gainer"
	topLoserPath       = "/api/nots/top-ten/top-loser"
	supplyDemandPath   = "/api/nots/nepse-data/supplydemand"
	marketOpenPath     = "/api/nots/nepse-data/market-open"
	indexGraphPath     = "/api/nots/graph/index/58"
	scripGraphPath     = "/api/nots/market/graphdata/%d"
	companyListPath    = "/api/nots/company/list"
	securityListPath   = "/api/nots/security"
	priceVolumePath    = "/api/nots/securityDailyTradeStat/58"
	liveMarketPath     = "/api/nots/nepse-data/live-market"
	marketDepthPath    = "/api/nots/nepse-data/marketdepth/%d"
)

// Config holds the settings of the HTTP client.
type Config struct {
	BaseURL   string        // e.g. "https://www.nepalstock.com"
	Timeout   time.Duration // per-request timeout
	VerifyTLS bool          // the exchange serves an incomplete chain; default off
}

// HTTPClient is the production implementation of Client against the
// exchange's REST API.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds a client from the given config.
func NewHTTPClient(cfg Config) *HTTPClient {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{InsecureSkipVerify: !cfg.VerifyTLS}, //nolint:gosec // upstream chain is broken
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
	}
}

// CloseIdleConnections releases pooled upstream connections. Used by the
// app's shutdown cleanup.
func (c *HTTPClient) CloseIdleConnections() {
	c.http.CloseIdleConnections()
}

// getJSON performs a GET against path and decodes the JSON body into out.
//
// Error mapping:
//   - transport errors and non-2xx statuses wrap the underlying cause;
//   - undecodable bodies wrap ErrMalformedData.
func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("fetch %s: upstream status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w: %s", path, ErrMalformedData, err.Error())
	}
	return nil
}

func (c *HTTPClient) Summary(ctx context.Context) ([]models.SummaryItem, error) {
	var out []models.SummaryItem
	if err := c.getJSON(ctx, summaryPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Index(ctx context.Context) ([]models.IndexValue, error) {
	var out []models.IndexValue
	if err := c.getJSON(ctx, indexPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SubIndices(ctx context.Context) ([]models.IndexValue, error) {
	var out []models.IndexValue
	if err := c.getJSON(ctx, subIndicesPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) TopTradeScrips(ctx context.Context) ([]models.TradeLeader, error) {
	var out []models.TradeLeader
	if err := c.getJSON(ctx, topTradePath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) TopTurnoverScrips(ctx context.Context) ([]models.TurnoverLeader, error) {
	var out []models.TurnoverLeader
	if err := c.getJSON(ctx, topTurnoverPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) TopTransactionScrips(ctx context.Context) ([]models.TransactionLeader, error) {
	var out []models.TransactionLeader
	if err := c.getJSON(ctx, topTransactionPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SupplyDemand(ctx context.Context) (*models.SupplyDemand, error) {
	var out models.SupplyDemand
	if err := c.getJSON(ctx, supplyDemandPath, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) TopGainers(ctx context.Context) ([]models.PriceMover, error) {
	var out []models.PriceMover
	if err := c.getJSON(ctx, topGainerPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) TopLosers(ctx context.Context) ([]models.PriceMover, error) {
	var out []models.PriceMover
	if err := c.getJSON(ctx, topLoserPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) MarketStatus(ctx context.Context) (*models.MarketStatus, error) {
	var out models.MarketStatus
	if err := c.getJSON(ctx, marketOpenPath, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) IndexGraph(ctx context.Context) ([]models.GraphPoint, error) {
	var out []models.GraphPoint
	if err := c.getJSON(ctx, indexGraphPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ScripPriceGraph(ctx context.Context, symbol string) ([]models.GraphPoint, error) {
	id, err := c.resolveSecurityID(ctx, symbol)
	if err != nil {
		return nil, err
	}
	var out []models.GraphPoint
	if err := c.getJSON(ctx, fmt.Sprintf(scripGraphPath, id), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) CompanyList(ctx context.Context) ([]models.Company, error) {
	var out []models.Company
	if err := c.getJSON(ctx, companyListPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) SecurityList(ctx context.Context) ([]models.Security, error) {
	var out []models.Security
	if err := c.getJSON(ctx, securityListPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) PriceVolume(ctx context.Context) ([]models.PriceVolume, error) {
	var out []models.PriceVolume
	if err := c.getJSON(ctx, priceVolumePath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) LiveMarket(ctx context.Context) ([]models.LiveQuote, error) {
	var out []models.LiveQuote
	if err := c.getJSON(ctx, liveMarketPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) MarketDepth(ctx context.Context, symbol string) (*models.MarketDepth, error) {
	id, err := c.resolveSecurityID(ctx, symbol)
	if err != nil {
		return nil, err
	}
	var out models.MarketDepth
	if err := c.getJSON(ctx, fmt.Sprintf(marketDepthPath, id), &out); err != nil {
		return nil, err
	}
	if out.Symbol == "" {
		out.Symbol = strings.ToUpper(symbol)
	}
	return &out, nil
}

// resolveSecurityID maps a ticker symbol to the exchange's internal security
// ID via the security list. Matching is case-insensitive.
func (c *HTTPClient) resolveSecurityID(ctx context.Context, symbol string) (int, error) {
	securities, err := c.SecurityList(ctx)
	if err != nil {
		return 0, err
	}
	for _, s := range securities {
		if strings.EqualFold(s.Symbol, symbol) {
			return s.ID, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrSymbolNotFound, symbol)
}
