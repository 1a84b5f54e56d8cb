//go:build integration
// +build integration

package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guttosm/nepsepulse/config"
	"github.com/guttosm/nepsepulse/internal/app"
	"github.com/guttosm/nepsepulse/internal/domain/models"
)

// startFakeExchange serves canned JSON for every upstream endpoint the
// facade touches, so the full stack can be exercised without the real
// exchange.
func startFakeExchange(t *testing.T) *httptest.Server {
	t.Helper()

	responses := map[string]string{
		"/api/nots/market-summary/": `[
			{"detail": "Total Turnover Rs:", "value": 5100000000},
			{"detail": "Total Traded Shares", "value": 12000000}
		]`,
		"/api/nots/nepse-index": `[
			{"id": 58, "index": "NEPSE Index", "currentValue": 2045.31, "previousValue": 2040.0, "pointChange": 5.31, "percentageChange": 0.26, "high": 2050.0, "low": 2039.5}
		]`,
		"/api/nots/index": `[
			{"id": 51, "index": "Banking SubIndex", "currentValue": 1200.5, "previousValue": 1198.0, "pointChange": 2.5, "percentageChange": 0.21, "high": 1201.0, "low": 1197.0}
		]`,
		"/api/nots/top-ten/trade": `[
			{"symbol": "NABIL", "securityName": "Nabil Bank Limited", "shareTraded": 50000}
		]`,
		"/api/nots/top-ten/turnover": `[
			{"symbol": "NABIL", "securityName": "Nabil Bank Limited", "turnover": 25000000}
		]`,
		"/api/nots/top-ten/transaction": `[
			{"symbol": "NABIL", "securityName": "Nabil Bank Limited", "totalTrades": 900}
		]`,
		"/api/nots/top-ten/top-gainer": `[
			{"symbol": "NABIL", "pointChange": 12.5, "percentageChange": 2.4, "ltp": 530}
		]`,
		"/api/nots/top-ten/top-loser":       `[]`,
		"/api/nots/nepse-data/supplydemand": `{"supplyList": [], "demandList": []}`,
		"/api/nots/nepse-data/market-open":  `{"isOpen": "OPEN", "asOf": "2025-08-29T11:00:00"}`,
		"/api/nots/graph/index/58":          `[{"time": 1724800000, "value": 2045.31}]`,
		"/api/nots/market/graphdata/131":    `[{"time": 1724800000, "value": 530}]`,
		"/api/nots/company/list": `[
			{"symbol": "NABIL", "securityName": "Nabil Bank Limited", "id": 131, "sectorName": "Commercial Banks", "instrumentType": "Equity"}
		]`,
		"/api/nots/security": `[
			{"id": 131, "symbol": "NABIL", "securityName": "Nabil Bank Limited", "activeStatus": "A"}
		]`,
		"/api/nots/securityDailyTradeStat/58": `[
			{"symbol": "NABIL", "totalTradeQuantity": 50000}
		]`,
		"/api/nots/nepse-data/live-market": `[
			{"symbol": "NABIL", "lastTradedPrice": 530}
		]`,
		"/api/nots/nepse-data/marketdepth/131": `{
			"symbol": "NABIL",
			"marketDepth": {"buyMarketDepthList": [{"orderBookOrderPrice": 529, "quantity": 100, "orderCount": 3}], "sellMarketDepthList": []},
			"totalBuyQty": 100,
			"totalSellQty": 0
		}`,
	}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func initTestApp(t *testing.T, upstreamURL string, capacity int, refill float64) (http.Handler, func()) {
	t.Helper()

	old := config.AppConfig
	t.Cleanup(func() { config.AppConfig = old })
	config.AppConfig = config.Config{
		Server: config.ServerConfig{Port: "8000"},
		Nepse: config.NepseConfig{
			BaseURL:   upstreamURL,
			Timeout:   5 * time.Second,
			VerifyTLS: false,
		},
		RateLimit: config.RateLimitConfig{Capacity: capacity, RefillPerSecond: refill},
	}

	router, cleanup, err := app.InitializeApp()
	if err != nil {
		t.Fatalf("init app: %v", err)
	}
	return router, cleanup
}

func TestAPI_E2E_IndexAndDepth(t *testing.T) {
	upstream := startFakeExchange(t)
	defer upstream.Close()

	router, cleanup := initTestApp(t, upstream.URL, 100, 50)
	defer cleanup()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nepse-index", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("nepse-index status: %d body=%s", w.Code, w.Body.String())
	}
	var indices map[string]models.IndexValue
	if err := json.Unmarshal(w.Body.Bytes(), &indices); err != nil {
		t.Fatalf("json: %v", err)
	}
	if indices["NEPSE Index"].CurrentValue != 2045.31 {
		t.Fatalf("unexpected index body: %+v", indices)
	}

	// Symbol resolution goes through the security list, then the depth feed.
	w2 := httptest.NewRecorder()
	router.ServeHTTP(w2, httptest.NewRequest(http.MethodGet, "/market-depth/nabil", nil))
	if w2.Code != http.StatusOK {
		t.Fatalf("market-depth status: %d body=%s", w2.Code, w2.Body.String())
	}
	var depth models.MarketDepth
	if err := json.Unmarshal(w2.Body.Bytes(), &depth); err != nil {
		t.Fatalf("json: %v", err)
	}
	if depth.Symbol != "NABIL" || depth.TotalBuyQty != 100 {
		t.Fatalf("unexpected depth body: %+v", depth)
	}

	// Unknown symbols map to 404.
	w3 := httptest.NewRecorder()
	router.ServeHTTP(w3, httptest.NewRequest(http.MethodGet, "/market-depth/XXXX", nil))
	if w3.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown symbol, got %d", w3.Code)
	}
}

func TestAPI_E2E_MarketStats(t *testing.T) {
	upstream := startFakeExchange(t)
	defer upstream.Close()

	router, cleanup := initTestApp(t, upstream.URL, 100, 50)
	defer cleanup()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/trade-turnover-transaction-subindices", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("stats status: %d body=%s", w.Code, w.Body.String())
	}

	var stats models.MarketStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("json: %v", err)
	}
	scrip := stats.ScripsDetails["NABIL"]
	if scrip.TotalTurnover != 25000000 || scrip.TotalTrades != 900 || scrip.TotalTradeQuantity != 50000 {
		t.Fatalf("unexpected scrip stats: %+v", scrip)
	}
	if scrip.PointChange != 12.5 || scrip.LTP != 530 {
		t.Fatalf("gainer fields missing: %+v", scrip)
	}
	sector := stats.SectorsDetails["Commercial Banks"]
	if sector.TotalTurnover != 25000000 || sector.Index.Index != "Banking SubIndex" {
		t.Fatalf("unexpected sector stats: %+v", sector)
	}
}

func TestAPI_E2E_RateLimit(t *testing.T) {
	upstream := startFakeExchange(t)
	defer upstream.Close()

	// Zero refill: only the initial two tokens are granted.
	router, cleanup := initTestApp(t, upstream.URL, 2, 0)
	defer cleanup()

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/is-nepse-open", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("unexpected status sequence: %v", codes)
	}
}
