package api

import (
	"context"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/nepsepulse/internal/middleware"
	"github.com/guttosm/nepsepulse/internal/ratelimit"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// routePaths names every public route. The root handler serves it as the
// API directory, and the HTML index handlers derive link targets from it.
var routePaths = map[string]string{
	"PriceVolume":                        "/price-volume",
	"Summary":                            "/summary",
	"SupplyDemand":                       "/supply-demand",
	"TopGainers":                         "/top-gainers",
	"TopLosers":                          "/top-losers",
	"TopTenTradeScrips":                  "/top-ten-trade-scrips",
	"TopTenTurnoverScrips":               "/top-ten-turnover-scrips",
	"TopTenTransactionScrips":            "/top-ten-transaction-scrips",
	"IsNepseOpen":                        "/is-nepse-open",
	"NepseIndex":                         "/nepse-index",
	"NepseSubIndices":                    "/nepse-sub-indices",
	"DailyNepseIndexGraph":               "/daily-nepse-index-graph",
	"DailyScripPriceGraph":               "/daily-scrip-price-graph",
	"CompanyList":                        "/company-list",
	"SecurityList":                       "/security-list",
	"TradeTurnoverTransactionSubindices": "/trade-turnover-transaction-subindices",
	"LiveMarket":                         "/live-market",
	"MarketDepth":                        "/market-depth",
}

// NewRouter creates a Gin engine with all routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler,
//     RateLimit) and permissive CORS.
//   - Adds request timeout handling (30 seconds; upstream calls dominate).
//   - Mounts Swagger docs (/swagger/*any).
//   - Registers every market-data route.
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
//
// Parameters:
//   - handler (*Handler): The HTTP handler with business logic.
//   - bucket (*ratelimit.TokenBucket): The shared request budget.
//
// Returns:
//   - *gin.Engine: Configured Gin router.
func NewRouter(handler *Handler, bucket *ratelimit.TokenBucket) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimit(bucket),
	)
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: false,
	}))

	// ─── Timeout ──────────────────────────────────
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	})

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Routes ───────────────────────────────────
	router.GET("/", handler.GetRoot)
	router.GET(routePaths["Summary"], handler.GetSummary)
	router.GET(routePaths["NepseIndex"], handler.GetNepseIndex)
	router.GET(routePaths["NepseSubIndices"], handler.GetNepseSubIndices)
	router.GET(routePaths["TopTenTradeScrips"], handler.GetTopTenTradeScrips)
	router.GET(routePaths["TopTenTurnoverScrips"], handler.GetTopTenTurnoverScrips)
	router.GET(routePaths["TopTenTransactionScrips"], handler.GetTopTenTransactionScrips)
	router.GET(routePaths["SupplyDemand"], handler.GetSupplyDemand)
	router.GET(routePaths["TopGainers"], handler.GetTopGainers)
	router.GET(routePaths["TopLosers"], handler.GetTopLosers)
	router.GET(routePaths["IsNepseOpen"], handler.GetIsNepseOpen)
	router.GET(routePaths["DailyNepseIndexGraph"], handler.GetDailyNepseIndexGraph)
	router.GET(routePaths["DailyScripPriceGraph"], handler.ListDailyScripPriceGraph)
	router.GET(routePaths["DailyScripPriceGraph"]+"/:symbol", handler.GetDailyScripPriceGraph)
	router.GET(routePaths["CompanyList"], handler.GetCompanyList)
	router.GET(routePaths["SecurityList"], handler.GetSecurityList)
	router.GET(routePaths["PriceVolume"], handler.GetPriceVolume)
	router.GET(routePaths["LiveMarket"], handler.GetLiveMarket)
	router.GET(routePaths["MarketDepth"], handler.ListMarketDepth)
	router.GET(routePaths["MarketDepth"]+"/:symbol", handler.GetMarketDepth)
	router.GET(routePaths["TradeTurnoverTransactionSubindices"], handler.GetMarketStats)

	return router
}
