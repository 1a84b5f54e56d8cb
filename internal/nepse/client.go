// Package nepse talks to the Nepal Stock Exchange REST API. It is the data
// layer of the service: every handler response is built from the typed
// snapshots this package fetches, and nothing is cached between requests.
package nepse

import (
	"context"

	"github.com/guttosm/nepsepulse/internal/domain/models"
)

// Client defines the upstream operations the service depends on.
//
// Every method performs one upstream fetch for the current trading day.
// Symbol-parameterized methods resolve the symbol to the exchange's internal
// security ID first and return ErrSymbolNotFound when the symbol is not
// listed.
type Client interface {
	// Summary returns the day's market summary rows (turnover, volume, ...).
	Summary(ctx context.Context) ([]models.SummaryItem, error)

	// Index returns the main NEPSE index records.
	Index(ctx context.Context) ([]models.IndexValue, error)

	// SubIndices returns all sector sub-indices.
	SubIndices(ctx context.Context) ([]models.IndexValue, error)

	// TopTradeScrips returns the ranking by traded share quantity.
	TopTradeScrips(ctx context.Context) ([]models.TradeLeader, error)

	// TopTurnoverScrips returns the ranking by turnover value.
	TopTurnoverScrips(ctx context.Context) ([]models.TurnoverLeader, error)

	// TopTransactionScrips returns the ranking by transaction count.
	TopTransactionScrips(ctx context.Context) ([]models.TransactionLeader, error)

	// SupplyDemand returns the market-wide buy/sell order summaries.
	SupplyDemand(ctx context.Context) (*models.SupplyDemand, error)

	// TopGainers returns the securities with the highest positive change.
	TopGainers(ctx context.Context) ([]models.PriceMover, error)

	// TopLosers returns the securities with the highest negative change.
	TopLosers(ctx context.Context) ([]models.PriceMover, error)

	// MarketStatus reports whether the exchange is open.
	MarketStatus(ctx context.Context) (*models.MarketStatus, error)

	// IndexGraph returns the intraday series of the main index.
	IndexGraph(ctx context.Context) ([]models.GraphPoint, error)

	// ScripPriceGraph returns the intraday price series for one symbol.
	ScripPriceGraph(ctx context.Context, symbol string) ([]models.GraphPoint, error)

	// CompanyList returns all listed companies.
	CompanyList(ctx context.Context) ([]models.Company, error)

	// SecurityList returns all tradable securities.
	SecurityList(ctx context.Context) ([]models.Security, error)

	// PriceVolume returns the per-security price/volume snapshot.
	PriceVolume(ctx context.Context) ([]models.PriceVolume, error)

	// LiveMarket returns the live trading feed.
	LiveMarket(ctx context.Context) ([]models.LiveQuote, error)

	// MarketDepth returns the order book for one symbol.
	MarketDepth(ctx context.Context, symbol string) (*models.MarketDepth, error)
}
