package service

import (
	"context"

	"github.com/guttosm/nepsepulse/internal/domain/models"
	"github.com/guttosm/nepsepulse/internal/nepse"
)

// MarketService exposes the exchange feeds to the HTTP layer. Most methods
// are single upstream calls; Summary, Index, and SubIndices reshape the
// upstream lists into maps keyed by label so clients can address entries
// directly.
type MarketService interface {
	Summary(ctx context.Context) (map[string]float64, error)
	Index(ctx context.Context) (map[string]models.IndexValue, error)
	SubIndices(ctx context.Context) (map[string]models.IndexValue, error)
	TopTradeScrips(ctx context.Context) ([]models.TradeLeader, error)
	TopTurnoverScrips(ctx context.Context) ([]models.TurnoverLeader, error)
	TopTransactionScrips(ctx context.Context) ([]models.TransactionLeader, error)
	SupplyDemand(ctx context.Context) (*models.SupplyDemand, error)
	TopGainers(ctx context.Context) ([]models.PriceMover, error)
	TopLosers(ctx context.Context) ([]models.PriceMover, error)
	MarketStatus(ctx context.Context) (*models.MarketStatus, error)
	IndexGraph(ctx context.Context) ([]models.GraphPoint, error)
	ScripPriceGraph(ctx context.Context, symbol string) ([]models.GraphPoint, error)
	CompanyList(ctx context.Context) ([]models.Company, error)
	SecurityList(ctx context.Context) ([]models.Security, error)
	PriceVolume(ctx context.Context) ([]models.PriceVolume, error)
	LiveMarket(ctx context.Context) ([]models.LiveQuote, error)
	MarketDepth(ctx context.Context, symbol string) (*models.MarketDepth, error)
}

type marketService struct {
	client nepse.Client
}

// NewMarketService wraps the upstream client in the service interface.
func NewMarketService(client nepse.Client) MarketService {
	return &marketService{client: client}
}

// Summary flattens the summary rows into a detail → value map.
func (s *marketService) Summary(ctx context.Context) (map[string]float64, error) {
	rows, err := s.client.Summary(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(rows))
	for _, row := range rows {
		out[row.Detail] = row.Value
	}
	return out, nil
}

// Index keys the index records by their display name.
func (s *marketService) Index(ctx context.Context) (map[string]models.IndexValue, error) {
	rows, err := s.client.Index(ctx)
	if err != nil {
		return nil, err
	}
	return indexByName(rows), nil
}

// SubIndices keys the sub-index records by their display name.
func (s *marketService) SubIndices(ctx context.Context) (map[string]models.IndexValue, error) {
	rows, err := s.client.SubIndices(ctx)
	if err != nil {
		return nil, err
	}
	return indexByName(rows), nil
}

func indexByName(rows []models.IndexValue) map[string]models.IndexValue {
	out := make(map[string]models.IndexValue, len(rows))
	for _, row := range rows {
		out[row.Index] = row
	}
	return out
}

func (s *marketService) TopTradeScrips(ctx context.Context) ([]models.TradeLeader, error) {
	return s.client.TopTradeScrips(ctx)
}

func (s *marketService) TopTurnoverScrips(ctx context.Context) ([]models.TurnoverLeader, error) {
	return s.client.TopTurnoverScrips(ctx)
}

func (s *marketService) TopTransactionScrips(ctx context.Context) ([]models.TransactionLeader, error) {
	return s.client.TopTransactionScrips(ctx)
}

func (s *marketService) SupplyDemand(ctx context.Context) (*models.SupplyDemand, error) {
	return s.client.SupplyDemand(ctx)
}

func (s *marketService) TopGainers(ctx context.Context) ([]models.PriceMover, error) {
	return s.client.TopGainers(ctx)
}

func (s *marketService) TopLosers(ctx context.Context) ([]models.PriceMover, error) {
	return s.client.TopLosers(ctx)
}

func (s *marketService) MarketStatus(ctx context.Context) (*models.MarketStatus, error) {
	return s.client.MarketStatus(ctx)
}

func (s *marketService) IndexGraph(ctx context.Context) ([]models.GraphPoint, error) {
	return s.client.IndexGraph(ctx)
}

func (s *marketService) ScripPriceGraph(ctx context.Context, symbol string) ([]models.GraphPoint, error) {
	return s.client.ScripPriceGraph(ctx, symbol)
}

func (s *marketService) CompanyList(ctx context.Context) ([]models.Company, error) {
	return s.client.CompanyList(ctx)
}

func (s *marketService) SecurityList(ctx context.Context) ([]models.Security, error) {
	return s.client.SecurityList(ctx)
}

func (s *marketService) PriceVolume(ctx context.Context) ([]models.PriceVolume, error) {
	return s.client.PriceVolume(ctx)
}

func (s *marketService) LiveMarket(ctx context.Context) ([]models.LiveQuote, error) {
	return s.client.LiveMarket(ctx)
}

func (s *marketService) MarketDepth(ctx context.Context, symbol string) (*models.MarketDepth, error) {
	return s.client.MarketDepth(ctx, symbol)
}
