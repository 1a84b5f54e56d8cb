package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/nepsepulse/internal/domain/models"
	"github.com/guttosm/nepsepulse/internal/nepse"
)

// ErrUnknownSector is returned when a company's sector has no entry in the
// sector → sub-index table. The table covers every sector the exchange
// defines; a miss means the upstream schema changed and the whole request
// fails rather than returning a partial roll-up.
var ErrUnknownSector = errors.New("sector has no sub-index mapping")

// sectorSubIndex maps company sector names to the display labels of their
// sub-indices. The exchange names the two differently, so the join cannot be
// done on the raw strings.
var sectorSubIndex = map[string]string{
	"Commercial Banks":             "Banking SubIndex",
	"Development Banks":            "Development Bank Index",
	"Finance":                      "Finance Index",
	"Hotels And Tourism":           "Hotels And Tourism Index",
	"Hydro Power":                  "HydroPower Index",
	"Investment":                   "Investment Index",
	"Life Insurance":               "Life Insurance",
	"Manufacturing And Processing": "Manufacturing And Processing",
	"Microfinance":                 "Microfinance Index",
	"Mutual Fund":                  "Mutual Fund",
	"Non Life Insurance":           "Non Life Insurance",
	"Others":                       "Others Index",
	"Tradings":                     "Trading Index",
}

// StatsService computes the combined per-symbol and per-sector market
// statistics from the day's feeds.
type StatsService interface {
	MarketStats(ctx context.Context) (*models.MarketStats, error)
}

type statsService struct {
	client nepse.Client
}

// NewStatsService builds a StatsService on top of the upstream client.
func NewStatsService(client nepse.Client) StatsService {
	return &statsService{client: client}
}

// statsInputs holds the upstream snapshots one aggregation runs on. Built
// fresh per request; nothing survives between calls.
type statsInputs struct {
	companies    []models.Company
	turnover     []models.TurnoverLeader
	transactions []models.TransactionLeader
	trades       []models.TradeLeader
	gainers      []models.PriceMover
	losers       []models.PriceMover
	priceVolume  []models.PriceVolume
	subIndices   []models.IndexValue
}

// MarketStats fetches the feeds concurrently and joins them by symbol.
//
// Join rules:
//   - Every company in the company list yields one ScripStats record.
//   - Turnover, trade count, and traded quantity default to 0 when the
//     symbol is absent from the corresponding leader board.
//   - Point change, percentage change, and ltp come from the gainers feed,
//     else the losers feed, else all zero. Gainers win on overlap.
//   - Sector totals sum their member scrips; each sector carries its
//     sub-index looked up through sectorSubIndex.
//
// Any upstream failure fails the whole request; there are no partial
// results. The errgroup cancels outstanding fetches on the first error.
func (s *statsService) MarketStats(ctx context.Context) (*models.MarketStats, error) {
	in, err := s.fetchInputs(ctx)
	if err != nil {
		return nil, err
	}
	return joinStats(in)
}

func (s *statsService) fetchInputs(ctx context.Context) (*statsInputs, error) {
	in := &statsInputs{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		in.companies, err = s.client.CompanyList(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.turnover, err = s.client.TopTurnoverScrips(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.transactions, err = s.client.TopTransactionScrips(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.trades, err = s.client.TopTradeScrips(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.gainers, err = s.client.TopGainers(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.losers, err = s.client.TopLosers(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.priceVolume, err = s.client.PriceVolume(gctx)
		return err
	})
	g.Go(func() (err error) {
		in.subIndices, err = s.client.SubIndices(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return in, nil
}

// joinStats is the pure part of the aggregation: request-local maps only,
// no shared state.
func joinStats(in *statsInputs) (*models.MarketStats, error) {
	turnoverBy := make(map[string]models.TurnoverLeader, len(in.turnover))
	for _, l := range in.turnover {
		turnoverBy[l.Symbol] = l
	}
	transactionBy := make(map[string]models.TransactionLeader, len(in.transactions))
	for _, l := range in.transactions {
		transactionBy[l.Symbol] = l
	}
	tradeBy := make(map[string]models.TradeLeader, len(in.trades))
	for _, l := range in.trades {
		tradeBy[l.Symbol] = l
	}
	gainerBy := make(map[string]models.PriceMover, len(in.gainers))
	for _, m := range in.gainers {
		gainerBy[m.Symbol] = m
	}
	loserBy := make(map[string]models.PriceMover, len(in.losers))
	for _, m := range in.losers {
		loserBy[m.Symbol] = m
	}
	subIndexBy := make(map[string]models.IndexValue, len(in.subIndices))
	for _, idx := range in.subIndices {
		subIndexBy[idx.Index] = idx
	}

	scrips := make(map[string]models.ScripStats, len(in.companies))
	for _, company := range in.companies {
		st := models.ScripStats{
			Symbol:     company.Symbol,
			SectorName: company.SectorName,
		}
		if l, ok := turnoverBy[company.Symbol]; ok {
			st.TotalTurnover = l.Turnover
		}
		if l, ok := transactionBy[company.Symbol]; ok {
			st.TotalTrades = l.TotalTrades
		}
		if l, ok := tradeBy[company.Symbol]; ok {
			st.TotalTradeQuantity = l.ShareTraded
		}
		if m, ok := gainerBy[company.Symbol]; ok {
			st.PointChange, st.PercentageChange, st.LTP = m.PointChange, m.PercentageChange, m.LTP
		} else if m, ok := loserBy[company.Symbol]; ok {
			st.PointChange, st.PercentageChange, st.LTP = m.PointChange, m.PercentageChange, m.LTP
		}
		scrips[company.Symbol] = st
	}

	sectors := make(map[string]models.SectorStats)
	for _, st := range scrips {
		sector, ok := sectors[st.SectorName]
		if !ok {
			label, mapped := sectorSubIndex[st.SectorName]
			if !mapped {
				return nil, fmt.Errorf("%w: %q", ErrUnknownSector, st.SectorName)
			}
			idx, found := subIndexBy[label]
			if !found {
				return nil, fmt.Errorf("sub-index %q missing from upstream feed", label)
			}
			sector = models.SectorStats{SectorName: st.SectorName, Index: idx}
		}
		sector.TotalTrades += st.TotalTrades
		sector.TotalTradeQuantity += st.TotalTradeQuantity
		sector.TotalTurnover += st.TotalTurnover
		sectors[st.SectorName] = sector
	}

	return &models.MarketStats{ScripsDetails: scrips, SectorsDetails: sectors}, nil
}
