package service

import (
	"context"
	"errors"
	"testing"

	"github.com/guttosm/nepsepulse/internal/domain/models"
)

func TestMarketService_SummaryReshape(t *testing.T) {
	svc := NewMarketService(&stubClient{})
	out, err := svc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out["Total Turnover Rs:"] != 100 {
		t.Fatalf("summary not keyed by detail: %+v", out)
	}
}

func TestMarketService_IndexReshape(t *testing.T) {
	svc := NewMarketService(&stubClient{})
	out, err := svc.Index(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	rec, ok := out["NEPSE Index"]
	if !ok || rec.CurrentValue != 2000 {
		t.Fatalf("index not keyed by name: %+v", out)
	}
}

func TestMarketService_SubIndicesReshape(t *testing.T) {
	svc := NewMarketService(&stubClient{subIndices: financeSubIndices()})
	out, err := svc.SubIndices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 || out["Finance Index"].CurrentValue != 1800.5 {
		t.Fatalf("sub-indices not keyed by name: %+v", out)
	}
}

func TestMarketService_ErrorPropagates(t *testing.T) {
	svc := NewMarketService(&stubClient{err: errors.New("boom")})
	if _, err := svc.Summary(context.Background()); err == nil {
		t.Fatalf("expected error from summary")
	}
	if _, err := svc.TopGainers(context.Background()); err == nil {
		t.Fatalf("expected error from top gainers")
	}
}

func TestMarketService_PassThrough(t *testing.T) {
	client := &stubClient{
		trades:   []models.TradeLeader{{Symbol: "NABIL", ShareTraded: 100}},
		turnover: []models.TurnoverLeader{{Symbol: "NABIL", Turnover: 50000}},
	}
	svc := NewMarketService(client)

	trades, err := svc.TopTradeScrips(context.Background())
	if err != nil || len(trades) != 1 || trades[0].Symbol != "NABIL" {
		t.Fatalf("trade leaders not passed through: %+v err=%v", trades, err)
	}
	turnover, err := svc.TopTurnoverScrips(context.Background())
	if err != nil || len(turnover) != 1 || turnover[0].Turnover != 50000 {
		t.Fatalf("turnover leaders not passed through: %+v err=%v", turnover, err)
	}
	status, err := svc.MarketStatus(context.Background())
	if err != nil || status.IsOpen != "OPEN" {
		t.Fatalf("market status not passed through: %+v err=%v", status, err)
	}
}
