package models

// ScripStats is the per-symbol summary produced by the statistics
// aggregation: the company's sector plus its totals across the day's
// leader boards. A symbol absent from a leader board contributes zero for
// that metric.
//
// swagger:model ScripStats
type ScripStats struct {
	Symbol             string  `json:"symbol" example:"NABIL"`
	SectorName         string  `json:"sectorName" example:"Commercial Banks"`
	TotalTurnover      float64 `json:"totalTurnover" example:"125000000"`
	TotalTrades        int64   `json:"totalTrades" example:"1845"`
	TotalTradeQuantity int64   `json:"totalTradeQuantity" example:"240000"`
	PointChange        float64 `json:"pointChange" example:"24.9"`
	PercentageChange   float64 `json:"percentageChange" example:"9.87"`
	LTP                float64 `json:"ltp" example:"277.1"`
}

// SectorStats sums the scrip totals of every company in one sector and
// attaches the sector's sub-index.
//
// swagger:model SectorStats
type SectorStats struct {
	SectorName         string     `json:"sectorName" example:"Commercial Banks"`
	TotalTrades        int64      `json:"totalTrades" example:"9120"`
	TotalTradeQuantity int64      `json:"totalTradeQuantity" example:"1830000"`
	TotalTurnover      float64    `json:"totalTurnover" example:"890000000"`
	Index              IndexValue `json:"index"`
}

// MarketStats is the combined output of the statistics aggregation,
// keyed by symbol and by sector name.
//
// swagger:model MarketStats
type MarketStats struct {
	ScripsDetails  map[string]ScripStats  `json:"scripsDetails"`
	SectorsDetails map[string]SectorStats `json:"sectorsDetails"`
}
