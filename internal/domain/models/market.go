package models

// SummaryItem is one row of the market-summary feed, a label/value pair such
// as ("Total Turnover Rs:", 5.1e9).
type SummaryItem struct {
	Detail string  `json:"detail" example:"Total Turnover Rs:"`
	Value  float64 `json:"value" example:"5100000000"`
}

// MarketStatus reports whether the exchange is currently accepting orders.
// IsOpen is the literal upstream flag ("OPEN", "CLOSE", "Pre Open").
type MarketStatus struct {
	ID     int    `json:"id,omitempty"`
	IsOpen string `json:"isOpen" example:"OPEN"`
	AsOf   string `json:"asOf" example:"2025-08-28T12:59:59"`
}

// PriceVolume is the per-security price and volume snapshot for the current
// trading day.
type PriceVolume struct {
	Symbol             string  `json:"symbol" example:"NABIL"`
	SecurityName       string  `json:"securityName,omitempty"`
	LastTradedPrice    float64 `json:"lastTradedPrice" example:"501.5"`
	PercentageChange   float64 `json:"percentageChange" example:"1.2"`
	TotalTradeQuantity int64   `json:"totalTradeQuantity" example:"53000"`
	TotalTradeValue    float64 `json:"totalTradeValue" example:"26579500"`
}

// LiveQuote is one security's row of the live-market feed.
type LiveQuote struct {
	Symbol              string  `json:"symbol" example:"NABIL"`
	SecurityName        string  `json:"securityName,omitempty"`
	LastTradedPrice     float64 `json:"lastTradedPrice" example:"501.5"`
	LastTradedVolume    int64   `json:"lastTradedVolume,omitempty"`
	TotalTradeQuantity  int64   `json:"totalTradeQuantity,omitempty"`
	TotalTradeValue     float64 `json:"totalTradeValue,omitempty"`
	PercentageChange    float64 `json:"percentageChange,omitempty"`
	LastUpdatedDateTime string  `json:"lastUpdatedDateTime,omitempty"`
}

// OrderSummary aggregates the open orders on one side of the book for a
// security, as reported by the supply-demand feed.
type OrderSummary struct {
	SecurityID    int    `json:"securityId,omitempty"`
	Symbol        string `json:"symbol" example:"NABIL"`
	SecurityName  string `json:"securityName,omitempty"`
	TotalOrder    int    `json:"totalOrder" example:"41"`
	TotalQuantity int64  `json:"totalQuantity" example:"15200"`
}

// SupplyDemand pairs the market-wide buy and sell order summaries.
type SupplyDemand struct {
	Supply []OrderSummary `json:"supplyList"`
	Demand []OrderSummary `json:"demandList"`
}

// DepthOrder is one price level of a security's order book.
type DepthOrder struct {
	Price      float64 `json:"orderBookOrderPrice" example:"500"`
	Quantity   int64   `json:"quantity" example:"1200"`
	OrderCount int     `json:"orderCount" example:"7"`
}

// OrderBook holds both sides of a security's market depth.
type OrderBook struct {
	Buy  []DepthOrder `json:"buyMarketDepthList"`
	Sell []DepthOrder `json:"sellMarketDepthList"`
}

// MarketDepth is the full depth snapshot for one security.
//
// swagger:model MarketDepth
type MarketDepth struct {
	Symbol       string    `json:"symbol,omitempty" example:"NABIL"`
	Depth        OrderBook `json:"marketDepth"`
	TotalBuyQty  int64     `json:"totalBuyQty" example:"54100"`
	TotalSellQty int64     `json:"totalSellQty" example:"48700"`
}
