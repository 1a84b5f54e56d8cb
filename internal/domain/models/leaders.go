package models

// TurnoverLeader is one row of the top-turnover ranking.
type TurnoverLeader struct {
	Symbol       string  `json:"symbol" example:"NABIL"`
	SecurityName string  `json:"securityName,omitempty"`
	Turnover     float64 `json:"turnover" example:"125000000"`
	ClosingPrice float64 `json:"closingPrice,omitempty"`
}

// TransactionLeader is one row of the top-transaction-count ranking.
type TransactionLeader struct {
	Symbol       string `json:"symbol" example:"NABIL"`
	SecurityName string `json:"securityName,omitempty"`
	TotalTrades  int64  `json:"totalTrades" example:"1845"`
}

// TradeLeader is one row of the top-traded-quantity ranking.
type TradeLeader struct {
	Symbol       string  `json:"symbol" example:"NABIL"`
	SecurityName string  `json:"securityName,omitempty"`
	ShareTraded  int64   `json:"shareTraded" example:"240000"`
	ClosingPrice float64 `json:"closingPrice,omitempty"`
}

// PriceMover is one row of the top-gainers or top-losers ranking. The same
// shape serves both feeds; losers carry negative changes.
type PriceMover struct {
	Symbol           string  `json:"symbol" example:"SHIVM"`
	SecurityName     string  `json:"securityName,omitempty"`
	PointChange      float64 `json:"pointChange" example:"24.9"`
	PercentageChange float64 `json:"percentageChange" example:"9.87"`
	LTP              float64 `json:"ltp" example:"277.1"`
}
