package models

// IndexValue represents the NEPSE index or one of its sector sub-indices
// as reported by the exchange.
//
// Fields:
//   - Index: Display name of the index (e.g., "NEPSE Index", "Banking SubIndex").
//   - CurrentValue: Latest computed value of the index.
//   - PreviousValue: Value at the previous close.
//   - PointChange: Absolute change since the previous close.
//   - PercentageChange: Relative change since the previous close.
//
// swagger:model IndexValue
type IndexValue struct {
	ID               int     `json:"id,omitempty"`
	Index            string  `json:"index" example:"NEPSE Index"`
	CurrentValue     float64 `json:"currentValue" example:"2045.31"`
	PreviousValue    float64 `json:"previousValue" example:"2032.15"`
	PointChange      float64 `json:"pointChange" example:"13.16"`
	PercentageChange float64 `json:"percentageChange" example:"0.65"`
	High             float64 `json:"high,omitempty"`
	Low              float64 `json:"low,omitempty"`
}

// GraphPoint is a single observation in a historical index or price series.
type GraphPoint struct {
	Time  int64   `json:"time"`  // Unix timestamp of the observation
	Value float64 `json:"value"` // Index value or price at that instant
}
