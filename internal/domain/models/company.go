package models

// Company represents a company listed on the exchange, as returned by the
// company-list feed. SectorName drives the sector roll-up in the statistics
// aggregation.
//
// swagger:model Company
type Company struct {
	Symbol         string `json:"symbol" example:"NABIL"`
	SecurityName   string `json:"securityName" example:"Nabil Bank Limited"`
	SecurityID     int    `json:"securityId" example:"131"`
	SectorName     string `json:"sectorName" example:"Commercial Banks"`
	InstrumentType string `json:"instrumentType" example:"Equity"`
	TotalQuantity  int64  `json:"totalQuantity,omitempty"`
}

// Security is an entry of the tradable-security list. It is a lighter record
// than Company and includes instruments that have no sector (mutual funds,
// debentures). The security ID is what symbol-parameterized upstream
// endpoints (market depth, price graphs) key on.
//
// swagger:model Security
type Security struct {
	ID           int    `json:"id" example:"131"`
	Symbol       string `json:"symbol" example:"NABIL"`
	SecurityName string `json:"securityName" example:"Nabil Bank Limited"`
	ActiveStatus string `json:"activeStatus,omitempty" example:"A"`
}
