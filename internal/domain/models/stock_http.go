package models

// Requests for the stock HTTP endpoints. Defined in domain for consistency and reuse.

type SearchRequest struct {
	Name  string `query:"name" json:"name" validate:"required"`
	Limit int    `query:"limit" json:"limit" default:"10" validate:"gte=1,lte=50"`
}

type SymbolRequest struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required"`
}
