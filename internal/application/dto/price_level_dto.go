package dto

import "github.com/shopspring/decimal"

// PriceTierSummaryDTO respuesta de GET /api/products/:id/price-levels/summary.
// Resume los niveles de precio de un producto ya resueltos por prioridad.
type PriceTierSummaryDTO struct {
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	TierCount   int    `json:"tierCount"`

	// Mín/máx entre los precios de los niveles; 0/0 si no hay niveles.
	MinPrice decimal.Decimal `json:"minPrice"`
	MaxPrice decimal.Decimal `json:"maxPrice"`

	// Niveles ordenados por prioridad ascendente (prioridad 1 primero).
	Tiers []PriceTierDTO `json:"tiers"`

	// Nivel con prioridad 1; ausente si el producto no lo tiene.
	Primary *PriceTierDTO `json:"primary,omitempty"`
}

// PriceTierDTO un nivel de precio dentro del resumen.
type PriceTierDTO struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Priority int             `json:"priority"`
	Primary  bool            `json:"primary"`
}
