package entity

import "github.com/shopspring/decimal"

// PriceLevel nivel de precio de un producto (Retail, Wholesale, ...).
// Priority ordena los niveles entre hermanos: menor valor = mayor precedencia;
// el nivel con priority 1 es el nivel primario del producto.
//
// ProductName lo estampa el join por padre antes de mezclar.
type PriceLevel struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Priority int             `json:"priority"`
	Active   bool            `json:"active"`

	Product     EntityRef `json:"product"`
	ProductID   int64     `json:"productId,omitempty"`
	ProductName string    `json:"productName,omitempty"`
}
