package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardSnapshotDTO respuesta de GET /api/dashboard.
//
// Es el snapshot inmutable de una corrida del motor de agregación: el caller
// no debe mutarlo ni realimentarlo al motor. Las claves JSON son camelCase
// porque el consumidor es la consola web existente.
type DashboardSnapshotDTO struct {
	SnapshotID  string    `json:"snapshotId"`  // uuid de la corrida
	GeneratedAt time.Time `json:"generatedAt"` // instante de ensamblado

	Counts SnapshotCountsDTO `json:"counts"`

	// Conteo de productos por nombre de departamento resuelto.
	// Incluye el grupo "Unassigned"; la suma iguala a Counts.Products.
	ProductsByDepartment map[string]int `json:"productsByDepartment"`

	// Un renglón por registro de conteo, con el producto ya resuelto a nombre.
	StockByProduct []StockLineDTO `json:"stockByProduct"`

	// Primeros N registros en bajo stock, en orden de llegada del lote.
	LowStockItems []LowStockItemDTO `json:"lowStockItems"`

	// Top N productos por fecha de creación descendente.
	RecentProducts []RecentProductDTO `json:"recentProducts"`
}

// SnapshotCountsDTO los KPIs de cabecera del dashboard.
type SnapshotCountsDTO struct {
	Brands         int   `json:"brands"`
	Departments    int   `json:"departments"`
	SubDepartments int   `json:"subDepartments"`
	Products       int   `json:"products"`
	Units          int   `json:"units"`
	PriceLevels    int   `json:"priceLevels"`
	TotalStockQty  int64 `json:"totalStockQty"`
	LowStock       int   `json:"lowStock"`
	OutOfStock     int   `json:"outOfStock"`
}

// StockLineDTO renglón de stock por producto.
type StockLineDTO struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// LowStockItemDTO registro de conteo en bajo stock, listo para pintar.
type LowStockItemDTO struct {
	ProductName string `json:"productName"`
	Quantity    int64  `json:"quantity"`
	MinQuantity int64  `json:"minQuantity"`
}

// RecentProductDTO producto del widget de recientes.
type RecentProductDTO struct {
	ID           int64           `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	Stock        int64           `json:"stock"`
	CreatedAt    *time.Time      `json:"createdAt,omitempty"`
}
