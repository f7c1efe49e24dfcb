package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product producto del catálogo tal y como lo entrega el record store.
//
// Las relaciones llegan con forma ambigua (objeto embebido o id plano), por
// eso cada una se modela como EntityRef más un campo *ID plano de respaldo.
// Nota: el esquema canónico cuelga el producto de un SubDepartment, pero el
// dashboard agrupa por una referencia directa a Department/departmentId que
// el backend también emite; se conservan ambas tal cual llegan.
type Product struct {
	ID           int64           `json:"id"`
	Code         string          `json:"code"`
	Name         string          `json:"name"`
	SellingPrice decimal.Decimal `json:"sellingPrice"`
	CostPrice    decimal.Decimal `json:"costPrice"`
	Stock        int64           `json:"stock"`
	ReorderLevel *int64          `json:"reorderLevel,omitempty"`
	Active       bool            `json:"active"`
	CreatedAt    *time.Time      `json:"createdAt,omitempty"`

	Department   EntityRef `json:"department"`
	DepartmentID int64     `json:"departmentId,omitempty"`

	SubDepartment   EntityRef `json:"subDepartment"`
	SubDepartmentID int64     `json:"subDepartmentId,omitempty"`

	Brand   EntityRef `json:"brand"`
	BrandID int64     `json:"brandId,omitempty"`

	Unit   EntityRef `json:"unit"`
	UnitID int64     `json:"unitId,omitempty"`
}
