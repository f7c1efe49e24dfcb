// Package analytics contiene los casos de uso del motor de agregación de
// registros: el snapshot del dashboard y los reportes de reconciliación
// (niveles de precio por producto, variaciones de conteo físico).
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tu-usuario/registries-console/internal/application/dto"
	"github.com/tu-usuario/registries-console/internal/domain/entity"
	"github.com/tu-usuario/registries-console/internal/domain/registry"
	"github.com/tu-usuario/registries-console/internal/domain/repository"
	"github.com/tu-usuario/registries-console/pkg/config"
	"github.com/tu-usuario/registries-console/pkg/logger"
)

// DashboardUseCase produce el snapshot de reporte del dashboard a partir de
// los registros maestros del record store.
//
// Cada invocación trabaja desde cero: lote fresco, mapas de lookup nuevos,
// ningún estado entre corridas. El snapshot devuelto se trata como inmutable.
type DashboardUseCase struct {
	reader repository.RegistryReader
	cfg    config.DashboardConfig
	log    *logger.Logger
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(reader repository.RegistryReader, cfg config.DashboardConfig, log *logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{reader: reader, cfg: cfg, log: log}
}

// batchResult resultado de un fetch del lote inicial.
type batchResult[T any] struct {
	items []T
	err   error
}

// GetSnapshot ejecuta una corrida completa del motor de agregación.
//
// Fases:
//  1. Lote inicial: marcas, departamentos, productos, unidades y conteos en
//     cinco fetches concurrentes. Se espera a los cinco; si cualquiera falla,
//     la corrida entera falla (fail-fast, sin snapshot parcial).
//  2. Joins por padre: subdepartamentos por departamento y niveles de precio
//     por producto, con fallos por padre aislados (ver joinByParent).
//  3. Métricas, agrupación y ranking sobre el lote.
//  4. Ensamblado del snapshot.
func (uc *DashboardUseCase) GetSnapshot(ctx context.Context) (*dto.DashboardSnapshotDTO, error) {
	started := time.Now()

	// ── Lote inicial: cinco fetches concurrentes ──────────────────────────────
	brandsCh := make(chan batchResult[entity.Brand], 1)
	deptsCh := make(chan batchResult[entity.Department], 1)
	productsCh := make(chan batchResult[entity.Product], 1)
	unitsCh := make(chan batchResult[entity.Unit], 1)
	stocksCh := make(chan batchResult[entity.StockTaking], 1)

	go func() {
		items, err := uc.reader.ListBrands(ctx)
		brandsCh <- batchResult[entity.Brand]{items, err}
	}()
	go func() {
		items, err := uc.reader.ListDepartments(ctx)
		deptsCh <- batchResult[entity.Department]{items, err}
	}()
	go func() {
		items, err := uc.reader.ListProducts(ctx)
		productsCh <- batchResult[entity.Product]{items, err}
	}()
	go func() {
		items, err := uc.reader.ListUnits(ctx)
		unitsCh <- batchResult[entity.Unit]{items, err}
	}()
	go func() {
		items, err := uc.reader.ListStockTakings(ctx)
		stocksCh <- batchResult[entity.StockTaking]{items, err}
	}()

	brands := <-brandsCh
	departments := <-deptsCh
	products := <-productsCh
	units := <-unitsCh
	stocks := <-stocksCh

	if brands.err != nil {
		return nil, fmt.Errorf("dashboard: marcas: %w", brands.err)
	}
	if departments.err != nil {
		return nil, fmt.Errorf("dashboard: departamentos: %w", departments.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", products.err)
	}
	if units.err != nil {
		return nil, fmt.Errorf("dashboard: unidades: %w", units.err)
	}
	if stocks.err != nil {
		return nil, fmt.Errorf("dashboard: conteos de stock: %w", stocks.err)
	}

	// ── Mapas de lookup, construidos por corrida ──────────────────────────────
	departmentMap := make(map[int64]string, len(departments.items))
	for _, d := range departments.items {
		departmentMap[d.ID] = d.Name
	}
	productMap := make(map[int64]string, len(products.items))
	for _, p := range products.items {
		productMap[p.ID] = p.Name
	}

	// ── Joins por padre (corren solo con los ids descubiertos en el lote) ─────
	subDepartments, subFailures := joinByParent(ctx, departments.items,
		func(d entity.Department) int64 { return d.ID },
		func(ctx context.Context, d entity.Department) ([]entity.SubDepartment, error) {
			children, err := uc.reader.ListSubDepartments(ctx, d.ID)
			if err != nil {
				return nil, err
			}
			for i := range children {
				children[i].ParentDepartmentID = d.ID
				children[i].ParentDepartmentName = d.Name
			}
			return children, nil
		})
	for _, f := range subFailures {
		uc.log.Warn().Int64("departmentId", f.ParentID).Err(f.Err).
			Msg("subdepartamentos: fetch degradado a contribución vacía")
	}

	priceLevels, tierFailures := joinByParent(ctx, products.items,
		func(p entity.Product) int64 { return p.ID },
		func(ctx context.Context, p entity.Product) ([]entity.PriceLevel, error) {
			tiers, err := uc.reader.ListPriceLevels(ctx, p.ID)
			if err != nil {
				return nil, err
			}
			for i := range tiers {
				if tiers[i].ProductID == 0 {
					tiers[i].ProductID = p.ID
				}
				tiers[i].ProductName = p.Name
			}
			return tiers, nil
		})
	for _, f := range tierFailures {
		uc.log.Warn().Int64("productId", f.ParentID).Err(f.Err).
			Msg("niveles de precio: fetch degradado a contribución vacía")
	}

	// ── Métricas, agrupación y ranking ────────────────────────────────────────
	metrics := registry.ComputeStockMetrics(stocks.items, registry.StockPolicy{
		DefaultMinQuantity: uc.cfg.MinQuantityDefault,
	})

	byDepartment := registry.GroupProducts(products.items, departmentMap)

	stockByProduct := make([]dto.StockLineDTO, 0, len(stocks.items))
	for _, s := range stocks.items {
		stockByProduct = append(stockByProduct, dto.StockLineDTO{
			Name:     registry.ResolveName(s.Product, s.ProductID, productMap, registry.UnknownProduct),
			Quantity: s.EffectiveQuantity(),
		})
	}

	lowSample := metrics.LowStock
	if len(lowSample) > uc.cfg.LowStockSample {
		lowSample = lowSample[:uc.cfg.LowStockSample]
	}
	lowStockItems := make([]dto.LowStockItemDTO, 0, len(lowSample))
	for _, s := range lowSample {
		lowStockItems = append(lowStockItems, dto.LowStockItemDTO{
			ProductName: registry.ResolveName(s.Product, s.ProductID, productMap, registry.UnknownProduct),
			Quantity:    s.EffectiveQuantity(),
			MinQuantity: s.EffectiveMinQuantity(uc.cfg.MinQuantityDefault),
		})
	}

	recent := make([]dto.RecentProductDTO, 0, uc.cfg.RecentProducts)
	for _, p := range registry.RecentProducts(products.items, uc.cfg.RecentProducts) {
		recent = append(recent, dto.RecentProductDTO{
			ID:           p.ID,
			Code:         p.Code,
			Name:         p.Name,
			SellingPrice: p.SellingPrice,
			Stock:        p.Stock,
			CreatedAt:    p.CreatedAt,
		})
	}

	// ── Ensamblado ────────────────────────────────────────────────────────────
	snapshot := &dto.DashboardSnapshotDTO{
		SnapshotID:  uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Counts: dto.SnapshotCountsDTO{
			Brands:         len(brands.items),
			Departments:    len(departments.items),
			SubDepartments: len(subDepartments),
			Products:       len(products.items),
			Units:          len(units.items),
			PriceLevels:    len(priceLevels),
			TotalStockQty:  metrics.TotalQuantity,
			LowStock:       len(metrics.LowStock),
			OutOfStock:     len(metrics.OutOfStock),
		},
		ProductsByDepartment: byDepartment,
		StockByProduct:       stockByProduct,
		LowStockItems:        lowStockItems,
		RecentProducts:       recent,
	}

	uc.log.Debug().
		Str("snapshotId", snapshot.SnapshotID).
		Int("products", snapshot.Counts.Products).
		Int("joinFailures", len(subFailures)+len(tierFailures)).
		Dur("elapsed", time.Since(started)).
		Msg("snapshot del dashboard ensamblado")

	return snapshot, nil
}
