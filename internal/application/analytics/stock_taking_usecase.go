package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/registries-console/internal/application/dto"
	"github.com/tu-usuario/registries-console/internal/domain/entity"
	"github.com/tu-usuario/registries-console/internal/domain/registry"
	"github.com/tu-usuario/registries-console/internal/domain/repository"
)

// StockTakingUseCase produce el reporte de variaciones de los conteos
// físicos: clasificación por signo, número de discrepancias y variación neta.
type StockTakingUseCase struct {
	reader repository.RegistryReader
}

// NewStockTakingUseCase construye el caso de uso.
func NewStockTakingUseCase(reader repository.RegistryReader) *StockTakingUseCase {
	return &StockTakingUseCase{reader: reader}
}

// GetVarianceReport construye el reporte sobre el lote completo de conteos.
// Los dos fetches (conteos y productos) corren concurrentes y ambos son
// fatales si fallan: sin productos no hay nombres que resolver y el reporte
// perdería la garantía de no descartar registros.
func (uc *StockTakingUseCase) GetVarianceReport(ctx context.Context) (*dto.StockTakingReportDTO, error) {
	stocksCh := make(chan batchResult[entity.StockTaking], 1)
	productsCh := make(chan batchResult[entity.Product], 1)

	go func() {
		items, err := uc.reader.ListStockTakings(ctx)
		stocksCh <- batchResult[entity.StockTaking]{items, err}
	}()
	go func() {
		items, err := uc.reader.ListProducts(ctx)
		productsCh <- batchResult[entity.Product]{items, err}
	}()

	stocks := <-stocksCh
	products := <-productsCh

	if stocks.err != nil {
		return nil, fmt.Errorf("reporte de conteos: conteos de stock: %w", stocks.err)
	}
	if products.err != nil {
		return nil, fmt.Errorf("reporte de conteos: productos: %w", products.err)
	}

	productMap := make(map[int64]string, len(products.items))
	for _, p := range products.items {
		productMap[p.ID] = p.Name
	}

	report := &dto.StockTakingReportDTO{
		DiscrepancyCount: registry.DiscrepancyCount(stocks.items),
		NetVariance:      registry.NetVariance(stocks.items),
		Records:          make([]dto.StockTakingLineDTO, 0, len(stocks.items)),
	}
	for _, s := range stocks.items {
		variance := s.EffectiveVariance()
		var physical int64
		if s.PhysicalStock != nil {
			physical = *s.PhysicalStock
		} else {
			physical = s.EffectiveQuantity()
		}
		report.Records = append(report.Records, dto.StockTakingLineDTO{
			ID:             s.ID,
			ProductName:    registry.ResolveName(s.Product, s.ProductID, productMap, registry.UnknownProduct),
			SystemStock:    s.SystemStock,
			PhysicalStock:  physical,
			Variance:       variance,
			Classification: string(registry.ClassifyVariance(variance)),
		})
	}

	return report, nil
}
