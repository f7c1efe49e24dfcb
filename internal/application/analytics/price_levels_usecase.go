package analytics

import (
	"context"
	"fmt"

	"github.com/tu-usuario/registries-console/internal/application/dto"
	"github.com/tu-usuario/registries-console/internal/domain/registry"
	"github.com/tu-usuario/registries-console/internal/domain/repository"
)

// PriceLevelsUseCase resuelve los niveles de precio de un producto: orden por
// prioridad, nivel primario y rango de precios.
type PriceLevelsUseCase struct {
	reader repository.RegistryReader
}

// NewPriceLevelsUseCase construye el caso de uso.
func NewPriceLevelsUseCase(reader repository.RegistryReader) *PriceLevelsUseCase {
	return &PriceLevelsUseCase{reader: reader}
}

// GetTierSummary construye el resumen de niveles de un producto.
//
// A diferencia del fan-out del dashboard, aquí no hay degradación: la
// operación es sobre un solo producto y un fallo de fetch es fatal.
func (uc *PriceLevelsUseCase) GetTierSummary(ctx context.Context, productID int64) (*dto.PriceTierSummaryDTO, error) {
	product, err := uc.reader.GetProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("niveles de precio: producto %d: %w", productID, err)
	}

	tiers, err := uc.reader.ListPriceLevels(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("niveles de precio: producto %d: %w", productID, err)
	}

	ordered := registry.OrderTiers(tiers)
	minPrice, maxPrice := registry.TierBounds(ordered)

	summary := &dto.PriceTierSummaryDTO{
		ProductID:   productID,
		ProductName: product.Name,
		TierCount:   len(ordered),
		MinPrice:    minPrice,
		MaxPrice:    maxPrice,
		Tiers:       make([]dto.PriceTierDTO, 0, len(ordered)),
	}
	for _, t := range ordered {
		tier := dto.PriceTierDTO{
			ID:       t.ID,
			Name:     t.Name,
			Price:    t.Price,
			Priority: t.Priority,
			Primary:  t.Priority == registry.PrimaryPriority,
		}
		summary.Tiers = append(summary.Tiers, tier)
		if tier.Primary && summary.Primary == nil {
			primary := tier
			summary.Primary = &primary
		}
	}

	return summary, nil
}
