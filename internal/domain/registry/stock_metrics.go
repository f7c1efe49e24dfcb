package registry

import "github.com/tu-usuario/registries-console/internal/domain/entity"

// StockPolicy umbrales del cálculo de métricas de stock. Viene de la
// configuración; el 5 histórico ya no vive enterrado en el cálculo.
type StockPolicy struct {
	DefaultMinQuantity int64 // umbral de bajo stock si el registro no trae minQuantity
}

// StockMetrics resultado del cálculo sobre un lote de conteos.
//
// OutOfStock es subconjunto de LowStock bajo cualquier umbral ≥ 0: un
// registro en cero cumple ambas condiciones y se reporta en ambas listas,
// sin deduplicar. Ambas conservan el orden de llegada del lote.
type StockMetrics struct {
	TotalQuantity int64
	LowStock      []entity.StockTaking
	OutOfStock    []entity.StockTaking
}

// ComputeStockMetrics recorre el lote de conteos una sola vez y acumula el
// total de unidades y las clasificaciones de bajo stock / sin stock.
func ComputeStockMetrics(records []entity.StockTaking, policy StockPolicy) StockMetrics {
	var m StockMetrics
	for _, r := range records {
		qty := r.EffectiveQuantity()
		minQty := r.EffectiveMinQuantity(policy.DefaultMinQuantity)

		m.TotalQuantity += qty

		if qty == 0 {
			m.OutOfStock = append(m.OutOfStock, r)
		}
		if qty <= minQty {
			m.LowStock = append(m.LowStock, r)
		}
	}
	return m
}
