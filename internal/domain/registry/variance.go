package registry

import "github.com/tu-usuario/registries-console/internal/domain/entity"

// VarianceClass clasificación de la variación de un conteo físico.
type VarianceClass string

const (
	VariancePositive VarianceClass = "positive" // se contó más de lo que el sistema esperaba
	VarianceNegative VarianceClass = "negative" // faltante frente al stock de sistema
	VarianceNeutral  VarianceClass = "neutral"  // conteo exacto
)

// ClassifyVariance clasifica una variación por su signo.
// Convención asumida: variance = physicalStock − systemStock.
func ClassifyVariance(v int64) VarianceClass {
	switch {
	case v > 0:
		return VariancePositive
	case v < 0:
		return VarianceNegative
	default:
		return VarianceNeutral
	}
}

// NetVariance suma las variaciones de todo el lote (el neto puede compensar
// sobrantes con faltantes; por eso se reporta junto a DiscrepancyCount).
func NetVariance(records []entity.StockTaking) int64 {
	var net int64
	for _, r := range records {
		net += r.EffectiveVariance()
	}
	return net
}

// DiscrepancyCount cuenta los registros cuyo conteo no coincidió con el
// stock de sistema (variance ≠ 0).
func DiscrepancyCount(records []entity.StockTaking) int {
	n := 0
	for _, r := range records {
		if r.EffectiveVariance() != 0 {
			n++
		}
	}
	return n
}
