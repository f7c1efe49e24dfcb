package registry

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tu-usuario/registries-console/internal/domain/entity"
)

// PrimaryPriority es la prioridad del nivel de precio primario de un producto.
const PrimaryPriority = 1

// OrderTiers devuelve una copia de los niveles de precio de un producto
// ordenada por prioridad ascendente (prioridad 1 primero). El empate entre
// prioridades iguales es estable por orden de llegada: el backend no define
// un desempate y aquí no se inventa uno.
func OrderTiers(tiers []entity.PriceLevel) []entity.PriceLevel {
	ordered := make([]entity.PriceLevel, len(tiers))
	copy(ordered, tiers)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Priority < ordered[j].Priority
	})
	return ordered
}

// PrimaryTier devuelve el nivel con prioridad 1, o nil si el producto no lo
// tiene. La consola marca exactamente priority == 1, no "la menor presente":
// un producto con niveles {2, 3} no tiene nivel primario.
func PrimaryTier(tiers []entity.PriceLevel) *entity.PriceLevel {
	for i := range tiers {
		if tiers[i].Priority == PrimaryPriority {
			return &tiers[i]
		}
	}
	return nil
}

// TierBounds devuelve el precio mínimo y máximo entre los niveles.
// Un conjunto vacío produce 0/0.
func TierBounds(tiers []entity.PriceLevel) (min, max decimal.Decimal) {
	if len(tiers) == 0 {
		return decimal.Zero, decimal.Zero
	}
	min, max = tiers[0].Price, tiers[0].Price
	for _, t := range tiers[1:] {
		if t.Price.LessThan(min) {
			min = t.Price
		}
		if t.Price.GreaterThan(max) {
			max = t.Price
		}
	}
	return min, max
}
