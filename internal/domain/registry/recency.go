package registry

import (
	"sort"
	"time"

	"github.com/tu-usuario/registries-console/internal/domain/entity"
)

// RecentProducts devuelve los n productos más recientes por createdAt
// descendente. Un producto sin timestamp se trata como el más antiguo
// posible y queda al final. El orden es determinista: empates se resuelven
// por orden de llegada del lote.
func RecentProducts(products []entity.Product, n int) []entity.Product {
	ranked := make([]entity.Product, len(products))
	copy(ranked, products)

	sort.SliceStable(ranked, func(i, j int) bool {
		return createdAt(ranked[i]).After(createdAt(ranked[j]))
	})

	if n < 0 {
		n = 0
	}
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

func createdAt(p entity.Product) time.Time {
	if p.CreatedAt == nil {
		return time.Time{}
	}
	return *p.CreatedAt
}
