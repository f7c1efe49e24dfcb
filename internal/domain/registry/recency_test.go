package registry_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/registries-console/internal/domain/entity"
	"github.com/tu-usuario/registries-console/internal/domain/registry"
)

func productAt(id int64, createdAt time.Time) entity.Product {
	return entity.Product{ID: id, CreatedAt: &createdAt}
}

// Escenario de referencia: seis productos con timestamps T1>...>T6 producen el
// top-5 [T1..T5] en ese orden.
func TestRecentProducts_TopCincoDescendente(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	// Entrada deliberadamente desordenada
	products := []entity.Product{
		productAt(4, base.Add(-3*time.Hour)), // T4
		productAt(1, base),                   // T1
		productAt(6, base.Add(-5*time.Hour)), // T6
		productAt(2, base.Add(-1*time.Hour)), // T2
		productAt(5, base.Add(-4*time.Hour)), // T5
		productAt(3, base.Add(-2*time.Hour)), // T3
	}

	top := registry.RecentProducts(products, 5)

	require.Len(t, top, 5)
	got := make([]int64, 0, 5)
	for _, p := range top {
		got = append(got, p.ID)
	}
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, got)
}

// Un producto sin createdAt se trata como el más antiguo y queda al final.
func TestRecentProducts_SinTimestampOrdenaAlFinal(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	products := []entity.Product{
		{ID: 7}, // sin fecha
		productAt(1, base),
		productAt(2, base.Add(-time.Hour)),
	}

	top := registry.RecentProducts(products, 3)

	require.Len(t, top, 3)
	assert.Equal(t, int64(7), top[2].ID)
}

// Determinismo: empates de timestamp conservan el orden de llegada.
func TestRecentProducts_EmpateEstable(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	products := []entity.Product{
		productAt(10, base),
		productAt(11, base),
		productAt(12, base.Add(time.Minute)),
	}

	top := registry.RecentProducts(products, 3)

	assert.Equal(t, []int64{12, 10, 11}, []int64{top[0].ID, top[1].ID, top[2].ID})
}

func TestRecentProducts_LoteMenorQueN(t *testing.T) {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	top := registry.RecentProducts([]entity.Product{productAt(1, base)}, 5)
	assert.Len(t, top, 1)

	assert.Empty(t, registry.RecentProducts(nil, 5))
}
