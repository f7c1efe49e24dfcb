package registry_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/registries-console/internal/domain/entity"
	"github.com/tu-usuario/registries-console/internal/domain/registry"
)

func tier(id int64, priority int, price int64) entity.PriceLevel {
	return entity.PriceLevel{ID: id, Priority: priority, Price: decimal.NewFromInt(price)}
}

// Escenario de referencia: prioridades [2,1,3] con precios [50,40,60].
func TestOrderTiers_EscenarioDeReferencia(t *testing.T) {
	tiers := []entity.PriceLevel{
		tier(1, 2, 50),
		tier(2, 1, 40),
		tier(3, 3, 60),
	}

	ordered := registry.OrderTiers(tiers)

	require.Len(t, ordered, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{ordered[0].Priority, ordered[1].Priority, ordered[2].Priority})

	primary := registry.PrimaryTier(ordered)
	require.NotNil(t, primary)
	assert.Equal(t, int64(2), primary.ID, "el nivel con priority 1 es el primario")

	minPrice, maxPrice := registry.TierBounds(ordered)
	assert.True(t, minPrice.Equal(decimal.NewFromInt(40)))
	assert.True(t, maxPrice.Equal(decimal.NewFromInt(60)))
}

// El orden de llegada no se altera para ordenar; la entrada queda intacta.
func TestOrderTiers_NoMutaLaEntrada(t *testing.T) {
	tiers := []entity.PriceLevel{tier(1, 3, 10), tier(2, 1, 20)}

	_ = registry.OrderTiers(tiers)

	assert.Equal(t, int64(1), tiers[0].ID, "la colección original conserva su orden")
}

// Empate de prioridades: estable por orden de llegada (el backend no define
// desempate).
func TestOrderTiers_EmpateEstable(t *testing.T) {
	tiers := []entity.PriceLevel{
		tier(10, 2, 30),
		tier(11, 1, 20),
		tier(12, 2, 35),
	}

	ordered := registry.OrderTiers(tiers)

	assert.Equal(t, []int64{11, 10, 12}, []int64{ordered[0].ID, ordered[1].ID, ordered[2].ID})
}

// Un producto sin nivel de prioridad 1 no tiene primario: se marca exactamente
// priority == 1, no "la menor presente".
func TestPrimaryTier_SoloPrioridadUno(t *testing.T) {
	assert.Nil(t, registry.PrimaryTier([]entity.PriceLevel{tier(1, 2, 10), tier(2, 3, 20)}))
	assert.Nil(t, registry.PrimaryTier(nil))
}

func TestTierBounds_ConjuntoVacio(t *testing.T) {
	minPrice, maxPrice := registry.TierBounds(nil)

	assert.True(t, minPrice.IsZero())
	assert.True(t, maxPrice.IsZero())
}
