package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tu-usuario/registries-console/internal/domain/entity"
	"github.com/tu-usuario/registries-console/internal/domain/registry"
)

func TestClassifyVariance_PorSigno(t *testing.T) {
	assert.Equal(t, registry.VariancePositive, registry.ClassifyVariance(3))
	assert.Equal(t, registry.VarianceNegative, registry.ClassifyVariance(-1))
	assert.Equal(t, registry.VarianceNeutral, registry.ClassifyVariance(0))
}

func TestNetVariance_SobrantesCompensanFaltantes(t *testing.T) {
	records := []entity.StockTaking{
		{Variance: qty(5)},
		{Variance: qty(-3)},
		{Variance: qty(0)},
	}

	assert.Equal(t, int64(2), registry.NetVariance(records))
	assert.Equal(t, 2, registry.DiscrepancyCount(records), "solo cuentan los registros con variación")
}

// Si el registro no trae variance se reconstruye como physicalStock − systemStock.
func TestNetVariance_ReconstruyeVarianceAusente(t *testing.T) {
	records := []entity.StockTaking{
		{SystemStock: 10, PhysicalStock: qty(8)}, // -2
		{SystemStock: 4, PhysicalStock: qty(7)},  // +3
		{SystemStock: 9},                         // sin conteo físico: 0
	}

	assert.Equal(t, int64(1), registry.NetVariance(records))
	assert.Equal(t, 2, registry.DiscrepancyCount(records))
}
