package analytics_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/registries-console/internal/application/analytics"
	"github.com/tu-usuario/registries-console/internal/domain/entity"
)

func TestGetVarianceReport_ReporteCompleto(t *testing.T) {
	reader := baseReader()
	reader.stocks = []entity.StockTaking{
		{ID: 1, ProductID: 1, SystemStock: 10, PhysicalStock: qty(12), Variance: qty(2)},
		{ID: 2, ProductID: 2, SystemStock: 8, PhysicalStock: qty(5)}, // variance reconstruida: -3
		{ID: 3, ProductID: 99, SystemStock: 4, PhysicalStock: qty(4)},
	}

	report, err := analytics.NewStockTakingUseCase(reader).GetVarianceReport(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, report.DiscrepancyCount)
	assert.Equal(t, int64(-1), report.NetVariance)

	require.Len(t, report.Records, 3, "ningún registro se descarta")
	assert.Equal(t, "A", report.Records[0].ProductName)
	assert.Equal(t, "positive", report.Records[0].Classification)
	assert.Equal(t, int64(-3), report.Records[1].Variance)
	assert.Equal(t, "negative", report.Records[1].Classification)
	assert.Equal(t, "Unknown Product", report.Records[2].ProductName)
	assert.Equal(t, "neutral", report.Records[2].Classification)
}

func TestGetVarianceReport_FalloDelLoteEsFatal(t *testing.T) {
	boom := errors.New("record store caído")
	reader := baseReader()
	reader.errStocks = boom

	report, err := analytics.NewStockTakingUseCase(reader).GetVarianceReport(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, report)
}
