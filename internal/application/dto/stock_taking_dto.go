package dto

// StockTakingReportDTO respuesta de GET /api/stock-takings/report.
// Reporte de variaciones de los conteos físicos frente al stock de sistema.
type StockTakingReportDTO struct {
	// Registros cuyo conteo no coincidió con el sistema (variance ≠ 0).
	DiscrepancyCount int `json:"discrepancyCount"`

	// Suma neta de todas las variaciones (sobrantes compensan faltantes).
	NetVariance int64 `json:"netVariance"`

	Records []StockTakingLineDTO `json:"records"`
}

// StockTakingLineDTO un conteo físico clasificado.
type StockTakingLineDTO struct {
	ID             int64  `json:"id"`
	ProductName    string `json:"productName"`
	SystemStock    int64  `json:"systemStock"`
	PhysicalStock  int64  `json:"physicalStock"`
	Variance       int64  `json:"variance"`
	Classification string `json:"classification"` // positive | negative | neutral
}
