package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tu-usuario/registries-console/internal/application/analytics"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	DashboardUC   *appanalytics.DashboardUseCase
	PriceLevelsUC *appanalytics.PriceLevelsUseCase
	StockTakingUC *appanalytics.StockTakingUseCase
	SnapshotPDF   appanalytics.SnapshotPDFGenerator
	JWTSecret     string
}

// Router registra las rutas de la API. Todas las rutas de datos requieren
// Bearer Token; el reporte de conteos además exige un rol con capacidad de
// auditoría, espejo de los roles del record store.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.SnapshotPDF)
	api.Get("/dashboard", dashboardHandler.GetSnapshot)
	api.Get("/dashboard/export.pdf", dashboardHandler.ExportPDF)

	priceLevelHandler := NewPriceLevelHandler(deps.PriceLevelsUC)
	api.Get("/products/:id/price-levels/summary", priceLevelHandler.GetTierSummary)

	stockTakingHandler := NewStockTakingHandler(deps.StockTakingUC)
	api.Get("/stock-takings/report",
		RequireRole("SUPER_ADMIN", "ADMIN", "ACCOUNTANT", "AUDITOR"),
		stockTakingHandler.GetVarianceReport)
}
