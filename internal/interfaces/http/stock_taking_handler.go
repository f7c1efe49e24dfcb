package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tu-usuario/registries-console/internal/application/analytics"
	"github.com/tu-usuario/registries-console/internal/application/dto"
	"github.com/tu-usuario/registries-console/internal/domain/repository"
)

// StockTakingHandler maneja el reporte de variaciones de conteo físico.
type StockTakingHandler struct {
	uc *appanalytics.StockTakingUseCase
}

// NewStockTakingHandler construye el handler.
func NewStockTakingHandler(uc *appanalytics.StockTakingUseCase) *StockTakingHandler {
	return &StockTakingHandler{uc: uc}
}

// GetVarianceReport devuelve los conteos clasificados por signo de variación
// más el número de discrepancias y la variación neta.
// GET /api/stock-takings/report
func (h *StockTakingHandler) GetVarianceReport(c *fiber.Ctx) error {
	ctx := repository.WithAuthorization(c.UserContext(), GetAuthorization(c))

	report, err := h.uc.GetVarianceReport(ctx)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "UPSTREAM", Message: err.Error(),
		})
	}

	return c.JSON(report)
}
