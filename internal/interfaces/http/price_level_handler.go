package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tu-usuario/registries-console/internal/application/analytics"
	"github.com/tu-usuario/registries-console/internal/application/dto"
	"github.com/tu-usuario/registries-console/internal/domain"
	"github.com/tu-usuario/registries-console/internal/domain/repository"
)

// PriceLevelHandler maneja el resumen de niveles de precio por producto.
type PriceLevelHandler struct {
	uc *appanalytics.PriceLevelsUseCase
}

// NewPriceLevelHandler construye el handler.
func NewPriceLevelHandler(uc *appanalytics.PriceLevelsUseCase) *PriceLevelHandler {
	return &PriceLevelHandler{uc: uc}
}

// GetTierSummary devuelve los niveles de precio de un producto resueltos por
// prioridad (primario, rango mín/máx).
// GET /api/products/:id/price-levels/summary
func (h *PriceLevelHandler) GetTierSummary(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("id")
	if err != nil || productID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_INPUT", Message: "id de producto inválido",
		})
	}

	ctx := repository.WithAuthorization(c.UserContext(), GetAuthorization(c))

	summary, err := h.uc.GetTierSummary(ctx, int64(productID))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "producto no encontrado",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "UPSTREAM", Message: err.Error(),
		})
	}

	return c.JSON(summary)
}
