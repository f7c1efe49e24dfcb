package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/tu-usuario/registries-console/internal/application/analytics"
	"github.com/tu-usuario/registries-console/internal/application/dto"
	"github.com/tu-usuario/registries-console/internal/domain/repository"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	pdf appanalytics.SnapshotPDFGenerator
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, pdf appanalytics.SnapshotPDFGenerator) *DashboardHandler {
	return &DashboardHandler{uc: uc, pdf: pdf}
}

// GetSnapshot devuelve el snapshot agregado del dashboard.
// GET /api/dashboard
//
// Respuesta: DashboardSnapshotDTO (counts, productsByDepartment,
// stockByProduct, lowStockItems[5], recentProducts[5]).
// Siempre se recalcula desde el record store; no hay caché entre corridas.
// Un fallo del lote inicial se reporta como UPSTREAM: la consola lo muestra
// como "no se pudo refrescar".
func (h *DashboardHandler) GetSnapshot(c *fiber.Ctx) error {
	ctx := repository.WithAuthorization(c.UserContext(), GetAuthorization(c))

	snapshot, err := h.uc.GetSnapshot(ctx)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "UPSTREAM", Message: err.Error(),
		})
	}

	return c.JSON(snapshot)
}

// ExportPDF devuelve el snapshot como documento imprimible.
// GET /api/dashboard/export.pdf
func (h *DashboardHandler) ExportPDF(c *fiber.Ctx) error {
	ctx := repository.WithAuthorization(c.UserContext(), GetAuthorization(c))

	snapshot, err := h.uc.GetSnapshot(ctx)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "UPSTREAM", Message: err.Error(),
		})
	}

	doc, err := h.pdf.GenerateSnapshotPDF(snapshot)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="dashboard-`+snapshot.SnapshotID+`.pdf"`)
	return c.Send(doc)
}
