package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sitta-api/internal/application/dto"
	"github.com/jhoicas/sitta-api/internal/domain/entity"
)

// CatalogSnapshot lo implementa *memory.Store.
type CatalogSnapshot interface {
	Snapshot() entity.Catalog
}

// HealthHandler responde /health con los conteos vivos del store.
type HealthHandler struct {
	service string
	source  string
	store   CatalogSnapshot
}

// NewHealthHandler construye el handler; source es el origen del catálogo (file o fallback).
func NewHealthHandler(service, source string, store CatalogSnapshot) *HealthHandler {
	return &HealthHandler{service: service, source: source, store: store}
}

// Health godoc
// @Summary      Estado del servicio
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	snap := h.store.Snapshot()
	return c.JSON(dto.HealthResponse{
		Status:   "ok",
		Service:  h.service,
		Catalog:  h.source,
		Stock:    len(snap.Stock),
		Packages: len(snap.Packages),
		Tracking: len(snap.Tracking),
	})
}
