package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sitta-api/internal/application/dto"
	apptracking "github.com/jhoicas/sitta-api/internal/application/tracking"
	"github.com/jhoicas/sitta-api/internal/domain/entity"
)

// SlipGenerator genera el surat jalan (PDF) de un DO.
type SlipGenerator interface {
	GenerateSlipPDF(ctx context.Context, rec *entity.TrackingRecord) ([]byte, error)
}

// TrackingHandler maneja la página de tracking de Delivery Orders (protegido).
type TrackingHandler struct {
	vm    *apptracking.ViewModel
	slips SlipGenerator
}

// NewTrackingHandler construye el handler.
func NewTrackingHandler(vm *apptracking.ViewModel, slips SlipGenerator) *TrackingHandler {
	return &TrackingHandler{vm: vm, slips: slips}
}

// List godoc
// @Summary      Lista de DOs (nomor DO descendente)
// @Tags         tracking
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TrackingListResponse
// @Router       /api/tracking [get]
func (h *TrackingHandler) List(c *fiber.Ctx) error {
	out, err := h.vm.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PrepareNew godoc
// @Summary      Valores iniciales del formulario "Tambah DO"
// @Tags         tracking
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DOFormResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/tracking/new [get]
func (h *TrackingHandler) PrepareNew(c *fiber.Ctx) error {
	out, err := h.vm.PrepareNew()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SelectPackage godoc
// @Summary      Contenido y total de un paket
// @Tags         tracking
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Kode paket"
// @Success      200   {object}  dto.PackageSelectionResponse
// @Router       /api/tracking/packages/{code} [get]
func (h *TrackingHandler) SelectPackage(c *fiber.Ctx) error {
	out, err := h.vm.SelectPackage(param(c, "code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Search godoc
// @Summary      Buscar un DO por nomor
// @Tags         tracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SearchDORequest  true  "order_number"
// @Success      200   {object}  dto.TrackingLookupResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/tracking/search [post]
func (h *TrackingHandler) Search(c *fiber.Ctx) error {
	var in dto.SearchDORequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.vm.Search(in.OrderNumber)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CloseResults godoc
// @Summary      Cerrar el panel de resultados
// @Tags         tracking
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TrackingLookupResponse
// @Router       /api/tracking/search [delete]
func (h *TrackingHandler) CloseResults(c *fiber.Ctx) error {
	return c.JSON(h.vm.CloseResults())
}

// View godoc
// @Summary      Ver un DO desde la tabla (sin alertas)
// @Tags         tracking
// @Security     Bearer
// @Produce      json
// @Param        orderNumber  path  string  true  "Nomor DO"
// @Success      200  {object}  dto.TrackingLookupResponse
// @Router       /api/tracking/{orderNumber} [get]
func (h *TrackingHandler) View(c *fiber.Ctx) error {
	out, err := h.vm.View(param(c, "orderNumber"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Slip godoc
// @Summary      Surat jalan del DO en PDF
// @Tags         tracking
// @Security     Bearer
// @Produce      application/pdf
// @Param        orderNumber  path  string  true  "Nomor DO"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tracking/{orderNumber}/slip.pdf [get]
func (h *TrackingHandler) Slip(c *fiber.Ctx) error {
	rec, err := h.vm.Record(param(c, "orderNumber"))
	if err != nil {
		return writeError(c, err)
	}
	pdf, err := h.slips.GenerateSlipPDF(c.UserContext(), rec)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="`+rec.OrderNumber+`.pdf"`)
	return c.Send(pdf)
}

// Create godoc
// @Summary      Tambah DO
// @Tags         tracking
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateDORequest  true  "Datos del DO"
// @Success      201   {object}  dto.TrackingLookupResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/tracking [post]
func (h *TrackingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateDORequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.vm.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Alerts godoc
// @Summary      Alertas visibles de la página de tracking
// @Tags         tracking
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/tracking/alerts [get]
func (h *TrackingHandler) Alerts(c *fiber.Ctx) error {
	return c.JSON(h.vm.Alerts())
}

// Dismiss godoc
// @Summary      Ocultar un canal de alertas
// @Tags         tracking
// @Security     Bearer
// @Param        channel  path  string  true  "page | form | success | warning"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/tracking/alerts/{channel} [delete]
func (h *TrackingHandler) Dismiss(c *fiber.Ctx) error {
	if err := h.vm.Dismiss(c.Params("channel")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
