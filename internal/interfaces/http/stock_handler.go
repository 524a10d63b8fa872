package http

import (
	"io"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sitta-api/internal/application/dto"
	appstock "github.com/jhoicas/sitta-api/internal/application/stock"
)

// StockExporter escribe la tabla de stok como .xlsx.
type StockExporter interface {
	Write(w io.Writer, rows []dto.StockRowResponse) error
}

// StockHandler maneja la página de stok bahan ajar (protegido).
type StockHandler struct {
	vm       *appstock.ViewModel
	exporter StockExporter
}

// NewStockHandler construye el handler.
func NewStockHandler(vm *appstock.ViewModel, exporter StockExporter) *StockHandler {
	return &StockHandler{vm: vm, exporter: exporter}
}

// View godoc
// @Summary      Tabla de stok con los criterios activos
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockViewResponse
// @Failure      401  {object}  dto.UnauthorizedResponse
// @Router       /api/stock [get]
func (h *StockHandler) View(c *fiber.Ctx) error {
	out, err := h.vm.View()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SetCriteria godoc
// @Summary      Cambiar filtros y orden de la tabla
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockCriteriaRequest  true  "q, category, region, sort"
// @Success      200   {object}  dto.StockViewResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/stock/criteria [put]
func (h *StockHandler) SetCriteria(c *fiber.Ctx) error {
	var in dto.StockCriteriaRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.vm.SetCriteria(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Options godoc
// @Summary      Valores de los selects (UPBJJ, kategori, orden)
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockOptionsResponse
// @Router       /api/stock/options [get]
func (h *StockHandler) Options(c *fiber.Ctx) error {
	return c.JSON(h.vm.Options())
}

// Summary godoc
// @Summary      Conteo de ítems por estado
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.StockSummaryResponse
// @Router       /api/stock/summary [get]
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	out, err := h.vm.Summary()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar la tabla (filtrada y ordenada) a Excel
// @Tags         stock
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/stock/export.xlsx [get]
func (h *StockHandler) Export(c *fiber.Ctx) error {
	rows, err := h.vm.Rows()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stok-bahan-ajar.xlsx"`)
	if err := h.exporter.Write(c.Response().BodyWriter(), rows); err != nil {
		return writeError(c, err)
	}
	return nil
}

// Get godoc
// @Summary      Obtener bahan ajar por kode
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        code  path  string  true  "Kode barang"
// @Success      200   {object}  dto.StockRowResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{code} [get]
func (h *StockHandler) Get(c *fiber.Ctx) error {
	out, err := h.vm.Get(param(c, "code"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Tambah bahan ajar
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockItemRequest  true  "Datos del bahan ajar"
// @Success      201   {object}  dto.StockRowResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.StockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.vm.Add(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Edit bahan ajar (el kode puede cambiar)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        code  path  string  true  "Kode original"
// @Param        body  body  dto.StockItemRequest  true  "Datos del bahan ajar"
// @Success      200   {object}  dto.StockRowResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ValidationErrorResponse
// @Router       /api/stock/{code} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.StockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.vm.Edit(param(c, "code"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Hapus bahan ajar
// @Tags         stock
// @Security     Bearer
// @Param        code  path  string  true  "Kode barang"
// @Success      204
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stock/{code} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.vm.Delete(param(c, "code")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Alerts godoc
// @Summary      Alertas visibles de la página de stok
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.NotificationResponse
// @Router       /api/stock/alerts [get]
func (h *StockHandler) Alerts(c *fiber.Ctx) error {
	return c.JSON(h.vm.Alerts())
}

// Dismiss godoc
// @Summary      Ocultar un canal de alertas
// @Tags         stock
// @Security     Bearer
// @Param        channel  path  string  true  "page | form | success | warning"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/alerts/{channel} [delete]
func (h *StockHandler) Dismiss(c *fiber.Ctx) error {
	if err := h.vm.Dismiss(c.Params("channel")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// param devuelve el parámetro de ruta decodificado.
func param(c *fiber.Ctx, name string) string {
	v := c.Params(name)
	if s, err := url.PathUnescape(v); err == nil {
		return s
	}
	return v
}

