package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pizzeria-api/internal/application/comisiones"
	"github.com/jhoicas/Pizzeria-api/internal/application/dto"
	"github.com/jhoicas/Pizzeria-api/internal/domain"
)

// ComisionHandler maneja las peticiones HTTP de reportes y pagos de comisión.
type ComisionHandler struct {
	uc *comisiones.UseCase
}

// NewComisionHandler construye el handler.
func NewComisionHandler(uc *comisiones.UseCase) *ComisionHandler {
	return &ComisionHandler{uc: uc}
}

// GenerarReporte godoc
// @Summary      Reporte agregado del vendedor
// @Tags         comisiones
// @Produce      json
// @Param        uid  query  string  true  "UID del vendedor"
// @Success      200  {object}  dto.ReporteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /generar-reporte [get]
func (h *ComisionHandler) GenerarReporte(c *fiber.Ctx) error {
	uid := c.Query("uid")
	if uid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Se requiere un UID"))
	}

	reporte, err := h.uc.Reporte(c.Context(), uid)
	if err != nil {
		if errors.Is(err, domain.ErrVendedorNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Vendedor no encontrado"))
		}
		return errorInterno(c, err)
	}
	return c.JSON(reporte)
}

// GenerarReportePDF godoc
// @Summary      Estado de cuenta del vendedor en PDF
// @Tags         comisiones
// @Produce      application/pdf
// @Param        uid  query  string  true  "UID del vendedor"
// @Success      200  {file}    binary
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /generar-reporte-pdf [get]
func (h *ComisionHandler) GenerarReportePDF(c *fiber.Ctx) error {
	uid := c.Query("uid")
	if uid == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Se requiere un UID"))
	}

	pdf, err := h.uc.ReportePDF(c.Context(), uid)
	if err != nil {
		if errors.Is(err, domain.ErrVendedorNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Vendedor no encontrado"))
		}
		return errorInterno(c, err)
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=\"reporte-%s.pdf\"", uid))
	return c.Send(pdf)
}

// PagarComision godoc
// @Summary      Registrar pago de comisión
// @Tags         comisiones
// @Accept       json
// @Produce      json
// @Param        body  body  dto.PagarComisionRequest  true  "uid, montoPagado, nombre"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /pagar-comision [post]
func (h *ComisionHandler) PagarComision(c *fiber.Ctx) error {
	var in dto.PagarComisionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Cuerpo inválido"))
	}

	err := h.uc.Pagar(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Faltan datos (UID, Monto, Nombre)"))
		}
		return errorInterno(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Mensaje("Pago de comisión registrado"))
}
