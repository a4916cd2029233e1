package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pizzeria-api/internal/application/dto"
	"github.com/jhoicas/Pizzeria-api/internal/application/ventas"
	"github.com/jhoicas/Pizzeria-api/internal/domain"
	"github.com/jhoicas/Pizzeria-api/internal/domain/ledger"
)

// VentaHandler maneja las peticiones HTTP de registro de ventas.
type VentaHandler struct {
	uc *ventas.UseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *ventas.UseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar venta
// @Description  Valida la venta contra el inventario vigente del vendedor antes
//	de escribir; un exceso devuelve 400 con el inventario calculado y no agrega fila.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarVentaRequest  true  "uid, pizzasVendidas, entregoPago"
// @Success      201   {object}  dto.RegistrarVentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /registrar-venta [post]
func (h *VentaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Cuerpo inválido"))
	}

	resultado, err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		var insuficiente *domain.InventarioInsuficienteError
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Faltan campos (UID, Pizzas Vendidas)"))
		case errors.As(err, &insuficiente):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error(insuficiente.Error()))
		case errors.Is(err, domain.ErrVendedorNoEncontrado):
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Vendedor no encontrado"))
		case errors.Is(err, domain.ErrSinAsignacion):
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Este vendedor no tiene inventario asignado"))
		}
		return errorInterno(c, err)
	}

	ventaTotal := ledger.Fijo2(resultado.VentaTotal)
	comision := ledger.Fijo2(resultado.ComisionGanada)
	return c.Status(fiber.StatusCreated).JSON(dto.RegistrarVentaResponse{
		Success:        true,
		Message:        fmt.Sprintf("Venta registrada. Venta Total: $%s, Comisión: $%s", ventaTotal, comision),
		VentaTotal:     ventaTotal,
		ComisionGanada: comision,
	})
}
