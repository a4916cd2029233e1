package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pizzeria-api/internal/application/dto"
	"github.com/jhoicas/Pizzeria-api/internal/application/inventario"
	"github.com/jhoicas/Pizzeria-api/internal/domain"
)

// InventarioHandler maneja las peticiones HTTP del libro de inventario.
type InventarioHandler struct {
	uc *inventario.UseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(uc *inventario.UseCase) *InventarioHandler {
	return &InventarioHandler{uc: uc}
}

// AsignarPizzas godoc
// @Summary      Asignar pizzas a un vendedor
// @Description  Agrega una asignación con el precio unitario fijado por el servidor.
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AsignarPizzasRequest  true  "uid, pizzasAsignadas"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /asignar-pizzas [post]
func (h *InventarioHandler) AsignarPizzas(c *fiber.Ctx) error {
	var in dto.AsignarPizzasRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Cuerpo inválido"))
	}

	err := h.uc.Asignar(c.Context(), in.UID, in.Pizzas)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Faltan campos (UID, Pizzas)"))
		}
		if errors.Is(err, domain.ErrVendedorNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Vendedor no encontrado"))
		}
		return errorInterno(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Mensaje("Asignación registrada exitosamente"))
}

// RegistrarDevolucion godoc
// @Summary      Registrar devolución de pizzas
// @Tags         inventario
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarDevolucionRequest  true  "uid, pizzasDevueltas"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /registrar-devolucion [post]
func (h *InventarioHandler) RegistrarDevolucion(c *fiber.Ctx) error {
	var in dto.RegistrarDevolucionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Cuerpo inválido"))
	}

	err := h.uc.RegistrarDevolucion(c.Context(), in.UID, in.Pizzas)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Faltan campos (UID, Pizzas)"))
		}
		if errors.Is(err, domain.ErrVendedorNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Vendedor no encontrado"))
		}
		return errorInterno(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Mensaje("Devolución registrada exitosamente"))
}
