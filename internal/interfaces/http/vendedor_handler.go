package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Pizzeria-api/internal/application/dto"
	"github.com/jhoicas/Pizzeria-api/internal/application/vendedores"
	"github.com/jhoicas/Pizzeria-api/internal/domain"
)

// VendedorHandler maneja las peticiones HTTP del directorio de vendedores.
type VendedorHandler struct {
	uc *vendedores.UseCase
}

// NewVendedorHandler construye el handler.
func NewVendedorHandler(uc *vendedores.UseCase) *VendedorHandler {
	return &VendedorHandler{uc: uc}
}

// VerificarRFID godoc
// @Summary      Verificar vendedor por tarjeta RFID
// @Tags         vendedores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VerificarRFIDRequest  true  "rfid_uid"
// @Success      200   {object}  dto.VerificarRFIDResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /verificar-rfid [post]
func (h *VendedorHandler) VerificarRFID(c *fiber.Ctx) error {
	var in dto.VerificarRFIDRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Cuerpo inválido"))
	}
	if in.RFIDUID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Falta rfid_uid"))
	}

	v, err := h.uc.Verificar(c.Context(), in.RFIDUID)
	if err != nil {
		if errors.Is(err, domain.ErrVendedorNoEncontrado) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Error("Vendedor no registrado"))
		}
		return errorInterno(c, err)
	}
	return c.JSON(dto.VerificarRFIDResponse{Success: true, Vendedor: *v})
}

// Registrar godoc
// @Summary      Registrar vendedor nuevo
// @Tags         vendedores
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarVendedorRequest  true  "uid, nombre, ife obligatorios; telefono, lider, comision opcionales"
// @Success      201   {object}  dto.MensajeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /registrar-vendedor [post]
func (h *VendedorHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarVendedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Cuerpo inválido"))
	}

	err := h.uc.Registrar(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Error("Faltan campos obligatorios (UID, Nombre, IFE) o comisión fuera de rango"))
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.Error("Este UID ya está registrado."))
		}
		return errorInterno(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.Mensaje("Vendedor registrado exitosamente"))
}
