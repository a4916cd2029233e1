package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	zlog "github.com/rs/zerolog/log"

	"github.com/jhoicas/Pizzeria-api/internal/application/dto"
	"github.com/jhoicas/Pizzeria-api/internal/domain"
)

// errorInterno mapea cualquier error no contemplado por el handler a un 500
// con cuerpo {success:false, error}. Una hoja faltante en el almacén es mala
// configuración, no dato de usuario, y también termina aquí.
func errorInterno(c *fiber.Ctx, err error) error {
	zlog.Error().Err(err).Str("ruta", c.Path()).Msg("error interno")
	if errors.Is(err, domain.ErrHojaNoEncontrada) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error(err.Error()))
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("Error interno del servidor"))
}
