package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jquiroga/tienda-api/internal/application/dto"
	"github.com/jquiroga/tienda-api/internal/domain"
	"github.com/rs/zerolog/log"
)

// Mensajes comunes de la API (capa única de mensajes al cliente).
const (
	MsgInvalidBody  = "cuerpo de la petición inválido"
	MsgNotFound     = "recurso no encontrado"
	MsgPairNotFound = "asociación producto-color no encontrada"
	MsgInternal     = "error interno del servidor"
)

func ok(c *fiber.Ctx, message string, data any) error {
	return c.JSON(dto.Response{Message: message, Data: data})
}

func created(c *fiber.Ctx, message string, data any) error {
	return c.Status(fiber.StatusCreated).JSON(dto.Response{Message: message, Data: data})
}

func fail(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.Response{Message: message, Error: code})
}

// handleError traduce errores de dominio a respuestas HTTP. Todo lo no
// reconocido es un 500 genérico; el detalle queda en el log, no en el cliente.
func handleError(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Response{
			Message: "validación fallida",
			Error:   "VALIDATION",
			Fields:  vErr.Fields,
		})
	}
	var pErr *domain.PurgeError
	if errors.As(err, &pErr) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Response{
			Message: pErr.Error(),
			Error:   "STORAGE",
			Data:    pErr.Failed,
		})
	}
	switch {
	case errors.Is(err, domain.ErrPairNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", MsgPairNotFound)
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return fail(c, fiber.StatusNotFound, "NOT_FOUND", MsgNotFound)
	case errors.Is(err, domain.ErrDuplicate):
		return fail(c, fiber.StatusConflict, "DUPLICATE", "ya existe un recurso con ese nombre")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return fail(c, fiber.StatusConflict, "DUPLICATE", "el email ya está registrado")
	case errors.Is(err, domain.ErrConflict):
		return fail(c, fiber.StatusConflict, "CONFLICT", "el recurso está en uso y no puede eliminarse")
	case errors.Is(err, domain.ErrUnauthorized):
		return fail(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas")
	case errors.Is(err, domain.ErrForbidden):
		return fail(c, fiber.StatusForbidden, "FORBIDDEN", "acceso denegado")
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "VALIDATION", err.Error())
	}
	log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Msg("error no manejado")
	return fail(c, fiber.StatusInternalServerError, "INTERNAL", MsgInternal)
}
