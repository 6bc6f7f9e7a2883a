package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Error payloads share one envelope; success payloads are endpoint-shaped
// (the client contract fixes those field names).

func JsonError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":    code,
		"status":  "error",
		"message": message,
	})
}

// JsonMissingParams enumerates the required body fields that were absent.
func JsonMissingParams(c *fiber.Ctx, missing []string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"code":    fiber.StatusBadRequest,
		"status":  "error",
		"message": "Missing parameters",
		"missing": missing,
	})
}

// FromFiberError converts an error bubbled out of a service (usually a
// *fiber.Error) into the shared error envelope.
func FromFiberError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
}

// FromLookupError maps repository misses to 404 without leaking internals.
func FromLookupError(c *fiber.Ctx, err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return JsonError(c, fiber.StatusNotFound, resource+" not found")
	}
	return FromFiberError(c, err)
}

// NotImplemented serves writes against read-only endpoints.
func NotImplemented(c *fiber.Ctx) error {
	return JsonError(c, fiber.StatusNotImplemented, "Not yet implemented")
}

// NotFoundRoute serves reads against write-only endpoints (login/logout/upload).
func NotFoundRoute(c *fiber.Ctx) error {
	return JsonError(c, fiber.StatusNotFound, "Not found")
}
