package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ParamUint parses a numeric path segment. The route patterns accept any
// string, so handlers fail fast here before touching the database.
func ParamUint(c *fiber.Ctx, name string) (uint, error) {
	raw := c.Params(name)
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return 0, fiber.NewError(fiber.StatusBadRequest, "Invalid "+name)
	}
	return uint(v), nil
}
