// file: internals/middlewares/auth/owner_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "swimmingfish_backend/internals/helpers"
)

// RequirePathOwner rejects any request whose :userID path segment does not
// match the authenticated identity. Runs after AuthRequired; pure string
// comparison, no database access.
func RequirePathOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claimedID, _ := c.Locals("user_id").(string)
		if claimedID == "" || !IsOwner(claimedID, c.Params("userID")) {
			return helper.JsonError(c, fiber.StatusForbidden, "You are not authorized to access that resource")
		}
		return c.Next()
	}
}

// IsOwner is the whole ownership rule: the authenticated id must equal the
// userID path segment.
func IsOwner(claimedID, pathUserID string) bool {
	return claimedID == pathUserID
}
