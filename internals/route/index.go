// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swimmingfish_backend/internals/configs"
	authRoute "swimmingfish_backend/internals/features/users/auth/route"
	ossHelper "swimmingfish_backend/internals/helpers/oss"
	"swimmingfish_backend/internals/route/details"
)

// SetupRoutes wires every endpoint group onto the app.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config, blob ossHelper.BlobService) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Welcome to the Swimming Fish API",
		})
	})

	authRoute.AuthRoutes(app, db, cfg)
	details.AcademicRoutes(app, db, cfg, blob)
}
