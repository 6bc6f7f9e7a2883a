// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swimmingfish_backend/internals/configs"
	controller "swimmingfish_backend/internals/features/users/auth/controller"
	helper "swimmingfish_backend/internals/helpers"
	middlewares "swimmingfish_backend/internals/middlewares"
)

// AuthRoutes mounts the account/session endpoints. Registration and login
// stay public and carry their own stricter rate limits.
func AuthRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	authController := controller.NewAuthController(db, cfg)

	// POST /users/ creates an account; listing all users is not exposed.
	app.Post("/users", middlewares.RegisterRateLimiter(), authController.Register)
	app.Get("/users", helper.NotImplemented)

	app.Post("/login", middlewares.LoginRateLimiter(), authController.Login)
	app.Get("/login", helper.NotFoundRoute)

	app.Post("/logout", authController.Logout)
	app.Get("/logout", helper.NotFoundRoute)
}
