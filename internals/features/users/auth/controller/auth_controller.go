package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"swimmingfish_backend/internals/configs"
	"swimmingfish_backend/internals/features/users/auth/service"
)

type AuthController struct {
	DB     *gorm.DB
	Config *configs.Config
}

func NewAuthController(db *gorm.DB, cfg *configs.Config) *AuthController {
	return &AuthController{DB: db, Config: cfg}
}

func (ac *AuthController) Register(c *fiber.Ctx) error {
	return service.Register(ac.DB, c)
}

func (ac *AuthController) Login(c *fiber.Ctx) error {
	return service.Login(ac.DB, ac.Config, c)
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	return service.Logout(ac.DB, ac.Config, c)
}
