// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"swimmingfish_backend/internals/configs"
	authRepo "swimmingfish_backend/internals/features/users/auth/repository"
	authService "swimmingfish_backend/internals/features/users/auth/service"
	helper "swimmingfish_backend/internals/helpers"
)

// AuthRequired validates the session token (bearer header or access_token
// cookie) before any handler logic runs. On success the verified identity is
// stored in Locals("user_id") / Locals("user_name").
func AuthRequired(db *gorm.DB, cfg *configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := authService.TokenFromRequest(c)
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Login required to access this resource")
		}

		blacklisted, err := authRepo.IsTokenBlacklisted(db, tokenString)
		if err != nil {
			log.Printf("[ERROR] blacklist lookup: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Internal Server Error")
		}
		if blacklisted {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Login required to access this resource")
		}

		claims := jwt.MapClaims{}
		if _, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(cfg.JWTSecret), nil
		}); err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Login required to access this resource")
		}

		exp, ok := claims["exp"].(float64)
		if !ok || time.Now().Unix() >= int64(exp) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Login required to access this resource")
		}

		id, ok := claims["id"].(float64)
		if !ok || id <= 0 {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Login required to access this resource")
		}
		c.Locals("user_id", fmt.Sprintf("%d", uint(id)))
		if name, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", name)
		}

		return c.Next()
	}
}
