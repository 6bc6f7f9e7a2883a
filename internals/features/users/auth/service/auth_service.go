package service

import (
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"swimmingfish_backend/internals/configs"
	authHelper "swimmingfish_backend/internals/features/users/auth/helper"
	userModel "swimmingfish_backend/internals/features/users/auth/model"
	authRepo "swimmingfish_backend/internals/features/users/auth/repository"
	helper "swimmingfish_backend/internals/helpers"
)

const AccessTokenCookie = "access_token"

// fallback when a token offered at logout cannot be parsed anymore
const blacklistTTLFallback = 24 * time.Hour

/* ==========================
   REGISTER
========================== */

// Optional fields mirror the account form: email and real name may be absent.
type registerRequest struct {
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	Email     string  `json:"email"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
}

func (r registerRequest) missing() []string {
	m := make([]string, 0, 2)
	if r.Username == nil {
		m = append(m, "username")
	}
	if r.Password == nil {
		m = append(m, "password")
	}
	return m
}

func Register(db *gorm.DB, c *fiber.Ctx) error {
	var input registerRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if m := input.missing(); len(m) > 0 {
		return helper.JsonMissingParams(c, m)
	}

	taken, err := authRepo.IsUsernameTaken(db, *input.Username)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}
	if taken {
		return helper.JsonError(c, fiber.StatusConflict, "That username already exists")
	}

	passwordHash, err := authHelper.HashPassword(*input.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Password hashing failed")
	}

	user := userModel.UserModel{
		UserName:      *input.Username,
		UserPassword:  passwordHash,
		UserEmail:     input.Email,
		UserFirstName: input.FirstName,
		UserLastName:  input.LastName,
	}
	if err := authRepo.CreateUser(db, &user); err != nil {
		// unique index backs the pre-check under concurrent registration
		low := strings.ToLower(err.Error())
		if strings.Contains(low, "duplicate") || strings.Contains(low, "unique") {
			return helper.JsonError(c, fiber.StatusConflict, "That username already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"userID": user.UserID})
}

/* ==========================
   LOGIN
========================== */

type loginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

func Login(db *gorm.DB, cfg *configs.Config, c *fiber.Ctx) error {
	var input loginRequest
	if err := c.BodyParser(&input); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	m := make([]string, 0, 2)
	if input.Username == nil {
		m = append(m, "username")
	}
	if input.Password == nil {
		m = append(m, "password")
	}
	if len(m) > 0 {
		return helper.JsonMissingParams(c, m)
	}

	// one message for both failure modes, never say which field was wrong
	user, err := authRepo.FindUserByUsername(db, *input.Username)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username/password combination")
	}
	if err := authHelper.CheckPasswordHash(user.UserPassword, *input.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username/password combination")
	}

	token, expiresAt, err := signAccessToken(cfg, user)
	if err != nil {
		log.Printf("[ERROR] sign access token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to establish session")
	}
	setSessionCookie(c, cfg, token, expiresAt)

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"userID": user.UserID})
}

/* ==========================
   LOGOUT
========================== */

// Logout revokes whatever token the request carries and clears the cookie.
// Idempotent: a request without a live session still succeeds.
func Logout(db *gorm.DB, cfg *configs.Config, c *fiber.Ctx) error {
	token := TokenFromRequest(c)
	if token != "" {
		if err := authRepo.BlacklistToken(db, token, resolveBlacklistTTL(cfg, token)); err != nil {
			log.Printf("[ERROR] blacklist token: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
		}
	}
	clearSessionCookie(c, cfg)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "You're logged out"})
}

/* ==========================
   Token helpers
========================== */

func signAccessToken(cfg *configs.Config, user *userModel.UserModel) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(cfg.AccessTokenTTL)
	claims := jwt.MapClaims{
		"typ":       "access",
		"sub":       user.UserID,
		"id":        user.UserID,
		"user_name": user.UserName,
		"iat":       now.Unix(),
		"exp":       expiresAt.Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	return token, expiresAt, err
}

// TokenFromRequest reads the bearer header first, then the session cookie.
func TokenFromRequest(c *fiber.Ctx) string {
	authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	return strings.TrimSpace(c.Cookies(AccessTokenCookie))
}

// resolveBlacklistTTL keeps a revoked token listed until its own expiry.
func resolveBlacklistTTL(cfg *configs.Config, token string) time.Duration {
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(cfg.JWTSecret), nil
	}); err != nil {
		return blacklistTTLFallback
	}
	if exp, ok := claims["exp"].(float64); ok {
		if ttl := time.Until(time.Unix(int64(exp), 0)); ttl > 0 {
			return ttl
		}
	}
	return blacklistTTLFallback
}

func setSessionCookie(c *fiber.Ctx, cfg *configs.Config, token string, expiresAt time.Time) {
	c.Cookie(&fiber.Cookie{
		Name:     AccessTokenCookie,
		Value:    token,
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}

func clearSessionCookie(c *fiber.Ctx, cfg *configs.Config) {
	c.Cookie(&fiber.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
