package route_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"swimmingfish_backend/internals/configs"
	database "swimmingfish_backend/internals/databases"
	authService "swimmingfish_backend/internals/features/users/auth/service"
	"swimmingfish_backend/internals/route"
)

func newApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))

	cfg := &configs.Config{
		JWTSecret:          "test-secret",
		AccessTokenTTL:     time.Hour,
		CourseDefaultColor: "039BE5",
	}

	app := fiber.New()
	route.SetupRoutes(app, db, cfg, nil)
	return app
}

func send(t *testing.T, app *fiber.App, method, path, body, token string) *http.Response {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: authService.AccessTokenCookie, Value: token})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestIndexGreeting(t *testing.T) {
	app := newApp(t)

	resp := send(t, app, http.MethodGet, "/", "", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Contains(t, body["message"], "Welcome")
}

// TestSessionRevocation walks a full browser session: register, log in with
// the cookie, use a protected endpoint, log out, and verify the revoked
// token no longer opens anything.
func TestSessionRevocation(t *testing.T) {
	app := newApp(t)

	resp := send(t, app, http.MethodPost, "/users/", `{"username":"fish","password":"glub glub"}`, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = send(t, app, http.MethodPost, "/login/", `{"username":"fish","password":"glub glub"}`, "")
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var token string
	for _, ck := range resp.Cookies() {
		if ck.Name == authService.AccessTokenCookie {
			token = ck.Value
		}
	}
	require.NotEmpty(t, token)

	resp = send(t, app, http.MethodGet, "/users/1/classes/", "", token)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = send(t, app, http.MethodPost, "/logout/", "", token)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	// the token is still cryptographically valid but blacklisted
	resp = send(t, app, http.MethodGet, "/users/1/classes/", "", token)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Login required to access this resource", body["message"])
}
