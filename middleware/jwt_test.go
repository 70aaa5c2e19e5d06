package middleware

import (
	"encoding/json"
	"fluency/config"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestConfig() {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
}

func newGuardedApp() *fiber.App {
	app := fiber.New()
	app.Get("/guarded", JWTMiddleware, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": c.Locals("email")})
	})
	return app
}

func decodeBody(t *testing.T, resp io.Reader) map[string]interface{} {
	t.Helper()
	body := make(map[string]interface{})
	require.NoError(t, json.NewDecoder(resp).Decode(&body))
	return body
}

func TestJWTMiddlewareMissingToken(t *testing.T) {
	setupTestConfig()
	app := newGuardedApp()

	req := httptest.NewRequest("GET", "/guarded", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "unauthorized access", body["message"])
}

func TestJWTMiddlewareMalformedHeader(t *testing.T) {
	setupTestConfig()
	app := newGuardedApp()

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Token abc")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareTamperedToken(t *testing.T) {
	setupTestConfig()
	app := newGuardedApp()

	token, err := GenerateJWT("a@x.com", "A")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token+"x")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "unauthorized access", body["message"])
}

func TestJWTMiddlewareExpiredToken(t *testing.T) {
	setupTestConfig()
	app := newGuardedApp()

	claims := jwt.MapClaims{
		"email": "a@x.com",
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
		"exp":   time.Now().Add(-1 * time.Hour).Unix(),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.AppConfig.JWTKey))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestJWTMiddlewareValidToken(t *testing.T) {
	setupTestConfig()
	app := newGuardedApp()

	token, err := GenerateJWT("a@x.com", "A")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, "a@x.com", body["email"])
}

func TestGenerateJWTExpiryClaim(t *testing.T) {
	setupTestConfig()

	token, err := GenerateJWT("a@x.com", "A")
	require.NoError(t, err)

	parsed, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.AppConfig.JWTKey), nil
	})
	require.NoError(t, err)
	claims := parsed.Claims.(jwt.MapClaims)

	exp := int64(claims["exp"].(float64))
	iat := int64(claims["iat"].(float64))
	assert.InDelta(t, 3600, exp-iat, 1, "credential should live for one hour")
}
