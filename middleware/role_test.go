package middleware

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(roles map[string]string) RoleLookup {
	return func(email string) (string, error) {
		return roles[email], nil
	}
}

func TestCheckRoleMatch(t *testing.T) {
	lookup := mapLookup(map[string]string{"a@x.com": "admin"})
	assert.NoError(t, CheckRole("a@x.com", "admin", lookup))
}

func TestCheckRoleMismatch(t *testing.T) {
	lookup := mapLookup(map[string]string{"a@x.com": "student"})
	assert.ErrorIs(t, CheckRole("a@x.com", "admin", lookup), ErrForbidden)
}

func TestCheckRoleCaseSensitive(t *testing.T) {
	lookup := mapLookup(map[string]string{"a@x.com": "Admin"})
	assert.ErrorIs(t, CheckRole("a@x.com", "admin", lookup), ErrForbidden)
}

func TestCheckRoleUnknownUser(t *testing.T) {
	// A user with no stored record has no role, which never matches.
	lookup := mapLookup(map[string]string{})
	assert.ErrorIs(t, CheckRole("a@x.com", "admin", lookup), ErrForbidden)
}

func TestCheckRoleEmptyIdentity(t *testing.T) {
	lookup := mapLookup(map[string]string{"": "admin"})
	assert.ErrorIs(t, CheckRole("", "admin", lookup), ErrForbidden)
}

func TestCheckRoleLookupError(t *testing.T) {
	infraErr := errors.New("connection refused")
	lookup := func(email string) (string, error) { return "", infraErr }

	err := CheckRole("a@x.com", "admin", lookup)
	assert.ErrorIs(t, err, infraErr)
	assert.NotErrorIs(t, err, ErrForbidden)
}

func TestCheckRoleRevocationTakesEffectImmediately(t *testing.T) {
	// The guard re-reads the store on every call, so a revoked role is
	// denied on the very next check with no cached grant surviving.
	roles := map[string]string{"a@x.com": "admin"}
	lookup := mapLookup(roles)

	require.NoError(t, CheckRole("a@x.com", "admin", lookup))

	roles["a@x.com"] = ""
	assert.ErrorIs(t, CheckRole("a@x.com", "admin", lookup), ErrForbidden)
}

func TestRequireRoleForbiddenResponse(t *testing.T) {
	setupTestConfig()

	app := fiber.New()
	lookup := mapLookup(map[string]string{"a@x.com": "student"})
	app.Get("/admin-only", JWTMiddleware, RequireRole("admin", lookup), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	token, err := GenerateJWT("a@x.com", "A")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	body := decodeBody(t, resp.Body)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "forbidden access", body["message"])
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	setupTestConfig()

	app := fiber.New()
	lookup := mapLookup(map[string]string{"a@x.com": "admin"})
	app.Get("/admin-only", JWTMiddleware, RequireRole("admin", lookup), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	token, err := GenerateJWT("a@x.com", "A")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin-only", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRoleShortCircuitsWithoutToken(t *testing.T) {
	setupTestConfig()

	lookupCalled := false
	lookup := func(email string) (string, error) {
		lookupCalled = true
		return "admin", nil
	}

	app := fiber.New()
	app.Get("/admin-only", JWTMiddleware, RequireRole("admin", lookup), func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	req := httptest.NewRequest("GET", "/admin-only", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	// Authentication fails before any store access happens.
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.False(t, lookupCalled)
}
