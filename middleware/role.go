package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// RoleLookup fetches the stored role for an email. A user without a
// record reports an empty role and a nil error; only infrastructure
// failures return a non-nil error.
type RoleLookup func(email string) (string, error)

// ErrForbidden means the caller's stored role does not match the
// required one (or the caller has no stored record at all).
var ErrForbidden = errors.New("forbidden")

// CheckRole is the role-guard predicate: exact, case-sensitive match of
// the stored role against the required one. It performs a fresh lookup
// per call, so a role revoked mid-session is denied on the next request.
func CheckRole(email, required string, lookup RoleLookup) error {
	if email == "" {
		return ErrForbidden
	}
	role, err := lookup(email)
	if err != nil {
		return err
	}
	if role != required {
		return ErrForbidden
	}
	return nil
}

// RequireRole composes CheckRole into route middleware. It must run
// after JWTMiddleware, which stores the verified identity in Locals.
func RequireRole(required string, lookup RoleLookup) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, _ := c.Locals("email").(string)

		if err := CheckRole(email, required, lookup); err != nil {
			if errors.Is(err, ErrForbidden) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"error":   true,
					"message": "forbidden access",
				})
			}
			return JsonResponse(c, fiber.StatusInternalServerError, false, "Server error while checking role!", nil)
		}

		return c.Next()
	}
}
