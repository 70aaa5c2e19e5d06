package authController

import (
	"fluency/middleware"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// IssueToken mints a bearer token for a client-supplied identity claim.
// The upstream identity provider already authenticated the user; this
// endpoint only wraps the claim in a signed, short-lived credential.
func IssueToken(c *fiber.Ctx) error {
	reqData := new(struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if strings.TrimSpace(reqData.Email) == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Email is required!", nil)
	}

	token, err := middleware.GenerateJWT(reqData.Email, reqData.Name)
	if err != nil {
		log.Printf("Error signing token for %s: %v", reqData.Email, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to issue token!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"token": token})
}
