package userValidator

import (
	"fluency/middleware"
	"fluency/models"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Helper to validate email format
func isValidEmail(email string) bool {
	re := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return re.MatchString(email)
}

// EmailParam validates the :email route parameter
func EmailParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		email := strings.TrimSpace(c.Params("email"))
		if email == "" || !isValidEmail(email) {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid email!", nil)
		}

		c.Locals("paramEmail", email)
		return c.Next()
	}
}

// UpsertUser validates the PUT /users/:email body
func UpsertUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name     string `json:"name"`
			PhotoURL string `json:"photo_url"`
			Role     string `json:"role"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Name
		if strings.TrimSpace(reqData.Name) == "" {
			errors["name"] = "Name is required!"
		}

		// A role supplied at registration may only be the student default;
		// elevated roles are granted by an admin through PATCH /users.
		if reqData.Role != "" && reqData.Role != models.RoleStudent {
			errors["role"] = "Role cannot be self-assigned!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedUser", reqData)
		return c.Next()
	}
}

// SetRole validates the PATCH /users/:email body
func SetRole() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Role string `json:"role"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Role {
		case models.RoleStudent, models.RoleInstructor, models.RoleAdmin:
		default:
			errors["role"] = "Role must be one of student, instructor, admin!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedRole", reqData.Role)
		return c.Next()
	}
}
