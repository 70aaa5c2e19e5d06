package authRoutes

import (
	authController "fluency/controllers/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	app.Post("/jwt", authController.IssueToken)
}
