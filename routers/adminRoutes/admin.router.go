package adminRoutes

import (
	adminController "fluency/controllers/admin"
	"fluency/database"
	"fluency/middleware"
	"fluency/models"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	requireAdmin := middleware.RequireRole(models.RoleAdmin, database.LookupUserRole)

	adminGroup.Get("/dashboard", middleware.JWTMiddleware, requireAdmin, adminController.GetDashboardStats)
}
