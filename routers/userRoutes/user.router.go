package userRoutes

import (
	userController "fluency/controllers/user"
	"fluency/database"
	"fluency/middleware"
	"fluency/models"
	userValidator "fluency/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupUserRoutes sets up user, role and instructor routes
func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/users")

	requireAdmin := middleware.RequireRole(models.RoleAdmin, database.LookupUserRole)

	// Instructor listings (public)
	userGroup.Get("/instructors/popular", userController.GetPopularInstructors)
	userGroup.Get("/instructors", userController.GetInstructors)

	// Role self-checks (public; report {role:false} for anyone unknown)
	userGroup.Get("/admin/:email", userController.CheckAdminRole)
	userGroup.Get("/instructor/:email", userController.CheckInstructorRole)

	// Profile upsert on login/registration
	userGroup.Put("/:email", userValidator.EmailParam(), userValidator.UpsertUser(), userController.UpsertUser)

	// Admin user management
	userGroup.Get("/", middleware.JWTMiddleware, requireAdmin, userController.GetAllUsers)
	userGroup.Patch("/:email", middleware.JWTMiddleware, requireAdmin, userValidator.EmailParam(), userValidator.SetRole(), userController.SetUserRole)
	userGroup.Delete("/:email", middleware.JWTMiddleware, requireAdmin, userValidator.EmailParam(), userController.DeleteUser)
}
