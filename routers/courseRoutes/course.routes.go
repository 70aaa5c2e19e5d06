package courseRoutes

import (
	courseController "fluency/controllers/course"
	"fluency/database"
	"fluency/middleware"
	"fluency/models"
	courseValidator "fluency/validators/course"
	userValidator "fluency/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up course listing, submission and moderation
// routes. Static segments are registered before the :id catch-all so
// /courses/approved and friends are never shadowed.
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/courses")

	requireAdmin := middleware.RequireRole(models.RoleAdmin, database.LookupUserRole)
	requireInstructor := middleware.RequireRole(models.RoleInstructor, database.LookupUserRole)

	// Public listings
	courseGroup.Get("/approved", courseController.GetApprovedCourses)
	courseGroup.Get("/popular", courseController.GetPopularCourses)

	// Student enrolled courses
	courseGroup.Get("/payments/:email", middleware.JWTMiddleware, courseController.GetEnrolledCourses)

	// Instructor surface
	courseGroup.Get("/instructor/:email", middleware.JWTMiddleware, requireInstructor, userValidator.EmailParam(), courseController.GetInstructorCourses)
	courseGroup.Post("/", middleware.JWTMiddleware, requireInstructor, courseValidator.CreateCourse(), courseController.CreateCourse)

	// Admin moderation
	courseGroup.Get("/", middleware.JWTMiddleware, requireAdmin, courseController.GetAllCourses)
	courseGroup.Patch("/feedback/:id", middleware.JWTMiddleware, requireAdmin, courseValidator.CourseIDParam(), courseValidator.Feedback(), courseController.UpdateCourseFeedback)
	courseGroup.Patch("/:id", middleware.JWTMiddleware, requireAdmin, courseValidator.CourseIDParam(), courseValidator.UpdateStatus(), courseController.UpdateCourseStatus)

	// Single course detail (keep last: catch-all parameter)
	courseGroup.Get("/:id", courseValidator.CourseIDParam(), courseController.GetCourseByID)
}
