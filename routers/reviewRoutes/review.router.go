package reviewRoutes

import (
	reviewController "fluency/controllers/review"
	reviewValidator "fluency/validators/review"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/reviews")

	reviewGroup.Get("/", reviewController.GetReviews)
	reviewGroup.Get("/:id", reviewValidator.ReviewIDParam(), reviewController.GetReviewByID)
	reviewGroup.Post("/", reviewValidator.CreateReview(), reviewController.CreateReview)
	reviewGroup.Delete("/:id", reviewValidator.ReviewIDParam(), reviewController.DeleteReview)
}
