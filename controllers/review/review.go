package reviewController

import (
	"fluency/database"
	"fluency/middleware"
	"fluency/models"

	"github.com/gofiber/fiber/v2"

	reviewValidator "fluency/validators/review"
)

// GetReviews lists all reviews
func GetReviews(c *fiber.Ctx) error {
	var reviews []models.Review
	if err := database.Database.Db.Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", reviews)
}

// GetReviewByID returns a single review
func GetReviewByID(c *fiber.Ctx) error {
	reviewID := c.Locals("reviewID").(int)

	var review models.Review
	if err := database.Database.Db.First(&review, reviewID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Review not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review fetched successfully!", review)
}

// CreateReview saves a new review
func CreateReview(c *fiber.Ctx) error {
	reqData := c.Locals("validatedReview").(*reviewValidator.CreateReviewRequest)

	review := models.Review{
		CourseID:    reqData.CourseID,
		AuthorName:  reqData.AuthorName,
		AuthorEmail: reqData.AuthorEmail,
		Rating:      reqData.Rating,
		Text:        reqData.Text,
	}
	if err := database.Database.Db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review saved!", review)
}

// DeleteReview removes a review
func DeleteReview(c *fiber.Ctx) error {
	reviewID := c.Locals("reviewID").(int)

	result := database.Database.Db.
		Unscoped().
		Delete(&models.Review{}, reviewID)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete review!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review deleted!", fiber.Map{
		"deleted": result.RowsAffected,
	})
}
