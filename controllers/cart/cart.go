package cartController

import (
	"fluency/database"
	"fluency/middleware"
	"fluency/models"
	"github.com/gofiber/fiber/v2"

	cartValidator "fluency/validators/cart"
)

// AddToCart records a pending enrollment intent for the calling student
func AddToCart(c *fiber.Ctx) error {
	email := c.Locals("email").(string)
	reqData := c.Locals("validatedCart").(*cartValidator.AddToCartRequest)

	// Students manage their own carts only
	if reqData.StudentEmail != email {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   true,
			"message": "forbidden access",
		})
	}

	db := database.Database.Db

	// A course can sit in a student's cart only once
	var existing models.CartItem
	if err := db.Where("student_email = ? AND course_id = ?", email, reqData.CourseID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Course already in cart!", nil)
	}

	item := models.CartItem{
		StudentEmail: reqData.StudentEmail,
		CourseID:     reqData.CourseID,
		CourseTitle:  reqData.CourseTitle,
		Price:        reqData.Price,
	}
	if err := db.Create(&item).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add to cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Added to cart!", item)
}

// GetCartItems lists a student's pending enrollments
func GetCartItems(c *fiber.Ctx) error {
	email := c.Params("email")

	var items []models.CartItem
	if err := database.Database.Db.
		Where("student_email = ?", email).
		Find(&items).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch cart!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart fetched successfully!", items)
}

// RemoveCartItem deletes a cart entry. Removing an entry that is already
// gone still reports success, so retries and the enrollment coordinator
// never trip over each other.
func RemoveCartItem(c *fiber.Ctx) error {
	cartID := c.Locals("cartID").(int)

	result := database.Database.Db.
		Unscoped().
		Delete(&models.CartItem{}, cartID)
	if result.Error != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove cart item!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Cart item removed!", fiber.Map{
		"deleted": result.RowsAffected,
	})
}
