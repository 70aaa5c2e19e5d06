package cartValidator

import (
	"fluency/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AddToCartRequest selects a course for later enrollment.
type AddToCartRequest struct {
	StudentEmail string  `json:"student_email" validate:"required,email"`
	CourseID     uint    `json:"course_id" validate:"required"`
	CourseTitle  string  `json:"course_title"`
	Price        float64 `json:"price" validate:"gte=0"`
}

// AddToCart validates the POST /carts body
func AddToCart() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(AddToCartRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				errors[fieldErr.Field()] = "Failed on rule: " + fieldErr.Tag()
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCart", reqData)
		return c.Next()
	}
}

// CartIDParam validates the :id route parameter
func CartIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		cartIDStr := strings.TrimSpace(c.Params("id"))
		if cartIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cart ID is required!", nil)
		}

		cartID, err := strconv.Atoi(cartIDStr)
		if err != nil || cartID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Cart ID!", nil)
		}

		c.Locals("cartID", cartID)
		return c.Next()
	}
}
