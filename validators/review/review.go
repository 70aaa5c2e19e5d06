package reviewValidator

import (
	"fluency/middleware"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateReviewRequest struct {
	CourseID    uint   `json:"course_id" validate:"required"`
	AuthorName  string `json:"author_name" validate:"required"`
	AuthorEmail string `json:"author_email" validate:"required,email"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Text        string `json:"text"`
}

// CreateReview validates the POST /reviews body
func CreateReview() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateReviewRequest)
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

		c.Locals("validatedReview", reqData)
		return c.Next()
	}
}

// ReviewIDParam validates the :id route parameter
func ReviewIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Review ID is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Review ID!", nil)
		}

		c.Locals("reviewID", id)
		return c.Next()
	}
}
