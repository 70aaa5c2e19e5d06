package courseValidator

import (
	"fluency/middleware"
	"fluency/models"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CreateCourseRequest is the instructor-submitted course listing.
type CreateCourseRequest struct {
	Title          string  `json:"title" validate:"required,min=3"`
	Description    string  `json:"description"`
	Image          string  `json:"image"`
	Price          float64 `json:"price" validate:"gte=0"`
	AvailableSeats int     `json:"available_seats" validate:"gte=0"`
}

// CourseIDParam validates the :id route parameter
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course ID is required!", nil)
		}

		// Validate CourseID is a valid integer
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		c.Locals("courseID", courseID)
		return c.Next()
	}
}

// CreateCourse validates the POST /courses body
func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
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

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// UpdateStatus validates the PATCH /courses/:id body
func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		switch reqData.Status {
		case models.CourseStatusApproved, models.CourseStatusRejected:
		default:
			errors["status"] = "Status must be approved or rejected!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStatus", reqData.Status)
		return c.Next()
	}
}

// Feedback validates the PATCH /courses/feedback/:id body
func Feedback() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Message string `json:"message"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if strings.TrimSpace(reqData.Message) == "" {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"message": "Feedback message is required!",
			})
		}

		c.Locals("validatedFeedback", reqData.Message)
		return c.Next()
	}
}
