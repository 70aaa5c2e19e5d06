package paymentValidator

import (
	"encoding/json"
	"fluency/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// EnrollmentRequest is the client-confirmed payment payload handed to
// the enrollment coordinator. GatewayResponse carries the confirmed
// intent as returned by the processor, stored verbatim on the payment
// record.
type EnrollmentRequest struct {
	StudentEmail    string          `json:"student_email" validate:"required,email"`
	CourseID        uint            `json:"course_id" validate:"required"`
	CartID          uint            `json:"cart_id" validate:"required"`
	Amount          float64         `json:"amount" validate:"required,gt=0"`
	Currency        string          `json:"currency" validate:"omitempty,len=3"`
	GatewayResponse json.RawMessage `json:"gateway_response"`
}

// CompleteEnrollment validates the POST /payments body
func CompleteEnrollment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollmentRequest)
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

		c.Locals("validatedEnrollment", reqData)
		return c.Next()
	}
}

// ConfirmPayment validates the POST /confirm-payment body
func ConfirmPayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount   float64 `json:"amount"`
			Currency string  `json:"currency"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Amount
		if reqData.Amount <= 0 {
			errors["amount"] = "Amount must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedIntent", reqData)
		return c.Next()
	}
}
