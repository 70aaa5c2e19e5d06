package paymentController

import (
	"fluency/database"
	"fluency/middleware"
	"fluency/models"
	"fluency/services"
	"fluency/utils"
	"log"

	"github.com/gofiber/fiber/v2"

	paymentValidator "fluency/validators/payment"
)

// PaymentController carries the injected payment-processor client and
// the enrollment coordinator; everything else in this package reads the
// shared database handle like the rest of the controllers.
type PaymentController struct {
	Stripe      *utils.StripeClient
	Coordinator *services.EnrollmentCoordinator
}

func NewPaymentController(stripe *utils.StripeClient, coordinator *services.EnrollmentCoordinator) *PaymentController {
	return &PaymentController{
		Stripe:      stripe,
		Coordinator: coordinator,
	}
}

// ConfirmPayment creates a processor payment intent for the cart total
// and hands the client secret back for confirmation on the client side
func (pc *PaymentController) ConfirmPayment(c *fiber.Ctx) error {
	reqData := c.Locals("validatedIntent").(*struct {
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	})

	intent, err := pc.Stripe.CreatePaymentIntent(c.Context(), reqData.Amount, reqData.Currency)
	if err != nil {
		log.Printf("Error creating payment intent: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create payment intent!", nil)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"clientSecret": intent.ClientSecret,
	})
}

// CompleteEnrollment records a client-confirmed payment and settles the
// cart entry and seat counters through the coordinator
func (pc *PaymentController) CompleteEnrollment(c *fiber.Ctx) error {
	email := c.Locals("email").(string)
	reqData := c.Locals("validatedEnrollment").(*paymentValidator.EnrollmentRequest)

	// A student can only complete their own enrollment
	if reqData.StudentEmail != email {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   true,
			"message": "forbidden access",
		})
	}

	payment, err := pc.Coordinator.CompleteEnrollment(c.Context(), services.EnrollmentPayload{
		StudentEmail: reqData.StudentEmail,
		CourseID:     reqData.CourseID,
		CartID:       reqData.CartID,
		Amount:       reqData.Amount,
		Currency:     reqData.Currency,
		GatewayRaw:   reqData.GatewayResponse,
	})
	if err != nil {
		log.Printf("Enrollment failed for %s, course %d: %v", reqData.StudentEmail, reqData.CourseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record payment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment completed!", payment)
}

// PaymentHistory lists a student's payments, newest first
func PaymentHistory(c *fiber.Ctx) error {
	email := c.Params("email")

	var payments []models.Payment
	if err := database.Database.Db.
		Where("student_email = ?", email).
		Order("paid_at desc").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payment history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment history fetched successfully!", payments)
}
