package paymentRoutes

import (
	paymentController "fluency/controllers/payment"
	"fluency/middleware"
	paymentValidator "fluency/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes wires the payment surface. The controller carries
// the injected processor client and enrollment coordinator.
func SetupPaymentRoutes(app *fiber.App, pc *paymentController.PaymentController) {
	app.Post("/confirm-payment", middleware.JWTMiddleware, paymentValidator.ConfirmPayment(), pc.ConfirmPayment)
	app.Post("/payments", middleware.JWTMiddleware, paymentValidator.CompleteEnrollment(), pc.CompleteEnrollment)
	app.Get("/payment-history/:email", middleware.JWTMiddleware, paymentController.PaymentHistory)
}
