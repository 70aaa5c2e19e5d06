package main

import (
	"log"
	"time"

	"fluency/config"
	paymentController "fluency/controllers/payment"
	"fluency/database"
	"fluency/models"
	adminRoutes "fluency/routers/adminRoutes"
	authRoutes "fluency/routers/authRoutes"
	cartRoutes "fluency/routers/cartRoutes"
	courseRoutes "fluency/routers/courseRoutes"
	paymentRoutes "fluency/routers/paymentRoutes"
	reviewRoutes "fluency/routers/reviewRoutes"
	userRoutes "fluency/routers/userRoutes"
	"fluency/services"
	"fluency/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Store handles are built once here and passed into the components
	// that need them; the seat counters are only ever touched through
	// the course store's conditional update.
	db := database.Database.Db
	paymentStore := database.NewPaymentStore(db)
	cartStore := database.NewCartStore(db)
	courseStore := database.NewCourseStore(db)

	stripeClient := utils.NewStripeClient(
		config.AppConfig.StripeApiURL,
		config.AppConfig.StripeSecretKey,
		time.Duration(config.AppConfig.PaymentTimeout)*time.Second,
	)

	coordinator := services.NewEnrollmentCoordinator(paymentStore, cartStore, courseStore).
		WithNotifier(func(payment *models.Payment) {
			// Receipt email is fire-and-forget; never blocks the response.
			go func() {
				var course models.Course
				db.First(&course, payment.CourseID)
				var student models.User
				db.Where("email = ?", payment.StudentEmail).First(&student)
				utils.SendEnrollmentReceipt(payment.StudentEmail, student.Name, course.Title, payment.Amount, payment.TransactionID)
			}()
		})

	reconciler := services.NewReconciler(paymentStore, courseStore)
	utils.InitializeReconcileScheduler(reconciler, config.AppConfig.ReconcileCron)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	cartRoutes.SetupCartRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app, paymentController.NewPaymentController(stripeClient, coordinator))
	reviewRoutes.SetupReviewRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("FluencyMastery server is running...")
	})

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
