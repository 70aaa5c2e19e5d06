package cartRoutes

import (
	cartController "fluency/controllers/cart"
	"fluency/middleware"
	cartValidator "fluency/validators/cart"

	"github.com/gofiber/fiber/v2"
)

func SetupCartRoutes(app *fiber.App) {
	cartGroup := app.Group("/carts")

	cartGroup.Post("/", middleware.JWTMiddleware, cartValidator.AddToCart(), cartController.AddToCart)
	cartGroup.Get("/:email", middleware.JWTMiddleware, cartController.GetCartItems)
	cartGroup.Delete("/:id", middleware.JWTMiddleware, cartValidator.CartIDParam(), cartController.RemoveCartItem)
}
