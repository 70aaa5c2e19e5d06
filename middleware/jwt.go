package middleware

import (
	"fluency/config"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// GenerateJWT signs a short-lived bearer credential carrying the caller's
// identity claim. The email is the identity key everywhere else.
func GenerateJWT(email, name string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"name":  name,
		"iat":   time.Now().Unix(),                    // issued at
		"exp":   time.Now().Add(1 * time.Hour).Unix(), // expiry 1h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	jwtSecret := []byte(config.AppConfig.JWTKey)

	return token.SignedString(jwtSecret)
}

// unauthorized is the single 401 shape: no detail on which check failed.
func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   true,
		"message": "unauthorized access",
	})
}

// JWTMiddleware is a middleware to check for valid JWT token in the request
func JWTMiddleware(c *fiber.Ctx) error {
	// Get the token from the Authorization header
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return unauthorized(c)
	}

	// The token should be prefixed with "Bearer "
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return unauthorized(c)
	}

	// Extract the token part
	tokenString := authHeader[len("Bearer "):]

	// Parse and validate the token
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Check if the token method is valid
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		jwtSecret := []byte(config.AppConfig.JWTKey)
		return jwtSecret, nil
	})

	// If there's an error parsing the token
	if err != nil || !token.Valid {
		return unauthorized(c)
	}

	// Extract the identity claim from the token
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["email"] == nil {
		return unauthorized(c)
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return unauthorized(c)
	}

	// Set the caller identity in the request context
	c.Locals("email", email)
	if name, ok := claims["name"].(string); ok {
		c.Locals("name", name)
	}

	// If valid, continue to the next handler
	return c.Next()
}

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}
