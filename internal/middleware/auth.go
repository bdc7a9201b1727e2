// Package middleware provides HTTP middleware components for the
// application: authentication, request ids and idempotent replay of
// transaction requests.
package middleware

import (
	"log"
	"strings"

	"walletpay/internal/config"
	"walletpay/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware validates service tokens. Callers of the wallet API
// authenticate with an HS256-signed JWT carrying their client id.
type AuthMiddleware struct {
	secret []byte
}

func NewAuthMiddleware() *AuthMiddleware {
	return &AuthMiddleware{
		secret: []byte(config.GetEnv("JWT_SECRET", "walletpay")),
	}
}

// Handler validates the bearer token and adds the claims to the
// request context.
func (m *AuthMiddleware) Handler(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing authorization header"})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid authorization format"})
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	token, err := jwt.ParseWithClaims(tokenString, &models.ServiceClaims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		log.Printf("Token validation error: %v", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	if !token.Valid {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid token"})
	}

	claims, ok := token.Claims.(*models.ServiceClaims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid claims"})
	}

	c.Locals("claims", claims)
	return c.Next()
}
