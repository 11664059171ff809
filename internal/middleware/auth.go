package middleware

import (
	"fmt"
	"strings"

	"lexiquiz/internal/domain"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// UserIDKey is the Locals key under which Protected stores the caller's id.
const UserIDKey = "user_id"

// Protected parses the Bearer token and stores the subject claim in Locals.
// Token issuance happens outside this service; only verification lives here.
func Protected(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return domain.NewUnauthorizedError("Missing Authorization header")
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenStr == "" {
			return domain.NewUnauthorizedError("Authorization header must be a Bearer token")
		}

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return domain.NewUnauthorizedError("Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return domain.NewUnauthorizedError("Invalid token claims")
		}
		sub, _ := claims["sub"].(string)
		if sub == "" {
			return domain.NewUnauthorizedError("Token has no subject")
		}

		c.Locals(UserIDKey, sub)
		return c.Next()
	}
}

// UserID reads the authenticated user id stored by Protected.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(UserIDKey).(string)
	return id
}
