package jwt

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// Locals keys set by the middleware.
const (
	LocalOperatorID    = "operatorId"
	LocalOperatorEmail = "operatorEmail"
)

// NewAuthMiddleware returns a Fiber middleware that validates Bearer JWT (HS256)
// issued by Generator for console operators. An empty secret rejects every token.
func NewAuthMiddleware(secret, expectedIssuer string) fiber.Handler {
	secretBytes := []byte(secret)
	deny := func(c *fiber.Ctx, msg string) error {
		return c.Status(http.StatusUnauthorized).JSON(fiber.Map{"message": msg})
	}
	return func(c *fiber.Ctx) error {
		tokenStr, ok := bearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok {
			return deny(c, "missing Authorization header")
		}
		var claims Claims
		opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name})}
		if expectedIssuer != "" {
			opts = append(opts, jwt.WithIssuer(expectedIssuer))
		}
		token, err := jwt.ParseWithClaims(tokenStr, &claims, func(*jwt.Token) (any, error) {
			if len(secretBytes) == 0 {
				return nil, jwt.ErrInvalidKey
			}
			return secretBytes, nil
		}, opts...)
		if err != nil || !token.Valid {
			return deny(c, "invalid or expired token")
		}
		c.Locals(LocalOperatorID, claims.Subject)
		c.Locals(LocalOperatorEmail, claims.Email)
		return c.Next()
	}
}

// bearerToken accepts both "Bearer <token>" and a bare token.
func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if scheme, rest, found := strings.Cut(header, " "); found && strings.EqualFold(scheme, "Bearer") {
		header = strings.TrimSpace(rest)
	}
	return header, header != ""
}
