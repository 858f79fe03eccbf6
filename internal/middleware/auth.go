package middleware

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/token"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const tokenLocalsKey = "jwt"

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Message: "Unauthorized: invalid or expired token",
	})
}

// Authenticate accepts only "Authorization: Bearer <token>". A missing or
// malformed header is rejected before any verification, and every failure
// gets the same 401 body.
func Authenticate(tokens *token.Service) fiber.Handler {
	return jwtware.New(jwtware.Config{
		KeyFunc:     tokens.Keyfunc(),
		Claims:      &token.Claims{},
		TokenLookup: "header:" + fiber.HeaderAuthorization,
		AuthScheme:  "Bearer",
		ContextKey:  tokenLocalsKey,
		SuccessHandler: func(c *fiber.Ctx) error {
			parsed, _ := c.Locals(tokenLocalsKey).(*jwt.Token)
			id, err := token.FromParsed(parsed)
			if err != nil {
				return unauthorized(c)
			}
			tenant.SetIdentity(c, id)
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return unauthorized(c)
		},
	})
}
