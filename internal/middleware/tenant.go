package middleware

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
)

// TenantIsolation binds the authenticated tenant to the request. It must run
// after Authenticate; without an identity the request is rejected.
func TenantIsolation() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := tenant.Bind(c); err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "User not authenticated",
			})
		}
		return c.Next()
	}
}
