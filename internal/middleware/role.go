package middleware

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
)

// Authorize admits only callers whose role is in allowed. Roles do not imply
// one another.
func Authorize(allowed ...models.Role) fiber.Handler {
	set := make(map[models.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		id, err := tenant.GetIdentity(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "User not authenticated",
			})
		}
		if _, ok := set[id.Role]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: "Insufficient permissions for this action",
			})
		}
		return c.Next()
	}
}

// Common allow-lists.
var (
	Managers = []models.Role{models.RoleOwner, models.RoleAdmin}
	Editors  = []models.Role{models.RoleOwner, models.RoleAdmin, models.RoleAdvocate}
)
