package apps

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Plugin is a practice-management module mounted under /api.
type Plugin interface {
	// ID is the module name and its route prefix, e.g. "clients".
	ID() string

	// RegisterRoutes mounts the module's routes on the given Fiber group.
	// The group is already prefixed with /api/<ID> and has authentication
	// and tenant isolation applied; role guards are the module's job.
	RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config)
}
