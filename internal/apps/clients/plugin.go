package clients

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ClientsPlugin struct{}

func New() *ClientsPlugin {
	return &ClientsPlugin{}
}

func (p *ClientsPlugin) ID() string { return "clients" }

func (p *ClientsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewClientHandler(NewClientService(db))

	router.Get("/", handler.List)
	router.Post("/", middleware.Authorize(middleware.Editors...), handler.Create)
	router.Get("/:id", handler.Get)
	router.Put("/:id", middleware.Authorize(middleware.Editors...), handler.Update)
	router.Delete("/:id", middleware.Authorize(middleware.Managers...), handler.Delete)
}
