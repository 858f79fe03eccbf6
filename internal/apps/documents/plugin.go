package documents

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DocumentsPlugin struct{}

func New() *DocumentsPlugin {
	return &DocumentsPlugin{}
}

func (p *DocumentsPlugin) ID() string { return "documents" }

func (p *DocumentsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewDocumentHandler(NewDocumentService(db))

	router.Get("/", handler.List)
	router.Post("/", middleware.Authorize(middleware.Editors...), handler.Create)
	router.Get("/by-case", handler.ByCase)
	router.Get("/:id", handler.Get)
	router.Get("/:id/export", handler.Export)
	router.Put("/:id", middleware.Authorize(middleware.Editors...), handler.Update)
	router.Post("/:id/approve", middleware.Authorize(middleware.Managers...), handler.Approve)
	router.Delete("/:id", middleware.Authorize(middleware.Managers...), handler.Delete)
}
