package cases

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CasesPlugin struct{}

func New() *CasesPlugin {
	return &CasesPlugin{}
}

func (p *CasesPlugin) ID() string { return "cases" }

func (p *CasesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewCaseHandler(NewCaseService(db))

	router.Get("/", handler.List)
	router.Get("/stats/overview", handler.Stats)
	router.Post("/", middleware.Authorize(middleware.Editors...), handler.Create)
	router.Get("/:id", handler.Get)
	router.Put("/:id", middleware.Authorize(middleware.Editors...), handler.Update)
	router.Delete("/:id", middleware.Authorize(middleware.Managers...), handler.Delete)
}
