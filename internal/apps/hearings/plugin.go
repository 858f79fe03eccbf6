package hearings

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HearingsPlugin struct{}

func New() *HearingsPlugin {
	return &HearingsPlugin{}
}

func (p *HearingsPlugin) ID() string { return "hearings" }

func (p *HearingsPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewHearingHandler(NewHearingService(db))

	router.Get("/", handler.List)
	router.Get("/upcoming", handler.Upcoming)
	router.Post("/", middleware.Authorize(middleware.Editors...), handler.Create)
	router.Get("/:id", handler.Get)
	router.Put("/:id", middleware.Authorize(middleware.Editors...), handler.Update)
	router.Delete("/:id", middleware.Authorize(middleware.Managers...), handler.Delete)
}
