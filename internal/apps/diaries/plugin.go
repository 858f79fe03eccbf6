package diaries

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Clients of the firm never keep diaries.
var writers = []models.Role{models.RoleOwner, models.RoleAdmin, models.RoleAdvocate, models.RoleStaff}

type DiariesPlugin struct{}

func New() *DiariesPlugin {
	return &DiariesPlugin{}
}

func (p *DiariesPlugin) ID() string { return "diaries" }

func (p *DiariesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewDiaryHandler(NewDiaryService(db))

	router.Use(middleware.Authorize(writers...))
	router.Get("/follow_up/overdue", handler.Overdue)
	router.Get("/court_hearing/today", handler.Today)
	router.Get("/:kind", handler.List)
	router.Post("/:kind", handler.Create)
	router.Get("/:kind/:id", handler.Get)
	router.Put("/:kind/:id", handler.Update)
	router.Delete("/:kind/:id", handler.Delete)
}
