package articles

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ArticlesPlugin serves the legal reference library.
type ArticlesPlugin struct{}

func New() *ArticlesPlugin {
	return &ArticlesPlugin{}
}

func (p *ArticlesPlugin) ID() string { return "articles" }

func (p *ArticlesPlugin) RegisterRoutes(router fiber.Router, db *gorm.DB, cfg *config.Config) {
	handler := NewArticleHandler(NewArticleService(db))

	router.Get("/", handler.List)
	router.Get("/search", handler.Search)
	router.Get("/category/:category", handler.ByCategory)
	router.Get("/:number", handler.ByNumber)
	router.Post("/", middleware.Authorize(middleware.Managers...), handler.Create)
	router.Put("/:id", middleware.Authorize(middleware.Managers...), handler.Update)
	router.Delete("/:id", middleware.Authorize(middleware.Managers...), handler.Delete)
}
