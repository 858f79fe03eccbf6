package articles

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
)

type ArticleHandler struct {
	service *ArticleService
}

func NewArticleHandler(service *ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

func (h *ArticleHandler) List(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	page, limit := handlers.Page(c)
	resp, err := h.service.List(c.UserContext(), scope, c.Query("category"), page, limit)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(resp)
}

func (h *ArticleHandler) Search(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	found, err := h.service.Search(c.UserContext(), scope, c.Query("q"))
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(fiber.Map{"data": found, "count": len(found)})
}

func (h *ArticleHandler) ByCategory(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	found, err := h.service.ByCategory(c.UserContext(), scope, c.Params("category"))
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(fiber.Map{"data": found, "count": len(found)})
}

func (h *ArticleHandler) ByNumber(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	found, err := h.service.ByNumber(c.UserContext(), scope, c.Params("number"))
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(found)
}

func (h *ArticleHandler) Create(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	var req ArticleRequest
	if !handlers.Bind(c, &req) {
		return nil
	}

	created, err := h.service.Create(c.UserContext(), scope, &req)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *ArticleHandler) Update(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	var req ArticleRequest
	if !handlers.Bind(c, &req) {
		return nil
	}

	updated, err := h.service.Update(c.UserContext(), scope, id, &req)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(updated)
}

func (h *ArticleHandler) Delete(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	if err := h.service.Delete(c.UserContext(), scope, id); err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Article deleted"})
}
