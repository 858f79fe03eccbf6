package clients

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
)

type ClientHandler struct {
	service *ClientService
}

func NewClientHandler(service *ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

func (h *ClientHandler) List(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	page, limit := handlers.Page(c)
	filter := ListFilter{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}

	resp, err := h.service.List(c.UserContext(), scope, filter, page, limit)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(resp)
}

func (h *ClientHandler) Get(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	client, err := h.service.Get(c.UserContext(), scope, id)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(client)
}

func (h *ClientHandler) Create(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	var req ClientRequest
	if !handlers.Bind(c, &req) {
		return nil
	}

	client, err := h.service.Create(c.UserContext(), scope, &req)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func (h *ClientHandler) Update(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	var req ClientRequest
	if !handlers.Bind(c, &req) {
		return nil
	}

	client, err := h.service.Update(c.UserContext(), scope, id, &req)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(client)
}

func (h *ClientHandler) Delete(c *fiber.Ctx) error {
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
	return c.JSON(dto.MessageResponse{Message: "Client archived"})
}
