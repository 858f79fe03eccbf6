package cases

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type CaseHandler struct {
	service *CaseService
}

func NewCaseHandler(service *CaseService) *CaseHandler {
	return &CaseHandler{service: service}
}

func (h *CaseHandler) List(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	page, limit := handlers.Page(c)
	filter := ListFilter{
		Status:   c.Query("status"),
		CaseType: c.Query("case_type"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("client_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid client_id",
			})
		}
		filter.ClientID = id
	}

	resp, err := h.service.List(c.UserContext(), scope, filter, page, limit)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(resp)
}

func (h *CaseHandler) Stats(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	stats, err := h.service.Stats(c.UserContext(), scope)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(stats)
}

func (h *CaseHandler) Get(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	found, err := h.service.Get(c.UserContext(), scope, id)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(found)
}

func (h *CaseHandler) Create(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	var req CaseRequest
	if !handlers.Bind(c, &req) {
		return nil
	}

	created, err := h.service.Create(c.UserContext(), scope, &req)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *CaseHandler) Update(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	var req CaseRequest
	if !handlers.Bind(c, &req) {
		return nil
	}

	updated, err := h.service.Update(c.UserContext(), scope, id, &req)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(updated)
}

func (h *CaseHandler) Delete(c *fiber.Ctx) error {
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
	return c.JSON(dto.MessageResponse{Message: "Case archived"})
}
