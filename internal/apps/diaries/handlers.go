package diaries

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DiaryHandler struct {
	service *DiaryService
}

func NewDiaryHandler(service *DiaryService) *DiaryHandler {
	return &DiaryHandler{service: service}
}

func kindParam(c *fiber.Ctx) models.DiaryKind {
	return models.DiaryKind(c.Params("kind"))
}

func (h *DiaryHandler) List(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	filter := ListFilter{Status: c.Query("status"), Search: c.Query("search")}
	if raw := c.Query("case_id"); raw != "" {
		if filter.CaseID, err = uuid.Parse(raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid case_id",
			})
		}
	}

	page, limit := handlers.Page(c)
	resp, err := h.service.List(c.UserContext(), scope, kindParam(c), filter, page, limit)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(resp)
}

func (h *DiaryHandler) Overdue(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	entries, err := h.service.Overdue(c.UserContext(), scope)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(fiber.Map{"data": entries})
}

func (h *DiaryHandler) Today(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	entries, err := h.service.CourtHearingsOn(c.UserContext(), scope, h.service.now())
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(fiber.Map{"data": entries})
}

func (h *DiaryHandler) Get(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	entry, err := h.service.Get(c.UserContext(), scope, kindParam(c), id)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(entry)
}

func (h *DiaryHandler) Create(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	var req EntryRequest
	if !handlers.Bind(c, &req) {
		return nil
	}

	entry, err := h.service.Create(c.UserContext(), scope, kindParam(c), &req)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

func (h *DiaryHandler) Update(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	var req EntryRequest
	if !handlers.Bind(c, &req) {
		return nil
	}

	entry, err := h.service.Update(c.UserContext(), scope, kindParam(c), id, &req)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(entry)
}

func (h *DiaryHandler) Delete(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	if err := h.service.Delete(c.UserContext(), scope, kindParam(c), id); err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Diary entry deleted"})
}
