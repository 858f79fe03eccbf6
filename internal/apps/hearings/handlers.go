package hearings

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type HearingHandler struct {
	service *HearingService
}

func NewHearingHandler(service *HearingService) *HearingHandler {
	return &HearingHandler{service: service}
}

func (h *HearingHandler) List(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	filter := ListFilter{Status: c.Query("status")}
	if raw := c.Query("case_id"); raw != "" {
		if filter.CaseID, err = uuid.Parse(raw); err != nil {
			return badQuery(c, "case_id")
		}
	}
	if raw := c.Query("from"); raw != "" {
		if filter.From, err = time.Parse(time.RFC3339, raw); err != nil {
			return badQuery(c, "from")
		}
	}
	if raw := c.Query("to"); raw != "" {
		if filter.To, err = time.Parse(time.RFC3339, raw); err != nil {
			return badQuery(c, "to")
		}
	}

	page, limit := handlers.Page(c)
	resp, err := h.service.List(c.UserContext(), scope, filter, page, limit)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(resp)
}

func (h *HearingHandler) Upcoming(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	list, err := h.service.Upcoming(c.UserContext(), scope, c.QueryInt("days", defaultUpcomingDays))
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(fiber.Map{"data": list})
}

func (h *HearingHandler) Get(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	hearing, err := h.service.Get(c.UserContext(), scope, id)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(hearing)
}

func (h *HearingHandler) Create(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	var req HearingRequest
	if !handlers.Bind(c, &req) {
		return nil
	}

	hearing, err := h.service.Create(c.UserContext(), scope, &req)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(hearing)
}

func (h *HearingHandler) Update(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	var req HearingRequest
	if !handlers.Bind(c, &req) {
		return nil
	}

	hearing, err := h.service.Update(c.UserContext(), scope, id, &req)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(hearing)
}

func (h *HearingHandler) Delete(c *fiber.Ctx) error {
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
	return c.JSON(dto.MessageResponse{Message: "Hearing removed"})
}

func badQuery(c *fiber.Ctx, param string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error: true, Message: "Invalid " + param,
	})
}
