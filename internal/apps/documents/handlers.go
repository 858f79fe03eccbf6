package documents

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type DocumentHandler struct {
	service *DocumentService
}

func NewDocumentHandler(service *DocumentService) *DocumentHandler {
	return &DocumentHandler{service: service}
}

func (h *DocumentHandler) List(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	var caseID uuid.UUID
	if raw := c.Query("case_id"); raw != "" {
		if caseID, err = uuid.Parse(raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: "Invalid case_id",
			})
		}
	}

	page, limit := handlers.Page(c)
	resp, err := h.service.List(c.UserContext(), scope, caseID, c.Query("document_type"), page, limit)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(resp)
}

func (h *DocumentHandler) Get(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	doc, err := h.service.Get(c.UserContext(), scope, id)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(doc)
}

func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	var req CreateRequest
	if !handlers.Bind(c, &req) {
		return nil
	}

	doc, err := h.service.Create(c.UserContext(), scope, &req)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(doc)
}

func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	var req DocumentRequest
	if !handlers.Bind(c, &req) {
		return nil
	}

	doc, err := h.service.Update(c.UserContext(), scope, id, &req)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(doc)
}

func (h *DocumentHandler) Approve(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	doc, err := h.service.Approve(c.UserContext(), scope, id)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(doc)
}

func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
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
	return c.JSON(dto.MessageResponse{Message: "Document archived"})
}

func (h *DocumentHandler) ByCase(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}

	groups, err := h.service.ByCase(c.UserContext(), scope)
	if err != nil {
		return handlers.Fail(c, err)
	}
	return c.JSON(fiber.Map{"data": groups})
}

func (h *DocumentHandler) Export(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return handlers.Fail(c, err)
	}
	id, ok := handlers.ParamID(c, "id")
	if !ok {
		return nil
	}

	name, body, err := h.service.Export(c.UserContext(), scope, id, c.Query("format"))
	if err != nil {
		return handlers.Fail(c, err)
	}
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Send(body)
}
