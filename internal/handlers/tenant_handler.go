package handlers

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
)

type TenantHandler struct {
	tenantService *services.TenantService
}

func NewTenantHandler(tenantService *services.TenantService) *TenantHandler {
	return &TenantHandler{tenantService: tenantService}
}

func (h *TenantHandler) Info(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return Fail(c, err)
	}

	t, err := h.tenantService.Info(c.UserContext(), scope)
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(t)
}

func (h *TenantHandler) Update(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return Fail(c, err)
	}

	var req dto.UpdateTenantRequest
	if !Bind(c, &req) {
		return nil
	}

	t, err := h.tenantService.Update(c.UserContext(), scope, &req)
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(t)
}

func (h *TenantHandler) Subscription(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return Fail(c, err)
	}

	sub, err := h.tenantService.Subscription(c.UserContext(), scope)
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(sub)
}
