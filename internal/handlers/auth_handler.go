package handlers

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req dto.SignupRequest
	if !Bind(c, &req) {
		return nil
	}

	resp, err := h.authService.Signup(c.UserContext(), &req)
	if err != nil {
		return Fail(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if !Bind(c, &req) {
		return nil
	}

	resp, err := h.authService.Login(c.UserContext(), &req)
	if err != nil {
		return Fail(c, err)
	}

	return c.JSON(resp)
}

func (h *AuthHandler) Me(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return Fail(c, err)
	}

	resp, err := h.authService.Me(c.UserContext(), scope)
	if err != nil {
		return Fail(c, err)
	}

	return c.JSON(resp)
}
