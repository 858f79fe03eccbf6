package handlers

import (
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService *services.UserService
	// Echo generated passwords back to the caller; development only.
	revealPasswords bool
}

func NewUserHandler(userService *services.UserService, revealPasswords bool) *UserHandler {
	return &UserHandler{userService: userService, revealPasswords: revealPasswords}
}

func (h *UserHandler) List(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return Fail(c, err)
	}

	page, limit := Page(c)
	resp, err := h.userService.List(c.UserContext(), scope, page, limit)
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(resp)
}

func (h *UserHandler) Get(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return Fail(c, err)
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return nil
	}

	u, err := h.userService.Get(c.UserContext(), scope, id)
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(u)
}

func (h *UserHandler) Create(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return Fail(c, err)
	}

	var req dto.CreateUserRequest
	if !Bind(c, &req) {
		return nil
	}

	u, password, err := h.userService.Create(c.UserContext(), scope, &req)
	if err != nil {
		return Fail(c, err)
	}

	resp := dto.CreatedUserResponse{User: dto.NewUserSummary(u)}
	if h.revealPasswords {
		resp.TemporaryPassword = password
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *UserHandler) Update(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return Fail(c, err)
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return nil
	}

	var req dto.UpdateUserRequest
	if !Bind(c, &req) {
		return nil
	}

	u, err := h.userService.Update(c.UserContext(), scope, id, &req)
	if err != nil {
		return Fail(c, err)
	}
	return c.JSON(u)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	scope, err := tenant.ScopeFrom(c)
	if err != nil {
		return Fail(c, err)
	}
	id, ok := ParamID(c, "id")
	if !ok {
		return nil
	}

	if err := h.userService.Deactivate(c.UserContext(), scope, id); err != nil {
		return Fail(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "User deactivated"})
}
