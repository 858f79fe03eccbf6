package handlers

import (
	"errors"
	"strconv"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// Fail writes the response for a known service error. Anything else is
// returned unchanged so the app's error handler renders a 500.
func Fail(c *fiber.Ctx, err error) error {
	var verr *dto.ValidationError
	if errors.As(err, &verr) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Validation failed", Details: verr.Fields,
		})
	}

	status := 0
	message := err.Error()
	switch {
	case errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrTenantEmailTaken),
		errors.Is(err, services.ErrCaseNumberTaken),
		errors.Is(err, services.ErrArticleNumberTaken):
		status = fiber.StatusConflict
	case errors.Is(err, services.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, tenant.ErrUnauthenticated), errors.Is(err, tenant.ErrNoTenant):
		status, message = fiber.StatusUnauthorized, "User not authenticated"
	case errors.Is(err, services.ErrAccountInactive):
		status = fiber.StatusForbidden
	case errors.Is(err, services.ErrForbidden):
		status, message = fiber.StatusForbidden, "Insufficient permissions for this action"
	case errors.Is(err, tenant.ErrTenantMismatch):
		status, message = fiber.StatusForbidden, "Tenant mismatch"
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrTenantNotFound):
		status = fiber.StatusNotFound
	default:
		return err
	}

	return c.Status(status).JSON(dto.ErrorResponse{Error: true, Message: message})
}

// Bind parses the request body into dst. On false a 400 has already been written.
func Bind(c *fiber.Ctx, dst interface{}) bool {
	if err := c.BodyParser(dst); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
		return false
	}
	return true
}

// ParamID parses a uuid route parameter. A malformed id is answered with the
// same 404 as an id that does not exist.
func ParamID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		_ = c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Resource not found",
		})
		return uuid.Nil, false
	}
	return id, true
}

// Page reads page and limit query parameters, clamped to sane bounds.
func Page(c *fiber.Ctx) (page, limit int) {
	page, _ = strconv.Atoi(c.Query("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.Query("limit", strconv.Itoa(defaultPageLimit)))
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
