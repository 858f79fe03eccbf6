package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/token"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newApp(tokens *token.Service, guards ...fiber.Handler) *fiber.App {
	app := fiber.New()
	handlers := append([]fiber.Handler{Authenticate(tokens), TenantIsolation()}, guards...)
	handlers = append(handlers, func(c *fiber.Ctx) error {
		scope, err := tenant.ScopeFrom(c)
		if err != nil {
			return c.SendStatus(fiber.StatusInternalServerError)
		}
		return c.JSON(fiber.Map{"tenant_id": scope.TenantID.String(), "role": scope.Role})
	})
	app.Get("/protected", handlers...)
	return app
}

func issue(t *testing.T, tokens *token.Service, role models.Role) (string, token.Identity) {
	t.Helper()
	id := token.Identity{UserID: uuid.New(), TenantID: uuid.New(), Role: role}
	raw, err := tokens.Issue(id)
	require.NoError(t, err)
	return raw, id
}

func get(t *testing.T, app *fiber.App, authHeader string) (int, []byte) {
	t.Helper()
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := token.NewService(testSecret, time.Hour)
	app := newApp(tokens)
	raw, id := issue(t, tokens, models.RoleStaff)

	status, body := get(t, app, "Bearer "+raw)
	require.Equal(t, fiber.StatusOK, status)

	var got map[string]string
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, id.TenantID.String(), got["tenant_id"])
	assert.Equal(t, "STAFF", got["role"])
}

func TestAuthenticate_FailuresAreIndistinguishable(t *testing.T) {
	tokens := token.NewService(testSecret, time.Hour)
	app := newApp(tokens)

	foreign, _ := issue(t, token.NewService("ffffffffffffffffffffffffffffffff", time.Hour), models.RoleOwner)
	expired, _ := issue(t, token.NewService(testSecret, -time.Minute), models.RoleOwner)
	valid, _ := issue(t, tokens, models.RoleOwner)

	headers := []string{
		"",
		"Bearer",
		"Basic dXNlcjpwYXNz",
		valid,
		"Bearer not.a.token",
		"Bearer " + foreign,
		"Bearer " + expired,
	}

	var first []byte
	for i, h := range headers {
		status, body := get(t, app, h)
		assert.Equal(t, fiber.StatusUnauthorized, status, h)
		if i == 0 {
			first = body
			continue
		}
		assert.JSONEq(t, string(first), string(body), h)
	}

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(first, &resp))
	assert.True(t, resp.Error)
}

func TestTenantIsolation_RequiresIdentity(t *testing.T) {
	app := fiber.New()
	app.Get("/protected", TenantIsolation(), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	resp, err := app.Test(httptest.NewRequest("GET", "/protected", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthorize(t *testing.T) {
	tokens := token.NewService(testSecret, time.Hour)
	app := newApp(tokens, Authorize(Managers...))

	for role, want := range map[models.Role]int{
		models.RoleOwner:    fiber.StatusOK,
		models.RoleAdmin:    fiber.StatusOK,
		models.RoleAdvocate: fiber.StatusForbidden,
		models.RoleStaff:    fiber.StatusForbidden,
		models.RoleClient:   fiber.StatusForbidden,
	} {
		raw, _ := issue(t, tokens, role)
		status, _ := get(t, app, "Bearer "+raw)
		assert.Equal(t, want, status, role)
	}
}

func TestAuthorize_NoImpliedHierarchy(t *testing.T) {
	tokens := token.NewService(testSecret, time.Hour)
	app := newApp(tokens, Authorize(models.RoleAdvocate))

	raw, _ := issue(t, tokens, models.RoleOwner)
	status, _ := get(t, app, "Bearer "+raw)
	assert.Equal(t, fiber.StatusForbidden, status)
}

func TestCORSAndSecurityHeaders(t *testing.T) {
	app := fiber.New()
	app.Use(CORS(&config.Config{CORSOrigins: "https://firm.example"}), SecurityHeaders())
	app.Get("/ping", func(c *fiber.Ctx) error { return c.SendString("pong") })

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "https://firm.example")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, "https://firm.example", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
}
