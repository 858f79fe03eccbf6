// Package apptest mounts a practice module behind the real auth pipeline for
// handler tests.
package apptest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/apps"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/token"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const secret = "0123456789abcdef0123456789abcdef"

// Member is a seeded user with a ready bearer token.
type Member struct {
	User  models.User
	Token string
	Scope tenant.Scope
}

// Env is one test server backed by a private database.
type Env struct {
	DB     *gorm.DB
	App    *fiber.App
	tokens *token.Service
}

// New mounts plugin at /api/<id> behind Authenticate and TenantIsolation.
func New(t *testing.T, plugin apps.Plugin) *Env {
	t.Helper()
	db := dbtest.Open(t)
	tokens := token.NewService(secret, time.Hour)

	app := fiber.New()
	group := app.Group("/api/"+plugin.ID(), middleware.Authenticate(tokens), middleware.TenantIsolation())
	plugin.RegisterRoutes(group, db, &config.Config{AppEnv: "test"})

	return &Env{DB: db, App: app, tokens: tokens}
}

// Tenant creates an active tenant and returns its id.
func (e *Env) Tenant(t *testing.T, slug string) uuid.UUID {
	t.Helper()
	tn := models.Tenant{
		Name:               slug,
		Slug:               slug,
		Email:              slug + "@example.com",
		SubscriptionPlan:   models.PlanFree,
		SubscriptionStatus: models.SubscriptionActive,
		Timezone:           "UTC",
		Language:           "en",
		IsActive:           true,
	}
	require.NoError(t, e.DB.Create(&tn).Error)
	return tn.ID
}

// Member creates an active user with the given role in tenantID.
func (e *Env) Member(t *testing.T, tenantID uuid.UUID, role models.Role) Member {
	t.Helper()
	u := models.User{
		TenantID:  tenantID,
		FirstName: "Test",
		LastName:  role.String(),
		Email:     uuid.NewString() + "@example.com",
		Password:  "x",
		Role:      role,
		IsActive:  true,
	}
	require.NoError(t, e.DB.Create(&u).Error)

	id := token.Identity{UserID: u.ID, TenantID: u.TenantID, Role: u.Role}
	raw, err := e.tokens.Issue(id)
	require.NoError(t, err)
	scope, err := tenant.NewScope(id)
	require.NoError(t, err)

	return Member{User: u, Token: raw, Scope: scope}
}

// Do sends a JSON request as m and returns the status and raw body.
func (e *Env) Do(t *testing.T, m Member, method, path string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if m.Token != "" {
		req.Header.Set("Authorization", "Bearer "+m.Token)
	}

	resp, err := e.App.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

// Decode unmarshals a response body into dst.
func Decode(t *testing.T, raw []byte, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, dst), string(raw))
}
