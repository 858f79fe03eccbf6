package cases

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/apps/apptest"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedClient(t *testing.T, db *gorm.DB, scope tenant.Scope) uuid.UUID {
	t.Helper()
	c := models.Client{
		TenantID: scope.TenantID, FirstName: "Alice", LastName: "Doe", Phone: "555-0100",
		Category: models.ClientIndividual, Status: models.ClientActive, IsActive: true,
	}
	require.NoError(t, db.Create(&c).Error)
	return c.ID
}

func caseRequest(number string, clientID uuid.UUID) *CaseRequest {
	return &CaseRequest{CaseNumber: number, ClientID: clientID, Title: "Doe v. Roe", CaseType: "civil"}
}

func TestCaseService_CreateAndIsolation(t *testing.T) {
	env := apptest.New(t, New())
	svc := NewCaseService(env.DB)
	ctx := context.Background()

	a := env.Member(t, env.Tenant(t, "firm-a"), models.RoleAdvocate)
	b := env.Member(t, env.Tenant(t, "firm-b"), models.RoleOwner)
	clientA := seedClient(t, env.DB, a.Scope)
	clientB := seedClient(t, env.DB, b.Scope)

	c, err := svc.Create(ctx, a.Scope, caseRequest("CV-1", clientA))
	require.NoError(t, err)
	assert.Equal(t, "open", c.Status)
	assert.Equal(t, "medium", c.Priority)
	assert.Equal(t, a.Scope.TenantID, c.TenantID)

	t.Run("client from another tenant", func(t *testing.T) {
		_, err := svc.Create(ctx, a.Scope, caseRequest("CV-2", clientB))
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("assignee from another tenant", func(t *testing.T) {
		req := caseRequest("CV-3", clientA)
		req.AssignedTo = &b.User.ID
		_, err := svc.Create(ctx, a.Scope, req)
		assert.ErrorIs(t, err, ErrAssigneeNotFound)
	})

	t.Run("case number unique per tenant", func(t *testing.T) {
		_, err := svc.Create(ctx, a.Scope, caseRequest("CV-1", clientA))
		assert.ErrorIs(t, err, services.ErrCaseNumberTaken)

		_, err = svc.Create(ctx, b.Scope, caseRequest("CV-1", clientB))
		assert.NoError(t, err)
	})

	t.Run("archived numbers stay reserved", func(t *testing.T) {
		old, err := svc.Create(ctx, a.Scope, caseRequest("CV-OLD", clientA))
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, a.Scope, old.ID))

		_, err = svc.Create(ctx, a.Scope, caseRequest("CV-OLD", clientA))
		assert.ErrorIs(t, err, services.ErrCaseNumberTaken)

		archived, err := svc.Get(ctx, a.Scope.WithInactive(), old.ID)
		require.NoError(t, err)
		assert.Equal(t, "archived", archived.Status)
		assert.False(t, archived.IsActive)
	})

	t.Run("update keeps own number and rejects a taken one", func(t *testing.T) {
		req := caseRequest("CV-1", clientA)
		req.Title = "Doe v. Roe (appeal)"
		req.Status = "in_progress"
		updated, err := svc.Update(ctx, a.Scope, c.ID, req)
		require.NoError(t, err)
		assert.Equal(t, "Doe v. Roe (appeal)", updated.Title)

		_, err = svc.Update(ctx, a.Scope, c.ID, caseRequest("CV-OLD", clientA))
		assert.ErrorIs(t, err, services.ErrCaseNumberTaken)
	})

	t.Run("cross tenant access", func(t *testing.T) {
		_, err := svc.Get(ctx, b.Scope, c.ID)
		assert.ErrorIs(t, err, services.ErrNotFound)
		_, err = svc.Update(ctx, b.Scope, c.ID, caseRequest("CV-9", clientB))
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.ErrorIs(t, svc.Delete(ctx, b.Scope, c.ID), services.ErrNotFound)
	})
}

func TestCaseService_Stats(t *testing.T) {
	env := apptest.New(t, New())
	svc := NewCaseService(env.DB)
	now := time.Date(2026, 5, 4, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }
	ctx := context.Background()

	a := env.Member(t, env.Tenant(t, "firm-a"), models.RoleOwner)
	b := env.Member(t, env.Tenant(t, "firm-b"), models.RoleOwner)
	clientA := seedClient(t, env.DB, a.Scope)

	first, err := svc.Create(ctx, a.Scope, caseRequest("A-1", clientA))
	require.NoError(t, err)
	family := caseRequest("A-2", clientA)
	family.CaseType = "family"
	family.Status = "closed"
	_, err = svc.Create(ctx, a.Scope, family)
	require.NoError(t, err)
	_, err = svc.Create(ctx, b.Scope, caseRequest("B-1", seedClient(t, env.DB, b.Scope)))
	require.NoError(t, err)

	hearing := func(at time.Time, status string) models.Hearing {
		return models.Hearing{
			TenantID: a.Scope.TenantID, CaseID: first.ID, HearingDate: at,
			ReminderMethod: models.ReminderEmail, Status: status, IsActive: true,
		}
	}
	require.NoError(t, env.DB.Create(&[]models.Hearing{
		hearing(now.Add(24*time.Hour), models.HearingScheduled),
		hearing(now.Add(48*time.Hour), models.HearingCancelled),
		hearing(now.AddDate(0, 0, 10), models.HearingScheduled),
		hearing(now.Add(-24*time.Hour), models.HearingScheduled),
	}).Error)

	stats, err := svc.Stats(ctx, a.Scope)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, map[string]int64{"open": 1, "closed": 1}, stats.ByStatus)
	assert.Equal(t, map[string]int64{"civil": 1, "family": 1}, stats.ByType)
	assert.Equal(t, int64(1), stats.UpcomingHearings)
}

func TestCaseHandlers(t *testing.T) {
	env := apptest.New(t, New())
	tenantA := env.Tenant(t, "firm-a")
	owner := env.Member(t, tenantA, models.RoleOwner)
	client := env.Member(t, tenantA, models.RoleClient)
	other := env.Member(t, env.Tenant(t, "firm-b"), models.RoleOwner)
	clientID := seedClient(t, env.DB, owner.Scope)

	status, body := env.Do(t, owner, http.MethodPost, "/api/cases", caseRequest("CV-1", clientID))
	require.Equal(t, http.StatusCreated, status, string(body))
	var created models.Case
	apptest.Decode(t, body, &created)

	status, _ = env.Do(t, owner, http.MethodPost, "/api/cases", caseRequest("CV-1", clientID))
	assert.Equal(t, http.StatusConflict, status)

	status, _ = env.Do(t, client, http.MethodPost, "/api/cases", caseRequest("CV-2", clientID))
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = env.Do(t, other, http.MethodPost, "/api/cases", caseRequest("CV-2", clientID))
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = env.Do(t, other, http.MethodGet, "/api/cases/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = env.Do(t, owner, http.MethodGet, "/api/cases/stats/overview", nil)
	require.Equal(t, http.StatusOK, status)
	var stats Stats
	apptest.Decode(t, body, &stats)
	assert.Equal(t, int64(1), stats.Total)

	status, _ = env.Do(t, owner, http.MethodGet, "/api/cases?client_id=nope", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
