package clients

import (
	"context"
	"net/http"
	"testing"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/apps/apptest"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(first string) *ClientRequest {
	return &ClientRequest{FirstName: first, LastName: "Doe", Phone: "555-0100", TotalAmount: 1000, AmountPaid: 250}
}

func TestClientService_CRUD(t *testing.T) {
	env := apptest.New(t, New())
	svc := NewClientService(env.DB)
	ctx := context.Background()

	a := env.Member(t, env.Tenant(t, "firm-a"), models.RoleAdvocate)
	b := env.Member(t, env.Tenant(t, "firm-b"), models.RoleOwner)

	c, err := svc.Create(ctx, a.Scope, newClient("Alice"))
	require.NoError(t, err)
	assert.Equal(t, a.Scope.TenantID, c.TenantID)
	assert.Equal(t, a.User.ID, c.CreatedBy)
	assert.Equal(t, models.ClientIndividual, c.Category)
	assert.Equal(t, models.ClientActive, c.Status)
	assert.Equal(t, 750.0, c.AmountRemaining)

	_, err = svc.Get(ctx, b.Scope, c.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	overpaid := newClient("Alice")
	overpaid.AmountPaid = 1500
	updated, err := svc.Update(ctx, a.Scope, c.ID, overpaid)
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.AmountRemaining)

	_, err = svc.Update(ctx, b.Scope, c.ID, newClient("Mallory"))
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, b.Scope, c.ID), services.ErrNotFound)

	require.NoError(t, svc.Delete(ctx, a.Scope, c.ID))
	_, err = svc.Get(ctx, a.Scope, c.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	archived, err := svc.Get(ctx, a.Scope.WithInactive(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ClientArchived, archived.Status)
}

func TestClientService_ListFilters(t *testing.T) {
	env := apptest.New(t, New())
	svc := NewClientService(env.DB)
	ctx := context.Background()

	a := env.Member(t, env.Tenant(t, "firm-a"), models.RoleOwner)
	b := env.Member(t, env.Tenant(t, "firm-b"), models.RoleOwner)

	corp := newClient("Globex")
	corp.Category = models.ClientCorporate
	corp.Email = "legal@globex.example"
	for _, req := range []*ClientRequest{newClient("Alice"), newClient("Bob"), corp} {
		_, err := svc.Create(ctx, a.Scope, req)
		require.NoError(t, err)
	}
	_, err := svc.Create(ctx, b.Scope, newClient("Alice"))
	require.NoError(t, err)

	all, err := svc.List(ctx, a.Scope, ListFilter{}, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Pagination.Total)
	assert.Equal(t, int64(2), all.Pagination.Pages)
	assert.Len(t, all.Data, 2)

	byCategory, err := svc.List(ctx, a.Scope, ListFilter{Category: models.ClientCorporate}, 1, 20)
	require.NoError(t, err)
	require.Len(t, byCategory.Data, 1)
	assert.Equal(t, "Globex", byCategory.Data[0].FirstName)

	search, err := svc.List(ctx, a.Scope, ListFilter{Search: "ALI"}, 1, 20)
	require.NoError(t, err)
	require.Len(t, search.Data, 1)
	assert.Equal(t, a.Scope.TenantID, search.Data[0].TenantID)

	byEmail, err := svc.List(ctx, a.Scope, ListFilter{Search: "globex.example"}, 1, 20)
	require.NoError(t, err)
	assert.Len(t, byEmail.Data, 1)
}

func TestClientService_Validation(t *testing.T) {
	env := apptest.New(t, New())
	svc := NewClientService(env.DB)
	a := env.Member(t, env.Tenant(t, "firm-a"), models.RoleOwner)

	_, err := svc.Create(context.Background(), a.Scope, &ClientRequest{Category: "alien", TotalAmount: -1})
	var verr *dto.ValidationError
	require.ErrorAs(t, err, &verr)

	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	for _, name := range []string{"first_name", "last_name", "phone", "category", "total_amount"} {
		assert.True(t, fields[name], name)
	}
}

func TestClientHandlers(t *testing.T) {
	env := apptest.New(t, New())
	tenantA := env.Tenant(t, "firm-a")
	owner := env.Member(t, tenantA, models.RoleOwner)
	staff := env.Member(t, tenantA, models.RoleStaff)
	other := env.Member(t, env.Tenant(t, "firm-b"), models.RoleOwner)

	status, body := env.Do(t, owner, http.MethodPost, "/api/clients", newClient("Alice"))
	require.Equal(t, http.StatusCreated, status, string(body))
	var created models.Client
	apptest.Decode(t, body, &created)

	status, _ = env.Do(t, staff, http.MethodPost, "/api/clients", newClient("Bob"))
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = env.Do(t, staff, http.MethodGet, "/api/clients/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = env.Do(t, other, http.MethodGet, "/api/clients/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)
	var notFound dto.ErrorResponse
	apptest.Decode(t, body, &notFound)
	assert.True(t, notFound.Error)

	status, _ = env.Do(t, owner, http.MethodGet, "/api/clients/not-a-uuid", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body = env.Do(t, owner, http.MethodPost, "/api/clients", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, status)
	var invalid dto.ErrorResponse
	apptest.Decode(t, body, &invalid)
	assert.NotEmpty(t, invalid.Details)

	status, _ = env.Do(t, staff, http.MethodDelete, "/api/clients/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusForbidden, status)
	status, _ = env.Do(t, other, http.MethodDelete, "/api/clients/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = env.Do(t, owner, http.MethodDelete, "/api/clients/"+created.ID.String(), nil)
	assert.Equal(t, http.StatusOK, status)

	status, body = env.Do(t, owner, http.MethodGet, "/api/clients?status=active", nil)
	require.Equal(t, http.StatusOK, status)
	var list dto.ListResponse[models.Client]
	apptest.Decode(t, body, &list)
	assert.Empty(t, list.Data)

	status, _ = env.Do(t, apptest.Member{}, http.MethodGet, "/api/clients", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}
