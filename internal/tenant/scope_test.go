package tenant

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/token"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedClient(t *testing.T, tenantID uuid.UUID, name string, active bool) models.Client {
	t.Helper()
	return models.Client{
		TenantID:  tenantID,
		FirstName: name,
		LastName:  "Doe",
		Phone:     "555-0100",
		Category:  models.ClientIndividual,
		Status:    "active",
		IsActive:  active,
	}
}

func TestScopeQuery_IsolatesTenantsAndSoftDeletes(t *testing.T) {
	db := dbtest.Open(t)
	tenantA, tenantB := uuid.New(), uuid.New()

	rows := []models.Client{
		seedClient(t, tenantA, "alice", true),
		seedClient(t, tenantA, "archived", false),
		seedClient(t, tenantB, "bob", true),
	}
	require.NoError(t, db.Create(&rows).Error)

	scope, err := NewScope(token.Identity{UserID: uuid.New(), TenantID: tenantA, Role: models.RoleAdmin})
	require.NoError(t, err)

	var visible []models.Client
	require.NoError(t, db.Scopes(scope.Query).Find(&visible).Error)
	require.Len(t, visible, 1)
	assert.Equal(t, "alice", visible[0].FirstName)

	var all []models.Client
	require.NoError(t, db.Scopes(scope.WithInactive().Query).Order("first_name").Find(&all).Error)
	require.Len(t, all, 2)
	assert.Equal(t, "alice", all[0].FirstName)
	assert.Equal(t, "archived", all[1].FirstName)

	var other models.Client
	err = db.Scopes(scope.Query).First(&other, "id = ?", rows[2].ID).Error
	assert.Error(t, err)
}

func TestNewScope_RequiresTenant(t *testing.T) {
	_, err := NewScope(token.Identity{UserID: uuid.New(), Role: models.RoleOwner})
	assert.ErrorIs(t, err, ErrNoTenant)
}

func TestScopeCheck(t *testing.T) {
	tenantID := uuid.New()
	scope := Scope{TenantID: tenantID}

	assert.NoError(t, scope.Check(tenantID))
	assert.ErrorIs(t, scope.Check(uuid.New()), ErrTenantMismatch)
	assert.ErrorIs(t, scope.Check(uuid.Nil), ErrTenantMismatch)

	assert.True(t, scope.Owns(tenantID))
	assert.False(t, scope.Owns(uuid.New()))
}
