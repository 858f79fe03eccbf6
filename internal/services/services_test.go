package services

import (
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/database/dbtest"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/token"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newAuthService(t *testing.T) (*AuthService, *gorm.DB) {
	t.Helper()
	db := dbtest.Open(t)
	svc := NewAuthService(db, token.NewService(testSecret, time.Hour), nil)
	svc.hashCost = bcrypt.MinCost
	return svc, db
}

func scopeFor(t *testing.T, id token.Identity) tenant.Scope {
	t.Helper()
	scope, err := tenant.NewScope(id)
	require.NoError(t, err)
	return scope
}

func count(t *testing.T, db *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}

func identityOf(u *models.User) token.Identity {
	return token.Identity{UserID: u.ID, TenantID: u.TenantID, Role: u.Role}
}

func tokenIdentity(resp *dto.AuthResponse) token.Identity {
	return token.Identity{UserID: resp.User.ID, TenantID: resp.Tenant.ID, Role: resp.User.Role}
}
