package tenant

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/token"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrTenantMismatch is returned when a request names a tenant other than the
// authenticated one.
var ErrTenantMismatch = errors.New("tenant mismatch")

// Scope is the authenticated tenant boundary for one request.
type Scope struct {
	TenantID uuid.UUID
	UserID   uuid.UUID
	Role     models.Role

	includeInactive bool
}

func NewScope(id token.Identity) (Scope, error) {
	if id.TenantID == uuid.Nil {
		return Scope{}, ErrNoTenant
	}
	return Scope{TenantID: id.TenantID, UserID: id.UserID, Role: id.Role}, nil
}

// WithInactive returns a copy of the scope that also matches soft-deleted rows.
func (s Scope) WithInactive() Scope {
	s.includeInactive = true
	return s
}

// Query is a GORM scope restricting a statement to the tenant's rows and,
// unless WithInactive was used, to rows that are not soft-deleted.
func (s Scope) Query(db *gorm.DB) *gorm.DB {
	db = db.Where(clause.Eq{
		Column: clause.Column{Table: clause.CurrentTable, Name: "tenant_id"},
		Value:  s.TenantID,
	})
	if !s.includeInactive {
		db = db.Where(clause.Eq{
			Column: clause.Column{Table: clause.CurrentTable, Name: "is_active"},
			Value:  true,
		})
	}
	return db
}

// Check compares a caller-supplied tenant id against the authenticated one.
// The supplied value is never used for scoping.
func (s Scope) Check(claimed uuid.UUID) error {
	if claimed != s.TenantID {
		return ErrTenantMismatch
	}
	return nil
}

// Owns reports whether a loaded row belongs to this tenant.
func (s Scope) Owns(tenantID uuid.UUID) bool {
	return s.TenantID != uuid.Nil && tenantID == s.TenantID
}
