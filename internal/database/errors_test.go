package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestUniqueViolation_Postgres(t *testing.T) {
	err := fmt.Errorf("create tenant: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_tenants_slug"})

	assert.True(t, UniqueViolation(err, "idx_tenants_slug"))
	assert.True(t, UniqueViolation(err, ""))
	assert.False(t, UniqueViolation(err, "idx_tenants_email"))

	other := &pgconn.PgError{Code: "23503", ConstraintName: "idx_tenants_slug"}
	assert.False(t, UniqueViolation(other, "idx_tenants_slug"))
}

func TestUniqueViolation_SQLite(t *testing.T) {
	err := errors.New("constraint failed: UNIQUE constraint failed: tenants.email (2067)")

	assert.True(t, UniqueViolation(err, "idx_tenants_email"))
	assert.False(t, UniqueViolation(err, "idx_tenants_slug"))
	assert.False(t, UniqueViolation(err, "idx_users_email"))
}

func TestUniqueViolation_Other(t *testing.T) {
	assert.False(t, UniqueViolation(nil, ""))
	assert.False(t, UniqueViolation(errors.New("connection refused"), ""))
}
