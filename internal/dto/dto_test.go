package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected *ValidationError, got %v", err)
	names := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func TestSignupRequest_ValidateReportsEveryField(t *testing.T) {
	req := SignupRequest{TenantName: "A", FirstName: "", LastName: "B", Email: "not-an-email", Password: "123"}
	err := req.Validate()

	assert.ElementsMatch(t, []string{"tenantName", "firstName", "lastName", "email", "password"}, fieldNames(t, err))
}

func TestSignupRequest_Valid(t *testing.T) {
	req := SignupRequest{
		TenantName: " Smith & Co. ",
		FirstName:  "Jane",
		LastName:   "Smith",
		Email:      " Jane@Smith.Law ",
		Password:   "secret1",
	}
	req.Normalize()

	assert.NoError(t, req.Validate())
	assert.Equal(t, "Smith & Co.", req.TenantName)
	assert.Equal(t, "jane@smith.law", req.Email)
}

func TestLoginRequest_Validate(t *testing.T) {
	req := LoginRequest{}
	assert.ElementsMatch(t, []string{"email", "password"}, fieldNames(t, req.Validate()))

	req = LoginRequest{Email: "a@b.co", Password: "x"}
	assert.NoError(t, req.Validate())
}

func TestValidator_Email(t *testing.T) {
	for _, bad := range []string{"plain", "a@b", "Name <a@b.co>", "@b.co"} {
		var v Validator
		v.Email("email", bad)
		assert.Error(t, v.Err(), bad)
	}
	var v Validator
	v.Email("email", "first.last@firm.co.uk")
	assert.NoError(t, v.Err())
}

func TestNewPagination(t *testing.T) {
	p := NewPagination(21, 2, 10)
	assert.Equal(t, int64(3), p.Pages)

	p = NewPagination(0, 1, 10)
	assert.Equal(t, int64(0), p.Pages)
}
