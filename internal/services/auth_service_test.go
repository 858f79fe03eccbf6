package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/token"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signupRequest(tenantName, email string) *dto.SignupRequest {
	return &dto.SignupRequest{
		TenantName: tenantName,
		FirstName:  "Jane",
		LastName:   "Smith",
		Email:      email,
		Password:   "secret123",
	}
}

func TestSignup_ProvisionsTenantAndOwner(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	resp, err := svc.Signup(ctx, signupRequest("  Smith & Co. ", "Jane@Example.COM"))
	require.NoError(t, err)

	assert.Equal(t, "Smith & Co.", resp.Tenant.Name)
	assert.Equal(t, "smith-co", resp.Tenant.Slug)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, models.RoleOwner, resp.User.Role)

	id, err := svc.tokens.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, id.UserID)
	assert.Equal(t, resp.Tenant.ID, id.TenantID)
	assert.Equal(t, models.RoleOwner, id.Role)

	var tn models.Tenant
	require.NoError(t, db.First(&tn, "id = ?", resp.Tenant.ID).Error)
	assert.Equal(t, models.PlanFree, tn.SubscriptionPlan)
	assert.Equal(t, models.SubscriptionActive, tn.SubscriptionStatus)
	assert.Equal(t, "UTC", tn.Timezone)
	assert.Equal(t, "en", tn.Language)
	assert.JSONEq(t, `["case_management","basic_reporting"]`, string(tn.Features))
	assert.True(t, tn.IsActive)

	var u models.User
	require.NoError(t, db.First(&u, "id = ?", resp.User.ID).Error)
	assert.Equal(t, tn.ID, u.TenantID)
	assert.True(t, u.IsActive)
	assert.False(t, u.EmailVerified)
	assert.NotEqual(t, "secret123", u.Password)
}

func TestSignup_SlugCollisionsGetSuffixes(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	first, err := svc.Signup(ctx, signupRequest("Smith & Co", "a@example.com"))
	require.NoError(t, err)
	second, err := svc.Signup(ctx, signupRequest("Smith & Co", "b@example.com"))
	require.NoError(t, err)
	third, err := svc.Signup(ctx, signupRequest("smith co", "c@example.com"))
	require.NoError(t, err)

	assert.Equal(t, "smith-co", first.Tenant.Slug)
	assert.Equal(t, "smith-co-1", second.Tenant.Slug)
	assert.Equal(t, "smith-co-2", third.Tenant.Slug)
}

func TestSignup_ConcurrentSameNameGetDistinctSlugs(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, email := range []string{"one@example.com", "two@example.com"} {
		wg.Add(1)
		go func(i int, email string) {
			defer wg.Done()
			_, errs[i] = svc.Signup(ctx, signupRequest("Smith & Co", email))
		}(i, email)
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	var slugs []string
	require.NoError(t, db.Model(&models.Tenant{}).Order("slug").Pluck("slug", &slugs).Error)
	assert.Equal(t, []string{"smith-co", "smith-co-1"}, slugs)
}

func TestSignup_DuplicateEmailLeavesNoRecords(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupRequest("First Firm", "owner@example.com"))
	require.NoError(t, err)

	_, err = svc.Signup(ctx, signupRequest("Second Firm", "OWNER@example.com"))
	assert.ErrorIs(t, err, ErrEmailTaken)

	assert.Equal(t, int64(1), count(t, db, &models.Tenant{}))
	assert.Equal(t, int64(1), count(t, db, &models.User{}))
}

func TestSignup_TenantEmailTaken(t *testing.T) {
	svc, db := newAuthService(t)

	require.NoError(t, db.Create(&models.Tenant{
		Name: "Existing", Slug: "existing", Email: "firm@example.com",
		SubscriptionPlan: models.PlanFree, SubscriptionStatus: models.SubscriptionActive,
		Timezone: "UTC", Language: "en", IsActive: true,
	}).Error)

	_, err := svc.Signup(context.Background(), signupRequest("New Firm", "firm@example.com"))
	assert.ErrorIs(t, err, ErrTenantEmailTaken)
	assert.Equal(t, int64(0), count(t, db, &models.User{}))
}

func TestSignup_ValidationListsFields(t *testing.T) {
	svc, db := newAuthService(t)

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{TenantName: "X", Email: "nope", Password: "123"})
	var verr *dto.ValidationError
	require.True(t, errors.As(err, &verr))

	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	for _, name := range []string{"tenantName", "firstName", "lastName", "email", "password"} {
		assert.True(t, fields[name], name)
	}
	assert.Equal(t, int64(0), count(t, db, &models.Tenant{}))
}

func TestLogin(t *testing.T) {
	svc, db := newAuthService(t)
	ctx := context.Background()

	signed, err := svc.Signup(ctx, signupRequest("Smith & Co", "jane@example.com"))
	require.NoError(t, err)

	fixed := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(ctx, &dto.LoginRequest{Email: " JANE@example.com ", Password: "secret123"})
		require.NoError(t, err)
		assert.Equal(t, signed.User.ID, resp.User.ID)
		assert.Equal(t, "smith-co", resp.Tenant.Slug)
		assert.NotEmpty(t, resp.Token)

		var u models.User
		require.NoError(t, db.First(&u, "id = ?", signed.User.ID).Error)
		require.NotNil(t, u.LastLogin)
		assert.True(t, fixed.Equal(*u.LastLogin))
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		_, errUnknown := svc.Login(ctx, &dto.LoginRequest{Email: "ghost@example.com", Password: "secret123"})
		_, errWrong := svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: "wrong-password"})
		assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
		assert.ErrorIs(t, errWrong, ErrInvalidCredentials)
		assert.Equal(t, errUnknown.Error(), errWrong.Error())
	})

	t.Run("inactive account", func(t *testing.T) {
		require.NoError(t, db.Model(&models.User{}).Where("id = ?", signed.User.ID).Update("is_active", false).Error)
		defer db.Model(&models.User{}).Where("id = ?", signed.User.ID).Update("is_active", true)

		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com", Password: "secret123"})
		assert.ErrorIs(t, err, ErrAccountInactive)
	})

	t.Run("missing password", func(t *testing.T) {
		_, err := svc.Login(ctx, &dto.LoginRequest{Email: "jane@example.com"})
		var verr *dto.ValidationError
		assert.True(t, errors.As(err, &verr))
	})
}

func TestMe(t *testing.T) {
	svc, _ := newAuthService(t)
	ctx := context.Background()

	a, err := svc.Signup(ctx, signupRequest("Firm A", "a@example.com"))
	require.NoError(t, err)
	b, err := svc.Signup(ctx, signupRequest("Firm B", "b@example.com"))
	require.NoError(t, err)

	resp, err := svc.Me(ctx, scopeFor(t, token.Identity{UserID: a.User.ID, TenantID: a.Tenant.ID, Role: models.RoleOwner}))
	require.NoError(t, err)
	assert.Equal(t, a.User.ID, resp.User.ID)
	assert.Equal(t, a.Tenant.Slug, resp.Tenant.Slug)
	assert.Empty(t, resp.Token)

	// A user id from another tenant is not visible.
	_, err = svc.Me(ctx, scopeFor(t, token.Identity{UserID: b.User.ID, TenantID: a.Tenant.ID, Role: models.RoleOwner}))
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Me(ctx, scopeFor(t, token.Identity{UserID: uuid.New(), TenantID: a.Tenant.ID, Role: models.RoleOwner}))
	assert.ErrorIs(t, err, ErrUserNotFound)
}
