package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/token"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	idxTenantSlug  = "idx_tenants_slug"
	idxTenantEmail = "idx_tenants_email"
	idxUserEmail   = "idx_users_email"

	// A slug taken between resolution and insert is re-resolved this many times.
	maxSlugRetries = 5
)

// dummyHash is compared against when the email is unknown so a missing
// account costs the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

type AuthService struct {
	db       *gorm.DB
	tokens   *token.Service
	metrics  *metrics.Metrics
	hashCost int
	now      func() time.Time
}

func NewAuthService(db *gorm.DB, tokens *token.Service, m *metrics.Metrics) *AuthService {
	return &AuthService{
		db:       db,
		tokens:   tokens,
		metrics:  m,
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
	}
}

// Signup provisions a tenant and its owner. Either both rows are committed
// or neither is.
func (s *AuthService) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.AuthResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		s.metrics.AuthEvent("signup", "invalid")
		return nil, err
	}

	db := s.db.WithContext(ctx)

	taken, err := exists(db.Model(&models.User{}).Where("email = ?", req.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to check user email: %w", err)
	}
	if taken {
		s.metrics.AuthEvent("signup", "conflict")
		return nil, ErrEmailTaken
	}

	taken, err = exists(db.Model(&models.Tenant{}).Where("email = ?", req.Email))
	if err != nil {
		return nil, fmt.Errorf("failed to check tenant email: %w", err)
	}
	if taken {
		s.metrics.AuthEvent("signup", "conflict")
		return nil, ErrTenantEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	features, err := json.Marshal(models.StarterFeatures)
	if err != nil {
		return nil, fmt.Errorf("failed to encode features: %w", err)
	}

	base := tenant.NormalizeSlug(req.TenantName)
	var t models.Tenant
	var u models.User

	for attempt := 1; ; attempt++ {
		slug, err := tenant.ResolveUniqueSlug(ctx, base, s.slugExists)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve slug: %w", err)
		}

		t = models.Tenant{
			Name:               req.TenantName,
			Slug:               slug,
			Email:              req.Email,
			SubscriptionPlan:   models.PlanFree,
			SubscriptionStatus: models.SubscriptionActive,
			Timezone:           "UTC",
			Language:           "en",
			Features:           datatypes.JSON(features),
			IsActive:           true,
		}
		u = models.User{
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			Password:      string(hash),
			Role:          models.RoleOwner,
			IsActive:      true,
			EmailVerified: false,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
			u.TenantID = t.ID
			return tx.Create(&u).Error
		})
		if err == nil {
			break
		}

		switch {
		case database.UniqueViolation(err, idxTenantSlug) && attempt < maxSlugRetries:
			slog.Info("tenant slug taken concurrently, retrying", "slug", slug, "attempt", attempt)
			continue
		case database.UniqueViolation(err, idxUserEmail):
			s.metrics.AuthEvent("signup", "conflict")
			return nil, ErrEmailTaken
		case database.UniqueViolation(err, idxTenantEmail):
			s.metrics.AuthEvent("signup", "conflict")
			return nil, ErrTenantEmailTaken
		default:
			return nil, fmt.Errorf("failed to create tenant: %w", err)
		}
	}

	raw, err := s.tokens.Issue(token.Identity{UserID: u.ID, TenantID: t.ID, Role: u.Role})
	if err != nil {
		return nil, err
	}

	s.metrics.AuthEvent("signup", "success")
	slog.Info("tenant provisioned", "tenant_id", t.ID.String(), "user_id", u.ID.String(), "slug", t.Slug)

	return &dto.AuthResponse{
		Tenant: dto.NewTenantSummary(&t),
		User:   dto.NewUserSummary(&u),
		Token:  raw,
	}, nil
}

func (s *AuthService) slugExists(ctx context.Context, slug string) (bool, error) {
	return exists(s.db.WithContext(ctx).Model(&models.Tenant{}).Where("slug = ?", slug))
}

// Login returns the same ErrInvalidCredentials for an unknown email and for a
// wrong password.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	db := s.db.WithContext(ctx)

	var u models.User
	if err := db.Where("email = ?", req.Email).First(&u).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
		s.metrics.AuthEvent("login", "invalid_credentials")
		return nil, ErrInvalidCredentials
	}

	if !u.IsActive {
		s.metrics.AuthEvent("login", "inactive")
		return nil, ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)); err != nil {
		s.metrics.AuthEvent("login", "invalid_credentials")
		return nil, ErrInvalidCredentials
	}

	var t models.Tenant
	if err := db.First(&t, "id = ?", u.TenantID).Error; err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	if !t.IsActive {
		s.metrics.AuthEvent("login", "inactive")
		return nil, ErrAccountInactive
	}

	now := s.now().UTC()
	if err := db.Model(&u).Update("last_login", now).Error; err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}
	u.LastLogin = &now

	raw, err := s.tokens.Issue(token.Identity{UserID: u.ID, TenantID: u.TenantID, Role: u.Role})
	if err != nil {
		return nil, err
	}

	s.metrics.AuthEvent("login", "success")
	return &dto.AuthResponse{
		Tenant: dto.NewTenantSummary(&t),
		User:   dto.NewUserSummary(&u),
		Token:  raw,
	}, nil
}

// Me returns the caller's own user and tenant summaries.
func (s *AuthService) Me(ctx context.Context, scope tenant.Scope) (*dto.AuthResponse, error) {
	db := s.db.WithContext(ctx)

	var u models.User
	if err := db.Scopes(scope.Query).First(&u, "id = ?", scope.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	var t models.Tenant
	if err := db.First(&t, "id = ?", scope.TenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}

	return &dto.AuthResponse{
		Tenant: dto.NewTenantSummary(&t),
		User:   dto.NewUserSummary(&u),
	}, nil
}

func exists(q *gorm.DB) (bool, error) {
	var n int64
	if err := q.Limit(1).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
