package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db       *gorm.DB
	hashCost int
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db, hashCost: bcrypt.DefaultCost}
}

func (s *UserService) List(ctx context.Context, scope tenant.Scope, page, limit int) (*dto.ListResponse[models.User], error) {
	q := s.db.WithContext(ctx).Model(&models.User{}).Scopes(scope.Query)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	users := []models.User{}
	err := q.Order("created_at ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&users).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &dto.ListResponse[models.User]{Data: users, Pagination: dto.NewPagination(total, page, limit)}, nil
}

func (s *UserService) Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := s.db.WithContext(ctx).Scopes(scope.Query).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &u, nil
}

// Create adds a member to the caller's tenant with a generated temporary
// password, which is returned alongside the user.
func (s *UserService) Create(ctx context.Context, scope tenant.Scope, req *dto.CreateUserRequest) (*models.User, string, error) {
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := req.Validate(); err != nil {
		return nil, "", err
	}

	role, _ := models.ParseRole(req.Role)
	if role == models.RoleOwner && scope.Role != models.RoleOwner {
		return nil, "", ErrForbidden
	}

	db := s.db.WithContext(ctx)
	taken, err := exists(db.Model(&models.User{}).Where("email = ?", req.Email))
	if err != nil {
		return nil, "", fmt.Errorf("failed to check user email: %w", err)
	}
	if taken {
		return nil, "", ErrEmailTaken
	}

	password, err := temporaryPassword()
	if err != nil {
		return nil, "", err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	u := models.User{
		TenantID:  scope.TenantID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
		Role:      role,
		Phone:     req.Phone,
		IsActive:  true,
	}
	if err := db.Create(&u).Error; err != nil {
		if database.UniqueViolation(err, idxUserEmail) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user created", "tenant_id", scope.TenantID.String(), "user_id", u.ID.String(), "role", u.Role.String())
	return &u, password, nil
}

// Update lets members edit their own profile. Editing someone else, changing
// a role or toggling activation requires OWNER or ADMIN.
func (s *UserService) Update(ctx context.Context, scope tenant.Scope, id uuid.UUID, req *dto.UpdateUserRequest) (*models.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	manager := scope.Role == models.RoleOwner || scope.Role == models.RoleAdmin
	if id != scope.UserID && !manager {
		return nil, ErrForbidden
	}
	if req.PrivilegedChange() && !manager {
		return nil, ErrForbidden
	}

	u, err := s.Get(ctx, scope.WithInactive(), id)
	if err != nil {
		return nil, err
	}
	if err := guardPrivileged(scope, u, req); err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates["first_name"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		updates["last_name"] = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Avatar != nil {
		updates["avatar"] = *req.Avatar
	}
	if req.Role != nil {
		role, _ := models.ParseRole(*req.Role)
		updates["role"] = role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return u, nil
	}

	if err := s.db.WithContext(ctx).Model(u).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return s.Get(ctx, scope.WithInactive(), id)
}

// guardPrivileged applies the owner-protection rules to a role or activation
// change of target. Nobody changes their own role or activation, and only an
// OWNER may touch an owner or mint a new one.
func guardPrivileged(scope tenant.Scope, target *models.User, req *dto.UpdateUserRequest) error {
	if !req.PrivilegedChange() {
		return nil
	}
	if target.ID == scope.UserID {
		return ErrForbidden
	}
	if scope.Role == models.RoleOwner {
		return nil
	}
	if target.Role == models.RoleOwner {
		return ErrForbidden
	}
	if req.Role != nil {
		if role, _ := models.ParseRole(*req.Role); role == models.RoleOwner {
			return ErrForbidden
		}
	}
	return nil
}

// Deactivate soft-deletes a member under the same rules as an activation
// change through Update.
func (s *UserService) Deactivate(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	u, err := s.Get(ctx, scope, id)
	if err != nil {
		return err
	}
	inactive := false
	if err := guardPrivileged(scope, u, &dto.UpdateUserRequest{IsActive: &inactive}); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(u).Update("is_active", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate user: %w", err)
	}
	return nil
}

func temporaryPassword() (string, error) {
	b := make([]byte, 9)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate password: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
