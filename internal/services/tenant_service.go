package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"gorm.io/gorm"
)

type TenantService struct {
	db *gorm.DB
}

func NewTenantService(db *gorm.DB) *TenantService {
	return &TenantService{db: db}
}

// Info loads the caller's own tenant. The id always comes from the scope.
func (s *TenantService) Info(ctx context.Context, scope tenant.Scope) (*models.Tenant, error) {
	var t models.Tenant
	err := s.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", scope.TenantID, true).
		First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTenantNotFound
		}
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	return &t, nil
}

func (s *TenantService) Update(ctx context.Context, scope tenant.Scope, req *dto.UpdateTenantRequest) (*models.Tenant, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	t, err := s.Info(ctx, scope)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Timezone != "" {
		updates["timezone"] = req.Timezone
	}
	if req.Language != "" {
		updates["language"] = req.Language
	}
	if req.Website != "" {
		updates["website"] = req.Website
	}
	if req.Logo != "" {
		updates["logo"] = req.Logo
	}
	if len(updates) == 0 {
		return t, nil
	}

	if err := s.db.WithContext(ctx).Model(t).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}
	return s.Info(ctx, scope)
}

func (s *TenantService) Subscription(ctx context.Context, scope tenant.Scope) (*dto.SubscriptionResponse, error) {
	t, err := s.Info(ctx, scope)
	if err != nil {
		return nil, err
	}

	features := []string{}
	if len(t.Features) > 0 {
		if err := json.Unmarshal(t.Features, &features); err != nil {
			return nil, fmt.Errorf("failed to decode features: %w", err)
		}
	}

	return &dto.SubscriptionResponse{
		Plan:      t.SubscriptionPlan,
		Status:    t.SubscriptionStatus,
		ExpiresAt: t.SubscriptionExpiresAt,
		Features:  features,
	}, nil
}
