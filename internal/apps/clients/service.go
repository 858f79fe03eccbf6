package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrClientNotFound = services.NotFound("client")

type ClientService struct {
	db *gorm.DB
}

func NewClientService(db *gorm.DB) *ClientService {
	return &ClientService{db: db}
}

func (s *ClientService) List(ctx context.Context, scope tenant.Scope, f ListFilter, page, limit int) (*dto.ListResponse[models.Client], error) {
	q := s.db.WithContext(ctx).Model(&models.Client{}).Scopes(scope.Query)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		pattern := "%" + term + "%"
		q = q.Where("(LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR phone LIKE ?)",
			pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}

	clients := []models.Client{}
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	return &dto.ListResponse[models.Client]{Data: clients, Pagination: dto.NewPagination(total, page, limit)}, nil
}

func (s *ClientService) Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Client, error) {
	var c models.Client
	if err := s.db.WithContext(ctx).Scopes(scope.Query).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrClientNotFound
		}
		return nil, fmt.Errorf("failed to load client: %w", err)
	}
	return &c, nil
}

func (s *ClientService) Create(ctx context.Context, scope tenant.Scope, req *ClientRequest) (*models.Client, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c := models.Client{
		TenantID:  scope.TenantID,
		IsActive:  true,
		CreatedBy: scope.UserID,
	}
	req.apply(&c)

	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return &c, nil
}

func (s *ClientService) Update(ctx context.Context, scope tenant.Scope, id uuid.UUID, req *ClientRequest) (*models.Client, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	req.apply(c)

	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return c, nil
}

// Delete archives the client; the row is kept.
func (s *ClientService) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Model(&models.Client{}).Scopes(scope.Query).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "status": models.ClientArchived})
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
