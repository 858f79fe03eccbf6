package hearings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultUpcomingDays = 7
	maxUpcomingDays     = 90
)

var (
	ErrHearingNotFound = services.NotFound("hearing")
	ErrCaseNotFound    = services.NotFound("case")
)

type HearingService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewHearingService(db *gorm.DB) *HearingService {
	return &HearingService{db: db, now: time.Now}
}

func (s *HearingService) List(ctx context.Context, scope tenant.Scope, f ListFilter, page, limit int) (*dto.ListResponse[models.Hearing], error) {
	q := s.db.WithContext(ctx).Model(&models.Hearing{}).Scopes(scope.Query)
	if f.CaseID != uuid.Nil {
		q = q.Where("case_id = ?", f.CaseID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if !f.From.IsZero() {
		q = q.Where("hearing_date >= ?", f.From.UTC())
	}
	if !f.To.IsZero() {
		q = q.Where("hearing_date < ?", f.To.UTC())
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count hearings: %w", err)
	}

	hearings := []models.Hearing{}
	err := q.Order("hearing_date ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&hearings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list hearings: %w", err)
	}

	return &dto.ListResponse[models.Hearing]{Data: hearings, Pagination: dto.NewPagination(total, page, limit)}, nil
}

// Upcoming lists scheduled or postponed hearings within the next days days.
func (s *HearingService) Upcoming(ctx context.Context, scope tenant.Scope, days int) ([]models.Hearing, error) {
	if days <= 0 {
		days = defaultUpcomingDays
	}
	if days > maxUpcomingDays {
		days = maxUpcomingDays
	}
	now := s.now().UTC()

	hearings := []models.Hearing{}
	err := s.db.WithContext(ctx).Scopes(scope.Query).
		Where("hearing_date >= ? AND hearing_date < ?", now, now.AddDate(0, 0, days)).
		Where("status IN ?", []string{models.HearingScheduled, models.HearingPostponed}).
		Order("hearing_date ASC").
		Find(&hearings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming hearings: %w", err)
	}
	return hearings, nil
}

func (s *HearingService) Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Hearing, error) {
	var h models.Hearing
	if err := s.db.WithContext(ctx).Scopes(scope.Query).First(&h, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHearingNotFound
		}
		return nil, fmt.Errorf("failed to load hearing: %w", err)
	}
	return &h, nil
}

func (s *HearingService) Create(ctx context.Context, scope tenant.Scope, req *HearingRequest) (*models.Hearing, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCase(ctx, scope, req.CaseID); err != nil {
		return nil, err
	}

	h := models.Hearing{
		TenantID:  scope.TenantID,
		IsActive:  true,
		CreatedBy: scope.UserID,
	}
	req.apply(&h)

	if err := s.db.WithContext(ctx).Create(&h).Error; err != nil {
		return nil, fmt.Errorf("failed to create hearing: %w", err)
	}
	return &h, nil
}

// Update replaces the hearing. Moving it to another date re-arms its reminder.
func (s *HearingService) Update(ctx context.Context, scope tenant.Scope, id uuid.UUID, req *HearingRequest) (*models.Hearing, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	h, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCase(ctx, scope, req.CaseID); err != nil {
		return nil, err
	}

	moved := !h.HearingDate.Equal(req.HearingDate)
	req.apply(h)
	if moved {
		h.ReminderSent = false
		h.ReminderSentAt = nil
	}

	if err := s.db.WithContext(ctx).Save(h).Error; err != nil {
		return nil, fmt.Errorf("failed to update hearing: %w", err)
	}
	return h, nil
}

func (s *HearingService) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Model(&models.Hearing{}).Scopes(scope.Query).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return fmt.Errorf("failed to delete hearing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrHearingNotFound
	}
	return nil
}

func (s *HearingService) checkCase(ctx context.Context, scope tenant.Scope, caseID uuid.UUID) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Case{}).Scopes(scope.Query).Where("id = ?", caseID).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check case: %w", err)
	}
	if n == 0 {
		return ErrCaseNotFound
	}
	return nil
}
