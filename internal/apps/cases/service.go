package cases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	idxCaseNumber = "idx_cases_case_number"
	upcomingDays  = 7
)

var (
	ErrCaseNotFound     = services.NotFound("case")
	ErrClientNotFound   = services.NotFound("client")
	ErrAssigneeNotFound = services.NotFound("assignee")
)

type CaseService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewCaseService(db *gorm.DB) *CaseService {
	return &CaseService{db: db, now: time.Now}
}

func (s *CaseService) List(ctx context.Context, scope tenant.Scope, f ListFilter, page, limit int) (*dto.ListResponse[models.Case], error) {
	q := s.db.WithContext(ctx).Model(&models.Case{}).Scopes(scope.Query)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.CaseType != "" {
		q = q.Where("case_type = ?", f.CaseType)
	}
	if f.ClientID != uuid.Nil {
		q = q.Where("client_id = ?", f.ClientID)
	}
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		pattern := "%" + term + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(case_number) LIKE ?)", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count cases: %w", err)
	}

	cases := []models.Case{}
	err := q.Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}

	return &dto.ListResponse[models.Case]{Data: cases, Pagination: dto.NewPagination(total, page, limit)}, nil
}

func (s *CaseService) Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Case, error) {
	var c models.Case
	if err := s.db.WithContext(ctx).Scopes(scope.Query).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCaseNotFound
		}
		return nil, fmt.Errorf("failed to load case: %w", err)
	}
	return &c, nil
}

func (s *CaseService) Create(ctx context.Context, scope tenant.Scope, req *CaseRequest) (*models.Case, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, scope, req); err != nil {
		return nil, err
	}
	if err := s.checkNumberFree(ctx, scope, req.CaseNumber, uuid.Nil); err != nil {
		return nil, err
	}

	c := models.Case{
		TenantID:  scope.TenantID,
		IsActive:  true,
		CreatedBy: scope.UserID,
	}
	req.apply(&c)

	if err := s.db.WithContext(ctx).Create(&c).Error; err != nil {
		if database.UniqueViolation(err, idxCaseNumber) {
			return nil, services.ErrCaseNumberTaken
		}
		return nil, fmt.Errorf("failed to create case: %w", err)
	}
	return &c, nil
}

func (s *CaseService) Update(ctx context.Context, scope tenant.Scope, id uuid.UUID, req *CaseRequest) (*models.Case, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	c, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, scope, req); err != nil {
		return nil, err
	}
	if req.CaseNumber != c.CaseNumber {
		if err := s.checkNumberFree(ctx, scope, req.CaseNumber, c.ID); err != nil {
			return nil, err
		}
	}
	req.apply(c)

	if err := s.db.WithContext(ctx).Save(c).Error; err != nil {
		if database.UniqueViolation(err, idxCaseNumber) {
			return nil, services.ErrCaseNumberTaken
		}
		return nil, fmt.Errorf("failed to update case: %w", err)
	}
	return c, nil
}

// Delete archives the case; the row is kept.
func (s *CaseService) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Model(&models.Case{}).Scopes(scope.Query).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "status": archivedStatus})
	if result.Error != nil {
		return fmt.Errorf("failed to delete case: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCaseNotFound
	}
	return nil
}

func (s *CaseService) Stats(ctx context.Context, scope tenant.Scope) (*Stats, error) {
	db := s.db.WithContext(ctx)
	stats := &Stats{ByStatus: map[string]int64{}, ByType: map[string]int64{}}

	type bucket struct {
		Label string
		Count int64
	}
	group := func(column string, into map[string]int64) error {
		var rows []bucket
		err := db.Model(&models.Case{}).Scopes(scope.Query).
			Select(column + " AS label, COUNT(*) AS count").
			Group(column).
			Scan(&rows).Error
		if err != nil {
			return err
		}
		for _, r := range rows {
			into[r.Label] = r.Count
			if column == "status" {
				stats.Total += r.Count
			}
		}
		return nil
	}
	if err := group("status", stats.ByStatus); err != nil {
		return nil, fmt.Errorf("failed to count cases by status: %w", err)
	}
	if err := group("case_type", stats.ByType); err != nil {
		return nil, fmt.Errorf("failed to count cases by type: %w", err)
	}

	now := s.now().UTC()
	err := db.Model(&models.Hearing{}).Scopes(scope.Query).
		Where("hearing_date >= ? AND hearing_date < ?", now, now.AddDate(0, 0, upcomingDays)).
		Where("status IN ?", []string{models.HearingScheduled, models.HearingPostponed}).
		Count(&stats.UpcomingHearings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count upcoming hearings: %w", err)
	}
	return stats, nil
}

// checkReferences makes sure the client and assignee belong to the caller's tenant.
func (s *CaseService) checkReferences(ctx context.Context, scope tenant.Scope, req *CaseRequest) error {
	db := s.db.WithContext(ctx)

	var n int64
	if err := db.Model(&models.Client{}).Scopes(scope.Query).Where("id = ?", req.ClientID).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check client: %w", err)
	}
	if n == 0 {
		return ErrClientNotFound
	}

	if req.AssignedTo != nil {
		if err := db.Model(&models.User{}).Scopes(scope.Query).Where("id = ?", *req.AssignedTo).Count(&n).Error; err != nil {
			return fmt.Errorf("failed to check assignee: %w", err)
		}
		if n == 0 {
			return ErrAssigneeNotFound
		}
	}
	return nil
}

// checkNumberFree includes archived cases: the number stays reserved.
func (s *CaseService) checkNumberFree(ctx context.Context, scope tenant.Scope, number string, except uuid.UUID) error {
	q := s.db.WithContext(ctx).Model(&models.Case{}).Scopes(scope.WithInactive().Query).Where("case_number = ?", number)
	if except != uuid.Nil {
		q = q.Where("id <> ?", except)
	}
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check case number: %w", err)
	}
	if n > 0 {
		return services.ErrCaseNumberTaken
	}
	return nil
}
