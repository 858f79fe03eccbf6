package diaries

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/services"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/tenant"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrEntryNotFound = services.NotFound("diary entry")
	ErrUnknownKind   = services.NotFound("diary")
	ErrCaseNotFound  = services.NotFound("case")
)

type DiaryService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDiaryService(db *gorm.DB) *DiaryService {
	return &DiaryService{db: db, now: time.Now}
}

// visible restricts a query to one diary as seen by the caller. Confidential
// entries are only ever visible to their author.
func visible(scope tenant.Scope, kind models.DiaryKind) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = scope.Query(db).Where("kind = ?", kind)
		if kind == models.DiaryConfidential {
			db = db.Where("user_id = ?", scope.UserID)
		}
		return db
	}
}

func (s *DiaryService) List(ctx context.Context, scope tenant.Scope, kind models.DiaryKind, f ListFilter, page, limit int) (*dto.ListResponse[models.DiaryEntry], error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}

	q := s.db.WithContext(ctx).Model(&models.DiaryEntry{}).Scopes(visible(scope, kind))
	if f.CaseID != uuid.Nil {
		q = q.Where("case_id = ?", f.CaseID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if term := strings.ToLower(strings.TrimSpace(f.Search)); term != "" {
		pattern := "%" + term + "%"
		q = q.Where("(LOWER(title) LIKE ? OR LOWER(body) LIKE ?)", pattern, pattern)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count diary entries: %w", err)
	}

	entries := []models.DiaryEntry{}
	err := q.Order("entry_date DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list diary entries: %w", err)
	}

	return &dto.ListResponse[models.DiaryEntry]{Data: entries, Pagination: dto.NewPagination(total, page, limit)}, nil
}

func (s *DiaryService) Get(ctx context.Context, scope tenant.Scope, kind models.DiaryKind, id uuid.UUID) (*models.DiaryEntry, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}

	var e models.DiaryEntry
	if err := s.db.WithContext(ctx).Scopes(visible(scope, kind)).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("failed to load diary entry: %w", err)
	}
	return &e, nil
}

func (s *DiaryService) Create(ctx context.Context, scope tenant.Scope, kind models.DiaryKind, req *EntryRequest) (*models.DiaryEntry, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	if err := req.Validate(kind); err != nil {
		return nil, err
	}
	if err := s.checkCase(ctx, scope, req.CaseID); err != nil {
		return nil, err
	}

	e := models.DiaryEntry{
		TenantID: scope.TenantID,
		Kind:     kind,
		UserID:   scope.UserID,
		IsActive: true,
	}
	if err := req.apply(&e, s.now().UTC()); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Create(&e).Error; err != nil {
		return nil, fmt.Errorf("failed to create diary entry: %w", err)
	}
	return &e, nil
}

func (s *DiaryService) Update(ctx context.Context, scope tenant.Scope, kind models.DiaryKind, id uuid.UUID, req *EntryRequest) (*models.DiaryEntry, error) {
	if !kind.Valid() {
		return nil, ErrUnknownKind
	}
	if err := req.Validate(kind); err != nil {
		return nil, err
	}

	e, err := s.Get(ctx, scope, kind, id)
	if err != nil {
		return nil, err
	}
	if !canModify(scope, e) {
		return nil, services.ErrForbidden
	}
	if err := s.checkCase(ctx, scope, req.CaseID); err != nil {
		return nil, err
	}
	if err := req.apply(e, s.now().UTC()); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Save(e).Error; err != nil {
		return nil, fmt.Errorf("failed to update diary entry: %w", err)
	}
	return e, nil
}

func (s *DiaryService) Delete(ctx context.Context, scope tenant.Scope, kind models.DiaryKind, id uuid.UUID) error {
	e, err := s.Get(ctx, scope, kind, id)
	if err != nil {
		return err
	}
	if !canModify(scope, e) {
		return services.ErrForbidden
	}
	if err := s.db.WithContext(ctx).Model(e).Update("is_active", false).Error; err != nil {
		return fmt.Errorf("failed to delete diary entry: %w", err)
	}
	return nil
}

// Overdue lists open follow-ups whose due date has passed.
func (s *DiaryService) Overdue(ctx context.Context, scope tenant.Scope) ([]models.DiaryEntry, error) {
	entries := []models.DiaryEntry{}
	err := s.db.WithContext(ctx).Scopes(visible(scope, models.DiaryFollowUp)).
		Where("status = ? AND due_date < ?", models.DiaryStatusOpen, s.now().UTC()).
		Order("due_date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue follow-ups: %w", err)
	}
	return entries, nil
}

// CourtHearingsOn lists the caller's court-diary entries for the UTC day
// containing day, earliest first.
func (s *DiaryService) CourtHearingsOn(ctx context.Context, scope tenant.Scope, day time.Time) ([]models.DiaryEntry, error) {
	day = day.UTC()
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)

	entries := []models.DiaryEntry{}
	err := s.db.WithContext(ctx).Scopes(visible(scope, models.DiaryCourtHearing)).
		Where("entry_date >= ? AND entry_date < ?", from, from.AddDate(0, 0, 1)).
		Order("entry_date ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list court hearings: %w", err)
	}
	return entries, nil
}

// canModify allows the author, and managers for entries that are not confidential.
func canModify(scope tenant.Scope, e *models.DiaryEntry) bool {
	if e.UserID == scope.UserID {
		return true
	}
	return scope.Role == models.RoleOwner || scope.Role == models.RoleAdmin
}

func (s *DiaryService) checkCase(ctx context.Context, scope tenant.Scope, caseID *uuid.UUID) error {
	if caseID == nil {
		return nil
	}
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Case{}).Scopes(scope.Query).Where("id = ?", *caseID).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check case: %w", err)
	}
	if n == 0 {
		return ErrCaseNotFound
	}
	return nil
}
