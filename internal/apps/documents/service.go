package documents

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

var (
	ErrDocumentNotFound = services.NotFound("document")
	ErrCaseNotFound     = services.NotFound("case")
)

const exportText = "txt"

type DocumentService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{db: db, now: time.Now}
}

func (s *DocumentService) List(ctx context.Context, scope tenant.Scope, caseID uuid.UUID, docType string, page, limit int) (*dto.ListResponse[models.Document], error) {
	q := s.db.WithContext(ctx).Model(&models.Document{}).Scopes(scope.Query)
	if caseID != uuid.Nil {
		q = q.Where("case_id = ?", caseID)
	}
	if docType != "" {
		q = q.Where("document_type = ?", docType)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count documents: %w", err)
	}

	docs := []models.Document{}
	err := q.Omit("content").
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	return &dto.ListResponse[models.Document]{Data: docs, Pagination: dto.NewPagination(total, page, limit)}, nil
}

func (s *DocumentService) Get(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Document, error) {
	var d models.Document
	if err := s.db.WithContext(ctx).Scopes(scope.Query).First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to load document: %w", err)
	}
	return &d, nil
}

// Create rejects a body naming any tenant other than the authenticated one
// before looking at anything else.
func (s *DocumentService) Create(ctx context.Context, scope tenant.Scope, req *CreateRequest) (*models.Document, error) {
	if req.TenantID == uuid.Nil {
		var v dto.Validator
		v.Add("tenant_id", "is required")
		return nil, v.Err()
	}
	if err := scope.Check(req.TenantID); err != nil {
		return nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkCase(ctx, scope, req.CaseID); err != nil {
		return nil, err
	}

	d := models.Document{
		TenantID:  scope.TenantID,
		IsActive:  true,
		CreatedBy: scope.UserID,
	}
	req.apply(&d)

	if err := s.db.WithContext(ctx).Create(&d).Error; err != nil {
		return nil, fmt.Errorf("failed to create document: %w", err)
	}
	return &d, nil
}

func (s *DocumentService) Update(ctx context.Context, scope tenant.Scope, id uuid.UUID, req *DocumentRequest) (*models.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	d, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkCase(ctx, scope, req.CaseID); err != nil {
		return nil, err
	}
	req.apply(d)

	if err := s.db.WithContext(ctx).Save(d).Error; err != nil {
		return nil, fmt.Errorf("failed to update document: %w", err)
	}
	return d, nil
}

// Approve finalizes the document and records who signed it off.
func (s *DocumentService) Approve(ctx context.Context, scope tenant.Scope, id uuid.UUID) (*models.Document, error) {
	d, err := s.Get(ctx, scope, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	approver := scope.UserID
	d.Status = statusFinalized
	d.ApprovedBy = &approver
	d.ApprovedAt = &now

	if err := s.db.WithContext(ctx).Save(d).Error; err != nil {
		return nil, fmt.Errorf("failed to approve document: %w", err)
	}
	return d, nil
}

func (s *DocumentService) Delete(ctx context.Context, scope tenant.Scope, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Model(&models.Document{}).Scopes(scope.Query).
		Where("id = ?", id).
		Updates(map[string]interface{}{"is_active": false, "status": statusArchived})
	if result.Error != nil {
		return fmt.Errorf("failed to delete document: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}

// CaseDocuments is one active case with its documents, content omitted.
type CaseDocuments struct {
	CaseID     uuid.UUID         `json:"case_id"`
	CaseNumber string            `json:"case_number"`
	Title      string            `json:"title"`
	ClientID   uuid.UUID         `json:"client_id"`
	Documents  []models.Document `json:"documents"`
}

// ByCase groups the tenant's documents under its active cases, newest case
// first. Cases without documents are included with an empty list.
func (s *DocumentService) ByCase(ctx context.Context, scope tenant.Scope) ([]CaseDocuments, error) {
	db := s.db.WithContext(ctx)

	var cases []models.Case
	if err := db.Scopes(scope.Query).Order("created_at DESC").Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	if len(cases) == 0 {
		return []CaseDocuments{}, nil
	}

	ids := make([]uuid.UUID, len(cases))
	for i, c := range cases {
		ids[i] = c.ID
	}
	var docs []models.Document
	err := db.Scopes(scope.Query).Omit("content").
		Where("case_id IN ?", ids).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	byCase := make(map[uuid.UUID][]models.Document, len(cases))
	for _, d := range docs {
		byCase[d.CaseID] = append(byCase[d.CaseID], d)
	}

	groups := make([]CaseDocuments, len(cases))
	for i, c := range cases {
		group := CaseDocuments{CaseID: c.ID, CaseNumber: c.CaseNumber, Title: c.Title, ClientID: c.ClientID, Documents: byCase[c.ID]}
		if group.Documents == nil {
			group.Documents = []models.Document{}
		}
		groups[i] = group
	}
	return groups, nil
}

// Export renders a document for download. Only plain text is supported.
func (s *DocumentService) Export(ctx context.Context, scope tenant.Scope, id uuid.UUID, format string) (fileName string, body []byte, err error) {
	if format == "" {
		format = exportText
	}
	if format != exportText {
		var v dto.Validator
		v.Add("format", "unsupported export format; supported: %s", exportText)
		return "", nil, v.Err()
	}

	d, err := s.Get(ctx, scope, id)
	if err != nil {
		return "", nil, err
	}
	fileName = fmt.Sprintf("%s-%s.%s", tenant.NormalizeSlug(d.Title), s.now().UTC().Format("20060102"), exportText)
	return fileName, []byte(d.Content), nil
}

func (s *DocumentService) checkCase(ctx context.Context, scope tenant.Scope, caseID uuid.UUID) error {
	var n int64
	if err := s.db.WithContext(ctx).Model(&models.Case{}).Scopes(scope.Query).Where("id = ?", caseID).Count(&n).Error; err != nil {
		return fmt.Errorf("failed to check case: %w", err)
	}
	if n == 0 {
		return ErrCaseNotFound
	}
	return nil
}
