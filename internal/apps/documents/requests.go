package documents

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/google/uuid"
)

const (
	statusDraft     = "draft"
	statusFinalized = "finalized"
	statusArchived  = "archived"
)

// CreateRequest carries the tenant the client believes it is acting for.
// It is compared with the authenticated tenant and never used for scoping.
type CreateRequest struct {
	TenantID uuid.UUID `json:"tenant_id"`
	DocumentRequest
}

type DocumentRequest struct {
	CaseID       uuid.UUID `json:"case_id"`
	DocumentType string    `json:"document_type"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	FileName     string    `json:"file_name"`
	MimeType     string    `json:"mime_type"`
	Status       string    `json:"status"`
}

func (r *DocumentRequest) Validate() error {
	r.Title = strings.TrimSpace(r.Title)
	r.DocumentType = strings.ToLower(strings.TrimSpace(r.DocumentType))
	if r.Status == "" {
		r.Status = statusDraft
	}

	var v dto.Validator
	if r.CaseID == uuid.Nil {
		v.Add("case_id", "is required")
	}
	if v.Required("document_type", r.DocumentType) {
		v.OneOf("document_type", r.DocumentType, models.DocumentTypes)
	}
	v.Length("title", r.Title, 2, 255)
	v.OneOf("status", r.Status, models.DocumentStatuses)
	return v.Err()
}

func (r *DocumentRequest) apply(d *models.Document) {
	d.CaseID = r.CaseID
	d.DocumentType = r.DocumentType
	d.Title = r.Title
	d.Content = r.Content
	d.FileName = r.FileName
	d.MimeType = r.MimeType
	d.Status = r.Status
}
