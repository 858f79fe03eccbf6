package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	DocumentTypes    = []string{"bail_application", "legal_notice", "petition", "contract", "affidavit", "other"}
	DocumentStatuses = []string{"draft", "finalized", "archived"}
)

type Document struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	CaseID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"case_id"`
	DocumentType string     `gorm:"size:30;not null" json:"document_type"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Content      string     `gorm:"type:text" json:"content,omitempty"`
	FileName     string     `gorm:"size:255" json:"file_name,omitempty"`
	MimeType     string     `gorm:"size:100" json:"mime_type,omitempty"`
	Status       string     `gorm:"size:20;not null" json:"status"`
	ApprovedBy   *uuid.UUID `gorm:"type:uuid" json:"approved_by,omitempty"`
	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	IsActive     bool       `gorm:"not null" json:"is_active"`
	CreatedBy    uuid.UUID  `gorm:"type:uuid" json:"created_by"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
