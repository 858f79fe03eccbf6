package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DiaryKind is the closed set of diary logs a firm keeps.
type DiaryKind string

const (
	DiaryDaily        DiaryKind = "daily"
	DiaryFollowUp     DiaryKind = "follow_up"
	DiaryExpense      DiaryKind = "expense"
	DiaryTask         DiaryKind = "task"
	DiaryConfidential DiaryKind = "confidential"
	DiaryMeeting      DiaryKind = "meeting"
	DiaryCaseNotes    DiaryKind = "case_notes"
	DiaryCourtHearing DiaryKind = "court_hearing"
	DiaryDocument     DiaryKind = "document"
)

var diaryKinds = []DiaryKind{
	DiaryDaily, DiaryFollowUp, DiaryExpense, DiaryTask, DiaryConfidential,
	DiaryMeeting, DiaryCaseNotes, DiaryCourtHearing, DiaryDocument,
}

func (k DiaryKind) Valid() bool {
	for _, known := range diaryKinds {
		if k == known {
			return true
		}
	}
	return false
}

// NeedsCase reports whether entries of this kind must reference a case.
func (k DiaryKind) NeedsCase() bool {
	return k == DiaryCourtHearing || k == DiaryDocument
}

// HasDueDate reports whether entries of this kind track a due date and open/done status.
func (k DiaryKind) HasDueDate() bool {
	return k == DiaryTask || k == DiaryFollowUp
}

const (
	DiaryStatusOpen      = "open"
	DiaryStatusDone      = "done"
	DiaryStatusCancelled = "cancelled"
)

var DiaryStatuses = []string{DiaryStatusOpen, DiaryStatusDone, DiaryStatusCancelled}

type DiaryEntry struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_diary_tenant_kind,priority:1" json:"tenant_id"`
	Kind      DiaryKind  `gorm:"size:20;not null;index:idx_diary_tenant_kind,priority:2" json:"kind"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	CaseID    *uuid.UUID `gorm:"type:uuid;index" json:"case_id,omitempty"`
	Title     string     `gorm:"size:255;not null" json:"title"`
	Body      string     `gorm:"type:text" json:"body,omitempty"`
	EntryDate time.Time  `gorm:"not null;index" json:"entry_date"`
	DueDate   *time.Time `gorm:"index" json:"due_date,omitempty"`
	Status    string     `gorm:"size:20" json:"status,omitempty"`
	Priority  string     `gorm:"size:10" json:"priority,omitempty"`
	Amount    float64    `json:"amount,omitempty"`
	IsActive  bool       `gorm:"not null" json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Details holds CourtHearingDetails or DocumentChecklist for those kinds.
	Details datatypes.JSON `json:"details,omitempty"`
}

func (d *DiaryEntry) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}
