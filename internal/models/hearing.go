package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	HearingScheduled = "scheduled"
	HearingPostponed = "postponed"
	HearingCompleted = "completed"
	HearingCancelled = "cancelled"

	ReminderEmail = "email"
	ReminderSMS   = "sms"
	ReminderBoth  = "both"
	ReminderNone  = "none"
)

var (
	HearingStatuses = []string{HearingScheduled, HearingPostponed, HearingCompleted, HearingCancelled}
	ReminderMethods = []string{ReminderEmail, ReminderSMS, ReminderBoth, ReminderNone}
)

type Hearing struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	CaseID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"case_id"`
	HearingDate     time.Time  `gorm:"not null;index" json:"hearing_date"`
	HearingTime     string     `gorm:"size:20" json:"hearing_time,omitempty"`
	Courtroom       string     `gorm:"size:100" json:"courtroom,omitempty"`
	Judge           string     `gorm:"size:255" json:"judge,omitempty"`
	Description     string     `gorm:"type:text" json:"description,omitempty"`
	ReminderMethod  string     `gorm:"size:10;not null" json:"reminder_method"`
	ReminderSent    bool       `gorm:"not null" json:"reminder_sent"`
	ReminderSentAt  *time.Time `json:"reminder_sent_at,omitempty"`
	Status          string     `gorm:"size:20;not null" json:"status"`
	Outcome         string     `gorm:"type:text" json:"outcome,omitempty"`
	NextHearingDate *time.Time `json:"next_hearing_date,omitempty"`
	Notes           string     `gorm:"type:text" json:"notes,omitempty"`
	IsActive        bool       `gorm:"not null" json:"is_active"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid" json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (h *Hearing) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
