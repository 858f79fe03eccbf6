package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	CaseTypes      = []string{"civil", "criminal", "family", "corporate", "property", "labor", "tax", "intellectual_property", "other"}
	CaseStatuses   = []string{"open", "in_progress", "closed", "on_hold", "archived"}
	CasePriorities = []string{"low", "medium", "high", "urgent"}
)

// Case numbers are unique within a tenant, not globally.
type Case struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID         uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_cases_case_number,priority:1" json:"tenant_id"`
	CaseNumber       string     `gorm:"size:100;not null;uniqueIndex:idx_cases_case_number,priority:2" json:"case_number"`
	ClientID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"client_id"`
	Title            string     `gorm:"size:255;not null" json:"title"`
	Description      string     `gorm:"type:text" json:"description,omitempty"`
	CaseType         string     `gorm:"size:30;not null" json:"case_type"`
	Status           string     `gorm:"size:20;not null;index" json:"status"`
	CourtName        string     `gorm:"size:255" json:"court_name,omitempty"`
	CourtLocation    string     `gorm:"size:255" json:"court_location,omitempty"`
	Jurisdiction     string     `gorm:"size:255" json:"jurisdiction,omitempty"`
	Judge            string     `gorm:"size:255" json:"judge,omitempty"`
	OppositeParty    string     `gorm:"size:255" json:"opposite_party,omitempty"`
	OppositeAdvocate string     `gorm:"size:255" json:"opposite_advocate,omitempty"`
	FilingDate       *time.Time `json:"filing_date,omitempty"`
	NextHearingDate  *time.Time `gorm:"index" json:"next_hearing_date,omitempty"`
	Budget           float64    `json:"budget"`
	SpentAmount      float64    `json:"spent_amount"`
	Priority         string     `gorm:"size:10;not null" json:"priority"`
	AssignedTo       *uuid.UUID `gorm:"type:uuid" json:"assigned_to,omitempty"`
	Notes            string     `gorm:"type:text" json:"notes,omitempty"`
	IsActive         bool       `gorm:"not null" json:"is_active"`
	CreatedBy        uuid.UUID  `gorm:"type:uuid" json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (c *Case) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
