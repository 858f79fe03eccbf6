package cases

import (
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/google/uuid"
)

const (
	defaultStatus   = "open"
	defaultPriority = "medium"
	archivedStatus  = "archived"
)

// CaseRequest is the body of both create and update; update replaces every field.
type CaseRequest struct {
	CaseNumber       string     `json:"case_number"`
	ClientID         uuid.UUID  `json:"client_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	CaseType         string     `json:"case_type"`
	Status           string     `json:"status"`
	CourtName        string     `json:"court_name"`
	CourtLocation    string     `json:"court_location"`
	Jurisdiction     string     `json:"jurisdiction"`
	Judge            string     `json:"judge"`
	OppositeParty    string     `json:"opposite_party"`
	OppositeAdvocate string     `json:"opposite_advocate"`
	FilingDate       *time.Time `json:"filing_date"`
	NextHearingDate  *time.Time `json:"next_hearing_date"`
	Budget           float64    `json:"budget"`
	SpentAmount      float64    `json:"spent_amount"`
	Priority         string     `json:"priority"`
	AssignedTo       *uuid.UUID `json:"assigned_to"`
	Notes            string     `json:"notes"`
}

func (r *CaseRequest) Validate() error {
	r.CaseNumber = strings.TrimSpace(r.CaseNumber)
	r.Title = strings.TrimSpace(r.Title)
	if r.Status == "" {
		r.Status = defaultStatus
	}
	if r.Priority == "" {
		r.Priority = defaultPriority
	}

	var v dto.Validator
	v.Length("case_number", r.CaseNumber, 1, 100)
	v.Length("title", r.Title, 2, 255)
	if r.ClientID == uuid.Nil {
		v.Add("client_id", "is required")
	}
	if v.Required("case_type", r.CaseType) {
		v.OneOf("case_type", r.CaseType, models.CaseTypes)
	}
	v.OneOf("status", r.Status, models.CaseStatuses)
	v.OneOf("priority", r.Priority, models.CasePriorities)
	v.NonNegative("budget", r.Budget)
	v.NonNegative("spent_amount", r.SpentAmount)
	return v.Err()
}

func (r *CaseRequest) apply(c *models.Case) {
	c.CaseNumber = r.CaseNumber
	c.ClientID = r.ClientID
	c.Title = r.Title
	c.Description = r.Description
	c.CaseType = r.CaseType
	c.Status = r.Status
	c.CourtName = r.CourtName
	c.CourtLocation = r.CourtLocation
	c.Jurisdiction = r.Jurisdiction
	c.Judge = r.Judge
	c.OppositeParty = r.OppositeParty
	c.OppositeAdvocate = r.OppositeAdvocate
	c.FilingDate = r.FilingDate
	c.NextHearingDate = r.NextHearingDate
	c.Budget = r.Budget
	c.SpentAmount = r.SpentAmount
	c.Priority = r.Priority
	c.AssignedTo = r.AssignedTo
	c.Notes = r.Notes
}

// ListFilter narrows a case listing. Empty fields do not filter.
type ListFilter struct {
	Status   string
	CaseType string
	ClientID uuid.UUID
	Search   string
}

type Stats struct {
	Total            int64            `json:"total"`
	ByStatus         map[string]int64 `json:"by_status"`
	ByType           map[string]int64 `json:"by_type"`
	UpcomingHearings int64            `json:"upcoming_hearings"`
}
