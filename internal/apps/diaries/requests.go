package diaries

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EntryRequest is the body of both create and update. Fields that do not
// apply to the diary kind are ignored.
type EntryRequest struct {
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	EntryDate *time.Time `json:"entry_date"`
	DueDate   *time.Time `json:"due_date"`
	Status    string     `json:"status"`
	Priority  string     `json:"priority"`
	Amount    float64    `json:"amount"`
	CaseID    *uuid.UUID `json:"case_id"`

	CourtHearing *models.CourtHearingDetails `json:"court_hearing"`
	Checklist    *models.DocumentChecklist   `json:"checklist"`
}

func (r *EntryRequest) Validate(kind models.DiaryKind) error {
	r.Title = strings.TrimSpace(r.Title)
	if kind.HasDueDate() && r.Status == "" {
		r.Status = models.DiaryStatusOpen
	}

	var v dto.Validator
	v.Length("title", r.Title, 1, 255)
	v.OneOf("priority", r.Priority, models.CasePriorities)
	if kind.HasDueDate() {
		if r.DueDate == nil {
			v.Add("due_date", "is required for %s entries", kind)
		}
		v.OneOf("status", r.Status, models.DiaryStatuses)
	}
	if kind == models.DiaryExpense {
		if r.Amount <= 0 {
			v.Add("amount", "must be greater than zero")
		}
	}
	if kind.NeedsCase() && r.CaseID == nil {
		v.Add("case_id", "is required for %s entries", kind)
	}
	switch kind {
	case models.DiaryCourtHearing:
		validateCourtHearing(&v, r.CourtHearing)
	case models.DiaryDocument:
		validateChecklist(&v, r.Checklist)
	}
	return v.Err()
}

func validateCourtHearing(v *dto.Validator, d *models.CourtHearingDetails) {
	if d == nil {
		v.Add("court_hearing", "is required for court_hearing entries")
		return
	}
	if d.Status == "" {
		d.Status = "scheduled"
	}
	if v.Required("court_hearing.court_name", d.CourtName) {
		v.OneOf("court_hearing.court_name", d.CourtName, models.CourtNames)
	}
	if d.HearingDate.IsZero() {
		v.Add("court_hearing.hearing_date", "is required")
	}
	if v.Required("court_hearing.purpose", d.Purpose) {
		v.OneOf("court_hearing.purpose", d.Purpose, models.HearingPurposes)
	}
	v.OneOf("court_hearing.case_stage", d.CaseStage, models.CaseStages)
	v.OneOf("court_hearing.order_status", d.OrderStatus, models.OrderStatuses)
	v.OneOf("court_hearing.status", d.Status, models.CourtHearingStatuses)
	if d.NextHearingDate != nil && !d.HearingDate.IsZero() && !d.NextHearingDate.After(d.HearingDate) {
		v.Add("court_hearing.next_hearing_date", "must be after hearing_date")
	}
}

func validateChecklist(v *dto.Validator, d *models.DocumentChecklist) {
	if d == nil || len(d.Items) == 0 {
		v.Add("checklist.items", "must list at least one document")
		return
	}
	for i := range d.Items {
		item := &d.Items[i]
		field := fmt.Sprintf("checklist.items[%d]", i)
		item.Name = strings.TrimSpace(item.Name)
		if item.Status == "" {
			item.Status = models.ChecklistPending
		}
		v.Required(field+".name", item.Name)
		if v.Required(field+".document_type", item.DocumentType) {
			v.OneOf(field+".document_type", item.DocumentType, models.ChecklistDocumentTypes)
		}
		v.OneOf(field+".status", item.Status, models.ChecklistStatuses)
		if v.Required(field+".required_from", item.RequiredFrom) {
			v.OneOf(field+".required_from", item.RequiredFrom, models.RequiredFrom)
		}
	}
}

func (r *EntryRequest) apply(e *models.DiaryEntry, now time.Time) error {
	e.Title = r.Title
	e.Body = r.Body
	e.Priority = r.Priority
	e.CaseID = r.CaseID
	if r.EntryDate != nil {
		e.EntryDate = r.EntryDate.UTC()
	} else if e.EntryDate.IsZero() {
		e.EntryDate = now
	}

	e.DueDate, e.Status, e.Amount = nil, "", 0
	if e.Kind.HasDueDate() {
		due := r.DueDate.UTC()
		e.DueDate = &due
		e.Status = r.Status
	}
	if e.Kind == models.DiaryExpense {
		e.Amount = r.Amount
	}

	var details interface{}
	switch e.Kind {
	case models.DiaryCourtHearing:
		r.CourtHearing.HearingDate = r.CourtHearing.HearingDate.UTC()
		e.EntryDate = r.CourtHearing.HearingDate
		details = r.CourtHearing
	case models.DiaryDocument:
		r.Checklist.Summarize()
		details = r.Checklist
	default:
		e.Details = nil
		return nil
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to encode %s details: %w", e.Kind, err)
	}
	e.Details = datatypes.JSON(raw)
	return nil
}

// ListFilter narrows a diary listing. Zero fields do not filter.
type ListFilter struct {
	CaseID uuid.UUID
	Status string
	Search string
}
