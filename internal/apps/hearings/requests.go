package hearings

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/google/uuid"
)

// HearingRequest is the body of both create and update; update replaces every field.
type HearingRequest struct {
	CaseID          uuid.UUID  `json:"case_id"`
	HearingDate     time.Time  `json:"hearing_date"`
	HearingTime     string     `json:"hearing_time"`
	Courtroom       string     `json:"courtroom"`
	Judge           string     `json:"judge"`
	Description     string     `json:"description"`
	ReminderMethod  string     `json:"reminder_method"`
	Status          string     `json:"status"`
	Outcome         string     `json:"outcome"`
	NextHearingDate *time.Time `json:"next_hearing_date"`
	Notes           string     `json:"notes"`
}

func (r *HearingRequest) Validate() error {
	if r.ReminderMethod == "" {
		r.ReminderMethod = models.ReminderBoth
	}
	if r.Status == "" {
		r.Status = models.HearingScheduled
	}

	var v dto.Validator
	if r.CaseID == uuid.Nil {
		v.Add("case_id", "is required")
	}
	if r.HearingDate.IsZero() {
		v.Add("hearing_date", "is required")
	}
	v.OneOf("reminder_method", r.ReminderMethod, models.ReminderMethods)
	v.OneOf("status", r.Status, models.HearingStatuses)
	return v.Err()
}

func (r *HearingRequest) apply(h *models.Hearing) {
	h.CaseID = r.CaseID
	h.HearingDate = r.HearingDate.UTC()
	h.HearingTime = r.HearingTime
	h.Courtroom = r.Courtroom
	h.Judge = r.Judge
	h.Description = r.Description
	h.ReminderMethod = r.ReminderMethod
	h.Status = r.Status
	h.Outcome = r.Outcome
	h.NextHearingDate = r.NextHearingDate
	h.Notes = r.Notes
}

// ListFilter narrows a hearing listing. Zero fields do not filter.
type ListFilter struct {
	CaseID uuid.UUID
	Status string
	From   time.Time
	To     time.Time
}
