package models

import "time"

var (
	CourtNames           = []string{"district_court", "high_court", "supreme_court", "tribunal", "consumer_court", "labor_court", "other"}
	HearingPurposes      = []string{"evidence", "cross_examination", "arguments", "interim_order", "final_order", "status_update", "motion", "other"}
	CaseStages           = []string{"admission", "evidence", "cross", "arguments", "judgment", "post_judgment", "appeal", "other"}
	OrderStatuses        = []string{"reserved", "pronounced", "pending", "not_delivered"}
	CourtHearingStatuses = []string{"scheduled", "completed", "cancelled", "rescheduled", "adjourned"}
)

// CourtHearingDetails is the court-diary record of one appearance: where,
// before whom, why, what happened and who attended.
type CourtHearingDetails struct {
	CourtName     string `json:"court_name"`
	CourtLocation string `json:"court_location,omitempty"`
	BenchNumber   string `json:"bench_number,omitempty"`
	Judge         string `json:"judge,omitempty"`

	HearingDate time.Time `json:"hearing_date"`
	HearingTime string    `json:"hearing_time,omitempty"`
	Courtroom   string    `json:"courtroom,omitempty"`
	ItemNumber  string    `json:"item_number,omitempty"`
	Purpose     string    `json:"purpose"`
	CaseStage   string    `json:"case_stage,omitempty"`

	NextHearingDate    *time.Time `json:"next_hearing_date,omitempty"`
	NextHearingPurpose string     `json:"next_hearing_purpose,omitempty"`

	OrderStatus  string   `json:"order_status,omitempty"`
	OrderSummary string   `json:"order_summary,omitempty"`
	KeyPoints    []string `json:"key_points,omitempty"`

	AdvocatePresent   *bool  `json:"advocate_present,omitempty"`
	ClientPresent     *bool  `json:"client_present,omitempty"`
	OppositeAdvocate  string `json:"opposite_advocate,omitempty"`
	AttendanceRemarks string `json:"attendance_remarks,omitempty"`

	Status string `json:"status"`
}

const (
	ChecklistReceived = "received"
	ChecklistVerified = "verified"
	ChecklistPending  = "pending"
)

var (
	ChecklistDocumentTypes = []string{
		"identity_proof", "address_proof", "financial_documents", "medical_reports", "witness_statements",
		"photographs", "correspondence", "agreements", "certificates", "licenses", "permits",
		"court_orders", "affidavits", "other",
	}
	ChecklistStatuses = []string{"not_received", ChecklistPending, ChecklistReceived, ChecklistVerified, "incomplete", "rejected"}
	RequiredFrom      = []string{"client", "court", "opposite_party", "advocate", "expert", "other"}
)

// ChecklistItem is one document a case needs.
type ChecklistItem struct {
	Name         string     `json:"name"`
	DocumentType string     `json:"document_type"`
	Status       string     `json:"status"`
	RequiredFrom string     `json:"required_from"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	Notes        string     `json:"notes,omitempty"`
}

type ChecklistSummary struct {
	TotalRequired        int `json:"total_required"`
	TotalReceived        int `json:"total_received"`
	TotalPending         int `json:"total_pending"`
	CompletionPercentage int `json:"completion_percentage"`
}

// DocumentChecklist is the document-diary record for a case.
type DocumentChecklist struct {
	Items               []ChecklistItem  `json:"items"`
	ComplianceRequired  bool             `json:"compliance_required"`
	ComplianceStandards []string         `json:"compliance_standards,omitempty"`
	AutomatedReminders  bool             `json:"automated_reminders"`
	Summary             ChecklistSummary `json:"summary"`
}

// Summarize recomputes Summary from Items. Received and verified items count
// as received; everything else is still pending.
func (d *DocumentChecklist) Summarize() {
	sum := ChecklistSummary{TotalRequired: len(d.Items)}
	for _, item := range d.Items {
		if item.Status == ChecklistReceived || item.Status == ChecklistVerified {
			sum.TotalReceived++
		}
	}
	sum.TotalPending = sum.TotalRequired - sum.TotalReceived
	if sum.TotalRequired > 0 {
		sum.CompletionPercentage = sum.TotalReceived * 100 / sum.TotalRequired
	}
	d.Summary = sum
}
