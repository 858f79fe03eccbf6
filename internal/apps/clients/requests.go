package clients

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
)

// ClientRequest is the body of both create and update; update replaces every field.
type ClientRequest struct {
	FirstName      string          `json:"first_name"`
	LastName       string          `json:"last_name"`
	Email          string          `json:"email"`
	Phone          string          `json:"phone"`
	AlternatePhone string          `json:"alternate_phone"`
	Street         string          `json:"street"`
	City           string          `json:"city"`
	State          string          `json:"state"`
	ZipCode        string          `json:"zip_code"`
	Country        string          `json:"country"`
	DateOfBirth    *time.Time      `json:"date_of_birth"`
	Category       string          `json:"category"`
	Status         string          `json:"status"`
	Notes          string          `json:"notes"`
	CustomFields   json.RawMessage `json:"custom_fields"`
	TotalAmount    float64         `json:"total_amount"`
	AmountPaid     float64         `json:"amount_paid"`
}

func (r *ClientRequest) normalize() {
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	if r.Category == "" {
		r.Category = models.ClientIndividual
	}
	if r.Status == "" {
		r.Status = models.ClientActive
	}
}

func (r *ClientRequest) Validate() error {
	r.normalize()

	var v dto.Validator
	v.Length("first_name", r.FirstName, 2, 50)
	v.Length("last_name", r.LastName, 2, 50)
	v.Required("phone", r.Phone)
	if r.Email != "" {
		v.Email("email", r.Email)
	}
	v.OneOf("category", r.Category, models.ClientCategories)
	v.OneOf("status", r.Status, models.ClientStatuses)
	v.NonNegative("total_amount", r.TotalAmount)
	v.NonNegative("amount_paid", r.AmountPaid)
	if len(r.CustomFields) > 0 && !json.Valid(r.CustomFields) {
		v.Add("custom_fields", "must be valid JSON")
	}
	return v.Err()
}

func (r *ClientRequest) apply(c *models.Client) {
	c.FirstName = r.FirstName
	c.LastName = r.LastName
	c.Email = r.Email
	c.Phone = r.Phone
	c.AlternatePhone = r.AlternatePhone
	c.Street = r.Street
	c.City = r.City
	c.State = r.State
	c.ZipCode = r.ZipCode
	c.Country = r.Country
	c.DateOfBirth = r.DateOfBirth
	c.Category = r.Category
	c.Status = r.Status
	c.Notes = r.Notes
	c.CustomFields = nil
	if len(r.CustomFields) > 0 {
		c.CustomFields = []byte(r.CustomFields)
	}
	c.TotalAmount = r.TotalAmount
	c.AmountPaid = r.AmountPaid
}

// ListFilter narrows a client listing. Empty fields do not filter.
type ListFilter struct {
	Status   string
	Category string
	Search   string
}
