package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	ClientIndividual   = "individual"
	ClientCorporate    = "corporate"
	ClientOrganization = "organization"

	ClientActive   = "active"
	ClientInactive = "inactive"
	ClientArchived = "archived"
)

var (
	ClientCategories = []string{ClientIndividual, ClientCorporate, ClientOrganization}
	ClientStatuses   = []string{ClientActive, ClientInactive, ClientArchived}
)

type Client struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID        uuid.UUID      `gorm:"type:uuid;not null;index;index:idx_clients_tenant_status,priority:1" json:"tenant_id"`
	FirstName       string         `gorm:"size:50;not null" json:"first_name"`
	LastName        string         `gorm:"size:50;not null" json:"last_name"`
	Email           string         `gorm:"size:255;index" json:"email,omitempty"`
	Phone           string         `gorm:"size:30;not null" json:"phone"`
	AlternatePhone  string         `gorm:"size:30" json:"alternate_phone,omitempty"`
	Street          string         `gorm:"size:255" json:"street,omitempty"`
	City            string         `gorm:"size:100" json:"city,omitempty"`
	State           string         `gorm:"size:100" json:"state,omitempty"`
	ZipCode         string         `gorm:"size:20" json:"zip_code,omitempty"`
	Country         string         `gorm:"size:100" json:"country,omitempty"`
	DateOfBirth     *time.Time     `json:"date_of_birth,omitempty"`
	Category        string         `gorm:"size:20;not null" json:"category"`
	Status          string         `gorm:"size:20;not null;index:idx_clients_tenant_status,priority:2" json:"status"`
	Notes           string         `gorm:"type:text" json:"notes,omitempty"`
	CustomFields    datatypes.JSON `json:"custom_fields,omitempty"`
	TotalAmount     float64        `gorm:"not null" json:"total_amount"`
	AmountPaid      float64        `gorm:"not null" json:"amount_paid"`
	AmountRemaining float64        `gorm:"not null" json:"amount_remaining"`
	IsActive        bool           `gorm:"not null" json:"is_active"`
	CreatedBy       uuid.UUID      `gorm:"type:uuid" json:"created_by"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// BeforeSave keeps the outstanding balance consistent with the totals.
func (c *Client) BeforeSave(tx *gorm.DB) error {
	c.AmountRemaining = c.TotalAmount - c.AmountPaid
	if c.AmountRemaining < 0 {
		c.AmountRemaining = 0
	}
	return nil
}
