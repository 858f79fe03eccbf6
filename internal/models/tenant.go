package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PlanFree         = "free"
	PlanStarter      = "starter"
	PlanProfessional = "professional"
	PlanEnterprise   = "enterprise"

	SubscriptionActive    = "active"
	SubscriptionInactive  = "inactive"
	SubscriptionSuspended = "suspended"
)

// StarterFeatures is the feature set a tenant gets on the free plan.
var StarterFeatures = []string{"case_management", "basic_reporting"}

// Tenant is a law firm. Tenants are never hard-deleted.
type Tenant struct {
	ID                    uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name                  string         `gorm:"size:100;not null" json:"name"`
	Slug                  string         `gorm:"size:120;not null;uniqueIndex:idx_tenants_slug" json:"slug"`
	Email                 string         `gorm:"size:255;not null;uniqueIndex:idx_tenants_email" json:"email"`
	SubscriptionPlan      string         `gorm:"size:20;not null" json:"subscription_plan"`
	SubscriptionStatus    string         `gorm:"size:20;not null" json:"subscription_status"`
	SubscriptionExpiresAt *time.Time     `json:"subscription_expires_at,omitempty"`
	Timezone              string         `gorm:"size:64;not null" json:"timezone"`
	Language              string         `gorm:"size:10;not null" json:"language"`
	Features              datatypes.JSON `json:"features"`
	Logo                  string         `gorm:"size:500" json:"logo,omitempty"`
	Website               string         `gorm:"size:500" json:"website,omitempty"`
	IsActive              bool           `gorm:"not null" json:"is_active"`
	CreatedAt             time.Time      `json:"created_at"`
	UpdatedAt             time.Time      `json:"updated_at"`
}

func (t *Tenant) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
