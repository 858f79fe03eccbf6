package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User belongs to exactly one tenant. Email is unique across the system.
type User struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID      uuid.UUID  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	FirstName     string     `gorm:"size:50;not null" json:"first_name"`
	LastName      string     `gorm:"size:50;not null" json:"last_name"`
	Email         string     `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	Password      string     `gorm:"not null" json:"-"`
	Role          Role       `gorm:"size:20;not null;index" json:"role"`
	Avatar        string     `gorm:"size:500" json:"avatar,omitempty"`
	Phone         string     `gorm:"size:30" json:"phone,omitempty"`
	IsActive      bool       `gorm:"not null" json:"is_active"`
	EmailVerified bool       `gorm:"not null" json:"email_verified"`
	LastLogin     *time.Time `json:"last_login,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
