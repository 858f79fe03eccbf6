package dto

import (
	"strings"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/google/uuid"
)

const MinPasswordLength = 6

type SignupRequest struct {
	TenantName string `json:"tenantName"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// Normalize trims names and lowercases the email, matching how both are stored.
func (r *SignupRequest) Normalize() {
	r.TenantName = strings.TrimSpace(r.TenantName)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *SignupRequest) Validate() error {
	var v Validator
	v.Length("tenantName", r.TenantName, 2, 100)
	v.Length("firstName", r.FirstName, 2, 50)
	v.Length("lastName", r.LastName, 2, 50)
	v.Email("email", r.Email)
	if v.Required("password", r.Password) && len(r.Password) < MinPasswordLength {
		v.Add("password", "must be at least %d characters", MinPasswordLength)
	}
	return v.Err()
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

func (r *LoginRequest) Validate() error {
	var v Validator
	v.Email("email", r.Email)
	v.Required("password", r.Password)
	return v.Err()
}

type TenantSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}

type UserSummary struct {
	ID        uuid.UUID   `json:"id"`
	FirstName string      `json:"firstName"`
	LastName  string      `json:"lastName"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	Avatar    string      `json:"avatar,omitempty"`
}

type AuthResponse struct {
	Tenant TenantSummary `json:"tenant"`
	User   UserSummary   `json:"user"`
	Token  string        `json:"token,omitempty"`
}

func NewTenantSummary(t *models.Tenant) TenantSummary {
	return TenantSummary{ID: t.ID, Name: t.Name, Slug: t.Slug}
}

// NewUserSummary never carries the password hash.
func NewUserSummary(u *models.User) UserSummary {
	return UserSummary{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.Avatar,
	}
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int64 `json:"pages"`
}

func NewPagination(total int64, page, limit int) Pagination {
	pages := int64(0)
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}

type ListResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}
