package dto

import (
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
)

// UpdateTenantRequest changes only the fields that are non-empty.
type UpdateTenantRequest struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone"`
	Language string `json:"language"`
	Website  string `json:"website"`
	Logo     string `json:"logo"`
}

func (r *UpdateTenantRequest) Validate() error {
	var v Validator
	if r.Name != "" {
		v.Length("name", r.Name, 2, 100)
	}
	if r.Timezone != "" {
		if _, err := time.LoadLocation(r.Timezone); err != nil {
			v.Add("timezone", "must be an IANA time zone")
		}
	}
	if len(r.Language) > 10 {
		v.Add("language", "must be at most 10 characters")
	}
	return v.Err()
}

type SubscriptionResponse struct {
	Plan      string     `json:"plan"`
	Status    string     `json:"status"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Features  []string   `json:"features"`
}

type CreateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
}

func (r *CreateUserRequest) Validate() error {
	var v Validator
	v.Length("firstName", r.FirstName, 2, 50)
	v.Length("lastName", r.LastName, 2, 50)
	v.Email("email", r.Email)
	if v.Required("role", r.Role) {
		if _, err := models.ParseRole(r.Role); err != nil {
			v.Add("role", "must be one of %s", roleList())
		}
	}
	return v.Err()
}

// UpdateUserRequest uses pointers so omitted fields are left unchanged.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Avatar    *string `json:"avatar"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"isActive"`
}

func (r *UpdateUserRequest) Validate() error {
	var v Validator
	if r.FirstName != nil {
		v.Length("firstName", *r.FirstName, 2, 50)
	}
	if r.LastName != nil {
		v.Length("lastName", *r.LastName, 2, 50)
	}
	if r.Role != nil {
		if _, err := models.ParseRole(*r.Role); err != nil {
			v.Add("role", "must be one of %s", roleList())
		}
	}
	return v.Err()
}

// PrivilegedChange reports whether the update touches fields only managers may set.
func (r *UpdateUserRequest) PrivilegedChange() bool {
	return r.Role != nil || r.IsActive != nil
}

type CreatedUserResponse struct {
	User UserSummary `json:"user"`
	// Set only outside production; the owner otherwise hands it over out of band.
	TemporaryPassword string `json:"temporaryPassword,omitempty"`
}

func roleList() string {
	s := ""
	for i, r := range models.Roles() {
		if i > 0 {
			s += ", "
		}
		s += r.String()
	}
	return s
}
