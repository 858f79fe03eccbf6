package dto

import (
	"fmt"
	"net/mail"
	"strings"
)

type ErrorResponse struct {
	Error   bool         `json:"error"`
	Message string       `json:"message"`
	Details []FieldError `json:"details,omitempty"`
}

// FieldError is one violated constraint on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation, not only the first.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator accumulates field errors for one request body.
type Validator struct {
	fields []FieldError
}

func (v *Validator) Add(field, format string, args ...interface{}) {
	v.fields = append(v.fields, FieldError{Field: field, Message: fmt.Sprintf(format, args...)})
}

func (v *Validator) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
		return false
	}
	return true
}

func (v *Validator) Length(field, value string, min, max int) {
	if !v.Required(field, value) {
		return
	}
	n := len([]rune(strings.TrimSpace(value)))
	if n < min {
		v.Add(field, "must be at least %d characters", min)
	}
	if max > 0 && n > max {
		v.Add(field, "must be at most %d characters", max)
	}
}

func (v *Validator) Email(field, value string) {
	if !v.Required(field, value) {
		return
	}
	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value || !strings.Contains(value[strings.LastIndex(value, "@"):], ".") {
		v.Add(field, "must be a valid email address")
	}
}

// OneOf checks value against allowed. Empty values are accepted; pair with
// Required when the field is mandatory.
func (v *Validator) OneOf(field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.Add(field, "must be one of %s", strings.Join(allowed, ", "))
}

func (v *Validator) NonNegative(field string, value float64) {
	if value < 0 {
		v.Add(field, "must not be negative")
	}
}

// Err returns nil when no field failed.
func (v *Validator) Err() error {
	if len(v.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: v.fields}
}
