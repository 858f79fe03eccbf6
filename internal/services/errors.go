package services

import "errors"

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrTenantEmailTaken   = errors.New("tenant email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountInactive    = errors.New("user account is inactive")
	ErrUserNotFound       = errors.New("user not found")
	ErrTenantNotFound     = errors.New("tenant not found")
	ErrForbidden          = errors.New("insufficient permissions")

	// ErrNotFound is returned for scoped resources that are absent or belong
	// to another tenant; the two cases are indistinguishable to callers.
	ErrNotFound = errors.New("resource not found")

	ErrCaseNumberTaken    = errors.New("case number already exists for this tenant")
	ErrArticleNumberTaken = errors.New("article number already exists in this library")
)

type notFoundError struct {
	what string
}

func (e notFoundError) Error() string { return e.what + " not found" }

func (e notFoundError) Is(target error) bool { return target == ErrNotFound }

// NotFound names the missing resource while still matching ErrNotFound.
func NotFound(what string) error {
	return notFoundError{what: what}
}
