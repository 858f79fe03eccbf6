package tenant

import (
	"errors"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/token"
	"github.com/gofiber/fiber/v2"
)

const (
	identityKey = "identity"
	scopeKey    = "tenant_scope"
)

var (
	ErrUnauthenticated = errors.New("user not authenticated")
	ErrNoTenant        = errors.New("no tenant in request scope")
)

// SetIdentity attaches the verified caller to the request.
func SetIdentity(c *fiber.Ctx, id token.Identity) {
	c.Locals(identityKey, id)
}

// GetIdentity returns the identity attached by the auth middleware.
func GetIdentity(c *fiber.Ctx) (token.Identity, error) {
	id, ok := c.Locals(identityKey).(token.Identity)
	if !ok {
		return token.Identity{}, ErrUnauthenticated
	}
	return id, nil
}

func setScope(c *fiber.Ctx, s Scope) {
	c.Locals(scopeKey, s)
}

// ScopeFrom returns the tenant scope attached by the isolation middleware.
// Handlers must build every query on a Scoped Resource from it.
func ScopeFrom(c *fiber.Ctx) (Scope, error) {
	s, ok := c.Locals(scopeKey).(Scope)
	if !ok {
		return Scope{}, ErrNoTenant
	}
	return s, nil
}

// Bind derives the request scope from the identity already on the request.
func Bind(c *fiber.Ctx) (Scope, error) {
	id, err := GetIdentity(c)
	if err != nil {
		return Scope{}, err
	}
	s, err := NewScope(id)
	if err != nil {
		return Scope{}, err
	}
	setScope(c, s)
	return s, nil
}
