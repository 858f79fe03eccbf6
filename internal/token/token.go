// Package token issues and verifies the signed bearer tokens that carry a
// caller's identity.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/advocate-backend/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken covers every verification failure. Callers must not learn
// whether the token was malformed, expired or badly signed.
var ErrInvalidToken = errors.New("invalid or expired token")

// Identity is the authenticated caller. It is rebuilt from the token on every
// request and never mutated.
type Identity struct {
	UserID   uuid.UUID   `json:"user_id"`
	TenantID uuid.UUID   `json:"tenant_id"`
	Role     models.Role `json:"role"`
}

// Claims is the token payload: the three identity fields plus expiry.
type Claims struct {
	UserID   string `json:"userId"`
	TenantID string `json:"tenantId"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Identity decodes and checks the identity fields.
func (c *Claims) Identity() (Identity, error) {
	userID, err := uuid.Parse(c.UserID)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	tenantID, err := uuid.Parse(c.TenantID)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	role := models.Role(c.Role)
	if !role.Valid() {
		return Identity{}, ErrInvalidToken
	}
	return Identity{UserID: userID, TenantID: tenantID, Role: role}, nil
}

type Service struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewService(secret string, expiry time.Duration) *Service {
	return &Service{
		secret: []byte(secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue signs a token for id that expires after the configured lifetime.
func (s *Service) Issue(id Identity) (string, error) {
	if id.UserID == uuid.Nil || id.TenantID == uuid.Nil || !id.Role.Valid() {
		return "", errors.New("incomplete identity")
	}

	now := s.now()
	claims := Claims{
		UserID:   id.UserID.String(),
		TenantID: id.TenantID.String(),
		Role:     id.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the embedded identity.
func (s *Service) Verify(raw string) (Identity, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, s.Keyfunc(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return FromParsed(parsed)
}

// FromParsed finishes verification of a token parsed with Keyfunc elsewhere
// (the HTTP middleware parses before handing the token over).
func FromParsed(t *jwt.Token) (Identity, error) {
	if t == nil || !t.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := t.Claims.(*Claims)
	if !ok || claims.ExpiresAt == nil {
		return Identity{}, ErrInvalidToken
	}
	return claims.Identity()
}

// Keyfunc returns the HMAC key, rejecting any other signing method.
func (s *Service) Keyfunc() jwt.Keyfunc {
	return func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}
}
