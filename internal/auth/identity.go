// internal/auth/identity.go
package auth

import (
	"fmt"
	"sort"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/joao-vitor-prudente/personia/internal/domain"
)

// Identity is the caller's resolved tenant context. It is re-derived from
// the assertion on every request rather than cached, so revocation takes
// effect immediately.
type Identity struct {
	Email        string
	Organization Organization
}

type Organization struct {
	ID   string
	Role string
}

// User is the slice of identity a workflow carries across steps: workflow
// steps run outside the original request and cannot re-derive the caller.
type User struct {
	Email          string `json:"email"`
	OrganizationID string `json:"organization_id"`
}

func (i Identity) User() User {
	return User{Email: i.Email, OrganizationID: i.Organization.ID}
}

type Claims struct {
	Email         string            `json:"email"`
	Organizations map[string]string `json:"organizations"`
	jwt.RegisteredClaims
}

// IdentityParser validates identity assertions issued by the identity
// provider and resolves the caller's organization membership.
type IdentityParser struct {
	secret []byte
}

func NewIdentityParser(secret string) *IdentityParser {
	return &IdentityParser{secret: []byte(secret)}
}

// Parse validates the assertion and resolves the caller's organization. An
// assertion without an email or without any organization membership fails
// with domain.ErrMalformedIdentity.
func (p *IdentityParser) Parse(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	if claims.Email == "" {
		return nil, fmt.Errorf("%w: missing email", domain.ErrMalformedIdentity)
	}
	if len(claims.Organizations) == 0 {
		return nil, domain.ErrMalformedIdentity
	}

	// Callers belong to a single organization in practice; the smallest key
	// keeps resolution stable if more than one membership slips in.
	ids := make([]string, 0, len(claims.Organizations))
	for id := range claims.Organizations {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return &Identity{
		Email: claims.Email,
		Organization: Organization{
			ID:   ids[0],
			Role: claims.Organizations[ids[0]],
		},
	}, nil
}

// Generate issues an assertion for the given caller. Kept for tests and
// local tooling; production assertions come from the identity provider.
func (p *IdentityParser) Generate(email string, organizations map[string]string, expiry time.Duration) (string, error) {
	claims := Claims{
		Email:         email,
		Organizations: organizations,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}
