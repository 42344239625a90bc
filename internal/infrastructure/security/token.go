// Package security implements the credential primitives used by the auth
// flows: bcrypt password hashing and HS256 session tokens.
package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/lia-nails/salon-system/internal/core/domain"
)

// sessionClaims is the claim set embedded in issued access tokens.
type sessionClaims struct {
	jwt.RegisteredClaims
	Email      string `json:"email"`
	Role       string `json:"role"`
	EmployeeID string `json:"employee_id,omitempty"`
}

// TokenIssuer signs and verifies session tokens. The signing algorithm is
// pinned to HS256; tokens presenting any other alg are rejected.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenIssuer creates a TokenIssuer. A non-positive ttl defaults to one hour.
func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a claim set bound to the user's identity and role.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := t.now().UTC()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		Email:      user.Email,
		Role:       user.Role,
		EmployeeID: user.EmployeeID,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature and expiry and returns the principal carried by
// the token. Expired tokens yield domain.ErrTokenExpired; every other
// verification failure yields domain.ErrTokenInvalid.
func (t *TokenIssuer) Verify(token string) (*domain.Principal, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(tok *jwt.Token) (interface{}, error) {
		if tok.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return t.now() }))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Principal{
		UserID:     claims.Subject,
		Email:      claims.Email,
		Role:       claims.Role,
		EmployeeID: claims.EmployeeID,
	}, nil
}
