package domain

import (
	"errors"
	"fmt"
	"unicode"
)

var ErrWeakPassword = errors.New("password does not meet complexity policy")

// PasswordPolicy is the configurable complexity predicate applied at
// registration. All class requirements are on by default; deployments can
// relax them through configuration without touching the flows.
type PasswordPolicy struct {
	MinLength     int
	RequireLower  bool
	RequireUpper  bool
	RequireDigit  bool
	RequireSymbol bool
}

// DefaultPasswordPolicy requires 8+ characters drawn from all four classes.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{
		MinLength:     8,
		RequireLower:  true,
		RequireUpper:  true,
		RequireDigit:  true,
		RequireSymbol: true,
	}
}

// Validate checks password against the policy. The returned error wraps
// ErrWeakPassword so callers can classify it without parsing the message.
func (p PasswordPolicy) Validate(password string) error {
	if len(password) < p.MinLength {
		return fmt.Errorf("%w: at least %d characters required", ErrWeakPassword, p.MinLength)
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSymbol = true
		}
	}

	switch {
	case p.RequireLower && !hasLower:
		return fmt.Errorf("%w: lowercase letter required", ErrWeakPassword)
	case p.RequireUpper && !hasUpper:
		return fmt.Errorf("%w: uppercase letter required", ErrWeakPassword)
	case p.RequireDigit && !hasDigit:
		return fmt.Errorf("%w: digit required", ErrWeakPassword)
	case p.RequireSymbol && !hasSymbol:
		return fmt.Errorf("%w: symbol required", ErrWeakPassword)
	}
	return nil
}
