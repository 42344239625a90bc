package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lia-nails/salon-system/internal/core/domain"
	"github.com/lia-nails/salon-system/internal/core/ports"
)

// dummyHash is compared against on the unknown-email login path so the two
// failure branches cost roughly the same and stay indistinguishable.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements account registration and login.
type AuthService struct {
	repo   ports.AuthRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	policy domain.PasswordPolicy
	log    zerolog.Logger
}

func NewAuthService(
	repo ports.AuthRepository,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	policy domain.PasswordPolicy,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, policy: policy, log: log}
}

// Register creates a new account. Every invariant is checked before the
// password is hashed or anything is written:
//   - the normalized email must be unused,
//   - staff accounts must reference an employee, admin accounts must not,
//   - the password must satisfy the complexity policy.
func (s *AuthService) Register(ctx context.Context, email, password, role, employeeID string) (*domain.User, error) {
	email = normalizeEmail(email)

	switch _, err := s.repo.FindByEmail(ctx, email); {
	case err == nil:
		return nil, domain.ErrEmailInUse
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("check email uniqueness: %w", err)
	}

	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	if role == domain.RoleStaff && employeeID == "" {
		return nil, domain.ErrEmployeeRefRequired
	}
	if role == domain.RoleAdmin && employeeID != "" {
		return nil, domain.ErrEmployeeRefForbidden
	}

	if err := s.policy.Validate(password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		EmployeeID:   employeeID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrEmailInUse) {
			// Lost a check-then-insert race; the unique index had the last word.
			return nil, domain.ErrEmailInUse
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info().Str("user_id", created.ID).Str("role", created.Role).Msg("account registered")
	return created, nil
}

// Login verifies credentials and issues a session token. Unknown email and
// wrong password take the same exit so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = normalizeEmail(email)

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			_ = s.hasher.Compare(dummyHash, password)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find account: %w", err)
	}

	if s.hasher.Compare(user.PasswordHash, password) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	return token, user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
