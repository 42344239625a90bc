package ports

import "github.com/lia-nails/salon-system/internal/core/domain"

// PasswordHasher is the one-way salted hashing collaborator used by the
// auth flows. Compare must run in constant time with respect to the hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Compare(hash, plaintext string) error
}

// TokenIssuer signs a session claim set for a user and verifies presented
// tokens. Verify reports expiry and tampering as distinct kinds:
// domain.ErrTokenExpired vs domain.ErrTokenInvalid.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*domain.Principal, error)
}
