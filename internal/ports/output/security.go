package output

import (
	"time"

	"clubhouse/internal/domain/entities"
)

type PasswordHasher interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) bool
}

type TokenClaims struct {
	AdminID   string
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and verifies admin bearer tokens. Both take the caller's clock reading;
// Verify checks exp/iat against now and returns domain.ErrInvalidToken on any failure.
type TokenService interface {
	Issue(admin *entities.Admin, now time.Time) (string, time.Time, error)
	Verify(token string, now time.Time) (*TokenClaims, error)
}
