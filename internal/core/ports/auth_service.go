package ports

import (
	"context"

	"github.com/accesskeep/user-management-api/internal/core/domain"
)

// AuthService authenticates credentials and issues bearer tokens.
type AuthService interface {
	// Login verifies email/password and returns a signed token plus the
	// matching account. Unknown email and wrong password are both reported
	// as domain.ErrInvalidCredentials so the caller cannot tell which half
	// of the pair was wrong.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
}
