package ports

import (
	"context"

	"github.com/accesskeep/user-management-api/internal/core/domain"
)

// ListAccountsFilter carries all query parameters for listing accounts.
type ListAccountsFilter struct {
	Role      domain.Role // optional: filter by role
	CreatedBy string      // empty = no filter (superadmin); non-empty = scoped to creator
	Page      int         // 1-based; ignored when Limit <= 0
	Limit     int         // max rows per page; <= 0 disables pagination
}

// AccountChange is the set of fields an update may touch. An empty
// PasswordHash leaves the stored hash untouched. Role and CreatedBy are
// deliberately absent: no operation may change them after creation.
type AccountChange struct {
	Username     string
	Email        string
	PasswordHash string
}

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByEmailAndCreator(ctx context.Context, email, createdBy string) (*domain.Account, error)
	// List returns a page of accounts matching filter and the total count.
	List(ctx context.Context, filter ListAccountsFilter) ([]*domain.Account, int64, error)
	// Update applies change to the account matching {id, role} and returns
	// the updated document, or domain.ErrAccountNotFound on zero matches.
	Update(ctx context.Context, id string, role domain.Role, change AccountChange) (*domain.Account, error)
	// Delete removes the account matching {id, role}, or returns
	// domain.ErrAccountNotFound when nothing matched.
	Delete(ctx context.Context, id string, role domain.Role) error
}
