package ports

import (
	"context"

	"github.com/accesskeep/user-management-api/internal/core/domain"
)

// CreateAccountInput carries the data needed to create an admin or user.
// The role and creator are derived from the operation and caller, never
// from the payload.
type CreateAccountInput struct {
	Username string
	Email    string
	Password string
}

// UpdateAccountInput carries the mutable fields of an account. Password is
// optional; when empty the stored hash is kept.
type UpdateAccountInput struct {
	Username string
	Email    string
	Password string
}

// AccountPage is one page of a paginated account listing.
type AccountPage struct {
	Items       []*domain.Account
	Total       int64
	TotalPages  int
	CurrentPage int
}

// AccountService defines the role-gated management operations. Every method
// takes the authenticated caller and enforces the role hierarchy and
// ownership scope before touching the store.
type AccountService interface {
	// CreateAdmin creates an admin account owned by the superadmin caller.
	CreateAdmin(ctx context.Context, caller *domain.Account, in CreateAccountInput) (*domain.Account, error)
	// CreateUser creates a user account owned by the admin caller.
	CreateUser(ctx context.Context, caller *domain.Account, in CreateAccountInput) (*domain.Account, error)
	// ListMyUsers returns every account created by the admin caller.
	ListMyUsers(ctx context.Context, caller *domain.Account) ([]*domain.Account, error)
	// ListAccounts returns a page of accounts: all of them for a superadmin
	// caller, only the caller's own for an admin.
	ListAccounts(ctx context.Context, caller *domain.Account, page, limit int) (*AccountPage, error)
	// ListAdmins returns every admin account (superadmin only).
	ListAdmins(ctx context.Context, caller *domain.Account) ([]*domain.Account, error)
	// UpdateAccount updates the account matching {targetID, targetRole}.
	// One operation serves both the update-admin and update-user routes;
	// only the target role differs.
	UpdateAccount(ctx context.Context, caller *domain.Account, targetID string, targetRole domain.Role, in UpdateAccountInput) (*domain.Account, error)
	// DeleteAdmin hard-deletes the admin with the given id. Accounts the
	// admin created are left in place with a dangling created_by.
	DeleteAdmin(ctx context.Context, caller *domain.Account, targetID string) error
}
