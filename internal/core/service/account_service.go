package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/accesskeep/user-management-api/internal/api/metrics"
	"github.com/accesskeep/user-management-api/internal/core/domain"
	"github.com/accesskeep/user-management-api/internal/core/ports"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// AccountService implements the role-gated management operations.
type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

// CreateAdmin creates an admin account owned by the superadmin caller.
func (s *AccountService) CreateAdmin(ctx context.Context, caller *domain.Account, in ports.CreateAccountInput) (*domain.Account, error) {
	return s.create(ctx, caller, in, domain.RoleAdmin)
}

// CreateUser creates a user account owned by the admin caller.
func (s *AccountService) CreateUser(ctx context.Context, caller *domain.Account, in ports.CreateAccountInput) (*domain.Account, error) {
	return s.create(ctx, caller, in, domain.RoleUser)
}

func (s *AccountService) create(ctx context.Context, caller *domain.Account, in ports.CreateAccountInput, role domain.Role) (*domain.Account, error) {
	if !caller.Role.CanManage(role) {
		return nil, domain.ErrForbidden
	}
	if in.Username == "" || in.Email == "" || in.Password == "" {
		return nil, domain.ErrMissingFields
	}

	// Uniqueness is scoped per creator. This check is not atomic with the
	// insert; the unique (email, created_by) index is the backstop and the
	// repository maps a late duplicate-key error to ErrEmailTaken.
	if _, err := s.repo.FindByEmailAndCreator(ctx, in.Email, caller.ID); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedBy:    caller.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	metrics.AccountsCreatedTotal.WithLabelValues(string(role)).Inc()
	s.logger.Info().
		Str("account_id", created.ID).
		Str("role", string(role)).
		Str("created_by", caller.ID).
		Msg("account created")

	return created, nil
}

// ListMyUsers returns every account created by the admin caller.
func (s *AccountService) ListMyUsers(ctx context.Context, caller *domain.Account) ([]*domain.Account, error) {
	if caller.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	accounts, _, err := s.repo.List(ctx, ports.ListAccountsFilter{CreatedBy: caller.ID})
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

// ListAccounts returns a page of accounts. A superadmin sees every account;
// an admin sees only accounts it created.
func (s *AccountService) ListAccounts(ctx context.Context, caller *domain.Account, page, limit int) (*ports.AccountPage, error) {
	if caller.Role != domain.RoleAdmin && caller.Role != domain.RoleSuperadmin {
		return nil, domain.ErrForbidden
	}

	if page < 1 {
		page = defaultPage
	}
	if limit < 1 {
		limit = defaultLimit
	}

	filter := ports.ListAccountsFilter{Page: page, Limit: limit}
	if caller.Role == domain.RoleAdmin {
		filter.CreatedBy = caller.ID
	}

	accounts, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ports.AccountPage{
		Items:       accounts,
		Total:       total,
		TotalPages:  int((total + int64(limit) - 1) / int64(limit)),
		CurrentPage: page,
	}, nil
}

// ListAdmins returns every admin account (superadmin only).
func (s *AccountService) ListAdmins(ctx context.Context, caller *domain.Account) ([]*domain.Account, error) {
	if caller.Role != domain.RoleSuperadmin {
		return nil, domain.ErrForbidden
	}

	admins, _, err := s.repo.List(ctx, ports.ListAccountsFilter{Role: domain.RoleAdmin})
	if err != nil {
		return nil, err
	}
	return admins, nil
}

// UpdateAccount updates username/email (and password, when provided) on the
// account matching {targetID, targetRole}. Role and created_by are not
// updatable; the input carries no such fields.
func (s *AccountService) UpdateAccount(ctx context.Context, caller *domain.Account, targetID string, targetRole domain.Role, in ports.UpdateAccountInput) (*domain.Account, error) {
	if !caller.Role.CanManage(targetRole) {
		return nil, domain.ErrForbidden
	}

	change := ports.AccountChange{Username: in.Username, Email: in.Email}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		change.PasswordHash = string(hash)
	}

	updated, err := s.repo.Update(ctx, targetID, targetRole, change)
	if err != nil {
		return nil, err
	}

	metrics.AccountsUpdatedTotal.WithLabelValues(string(targetRole)).Inc()
	s.logger.Info().
		Str("account_id", updated.ID).
		Str("role", string(targetRole)).
		Str("updated_by", caller.ID).
		Msg("account updated")

	return updated, nil
}

// DeleteAdmin hard-deletes the admin with the given id. Users the admin
// created are left in place with a dangling created_by reference.
func (s *AccountService) DeleteAdmin(ctx context.Context, caller *domain.Account, targetID string) error {
	if caller.Role != domain.RoleSuperadmin {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, targetID, domain.RoleAdmin); err != nil {
		return err
	}

	metrics.AccountsDeletedTotal.WithLabelValues(string(domain.RoleAdmin)).Inc()
	s.logger.Info().
		Str("account_id", targetID).
		Str("deleted_by", caller.ID).
		Msg("admin deleted")

	return nil
}
