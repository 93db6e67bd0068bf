package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/accesskeep/user-management-api/internal/api/metrics"
	"github.com/accesskeep/user-management-api/internal/core/domain"
	"github.com/accesskeep/user-management-api/internal/core/ports"
)

// LoginThrottle limits repeated failed logins per email (Redis-backed).
type LoginThrottle interface {
	TooManyAttempts(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService implements credential verification and token issuance.
type AuthService struct {
	repo      ports.AccountRepository
	throttle  LoginThrottle
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

// NewAuthService builds an AuthService. A nil throttle disables lockout.
func NewAuthService(repo ports.AccountRepository, throttle LoginThrottle, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * time.Hour
	}
	return &AuthService{repo: repo, throttle: throttle, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Login verifies the credentials and returns a signed bearer token alongside
// the account. Unknown email and wrong password collapse into the same
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrMissingFields
	}

	if s.throttle != nil {
		locked, err := s.throttle.TooManyAttempts(ctx, email)
		if err != nil {
			// Lockout is best effort: a Redis outage must not block logins.
			s.logger.Warn().Err(err).Msg("lockout check failed, proceeding")
		} else if locked {
			metrics.LoginsTotal.WithLabelValues("locked").Inc()
			return "", nil, domain.ErrTooManyAttempts
		}
	}

	account, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	if s.throttle != nil {
		_ = s.throttle.Reset(ctx, email)
	}

	token, err := s.generateToken(account)
	if err != nil {
		return "", nil, err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.logger.Info().Str("account_id", account.ID).Str("role", string(account.Role)).Msg("login succeeded")

	return token, account, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	if s.throttle == nil {
		return
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("failed to record login failure")
	}
}

func (s *AuthService) generateToken(account *domain.Account) (string, error) {
	claims := jwt.MapClaims{
		"id":   account.ID,
		"role": string(account.Role),
		"exp":  time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
