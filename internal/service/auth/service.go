package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jwalitptl/healthtrack-api/internal/model"
	"github.com/jwalitptl/healthtrack-api/internal/repository"
	"github.com/jwalitptl/healthtrack-api/pkg/auth"
	apperrors "github.com/jwalitptl/healthtrack-api/pkg/errors"
	"github.com/jwalitptl/healthtrack-api/pkg/metrics"
)

const bcryptCost = 12

// SessionRevoker tracks logged-out session tokens until they expire.
// Implemented by session.Revoker.
type SessionRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type Service struct {
	accountRepo repository.AccountRepository
	jwtSvc      auth.JWTService
	revoker     SessionRevoker
	metrics     *metrics.Metrics
}

func NewService(accountRepo repository.AccountRepository, jwtSvc auth.JWTService,
	revoker SessionRevoker, m *metrics.Metrics) *Service {
	return &Service{
		accountRepo: accountRepo,
		jwtSvc:      jwtSvc,
		revoker:     revoker,
		metrics:     m,
	}
}

// Register creates a new account. Usernames are case-sensitive and
// taken verbatim; a taken username is reported without writing. The
// password is hashed before storage.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.Account, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.Validation("username must not be blank", nil)
	}

	existing, err := s.accountRepo.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if existing != nil {
		return nil, apperrors.Conflict("username already exists", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &model.Account{
		Username:     username,
		PasswordHash: string(hashed),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
	}

	// The existence check above races against a concurrent registration
	// from another client; the accounts key constraint settles the loser
	// with the same conflict error.
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Login succeeds iff the account exists and the presented password
// matches the registered one exactly. Unknown username and wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*model.SessionResponse, error) {
	account, err := s.accountRepo.Get(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}
	if account == nil {
		return nil, apperrors.NewUnauthorized("invalid credentials", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials", nil)
	}

	token, err := s.jwtSvc.GenerateSessionToken(account.Username, account.FirstName)
	if err != nil {
		return nil, fmt.Errorf("failed to generate session token: %w", err)
	}

	if s.metrics != nil {
		s.metrics.SessionsIssued.Inc()
	}

	return &model.SessionResponse{
		Token:     token,
		Username:  account.Username,
		FirstName: account.FirstName,
		LastName:  account.LastName,
	}, nil
}

// Logout revokes the presented session token for the remainder of its
// lifetime. A revoked or expired token simply ends the session.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.jwtSvc.ValidateSessionToken(token)
	if err != nil {
		return nil // session already ended
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return fmt.Errorf("failed to revoke session: %w", err)
	}

	if s.metrics != nil {
		s.metrics.SessionsRevoked.Inc()
	}

	return nil
}

// ValidateSession checks the token signature, expiry and revocation
// state, returning the session claims for the request context.
func (s *Service) ValidateSession(ctx context.Context, token string) (*auth.SessionClaims, error) {
	claims, err := s.jwtSvc.ValidateSessionToken(token)
	if err != nil {
		return nil, apperrors.Unauthorized(err)
	}

	revoked, err := s.revoker.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if revoked {
		return nil, apperrors.Unauthorized(fmt.Errorf("session has been logged out"))
	}

	return claims, nil
}
