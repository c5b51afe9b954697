package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/kunalverma25/gomart/internal/auth"
	"github.com/kunalverma25/gomart/internal/logger"
	"github.com/kunalverma25/gomart/internal/models/user"
	"github.com/kunalverma25/gomart/internal/storage"
)

// ErrInvalidCredentials covers both unknown email and wrong password. The
// two cases are deliberately indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	users  storage.UserStore
	tokens *auth.TokenManager
	log    *logger.Logger

	// dummyHash is compared against on the unknown-email login path so that
	// path costs roughly the same as a real password check.
	dummyHash string
}

func NewAuthService(users storage.UserStore, tokens *auth.TokenManager) (*AuthService, error) {
	dummyHash, err := auth.HashPassword("timing-equalizer")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare auth service: %w", err)
	}

	return &AuthService{
		users:     users,
		tokens:    tokens,
		log:       logger.New("auth-service"),
		dummyHash: dummyHash,
	}, nil
}

// Register hashes the password and creates the user. A concurrent duplicate
// registration surfaces as storage.ErrDuplicateEmail from the store itself.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*user.User, error) {
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := s.users.Create(ctx, email, passwordHash, name)
	if err != nil {
		return nil, err
	}

	s.log.Info("User registered: %s", u.Email)
	return u, nil
}

// Login checks the credentials and issues a signed token on success.
func (s *AuthService) Login(ctx context.Context, email, password string) (*user.User, string, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			// Burn a hash comparison anyway so a missing account is not
			// observably faster than a wrong password.
			_ = auth.CheckPassword(s.dummyHash, password)
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := auth.CheckPassword(u.PasswordHash, password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, _, err := s.tokens.Issue(u.ID, u.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.log.Info("User logged in: %s", u.Email)
	return u, token, nil
}

// VerifyToken validates a presented token against the shared secret only.
// It never touches the user store, so it stays valid until expiry even if
// the account has since been deleted.
func (s *AuthService) VerifyToken(tokenString string) (*auth.Claims, error) {
	return s.tokens.Verify(tokenString)
}
