package users

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/dmitrijs2005/linkfolio/internal/common"
	"github.com/dmitrijs2005/linkfolio/internal/server/auth"
	"github.com/dmitrijs2005/linkfolio/internal/server/config"
)

type Service struct {
	repo          Repository
	hasher        auth.PasswordHasher
	jwtSecret     []byte
	tokenValidity time.Duration
}

func NewService(repo Repository, hasher auth.PasswordHasher, cfg *config.Config) *Service {
	return &Service{
		repo:          repo,
		hasher:        hasher,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenValidity: cfg.TokenValidityDuration,
	}
}

func validateRegistration(username, email, password, name string) error {
	if len(strings.TrimSpace(username)) < 3 {
		return fmt.Errorf("%w: username must be at least 3 characters", common.ErrorValidation)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", common.ErrorValidation)
	}
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is required", common.ErrorValidation)
	}
	return nil
}

// Register creates a user record and returns it together with a fresh
// session token. The email must not be taken already.
func (s *Service) Register(ctx context.Context, username, email, password, name string) (*User, string, error) {
	if err := validateRegistration(username, email, password, name); err != nil {
		return nil, "", err
	}

	email = strings.ToLower(strings.TrimSpace(email))

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	user, err := s.repo.Create(ctx, CreateParams{
		Username: strings.TrimSpace(username),
		Email:    email,
		Name:     strings.TrimSpace(name),
		// bio and avatar start empty, the owner fills them in later
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, "", common.ErrorAlreadyExists
		}
		return nil, "", fmt.Errorf("error creating user: %w", err)
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

// Login verifies the email/password pair and issues a session token. Any
// mismatch, including an unknown email, comes back as ErrorUnauthorized so
// the caller cannot tell which half of the pair was wrong.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	user, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, "", common.ErrorUnauthorized
		}
		return nil, "", common.ErrorInternal
	}

	if !s.hasher.Verify(user.PasswordHash, password) {
		return nil, "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(user.ID, s.jwtSecret, s.tokenValidity)
	if err != nil {
		return nil, "", common.ErrorInternal
	}

	return user, token, nil
}

func (s *Service) Get(ctx context.Context, id string) (*User, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) GetByUsername(ctx context.Context, username string) (*User, error) {
	return s.repo.GetByUsername(ctx, username)
}
