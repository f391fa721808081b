package credentials

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/dmitrijs2005/linkfolio/internal/common"
	"github.com/dmitrijs2005/linkfolio/internal/server/auth"
)

type Service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

func NewService(repo Repository, hasher auth.PasswordHasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

func (s *Service) checkUsername(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// VerifyLogin checks the username/password pair against the stored
// credential. Every failure mode, including a missing credential file, comes
// back as ErrorUnauthorized so callers cannot probe which half was wrong.
func (s *Service) VerifyLogin(ctx context.Context, username, password string) error {
	cred, err := s.repo.Read(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return common.ErrorInternal
	}

	if !s.checkUsername(cred.Username, username) {
		return common.ErrorUnauthorized
	}
	if !s.hasher.Verify(cred.PasswordHash, password) {
		return common.ErrorUnauthorized
	}

	return nil
}

// RotatePassword replaces the stored hash after verifying the current
// password. The username is left unchanged.
func (s *Service) RotatePassword(ctx context.Context, currentPassword, newPassword string) error {
	cred, err := s.repo.Read(ctx)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthorized
		}
		return common.ErrorInternal
	}

	if !s.hasher.Verify(cred.PasswordHash, currentPassword) {
		return common.ErrorUnauthorized
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return common.ErrorInternal
	}

	cred.PasswordHash = hash
	if err := s.repo.Write(ctx, cred); err != nil {
		return common.ErrorInternal
	}

	return nil
}
