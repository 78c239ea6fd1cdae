package service

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/auth"
	"github.com/carson-networks/prefin/internal/storage"
	"github.com/carson-networks/prefin/internal/storage/user"
)

// UserService handles login and profile reads.
type UserService struct {
	storage *storage.Reader

	dummyOnce sync.Once
	dummyHash string
}

// NewUserService creates a new UserService.
func NewUserService(reader *storage.Reader) *UserService {
	return &UserService{storage: reader}
}

// Authenticate checks a login. Unknown email and wrong password both return
// apperr.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*User, error) {
	row, err := s.storage.Users.FindByEmail(ctx, user.NormalizeEmail(email))
	if errors.Is(err, apperr.ErrNotFound) {
		// Spend the same bcrypt work as a real comparison.
		auth.CheckPassword(s.dummy(), password)
		return nil, apperr.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(row.PasswordHash, password) {
		return nil, apperr.ErrInvalidCredentials
	}
	return UserFromStorage(row), nil
}

// GetUser returns the profile of id.
func (s *UserService) GetUser(ctx context.Context, id int64) (*User, error) {
	row, err := s.storage.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return UserFromStorage(row), nil
}

func (s *UserService) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = auth.HashPassword("not-a-real-password")
	})
	return s.dummyHash
}
