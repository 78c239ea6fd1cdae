package actions

import (
	"context"
	"errors"
	"strings"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/auth"
	"github.com/carson-networks/prefin/internal/storage"
	"github.com/carson-networks/prefin/internal/storage/user"
)

// RegisterUser creates an account with a hashed password and the default
// avatar for the chosen gender.
type RegisterUser struct {
	Email    string
	Username string
	Password string
	Gender   string

	User *user.User
}

func (r *RegisterUser) Perform(ctx context.Context, writer *storage.Writer) error {
	email := user.NormalizeEmail(r.Email)
	if email == "" || !strings.Contains(email, "@") {
		return apperr.Validation("a valid email is required")
	}
	username := strings.TrimSpace(r.Username)
	if username == "" {
		return apperr.Validation("username is required")
	}
	if r.Password == "" {
		return apperr.Validation("password is required")
	}
	gender, err := auth.ParseGender(r.Gender)
	if err != nil {
		return err
	}

	_, err = writer.Users.FindByEmail(ctx, email)
	if err == nil {
		return apperr.ErrDuplicateEmail
	}
	if !errors.Is(err, apperr.ErrNotFound) {
		return err
	}

	hash, err := auth.HashPassword(r.Password)
	if err != nil {
		return err
	}

	created, err := writer.Users.Insert(ctx, &user.UserCreate{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Gender:       gender,
		Avatar:       auth.AvatarForGender(gender),
	})
	if err != nil {
		return err
	}

	r.User = created
	return nil
}
