package actions

import (
	"context"
	"strings"

	"github.com/carson-networks/prefin/internal/auth"
	"github.com/carson-networks/prefin/internal/storage"
	"github.com/carson-networks/prefin/internal/storage/user"
)

// UpdateUser changes the profile fields that are non-empty. A changed gender
// re-derives the avatar unless Avatar is also given.
type UpdateUser struct {
	UserID   int64
	Username string
	Password string
	Gender   string
	Avatar   string

	User *user.User
}

func (u *UpdateUser) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Users.FindByIDForUpdate(ctx, u.UserID)
	if err != nil {
		return err
	}

	if username := strings.TrimSpace(u.Username); username != "" {
		existing.Username = username
	}
	if u.Password != "" {
		hash, err := auth.HashPassword(u.Password)
		if err != nil {
			return err
		}
		existing.PasswordHash = hash
	}
	if u.Gender != "" {
		gender, err := auth.ParseGender(u.Gender)
		if err != nil {
			return err
		}
		if gender != existing.Gender {
			existing.Gender = gender
			existing.Avatar = auth.AvatarForGender(gender)
		}
	}
	if avatar := strings.TrimSpace(u.Avatar); avatar != "" {
		existing.Avatar = avatar
	}

	updated, err := writer.Users.Update(ctx, existing)
	if err != nil {
		return err
	}

	u.User = updated
	return nil
}
