package user

import (
	"context"
	"time"

	"github.com/carson-networks/prefin/internal/service"
)

// User is the API response model for a user profile.
type User struct {
	ID        int64     `json:"id" doc:"User id"`
	Email     string    `json:"email" doc:"Login email"`
	Username  string    `json:"username" doc:"Display name"`
	Gender    string    `json:"gender" doc:"male, female or other"`
	Avatar    string    `json:"avatar" doc:"Avatar image URL"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toUser(u *service.User) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Gender:    string(u.Gender),
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// userService is the read side these handlers need.
type userService interface {
	Authenticate(ctx context.Context, email, password string) (*service.User, error)
	GetUser(ctx context.Context, id int64) (*service.User, error)
}

type tokenIssuer interface {
	Issue(userID int64) (string, error)
}
