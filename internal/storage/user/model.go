package user

import (
	"context"
	"time"

	"github.com/carson-networks/prefin/internal/auth"
)

const tableName = "users"

// emailConstraint is the unique constraint on users.email.
const emailConstraint = "users_email_key"

var columns = []any{
	"id",
	"email",
	"username",
	"password_hash",
	"gender",
	"avatar",
	"created_at",
	"updated_at",
}

// User represents a users row. PasswordHash never leaves the server.
type User struct {
	ID           int64       `db:"id"`
	Email        string      `db:"email"`
	Username     string      `db:"username"`
	PasswordHash string      `db:"password_hash"`
	Gender       auth.Gender `db:"gender"`
	Avatar       string      `db:"avatar"`
	CreatedAt    time.Time   `db:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at"`
}

// UserCreate is the input for registering a user.
type UserCreate struct {
	Email        string
	Username     string
	PasswordHash string
	Gender       auth.Gender
	Avatar       string
}

// IUserReader defines read access to users.
type IUserReader interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// IUserWriter defines transactional write access to users.
type IUserWriter interface {
	IUserReader
	FindByIDForUpdate(ctx context.Context, id int64) (*User, error)
	Insert(ctx context.Context, create *UserCreate) (*User, error)
	Update(ctx context.Context, user *User) (*User, error)
}
