package user

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/storage/sqlconfig"
)

type Writer struct {
	Reader
}

var _ IUserWriter = (*Writer)(nil)

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{
		Reader: Reader{
			exec: exec,
		},
	}
}

func (w *Writer) FindByIDForUpdate(ctx context.Context, id int64) (*User, error) {
	return w.findOne(ctx,
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
}

// Insert creates a user. A taken email surfaces as apperr.ErrDuplicateEmail.
func (w *Writer) Insert(ctx context.Context, create *UserCreate) (*User, error) {
	query := psql.Insert(
		im.Into(tableName, "email", "username", "password_hash", "gender", "avatar"),
		im.Values(psql.Arg(
			NormalizeEmail(create.Email),
			create.Username,
			create.PasswordHash,
			string(create.Gender),
			create.Avatar,
		)),
		im.Returning(columns...),
	)

	row, err := bob.One(ctx, w.exec, query, scan.StructMapper[User]())
	if err != nil {
		return nil, translateInsertError(err)
	}
	return &row, nil
}

func translateInsertError(err error) error {
	if sqlconfig.IsUniqueViolation(err) && sqlconfig.ConstraintName(err) == emailConstraint {
		return apperr.ErrDuplicateEmail
	}
	return sqlconfig.TranslateError(err, "user")
}

// Update writes the mutable profile columns of user.
func (w *Writer) Update(ctx context.Context, user *User) (*User, error) {
	query := psql.Update(
		um.Table(tableName),
		um.SetCol("username").ToArg(user.Username),
		um.SetCol("password_hash").ToArg(user.PasswordHash),
		um.SetCol("gender").ToArg(string(user.Gender)),
		um.SetCol("avatar").ToArg(user.Avatar),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
		um.Where(psql.Quote("id").EQ(psql.Arg(user.ID))),
		um.Returning(columns...),
	)

	row, err := bob.One(ctx, w.exec, query, scan.StructMapper[User]())
	if err != nil {
		return nil, sqlconfig.TranslateError(err, "user")
	}
	return &row, nil
}
