package user

import (
	"context"
	"strings"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/prefin/internal/storage/sqlconfig"
)

type Reader struct {
	exec bob.Executor
}

var _ IUserReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*User, error) {
	return r.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

// FindByEmail looks a user up by email. Emails are stored lower-cased.
func (r *Reader) FindByEmail(ctx context.Context, email string) (*User, error) {
	return r.findOne(ctx, sm.Where(psql.Quote("email").EQ(psql.Arg(NormalizeEmail(email)))))
}

func (r *Reader) findOne(ctx context.Context, queryMods ...bob.Mod[*dialect.SelectQuery]) (*User, error) {
	queryMods = append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
	}, queryMods...)

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[User]())
	if err != nil {
		return nil, sqlconfig.TranslateError(err, "user")
	}
	return &row, nil
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
