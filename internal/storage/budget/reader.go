package budget

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/prefin/internal/storage/sqlconfig"
)

type Reader struct {
	exec bob.Executor
}

var _ IBudgetReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByMonth(ctx context.Context, userID int64, month string) (*Budget, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("month").EQ(psql.Arg(month))),
	)

	row, err := bob.One(ctx, r.exec, query, scan.StructMapper[Budget]())
	if err != nil {
		return nil, sqlconfig.TranslateError(err, "budget")
	}
	return &row, nil
}

// ListByUser returns every budget of the user, newest month first.
func (r *Reader) ListByUser(ctx context.Context, userID int64) ([]*Budget, error) {
	query := psql.Select(
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		sm.OrderBy(psql.Quote("month")).Desc(),
	)

	rows, err := bob.All(ctx, r.exec, query, scan.StructMapper[Budget]())
	if err != nil {
		return nil, sqlconfig.TranslateError(err, "budgets")
	}

	result := make([]*Budget, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
