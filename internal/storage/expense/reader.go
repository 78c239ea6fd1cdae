package expense

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/prefin/internal/reconcile"
	"github.com/carson-networks/prefin/internal/storage/sqlconfig"
)

type Reader struct {
	exec bob.Executor
}

var _ IExpenseReader = (*Reader)(nil)

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

func (r *Reader) FindByID(ctx context.Context, id int64) (*Expense, error) {
	return r.findOne(ctx, sm.Where(psql.Quote("id").EQ(psql.Arg(id))))
}

func (r *Reader) findOne(ctx context.Context, queryMods ...bob.Mod[*dialect.SelectQuery]) (*Expense, error) {
	queryMods = append([]bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
	}, queryMods...)

	row, err := bob.One(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Expense]())
	if err != nil {
		return nil, sqlconfig.TranslateError(err, "expense")
	}
	return &row, nil
}

// List returns the user's expenses matching filter, newest first. The month
// filter selects dates inside that calendar month.
func (r *Reader) List(ctx context.Context, filter *ExpenseFilter) ([]*Expense, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(columns...),
		sm.From(tableName),
		sm.Where(psql.Quote("user_id").EQ(psql.Arg(filter.UserID))),
	}
	if filter.Category != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("category").EQ(psql.Arg(string(*filter.Category)))))
	}
	if filter.Month != "" {
		start, end, err := reconcile.MonthBounds(filter.Month)
		if err != nil {
			return nil, err
		}
		queryMods = append(queryMods,
			sm.Where(psql.Quote("spent_on").GTE(psql.Arg(start.Format(reconcile.DateLayout)))),
			sm.Where(psql.Quote("spent_on").LT(psql.Arg(end.Format(reconcile.DateLayout)))),
		)
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("spent_on")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	rows, err := bob.All(ctx, r.exec, psql.Select(queryMods...), scan.StructMapper[Expense]())
	if err != nil {
		return nil, sqlconfig.TranslateError(err, "expenses")
	}

	result := make([]*Expense, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
