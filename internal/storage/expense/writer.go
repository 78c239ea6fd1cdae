package expense

import (
	"context"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/reconcile"
	"github.com/carson-networks/prefin/internal/storage/sqlconfig"
)

type Writer struct {
	Reader
}

var _ IExpenseWriter = (*Writer)(nil)

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{
		Reader: Reader{
			exec: exec,
		},
	}
}

func (w *Writer) FindByIDForUpdate(ctx context.Context, id int64) (*Expense, error) {
	return w.findOne(ctx,
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
}

func (w *Writer) Insert(ctx context.Context, create *ExpenseCreate) (*Expense, error) {
	query := psql.Insert(
		im.Into(tableName, "user_id", "budget_id", "category", "name", "amount", "spent_on"),
		im.Values(psql.Arg(
			create.UserID,
			create.BudgetID,
			string(create.Category),
			create.Name,
			create.Amount,
			create.Date.Format(reconcile.DateLayout),
		)),
		im.Returning(columns...),
	)

	row, err := bob.One(ctx, w.exec, query, scan.StructMapper[Expense]())
	if err != nil {
		return nil, sqlconfig.TranslateError(err, "expense")
	}
	return &row, nil
}

// Update writes amount, category, name and date. budget_id is left as it was.
func (w *Writer) Update(ctx context.Context, expense *Expense) (*Expense, error) {
	query := psql.Update(
		um.Table(tableName),
		um.SetCol("amount").ToArg(expense.Amount),
		um.SetCol("category").ToArg(string(expense.Category)),
		um.SetCol("name").ToArg(expense.Name),
		um.SetCol("spent_on").ToArg(expense.Date.Format(reconcile.DateLayout)),
		um.SetCol("updated_at").ToArg(time.Now().UTC()),
		um.Where(psql.Quote("id").EQ(psql.Arg(expense.ID))),
		um.Returning(columns...),
	)

	row, err := bob.One(ctx, w.exec, query, scan.StructMapper[Expense]())
	if err != nil {
		return nil, sqlconfig.TranslateError(err, "expense")
	}
	return &row, nil
}

func (w *Writer) Delete(ctx context.Context, id int64) error {
	query := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		dm.Returning("id"),
	)

	deleted, err := bob.All(ctx, w.exec, query, scan.SingleColumnMapper[int64])
	if err != nil {
		return sqlconfig.TranslateError(err, "expense")
	}
	if len(deleted) == 0 {
		return apperr.NotFound("expense")
	}
	return nil
}
