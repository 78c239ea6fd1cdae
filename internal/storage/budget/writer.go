package budget

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/storage/sqlconfig"
)

type Writer struct {
	Reader
}

var _ IBudgetWriter = (*Writer)(nil)

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{
		Reader: Reader{
			exec: exec,
		},
	}
}

// upsertRow is a budgets row plus whether the upsert inserted it.
type upsertRow struct {
	ID          int64           `db:"id"`
	UserID      int64           `db:"user_id"`
	Month       string          `db:"month"`
	TotalIncome decimal.Decimal `db:"total_income"`
	Needs       decimal.Decimal `db:"needs"`
	Wants       decimal.Decimal `db:"wants"`
	Savings     decimal.Decimal `db:"savings"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
	Created     bool            `db:"created"`
}

// Upsert inserts the month's budget or replaces income and every allocation
// of the existing one in a single statement. The unique (user_id, month)
// constraint arbitrates concurrent creators; the loser becomes an update.
// The returned bool is true when a new row was inserted.
func (w *Writer) Upsert(ctx context.Context, upsert *BudgetUpsert) (*Budget, bool, error) {
	now := time.Now().UTC()
	returning := append(append([]any{}, columns...), psql.Raw("(xmax = 0) AS created"))

	query := psql.Insert(
		im.Into(tableName, "user_id", "month", "total_income", "needs", "wants", "savings", "created_at", "updated_at"),
		im.Values(psql.Arg(
			upsert.UserID,
			upsert.Month,
			upsert.TotalIncome,
			upsert.Split.Needs,
			upsert.Split.Wants,
			upsert.Split.Savings,
			now,
			now,
		)),
		im.OnConflict("user_id", "month").DoUpdate(
			im.SetExcluded("total_income", "needs", "wants", "savings", "updated_at"),
		),
		im.Returning(returning...),
	)

	row, err := bob.One(ctx, w.exec, query, scan.StructMapper[upsertRow]())
	if err != nil {
		return nil, false, sqlconfig.TranslateError(err, "budget")
	}

	return &Budget{
		ID:          row.ID,
		UserID:      row.UserID,
		Month:       row.Month,
		TotalIncome: row.TotalIncome,
		Needs:       row.Needs,
		Wants:       row.Wants,
		Savings:     row.Savings,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}, row.Created, nil
}

// DeleteByMonth removes the month's budget. Expenses keep their budget_id.
func (w *Writer) DeleteByMonth(ctx context.Context, userID int64, month string) error {
	query := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("user_id").EQ(psql.Arg(userID))),
		dm.Where(psql.Quote("month").EQ(psql.Arg(month))),
		dm.Returning("id"),
	)

	deleted, err := bob.All(ctx, w.exec, query, scan.SingleColumnMapper[int64])
	if err != nil {
		return sqlconfig.TranslateError(err, "budget")
	}
	if len(deleted) == 0 {
		return apperr.NotFound("budget")
	}
	return nil
}
