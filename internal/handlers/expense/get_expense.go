package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/handlers/apiutil"
)

type GetExpenseOutput struct {
	Body struct {
		Expense Expense `json:"expense"`
	}
}

// GetExpenseHandler handles GET /expense/{id}.
type GetExpenseHandler struct {
	Expenses expenseService
	Session  *apiutil.Session
}

// NewGetExpenseHandler creates a new GetExpenseHandler.
func NewGetExpenseHandler(expenses expenseService, session *apiutil.Session) *GetExpenseHandler {
	return &GetExpenseHandler{Expenses: expenses, Session: session}
}

// Register registers the get expense endpoint with the Huma API.
func (h *GetExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-expense",
		Method:      http.MethodGet,
		Path:        "/expense/{id}",
		Summary:     "Get expense",
		Tags:        []string{"Expenses"},
		Middlewares: h.Session.Require(api),
	}, h.handle)
}

func (h *GetExpenseHandler) handle(ctx context.Context, input *IDPath) (*GetExpenseOutput, error) {
	userID, err := apiutil.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	e, err := h.Expenses.GetExpense(ctx, userID, input.ID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, huma.Error404NotFound("Expense not found")
		}
		return nil, apiutil.Error(ctx, err, "Failed to fetch expense")
	}

	out := &GetExpenseOutput{}
	out.Body.Expense = toExpense(e)
	return out, nil
}
