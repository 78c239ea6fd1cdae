package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/service"
)

type ListExpensesInput struct {
	Category string `query:"category" doc:"needs, wants or savings"`
	Month    string `query:"month" doc:"YYYY-MM"`
}

type ListExpensesOutput struct {
	Body struct {
		Expenses []Expense `json:"expenses"`
	}
}

// ListExpensesHandler handles GET /expenses.
type ListExpensesHandler struct {
	Expenses expenseService
	Session  *apiutil.Session
}

// NewListExpensesHandler creates a new ListExpensesHandler.
func NewListExpensesHandler(expenses expenseService, session *apiutil.Session) *ListExpensesHandler {
	return &ListExpensesHandler{Expenses: expenses, Session: session}
}

// Register registers the list expenses endpoint with the Huma API.
func (h *ListExpensesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-expenses",
		Method:      http.MethodGet,
		Path:        "/expenses",
		Summary:     "List expenses",
		Description: "Returns the user's expenses, newest first, optionally narrowed to a category and a month.",
		Tags:        []string{"Expenses"},
		Middlewares: h.Session.Require(api),
	}, h.handle)
}

func (h *ListExpensesHandler) handle(ctx context.Context, input *ListExpensesInput) (*ListExpensesOutput, error) {
	userID, err := apiutil.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	expenses, err := h.Expenses.ListExpenses(ctx, userID, service.ExpenseFilter{
		Category: input.Category,
		Month:    input.Month,
	})
	if err != nil {
		return nil, apiutil.Error(ctx, err, "Failed to get expenses")
	}

	out := &ListExpensesOutput{}
	out.Body.Expenses = make([]Expense, len(expenses))
	for i := range expenses {
		out.Body.Expenses[i] = toExpense(&expenses[i])
	}
	return out, nil
}
