package expense

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/operator/actions"
	"github.com/carson-networks/prefin/internal/service"
)

type CreateExpenseBody struct {
	Amount   *float64 `json:"amount,omitempty" doc:"Positive amount"`
	Category string   `json:"category,omitempty" doc:"needs, wants or savings"`
	Name     string   `json:"name,omitempty"`
	Date     string   `json:"date,omitempty" doc:"YYYY-MM-DD or RFC3339"`
}

type CreateExpenseInput struct {
	Body CreateExpenseBody
}

type CreateExpenseOutput struct {
	Body struct {
		Msg     string   `json:"msg"`
		Expense Expense  `json:"expense"`
		Warning *Warning `json:"warning,omitempty"`
	}
}

// CreateExpenseHandler handles POST /expense.
type CreateExpenseHandler struct {
	Operator apiutil.ActionProcessor
	Session  *apiutil.Session
}

// NewCreateExpenseHandler creates a new CreateExpenseHandler.
func NewCreateExpenseHandler(op apiutil.ActionProcessor, session *apiutil.Session) *CreateExpenseHandler {
	return &CreateExpenseHandler{Operator: op, Session: session}
}

// Register registers the create expense endpoint with the Huma API.
func (h *CreateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-expense",
		Method:        http.MethodPost,
		Path:          "/expense",
		Summary:       "Add expense",
		Description:   "Records an expense in a month that has a budget. Going over the category's allocation succeeds with a warning.",
		Tags:          []string{"Expenses"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.Session.Require(api),
	}, h.handle)
}

func (h *CreateExpenseHandler) handle(ctx context.Context, input *CreateExpenseInput) (*CreateExpenseOutput, error) {
	userID, err := apiutil.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if input.Body.Amount == nil || *input.Body.Amount <= 0 {
		return nil, apiutil.Error(ctx, apperr.Validation("Amount must be a positive number"), "")
	}

	action := &actions.CreateExpense{
		UserID:   userID,
		Amount:   apiutil.ParseMoney(*input.Body.Amount),
		Category: input.Body.Category,
		Name:     input.Body.Name,
		Date:     input.Body.Date,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apiutil.Error(ctx, err, "Failed to add expense")
	}

	out := &CreateExpenseOutput{}
	out.Body.Msg = "Expense added successfully"
	out.Body.Expense = toExpense(service.ExpenseFromStorage(action.Expense))
	if w := action.Warning; w != nil {
		out.Body.Msg += fmt.Sprintf(". Warning: Over budget for category %q by %s", w.Category, w.OverBy.String())
		out.Body.Warning = &Warning{Category: string(w.Category), OverBy: apiutil.Money(w.OverBy)}
	}
	return out, nil
}
