package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/operator/actions"
	"github.com/carson-networks/prefin/internal/service"
)

// UpdateExpenseBody holds the fields to change. Omitted fields keep their value.
type UpdateExpenseBody struct {
	Amount   *float64 `json:"amount,omitempty"`
	Category *string  `json:"category,omitempty"`
	Name     *string  `json:"name,omitempty"`
	Date     *string  `json:"date,omitempty" doc:"YYYY-MM-DD or RFC3339"`
}

type UpdateExpenseInput struct {
	ID   int64 `path:"id" doc:"Expense id"`
	Body UpdateExpenseBody
}

type UpdateExpenseOutput struct {
	Body struct {
		Msg     string  `json:"msg"`
		Expense Expense `json:"expense"`
	}
}

// UpdateExpenseHandler handles PUT /expense/{id}.
type UpdateExpenseHandler struct {
	Operator apiutil.ActionProcessor
	Session  *apiutil.Session
}

// NewUpdateExpenseHandler creates a new UpdateExpenseHandler.
func NewUpdateExpenseHandler(op apiutil.ActionProcessor, session *apiutil.Session) *UpdateExpenseHandler {
	return &UpdateExpenseHandler{Operator: op, Session: session}
}

// Register registers the update expense endpoint with the Huma API.
func (h *UpdateExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-expense",
		Method:      http.MethodPut,
		Path:        "/expense/{id}",
		Summary:     "Update expense",
		Tags:        []string{"Expenses"},
		Middlewares: h.Session.Require(api),
	}, h.handle)
}

func (h *UpdateExpenseHandler) handle(ctx context.Context, input *UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	userID, err := apiutil.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	var amount *decimal.Decimal
	if input.Body.Amount != nil {
		if *input.Body.Amount <= 0 {
			return nil, apiutil.Error(ctx, apperr.Validation("Amount must be positive"), "")
		}
		a := apiutil.ParseMoney(*input.Body.Amount)
		amount = &a
	}

	action := &actions.UpdateExpense{
		UserID:    userID,
		ExpenseID: input.ID,
		Amount:    amount,
		Category:  input.Body.Category,
		Name:      input.Body.Name,
		Date:      input.Body.Date,
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, huma.Error404NotFound("Expense not found")
		}
		return nil, apiutil.Error(ctx, err, "Failed to update expense")
	}

	out := &UpdateExpenseOutput{}
	out.Body.Msg = "Expense updated"
	out.Body.Expense = toExpense(service.ExpenseFromStorage(action.Expense))
	return out, nil
}
