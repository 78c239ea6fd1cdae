package expense

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/operator/actions"
)

type DeleteExpenseOutput struct {
	Body struct {
		Msg string `json:"msg"`
	}
}

// DeleteExpenseHandler handles DELETE /expense/{id}.
type DeleteExpenseHandler struct {
	Operator apiutil.ActionProcessor
	Session  *apiutil.Session
}

// NewDeleteExpenseHandler creates a new DeleteExpenseHandler.
func NewDeleteExpenseHandler(op apiutil.ActionProcessor, session *apiutil.Session) *DeleteExpenseHandler {
	return &DeleteExpenseHandler{Operator: op, Session: session}
}

// Register registers the delete expense endpoint with the Huma API.
func (h *DeleteExpenseHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-expense",
		Method:      http.MethodDelete,
		Path:        "/expense/{id}",
		Summary:     "Delete expense",
		Tags:        []string{"Expenses"},
		Middlewares: h.Session.Require(api),
	}, h.handle)
}

func (h *DeleteExpenseHandler) handle(ctx context.Context, input *IDPath) (*DeleteExpenseOutput, error) {
	userID, err := apiutil.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.DeleteExpense{UserID: userID, ExpenseID: input.ID}
	if err := h.Operator.Process(ctx, action); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, huma.Error404NotFound("Expense not found")
		}
		return nil, apiutil.Error(ctx, err, "Failed to delete expense")
	}

	out := &DeleteExpenseOutput{}
	out.Body.Msg = "Expense deleted"
	return out, nil
}
