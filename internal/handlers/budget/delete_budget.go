package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/operator/actions"
)

type DeleteBudgetOutput struct {
	Body struct {
		Msg string `json:"msg"`
	}
}

// DeleteBudgetHandler handles DELETE /budget/{month}. Expenses of the month
// are kept.
type DeleteBudgetHandler struct {
	Operator apiutil.ActionProcessor
	Session  *apiutil.Session
}

// NewDeleteBudgetHandler creates a new DeleteBudgetHandler.
func NewDeleteBudgetHandler(op apiutil.ActionProcessor, session *apiutil.Session) *DeleteBudgetHandler {
	return &DeleteBudgetHandler{Operator: op, Session: session}
}

// Register registers the delete budget endpoint with the Huma API.
func (h *DeleteBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-budget",
		Method:      http.MethodDelete,
		Path:        "/budget/{month}",
		Summary:     "Delete budget",
		Tags:        []string{"Budgets"},
		Middlewares: h.Session.Require(api),
	}, h.handle)
}

func (h *DeleteBudgetHandler) handle(ctx context.Context, input *MonthPath) (*DeleteBudgetOutput, error) {
	userID, err := apiutil.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	action := &actions.DeleteBudget{UserID: userID, Month: input.Month}
	if err := h.Operator.Process(ctx, action); err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, huma.Error404NotFound("No budget found to delete")
		}
		return nil, apiutil.Error(ctx, err, "Error deleting budget")
	}

	out := &DeleteBudgetOutput{}
	out.Body.Msg = "Budget deleted successfully"
	return out, nil
}
