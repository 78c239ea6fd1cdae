package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/handlers/apiutil"
)

type GetBudgetOutput struct {
	Body struct {
		Budget Budget `json:"budget"`
	}
}

// GetBudgetHandler handles GET /budget/{month}.
type GetBudgetHandler struct {
	Budgets budgetService
	Session *apiutil.Session
}

// NewGetBudgetHandler creates a new GetBudgetHandler.
func NewGetBudgetHandler(budgets budgetService, session *apiutil.Session) *GetBudgetHandler {
	return &GetBudgetHandler{Budgets: budgets, Session: session}
}

// Register registers the get budget endpoint with the Huma API.
func (h *GetBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget",
		Method:      http.MethodGet,
		Path:        "/budget/{month}",
		Summary:     "Get budget",
		Tags:        []string{"Budgets"},
		Middlewares: h.Session.Require(api),
	}, h.handle)
}

func (h *GetBudgetHandler) handle(ctx context.Context, input *MonthPath) (*GetBudgetOutput, error) {
	userID, err := apiutil.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	b, err := h.Budgets.GetBudget(ctx, userID, input.Month)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, huma.Error404NotFound("No budget for that month")
		}
		return nil, apiutil.Error(ctx, err, "Error fetching monthly budget")
	}

	out := &GetBudgetOutput{}
	out.Body.Budget = toBudget(b)
	return out, nil
}
