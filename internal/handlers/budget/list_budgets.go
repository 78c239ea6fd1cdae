package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/handlers/apiutil"
)

type ListBudgetsOutput struct {
	Body struct {
		Budgets []Budget `json:"budgets"`
	}
}

// ListBudgetsHandler handles GET /budgets.
type ListBudgetsHandler struct {
	Budgets budgetService
	Session *apiutil.Session
}

// NewListBudgetsHandler creates a new ListBudgetsHandler.
func NewListBudgetsHandler(budgets budgetService, session *apiutil.Session) *ListBudgetsHandler {
	return &ListBudgetsHandler{Budgets: budgets, Session: session}
}

// Register registers the list budgets endpoint with the Huma API.
func (h *ListBudgetsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-budgets",
		Method:      http.MethodGet,
		Path:        "/budgets",
		Summary:     "List budgets",
		Description: "Returns every budget of the user, newest month first.",
		Tags:        []string{"Budgets"},
		Middlewares: h.Session.Require(api),
	}, h.handle)
}

func (h *ListBudgetsHandler) handle(ctx context.Context, _ *struct{}) (*ListBudgetsOutput, error) {
	userID, err := apiutil.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	budgets, err := h.Budgets.ListBudgets(ctx, userID)
	if err != nil {
		return nil, apiutil.Error(ctx, err, "Failed to fetch budgets")
	}

	out := &ListBudgetsOutput{}
	out.Body.Budgets = make([]Budget, len(budgets))
	for i := range budgets {
		out.Body.Budgets[i] = toBudget(&budgets[i])
	}
	return out, nil
}
