package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/handlers/apiutil"
)

type BudgetSummaryOutput struct {
	Body struct {
		Summary Summary `json:"summary"`
	}
}

// BudgetSummaryHandler handles GET /budget/{month}/summary.
type BudgetSummaryHandler struct {
	Budgets budgetService
	Session *apiutil.Session
}

// NewBudgetSummaryHandler creates a new BudgetSummaryHandler.
func NewBudgetSummaryHandler(budgets budgetService, session *apiutil.Session) *BudgetSummaryHandler {
	return &BudgetSummaryHandler{Budgets: budgets, Session: session}
}

// Register registers the budget summary endpoint with the Huma API.
func (h *BudgetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-budget-summary",
		Method:      http.MethodGet,
		Path:        "/budget/{month}/summary",
		Summary:     "Budget summary",
		Description: "Budgeted, spent and remaining amount per category for the month.",
		Tags:        []string{"Budgets"},
		Middlewares: h.Session.Require(api),
	}, h.handle)
}

func (h *BudgetSummaryHandler) handle(ctx context.Context, input *MonthPath) (*BudgetSummaryOutput, error) {
	userID, err := apiutil.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	summary, err := h.Budgets.Summary(ctx, userID, input.Month)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, huma.Error404NotFound("No budget found")
		}
		return nil, apiutil.Error(ctx, err, "Error generating summary")
	}

	out := &BudgetSummaryOutput{}
	out.Body.Summary = toSummary(summary)
	return out, nil
}
