package budget

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/operator/actions"
	"github.com/carson-networks/prefin/internal/service"
)

type UpsertBudgetBody struct {
	Month       string   `json:"month,omitempty" doc:"YYYY-MM"`
	TotalIncome *float64 `json:"totalIncome,omitempty" doc:"Monthly income, greater than zero"`
}

type UpsertBudgetInput struct {
	Body UpsertBudgetBody
}

type UpsertBudgetOutput struct {
	Status int
	Body   struct {
		Msg    string `json:"msg"`
		Budget Budget `json:"budget"`
	}
}

// UpsertBudgetHandler handles POST /budget.
type UpsertBudgetHandler struct {
	Operator apiutil.ActionProcessor
	Session  *apiutil.Session
}

// NewUpsertBudgetHandler creates a new UpsertBudgetHandler.
func NewUpsertBudgetHandler(op apiutil.ActionProcessor, session *apiutil.Session) *UpsertBudgetHandler {
	return &UpsertBudgetHandler{Operator: op, Session: session}
}

// Register registers the upsert budget endpoint with the Huma API.
func (h *UpsertBudgetHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "upsert-budget",
		Method:      http.MethodPost,
		Path:        "/budget",
		Summary:     "Create or update budget",
		Description: "Sets the month's income and recomputes the 50/30/20 split. Responds 201 when the budget is new.",
		Tags:        []string{"Budgets"},
		Middlewares: h.Session.Require(api),
	}, h.handle)
}

func (h *UpsertBudgetHandler) handle(ctx context.Context, input *UpsertBudgetInput) (*UpsertBudgetOutput, error) {
	userID, err := apiutil.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}
	if input.Body.Month == "" || input.Body.TotalIncome == nil {
		return nil, apiutil.Error(ctx, apperr.Validation("Total income and month are required"), "")
	}

	action := &actions.UpsertBudget{
		UserID:      userID,
		Month:       input.Body.Month,
		TotalIncome: apiutil.ParseMoney(*input.Body.TotalIncome),
	}
	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, apiutil.Error(ctx, err, "Error creating/updating budget")
	}

	out := &UpsertBudgetOutput{Status: http.StatusOK}
	out.Body.Msg = "Budget updated"
	if action.Created {
		out.Status = http.StatusCreated
		out.Body.Msg = "Budget created"
	}
	out.Body.Budget = toBudget(service.BudgetFromStorage(action.Budget))
	return out, nil
}
