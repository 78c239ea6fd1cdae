package expense

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/reconcile"
)

type CategorySummaryInput struct {
	Month string `query:"month" doc:"YYYY-MM, defaults to the current month"`
}

type CategorySummaryOutput struct {
	Body struct {
		Month   string             `json:"month"`
		Summary map[string]float64 `json:"summary" doc:"Amount spent per category"`
	}
}

// CategorySummaryHandler handles GET /expenses/summary/category.
type CategorySummaryHandler struct {
	Expenses expenseService
	Session  *apiutil.Session
	Now      func() time.Time
}

// NewCategorySummaryHandler creates a new CategorySummaryHandler.
func NewCategorySummaryHandler(expenses expenseService, session *apiutil.Session) *CategorySummaryHandler {
	return &CategorySummaryHandler{Expenses: expenses, Session: session, Now: time.Now}
}

// Register registers the category summary endpoint with the Huma API.
func (h *CategorySummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category-summary",
		Method:      http.MethodGet,
		Path:        "/expenses/summary/category",
		Summary:     "Spending per category",
		Description: "Sums the month's expenses per category.",
		Tags:        []string{"Expenses"},
		Middlewares: h.Session.Require(api),
	}, h.handle)
}

func (h *CategorySummaryHandler) handle(ctx context.Context, input *CategorySummaryInput) (*CategorySummaryOutput, error) {
	userID, err := apiutil.CurrentUserID(ctx)
	if err != nil {
		return nil, err
	}

	month := input.Month
	if month == "" {
		month = reconcile.MonthOf(h.Now().UTC())
	}

	totals, err := h.Expenses.CategorySummary(ctx, userID, month)
	if err != nil {
		return nil, apiutil.Error(ctx, err, "Failed to generate summary")
	}

	out := &CategorySummaryOutput{}
	out.Body.Month = totals.Month
	out.Body.Summary = map[string]float64{
		reconcile.CategoryNeeds.String():   apiutil.Money(totals.Needs),
		reconcile.CategoryWants.String():   apiutil.Money(totals.Wants),
		reconcile.CategorySavings.String(): apiutil.Money(totals.Savings),
	}
	return out, nil
}
