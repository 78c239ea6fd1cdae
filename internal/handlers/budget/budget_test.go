package budget

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/prefin/internal/apperr"
	"github.com/carson-networks/prefin/internal/auth"
	"github.com/carson-networks/prefin/internal/handlers/apiutil"
	"github.com/carson-networks/prefin/internal/operator/actions"
	"github.com/carson-networks/prefin/internal/reconcile"
	"github.com/carson-networks/prefin/internal/service"
	"github.com/carson-networks/prefin/internal/storage"
	storagebudget "github.com/carson-networks/prefin/internal/storage/budget"
	"github.com/carson-networks/prefin/internal/storage/expense"
	"github.com/carson-networks/prefin/internal/storage/storagemock"
)

type directProcessor struct {
	writer *storage.Writer
}

func (p directProcessor) Process(ctx context.Context, action actions.IAction) error {
	return action.Perform(ctx, p.writer)
}

func newTestAPI(t *testing.T) (humatest.TestAPI, *storagemock.Mocks, string) {
	t.Helper()
	_, api := humatest.New(t)
	codec, err := auth.NewTokenCodec("test-secret", auth.DefaultTokenTTL)
	require.NoError(t, err)

	mocks := storagemock.NewMocks(t)
	svc := service.NewService(mocks.Reader())
	op := directProcessor{writer: mocks.Writer()}
	session := apiutil.NewSession(codec)

	NewUpsertBudgetHandler(op, session).Register(api)
	NewListBudgetsHandler(svc.Budgets, session).Register(api)
	NewGetBudgetHandler(svc.Budgets, session).Register(api)
	NewBudgetSummaryHandler(svc.Budgets, session).Register(api)
	NewDeleteBudgetHandler(op, session).Register(api)

	token, err := codec.Issue(3)
	require.NoError(t, err)
	return api, mocks, "Cookie: token=" + token
}

func storedBudget(month string, income int64) *storagebudget.Budget {
	split := reconcile.SplitIncome(decimal.NewFromInt(income))
	return &storagebudget.Budget{
		ID:          7,
		UserID:      3,
		Month:       month,
		TotalIncome: decimal.NewFromInt(income),
		Needs:       split.Needs,
		Wants:       split.Wants,
		Savings:     split.Savings,
	}
}

type upsertResponse struct {
	Msg    string `json:"msg"`
	Budget Budget `json:"budget"`
}

func TestHTTP_UpsertBudget_Created(t *testing.T) {
	api, mocks, cookie := newTestAPI(t)

	mocks.Budgets.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(u *storagebudget.BudgetUpsert) bool {
		return u.UserID == 3 && u.Month == "2025-03" && u.Split.Needs.Equal(decimal.NewFromInt(2500))
	})).Return(storedBudget("2025-03", 5000), true, nil)

	resp := api.Post("/budget", cookie, map[string]any{"month": "2025-03", "totalIncome": 5000})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body upsertResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Budget created", body.Msg)
	assert.Equal(t, 2500.0, body.Budget.Needs)
	assert.Equal(t, 1500.0, body.Budget.Wants)
	assert.Equal(t, 1000.0, body.Budget.Savings)
}

func TestHTTP_UpsertBudget_Updated(t *testing.T) {
	api, mocks, cookie := newTestAPI(t)

	mocks.Budgets.EXPECT().Upsert(mock.Anything, mock.Anything).
		Return(storedBudget("2025-03", 6000), false, nil)

	resp := api.Post("/budget", cookie, map[string]any{"month": "2025-03", "totalIncome": 6000})

	require.Equal(t, http.StatusOK, resp.Code)
	var body upsertResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Budget updated", body.Msg)
	assert.Equal(t, 6000.0, body.Budget.TotalIncome)
}

func TestHTTP_UpsertBudget_Validation(t *testing.T) {
	api, _, cookie := newTestAPI(t)

	assert.Equal(t, http.StatusBadRequest, api.Post("/budget", cookie, map[string]any{"month": "2025-03"}).Code)
	assert.Equal(t, http.StatusBadRequest, api.Post("/budget", cookie, map[string]any{"totalIncome": 10}).Code)
	assert.Equal(t, http.StatusBadRequest, api.Post("/budget", cookie, map[string]any{"month": "2025-03", "totalIncome": 0}).Code)
	assert.Equal(t, http.StatusBadRequest, api.Post("/budget", cookie, map[string]any{"month": "03-2025", "totalIncome": 10}).Code)
}

func TestHTTP_UpsertBudget_Unauthenticated(t *testing.T) {
	api, _, _ := newTestAPI(t)

	resp := api.Post("/budget", map[string]any{"month": "2025-03", "totalIncome": 10})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestHTTP_ListBudgets(t *testing.T) {
	api, mocks, cookie := newTestAPI(t)

	mocks.Budgets.EXPECT().ListByUser(mock.Anything, int64(3)).
		Return([]*storagebudget.Budget{storedBudget("2025-04", 1000), storedBudget("2025-03", 2000)}, nil)

	resp := api.Get("/budgets", cookie)

	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Budgets []Budget `json:"budgets"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Budgets, 2)
	assert.Equal(t, "2025-04", body.Budgets[0].Month)
}

func TestHTTP_ListBudgets_EmptyIsArray(t *testing.T) {
	api, mocks, cookie := newTestAPI(t)

	mocks.Budgets.EXPECT().ListByUser(mock.Anything, int64(3)).Return(nil, nil)

	resp := api.Get("/budgets", cookie)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"budgets":[]}`, extractField(t, resp.Body.Bytes(), "budgets"))
}

func TestHTTP_GetBudget_NotFound(t *testing.T) {
	api, mocks, cookie := newTestAPI(t)

	mocks.Budgets.EXPECT().FindByMonth(mock.Anything, int64(3), "2025-05").
		Return(nil, apperr.NotFound("budget"))

	resp := api.Get("/budget/2025-05", cookie)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_BudgetSummary(t *testing.T) {
	api, mocks, cookie := newTestAPI(t)

	mocks.Budgets.EXPECT().FindByMonth(mock.Anything, int64(3), "2025-03").
		Return(storedBudget("2025-03", 1000), nil)
	mocks.Expenses.EXPECT().List(mock.Anything, &expense.ExpenseFilter{UserID: 3, Month: "2025-03"}).
		Return([]*expense.Expense{
			{Category: reconcile.CategoryNeeds, Amount: decimal.NewFromInt(100)},
			{Category: reconcile.CategoryNeeds, Amount: decimal.NewFromInt(50)},
		}, nil)

	resp := api.Get("/budget/2025-03/summary", cookie)

	require.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Summary Summary `json:"summary"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 500.0, body.Summary.Needs.Budgeted)
	assert.Equal(t, 150.0, body.Summary.Needs.Spent)
	assert.Equal(t, 350.0, body.Summary.Needs.Remaining)
	assert.Equal(t, 0.0, body.Summary.Wants.Spent)
	assert.Equal(t, 1000.0, body.Summary.TotalIncome)
}

func TestHTTP_DeleteBudget(t *testing.T) {
	api, mocks, cookie := newTestAPI(t)

	mocks.Budgets.EXPECT().DeleteByMonth(mock.Anything, int64(3), "2025-03").Return(nil)

	resp := api.Delete("/budget/2025-03", cookie)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "Budget deleted successfully")
}

func TestHTTP_DeleteBudget_NotFound(t *testing.T) {
	api, mocks, cookie := newTestAPI(t)

	mocks.Budgets.EXPECT().DeleteByMonth(mock.Anything, int64(3), "2025-03").
		Return(apperr.NotFound("budget"))

	resp := api.Delete("/budget/2025-03", cookie)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_MalformedMonthPathIsNotFound(t *testing.T) {
	api, _, cookie := newTestAPI(t)

	assert.Equal(t, http.StatusNotFound, api.Get("/budget/May", cookie).Code)
	assert.Equal(t, http.StatusNotFound, api.Get("/budget/2025-13/summary", cookie).Code)
	assert.Equal(t, http.StatusNotFound, api.Delete("/budget/2025-3", cookie).Code)
}

// extractField re-encodes one top-level field of a JSON object on its own.
func extractField(t *testing.T, raw []byte, field string) string {
	t.Helper()
	var obj map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &obj))
	out, err := json.Marshal(map[string]json.RawMessage{field: obj[field]})
	require.NoError(t, err)
	return string(out)
}
