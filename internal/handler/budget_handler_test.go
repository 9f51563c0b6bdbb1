package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dafibh/fundvision/fundvision-backend/internal/service"
	"github.com/dafibh/fundvision/fundvision-backend/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBudgets_Success(t *testing.T) {
	handler := NewBudgetHandler(service.NewBudgetService())
	sess := session.New(session.DefaultSeed())

	c, rec := newSessionContext(t, sess, http.MethodGet, "/api/v1/sessions/x/budgets", "")

	require.NoError(t, handler.GetBudgets(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response []BudgetResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response, 4)
	assert.Equal(t, "Food & Dining", response[0].Category)
	assert.Equal(t, "64.00", response[0].Percent)
	assert.Equal(t, "180.00", response[0].Remaining)
}

func TestUpdateBudget(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		body        string
		wantStatus  int
		wantPercent string
	}{
		{"raise limit", "Food%20%26%20Dining", `{"limit":"400"}`, http.StatusOK, "80.00"},
		{"case insensitive", "transport", `{"limit":"145"}`, http.StatusOK, "100.00"},
		{"negative limit", "Shopping", `{"limit":"-5"}`, http.StatusBadRequest, ""},
		{"non-numeric limit", "Shopping", `{"limit":"lots"}`, http.StatusBadRequest, ""},
		{"unknown budget", "Housing", `{"limit":"100"}`, http.StatusNotFound, ""},
		{"unknown category", "Gadgets", `{"limit":"100"}`, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewBudgetHandler(service.NewBudgetService())
			sess := session.New(session.DefaultSeed())

			c, rec := newSessionContext(t, sess, http.MethodPut, "/api/v1/sessions/x/budgets/"+tt.category, tt.body)
			c.SetParamNames("category")
			c.SetParamValues(tt.category)

			require.NoError(t, handler.UpdateBudget(c))
			assert.Equal(t, tt.wantStatus, rec.Code)

			if tt.wantStatus == http.StatusOK {
				var response BudgetResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
				assert.Equal(t, tt.wantPercent, response.Percent)
			}
		})
	}
}

func TestGetCategoryTransactions(t *testing.T) {
	handler := NewBudgetHandler(service.NewBudgetService())
	sess := session.New(session.DefaultSeed())

	c, rec := newSessionContext(t, sess, http.MethodGet, "/api/v1/sessions/x/budgets/food%20%26%20dining/transactions", "")
	c.SetParamNames("category")
	c.SetParamValues("food%20%26%20dining")

	require.NoError(t, handler.GetCategoryTransactions(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response CategoryTransactionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "Food & Dining", response.Category)
	require.Len(t, response.Items, 2)
	assert.Equal(t, "t1", response.Items[0].ID)
	assert.Equal(t, "t7", response.Items[1].ID)
}

func TestGetCategoryTransactions_NotFound(t *testing.T) {
	handler := NewBudgetHandler(service.NewBudgetService())
	sess := session.New(session.DefaultSeed())

	c, rec := newSessionContext(t, sess, http.MethodGet, "/api/v1/sessions/x/budgets/Housing/transactions", "")
	c.SetParamNames("category")
	c.SetParamValues("Housing")

	require.NoError(t, handler.GetCategoryTransactions(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
