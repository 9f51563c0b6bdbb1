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

func TestGetAccounts_Success(t *testing.T) {
	handler := NewAccountHandler(service.NewAccountService())
	sess := session.New(session.DefaultSeed())

	c, rec := newSessionContext(t, sess, http.MethodGet, "/api/v1/sessions/"+sess.ID.String()+"/accounts", "")

	require.NoError(t, handler.GetAccounts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response AccountsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	require.Len(t, response.Accounts, 3)
	assert.Equal(t, "acc_1", response.Accounts[0].ID)
	assert.Equal(t, "4250.75", response.Accounts[0].Balance)
	assert.Equal(t, "-840.20", response.Accounts[2].Balance)
	assert.Equal(t, "15410.55", response.Balances.Total)
	assert.Equal(t, "15410.55", response.Balances.Bank)
	assert.Equal(t, "0.00", response.Balances.Cash)
}
